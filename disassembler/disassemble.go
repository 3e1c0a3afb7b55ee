package disassembler

import (
	"fmt"

	"github.com/advhd-tools/ws2kit/bytecode"
)

// decodeGeneric walks sig against r, producing one args entry per slot. A
// CountedArray slot consumes the following slot as its element type and
// reads that many elements, folded into a single ArrayArg entry. Empty
// slots consume zero bytes but still occupy an args position (rendered as
// JSON null) so that the fixed argument indices §4.7 relies on (e.g.
// DisplayMessage's message at index 3) stay stable regardless of how many
// Empty markers a signature carries.
func decodeGeneric(r *bytecode.Reader, sig []bytecode.ArgTag) (args []any, eof bool) {
	for i := 0; i < len(sig); i++ {
		tag := sig[i]
		switch tag {
		case bytecode.Empty:
			args = append(args, nil)
		case bytecode.CountedArray:
			count, err := r.U8()
			if err != nil {
				return nil, true
			}
			inner := bytecode.ArgTag(-1)
			if i+1 < len(sig) {
				inner = sig[i+1]
			}
			items := make([]bytecode.Arg, 0, count)
			for j := uint8(0); j < count; j++ {
				a, err := decodeScalar(r, inner)
				if err != nil {
					return nil, true
				}
				items = append(items, a)
			}
			args = append(args, bytecode.ArrayArg{Elem: inner, Items: items})
			i++ // consume the paired inner-type slot
		default:
			a, err := decodeScalar(r, tag)
			if err != nil {
				return nil, true
			}
			args = append(args, a)
		}
	}
	return args, false
}

// decodeScalar decodes one non-array, non-empty argument tag into an Arg.
func decodeScalar(r *bytecode.Reader, tag bytecode.ArgTag) (bytecode.Arg, error) {
	switch tag {
	case bytecode.U8:
		v, err := r.U8()
		return bytecode.Arg{Tag: bytecode.U8, U8: v}, err
	case bytecode.U16:
		v, err := r.U16LE()
		return bytecode.Arg{Tag: bytecode.U16, U16: v}, err
	case bytecode.U32:
		v, err := r.U32LE()
		return bytecode.Arg{Tag: bytecode.U32, U32: v}, err
	case bytecode.F32:
		v, err := r.F32LE()
		return bytecode.Arg{Tag: bytecode.F32, F32: v}, err
	case bytecode.Str:
		return bytecode.Arg{Tag: bytecode.Str, Str: r.Str16()}, nil
	default:
		return bytecode.Arg{}, fmt.Errorf("bytecode: unexpected argument tag %d in scalar position", tag)
	}
}

// Disassemble walks raw into a Result, decoding it first when the mode
// resolves to encrypted. requestedMode controls whether the codec is
// applied first: ModeAuto
// consults Detect, ModeEncrypted/ModeDecrypted force the respective state.
func Disassemble(raw []byte, requestedMode Mode) *Result {
	resolved := requestedMode
	if requestedMode == ModeAuto {
		resolved = Detect(raw)
	}

	var data []byte
	if resolved == ModeEncrypted {
		data = bytecode.Decode(raw)
	} else {
		data = raw
	}

	result := &Result{
		RequestedMode: requestedMode,
		ResolvedMode:  resolved,
		DecodedSize:   len(data),
	}

	r := bytecode.NewReader(data)
	for r.Pos() < r.Len() {
		startOffset := r.Pos()
		op, err := r.U8()
		if err != nil {
			break
		}

		name, known := bytecode.Name[op]
		if !known {
			name = fmt.Sprintf("Unk%02X", op)
		}

		var args []any
		var eof bool
		var isSentinel bool

		switch op {
		case 0x01:
			args, eof = decodeCondition(r)
		case 0x02, 0x06:
			args, eof = decodeSinglePointer(r)
		case 0x0F:
			args, eof = decodeShowChoice(r)
		case 0xE6:
			args, eof = decodeDualPointer(r)
		case 0xFF:
			args, eof = decodeFileEnd(r)
		default:
			sig, ok := bytecode.Sig[op]
			if !ok {
				isSentinel = true
				break
			}
			args, eof = decodeGeneric(r, sig)
		}

		if isSentinel {
			result.Instructions = append(result.Instructions, Instruction{
				Offset:   uint32(startOffset),
				Kind:     KindRaw,
				RawBytes: data[startOffset:],
			})
			return result
		}

		if eof {
			result.Instructions = append(result.Instructions, Instruction{
				Offset:   uint32(startOffset),
				Kind:     KindEOF,
				Opcode:   op,
				Name:     name,
				RawBytes: data[startOffset:],
			})
			return result
		}

		result.Instructions = append(result.Instructions, Instruction{
			Offset: uint32(startOffset),
			Kind:   KindNormal,
			Opcode: op,
			Name:   name,
			Args:   args,
		})
	}

	return result
}

package assembler

import (
	"encoding/json"
	"fmt"

	"github.com/advhd-tools/ws2kit/bytecode"
)

// encodeGeneric encodes a table-driven opcode's arguments against sig. A
// CountedArray slot consumes the next signature entry as its element type
// and the next args entry as the {count, items} object; Empty slots
// consume no bytes but do consume an args entry (the disassembler's null).
func encodeGeneric(w *bytecode.Writer, sig []bytecode.ArgTag, args []json.RawMessage) error {
	argIdx := 0
	for i := 0; i < len(sig); i++ {
		tag := sig[i]
		if tag == bytecode.Empty {
			// Occupies an args position (rendered null by the
			// disassembler) but contributes no bytes.
			argIdx++
			continue
		}
		if argIdx >= len(args) {
			return fmt.Errorf("%w: expected an argument for signature slot %d, ran out at %d", ErrArgMismatch, i, argIdx)
		}
		if tag == bytecode.CountedArray {
			inner := bytecode.ArgTag(-1)
			if i+1 < len(sig) {
				inner = sig[i+1]
			}
			arr, err := parseArray(inner, args[argIdx])
			if err != nil {
				return fmt.Errorf("%w: array argument: %v", ErrArgMismatch, err)
			}
			if err := writeArray(w, arr); err != nil {
				return err
			}
			argIdx++
			i++
			continue
		}
		scalar, err := parseScalar(tag, args[argIdx])
		if err != nil {
			return fmt.Errorf("%w: argument %d: %v", ErrArgMismatch, argIdx, err)
		}
		if err := writeScalar(w, scalar); err != nil {
			return err
		}
		argIdx++
	}
	return nil
}

// encodeInstruction dispatches an instruction node to its opcode's encoder,
// writing to w and resolving pointers against labels.
func encodeInstruction(w *bytecode.Writer, opcode uint8, args []json.RawMessage, labels map[string]uint32, warn func(string)) error {
	w.WriteU8(opcode)
	switch opcode {
	case 0x01:
		return encodeCondition(w, args, labels, warn)
	case 0x02, 0x06:
		return encodeSinglePointer(w, args, labels, warn)
	case 0x0F:
		return encodeShowChoice(w, args, labels, warn)
	case 0xE6:
		return encodeDualPointer(w, args, labels, warn)
	case 0xFF:
		return encodeFileEnd(w, args)
	default:
		sig, ok := bytecode.Sig[opcode]
		if !ok {
			return fmt.Errorf("%w: %02X", ErrUnknownOpcode, opcode)
		}
		return encodeGeneric(w, sig, args)
	}
}

// measureInstruction computes the encoded byte length of an instruction
// without needing real label offsets: pointer values don't affect size, so
// an empty label map (every loc_ lookup "fails" silently) is safe here.
func measureInstruction(opcode uint8, args []json.RawMessage) (int, error) {
	w := bytecode.NewWriter()
	if err := encodeInstruction(w, opcode, args, map[string]uint32{}, func(string) {}); err != nil {
		return 0, err
	}
	return w.Len(), nil
}

// Assemble compiles disassembly text (§6's .asm.txt grammar) into WS2
// bytecode via the two-pass algorithm in §4.6. Warnings (unresolved
// labels) are reported through sink; sink may be nil.
func Assemble(text string, sink bytecode.Sink) ([]byte, error) {
	nodes, labels, err := parseLines(text)
	if err != nil {
		return nil, fmt.Errorf("assembler: pass 1: %w", err)
	}

	warn := func(msg string) {
		if sink != nil {
			sink.Line(msg)
		}
	}

	w := bytecode.NewWriter()
	for _, node := range nodes {
		switch node.Kind {
		case NodeRaw:
			w.WriteRaw(node.Raw)
		case NodeInstruction:
			if err := encodeInstruction(w, node.Opcode, node.Args, labels, warn); err != nil {
				return nil, fmt.Errorf("assembler: pass 2: offset %d: %w", node.Offset, err)
			}
		}
	}
	return w.Bytes(), nil
}

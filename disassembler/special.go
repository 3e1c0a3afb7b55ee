package disassembler

import (
	"fmt"

	"github.com/advhd-tools/ws2kit/bytecode"
)

// Choice is one record of a ShowChoice (0x0F) menu. Pointer and File are
// mutually exclusive depending on OpJump; Error is set when OpJump names
// neither a pointer nor a file jump, matching the source's permissive
// "record the anomaly and move on" behaviour.
type Choice struct {
	ID      uint16           `json:"id"`
	Text    bytecode.StrArg  `json:"text"`
	Op1     uint8            `json:"op1"`
	Op2     uint8            `json:"op2"`
	Op3     uint8            `json:"op3"`
	OpJump  uint8            `json:"opJump"`
	Pointer any              `json:"pointer,omitempty"`
	File    *bytecode.StrArg `json:"file,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// pointerValue renders a code-pointer U32: 0 as the bare number, anything
// else as an uppercase loc_HHHHHHHH symbol.
func pointerValue(v uint32) any {
	if v == 0 {
		return v
	}
	return fmt.Sprintf("loc_%08X", v)
}

// conditionOpcodeValues and conditionPeekValues are the variant-trigger
// sets from the source's Condition (0x01) special case: either v is one of
// conditionOpcodeValues, or v == 3 and the following (unconsumed) byte is
// one of conditionPeekValues.
var conditionOpcodeValues = map[uint8]bool{2: true, 128: true, 129: true, 130: true, 192: true}
var conditionPeekValues = map[uint8]bool{50: true, 51: true, 127: true, 128: true}

// decodeCondition decodes opcode 0x01. Returns eof=true if the buffer ran
// out while reading the extended form.
func decodeCondition(r *bytecode.Reader) (args []any, eof bool) {
	v, err := r.U8()
	if err != nil {
		return nil, true
	}
	args = append(args, v)

	extended := conditionOpcodeValues[v]
	if !extended && v == 3 {
		if peek, ok := r.Peek(); ok && conditionPeekValues[peek] {
			extended = true
		}
	}
	if !extended {
		return args, false
	}

	word, err := r.U16LE()
	if err != nil {
		return nil, true
	}
	f, err := r.F32LE()
	if err != nil {
		return nil, true
	}
	p1, err := r.U32LE()
	if err != nil {
		return nil, true
	}
	p2, err := r.U32LE()
	if err != nil {
		return nil, true
	}
	args = append(args, word, f, pointerValue(p1), pointerValue(p2))
	return args, false
}

// decodeSinglePointer decodes opcodes 0x02 and 0x06, each one U32 code
// pointer.
func decodeSinglePointer(r *bytecode.Reader) (args []any, eof bool) {
	p, err := r.U32LE()
	if err != nil {
		return nil, true
	}
	return []any{pointerValue(p)}, false
}

// decodeDualPointer decodes opcode 0xE6, two U32 code pointers.
func decodeDualPointer(r *bytecode.Reader) (args []any, eof bool) {
	p1, err := r.U32LE()
	if err != nil {
		return nil, true
	}
	p2, err := r.U32LE()
	if err != nil {
		return nil, true
	}
	return []any{pointerValue(p1), pointerValue(p2)}, false
}

// decodeShowChoice decodes opcode 0x0F.
func decodeShowChoice(r *bytecode.Reader) (args []any, eof bool) {
	count, err := r.U8()
	if err != nil {
		return nil, true
	}
	choices := make([]Choice, 0, count)
	for i := 0; i < int(count); i++ {
		id, err := r.U16LE()
		if err != nil {
			return nil, true
		}
		text := r.Str16()
		op1, err := r.U8()
		if err != nil {
			return nil, true
		}
		op2, err := r.U8()
		if err != nil {
			return nil, true
		}
		op3, err := r.U8()
		if err != nil {
			return nil, true
		}
		opJump, err := r.U8()
		if err != nil {
			return nil, true
		}
		c := Choice{ID: id, Text: text, Op1: op1, Op2: op2, Op3: op3, OpJump: opJump}
		switch opJump {
		case 6:
			p, err := r.U32LE()
			if err != nil {
				return nil, true
			}
			c.Pointer = pointerValue(p)
		case 7:
			file := r.Str16()
			c.File = &file
		default:
			c.Error = fmt.Sprintf("Unknown opJump %d", opJump)
		}
		choices = append(choices, c)
	}
	return []any{count, choices}, false
}

// decodeFileEnd decodes opcode 0xFF. Per §4.5/§9, disassembly does not stop
// here — it is a data marker, not a control-flow terminator in this
// walker's behaviour, despite the name.
func decodeFileEnd(r *bytecode.Reader) (args []any, eof bool) {
	v, err := r.U32LE()
	if err != nil {
		return nil, true
	}
	args = append(args, v)
	for i := 0; i < 4; i++ {
		b, err := r.U8()
		if err != nil {
			return nil, true
		}
		args = append(args, b)
	}
	return args, false
}

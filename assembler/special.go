package assembler

import (
	"encoding/json"
	"fmt"

	"github.com/advhd-tools/ws2kit/bytecode"
)

// choiceJSON mirrors disassembler.Choice's field names for decoding a
// ShowChoice entry back from JSON.
type choiceJSON struct {
	ID      uint16          `json:"id"`
	Text    bytecode.StrArg `json:"text"`
	Op1     uint8           `json:"op1"`
	Op2     uint8           `json:"op2"`
	Op3     uint8           `json:"op3"`
	OpJump  uint8           `json:"opJump"`
	Pointer json.RawMessage `json:"pointer,omitempty"`
	File    *bytecode.StrArg `json:"file,omitempty"`
}

// encodeCondition encodes opcode 0x01. args[0] is always present; the
// extended form is present in args iff the disassembler decided to read
// it, signalled here simply by len(args) > 1 (a trailing peek byte can't
// be reconstructed from text, so the presence of the extra fields is the
// authoritative signal on the way back in).
func encodeCondition(w *bytecode.Writer, args []json.RawMessage, labels map[string]uint32, warn func(string)) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: Condition needs at least 1 argument", ErrArgMismatch)
	}
	var v uint8
	if err := json.Unmarshal(args[0], &v); err != nil {
		return fmt.Errorf("%w: Condition value: %v", ErrArgMismatch, err)
	}
	w.WriteU8(v)
	if len(args) == 1 {
		return nil
	}
	if len(args) != 5 {
		return fmt.Errorf("%w: Condition extended form needs 5 arguments, got %d", ErrArgMismatch, len(args))
	}
	var word uint16
	if err := json.Unmarshal(args[1], &word); err != nil {
		return fmt.Errorf("%w: Condition word: %v", ErrArgMismatch, err)
	}
	var f float32
	if err := json.Unmarshal(args[2], &f); err != nil {
		return fmt.Errorf("%w: Condition float: %v", ErrArgMismatch, err)
	}
	p1, err := parsePointer(args[3], labels, warn)
	if err != nil {
		return err
	}
	p2, err := parsePointer(args[4], labels, warn)
	if err != nil {
		return err
	}
	w.WriteU16LE(word)
	w.WriteF32LE(f)
	w.WriteU32LE(p1)
	w.WriteU32LE(p2)
	return nil
}

// encodeSinglePointer encodes opcodes 0x02 and 0x06.
func encodeSinglePointer(w *bytecode.Writer, args []json.RawMessage, labels map[string]uint32, warn func(string)) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: jump needs exactly 1 argument, got %d", ErrArgMismatch, len(args))
	}
	p, err := parsePointer(args[0], labels, warn)
	if err != nil {
		return err
	}
	w.WriteU32LE(p)
	return nil
}

// encodeDualPointer encodes opcode 0xE6.
func encodeDualPointer(w *bytecode.Writer, args []json.RawMessage, labels map[string]uint32, warn func(string)) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: dual jump needs exactly 2 arguments, got %d", ErrArgMismatch, len(args))
	}
	p1, err := parsePointer(args[0], labels, warn)
	if err != nil {
		return err
	}
	p2, err := parsePointer(args[1], labels, warn)
	if err != nil {
		return err
	}
	w.WriteU32LE(p1)
	w.WriteU32LE(p2)
	return nil
}

// encodeShowChoice encodes opcode 0x0F.
func encodeShowChoice(w *bytecode.Writer, args []json.RawMessage, labels map[string]uint32, warn func(string)) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: ShowChoice needs exactly 2 arguments, got %d", ErrArgMismatch, len(args))
	}
	var count uint8
	if err := json.Unmarshal(args[0], &count); err != nil {
		return fmt.Errorf("%w: ShowChoice count: %v", ErrArgMismatch, err)
	}
	var choices []choiceJSON
	if err := json.Unmarshal(args[1], &choices); err != nil {
		return fmt.Errorf("%w: ShowChoice choices: %v", ErrArgMismatch, err)
	}
	if len(choices) != int(count) {
		return fmt.Errorf("%w: ShowChoice count %d doesn't match %d choice records", ErrArgMismatch, count, len(choices))
	}
	w.WriteU8(count)
	for _, c := range choices {
		w.WriteU16LE(c.ID)
		if c.Text.WellFormed {
			w.WriteStr16(c.Text.Text, true)
		} else {
			if err := w.WriteRawHex(c.Text.Raw); err != nil {
				return err
			}
			if c.Text.Terminated {
				w.WriteU16LE(0)
			}
		}
		w.WriteU8(c.Op1)
		w.WriteU8(c.Op2)
		w.WriteU8(c.Op3)
		w.WriteU8(c.OpJump)
		switch c.OpJump {
		case 6:
			if c.Pointer == nil {
				return fmt.Errorf("%w: ShowChoice opJump=6 needs a pointer", ErrArgMismatch)
			}
			p, err := parsePointer(c.Pointer, labels, warn)
			if err != nil {
				return err
			}
			w.WriteU32LE(p)
		case 7:
			if c.File == nil {
				return fmt.Errorf("%w: ShowChoice opJump=7 needs a file", ErrArgMismatch)
			}
			if c.File.WellFormed {
				w.WriteStr16(c.File.Text, true)
			} else {
				if err := w.WriteRawHex(c.File.Raw); err != nil {
					return err
				}
				if c.File.Terminated {
					w.WriteU16LE(0)
				}
			}
		}
		// OpJump values outside {6,7} write no further bytes, matching the
		// disassembler's "error" field which carries no wire payload.
	}
	return nil
}

// encodeFileEnd encodes opcode 0xFF: one U32 then four U8s.
func encodeFileEnd(w *bytecode.Writer, args []json.RawMessage) error {
	if len(args) != 5 {
		return fmt.Errorf("%w: FileEnd needs exactly 5 arguments, got %d", ErrArgMismatch, len(args))
	}
	var v uint32
	if err := json.Unmarshal(args[0], &v); err != nil {
		return fmt.Errorf("%w: FileEnd value: %v", ErrArgMismatch, err)
	}
	w.WriteU32LE(v)
	for i := 1; i < 5; i++ {
		var b uint8
		if err := json.Unmarshal(args[i], &b); err != nil {
			return fmt.Errorf("%w: FileEnd byte %d: %v", ErrArgMismatch, i, err)
		}
		w.WriteU8(b)
	}
	return nil
}

package bytecode

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf16"
)

// Reader is a cursor over an in-memory byte buffer, offering the typed
// little-endian reads the disassembler and auto-detector need. It never
// copies the backing buffer; callers that need to stash bytes across a
// Reader's lifetime should copy explicitly.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps b for sequential reading starting at offset 0.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Pos reports the current cursor offset.
func (r *Reader) Pos() int { return r.pos }

// Len reports the total buffer length.
func (r *Reader) Len() int { return len(r.buf) }

// Remaining reports how many bytes are left unread.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Seek moves the cursor to an absolute offset, clamped to the buffer bounds.
func (r *Reader) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(r.buf) {
		pos = len(r.buf)
	}
	r.pos = pos
}

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.buf) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrEOF, n, r.pos, r.Remaining())
	}
	return nil
}

// Peek reports the next byte without advancing the cursor. ok is false at
// buffer end.
func (r *Reader) Peek() (v uint8, ok bool) {
	if r.pos >= len(r.buf) {
		return 0, false
	}
	return r.buf[r.pos], true
}

// U8 reads one byte and advances the cursor.
func (r *Reader) U8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// U16LE reads a little-endian uint16 and advances the cursor.
func (r *Reader) U16LE() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// U32LE reads a little-endian uint32 and advances the cursor.
func (r *Reader) U32LE() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// F32LE reads a little-endian IEEE-754 float32 and advances the cursor.
func (r *Reader) F32LE() (float32, error) {
	v, err := r.U32LE()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Str16 reads a UTF-16LE string terminated by a 0x0000 code unit. It always
// consumes up to the terminator (or the buffer end, if no terminator is
// found) and reports whether a terminator was actually present, whether the
// code-unit sequence is well-formed UTF-16, and the raw bytes consumed
// (terminator excluded) for fallback rendering.
func (r *Reader) Str16() (arg StrArg) {
	start := r.pos
	var units []uint16
	terminated := false
	for r.pos+2 <= len(r.buf) {
		u := binary.LittleEndian.Uint16(r.buf[r.pos:])
		r.pos += 2
		if u == 0 {
			terminated = true
			break
		}
		units = append(units, u)
	}
	if !terminated {
		// Ran off the end of the buffer without finding 0x0000; leave the
		// cursor at the end and report whatever was collected as raw.
		r.pos = len(r.buf)
	}
	end := r.pos
	if terminated {
		end -= 2
	}
	raw := r.buf[start:end]
	wellFormed := isWellFormedUTF16(units)
	arg.Terminated = terminated
	arg.WellFormed = wellFormed
	if wellFormed {
		arg.Text = string(utf16.Decode(units))
	}
	arg.Raw = fmt.Sprintf("% X", raw)
	return arg
}

// isWellFormedUTF16 rejects unpaired surrogates, which utf16.Decode would
// otherwise silently replace with U+FFFD.
func isWellFormedUTF16(units []uint16) bool {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+1 >= len(units) {
				return false
			}
			next := units[i+1]
			if next < 0xDC00 || next > 0xDFFF {
				return false
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF:
			return false
		}
	}
	return true
}

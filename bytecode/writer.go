package bytecode

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Writer is an append-only little-endian byte buffer. Unlike Reader it
// never errors, except WriteRawHex on malformed hex: callers build up a plan (the assembler's two passes) before
// ever calling a Write method, so by the time bytes are emitted every value
// is already known to fit its field width.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer ready to append to.
func NewWriter() *Writer {
	return &Writer{}
}

// Len reports the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the accumulated buffer. The caller must not mutate it.
func (w *Writer) Bytes() []byte { return w.buf }

// WriteRaw appends b verbatim.
func (w *Writer) WriteRaw(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteU16LE appends a little-endian uint16.
func (w *Writer) WriteU16LE(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteU32LE appends a little-endian uint32.
func (w *Writer) WriteU32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteF32LE appends a little-endian IEEE-754 float32.
func (w *Writer) WriteF32LE(v float32) {
	w.WriteU32LE(math.Float32bits(v))
}

// WriteStr16 appends a UTF-16LE encoding of s, followed by a 0x0000
// terminator when terminated is true. The assembler always passes true;
// strings without a terminator are re-emitted through WriteRawHex instead,
// and the jsontext import path reaches this only through the assembler.
func (w *Writer) WriteStr16(s string, terminated bool) {
	for _, u := range utf16.Encode([]rune(s)) {
		w.WriteU16LE(u)
	}
	if terminated {
		w.WriteU16LE(0)
	}
}

// WriteRawHex appends the raw bytes encoded by a "% X"-style hex dump
// string (as produced by Reader.Str16's Raw field), used when the
// assembler re-emits a StrArg that failed UTF-16 decoding verbatim rather
// than re-encoding mangled text.
func (w *Writer) WriteRawHex(raw string) error {
	for _, tok := range strings.Fields(raw) {
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return fmt.Errorf("bytecode: invalid raw hex byte %q: %w", tok, err)
		}
		w.buf = append(w.buf, byte(v))
	}
	return nil
}

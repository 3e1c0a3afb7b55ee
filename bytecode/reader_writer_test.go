package bytecode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advhd-tools/ws2kit/bytecode"
)

func TestReaderScalarRoundTrip(t *testing.T) {
	w := bytecode.NewWriter()
	w.WriteU8(0xAB)
	w.WriteU16LE(0x1234)
	w.WriteU32LE(0xDEADBEEF)
	w.WriteF32LE(3.5)

	r := bytecode.NewReader(w.Bytes())
	u8, err := r.U8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u8)

	u16, err := r.U16LE()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u16)

	u32, err := r.U32LE()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	f32, err := r.F32LE()
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f32)

	require.Equal(t, r.Len(), r.Pos())
}

func TestReaderEOF(t *testing.T) {
	r := bytecode.NewReader([]byte{0x01})
	_, err := r.U8()
	require.NoError(t, err)
	_, err = r.U8()
	require.ErrorIs(t, err, bytecode.ErrEOF)
}

func TestReaderPeekDoesNotAdvance(t *testing.T) {
	r := bytecode.NewReader([]byte{0x09, 0x0A})
	v, ok := r.Peek()
	require.True(t, ok)
	require.Equal(t, uint8(0x09), v)
	require.Equal(t, 0, r.Pos())

	b, err := r.U8()
	require.NoError(t, err)
	require.Equal(t, v, b)
}

func TestStr16TerminatedWellFormed(t *testing.T) {
	w := bytecode.NewWriter()
	w.WriteStr16("hi", true)
	r := bytecode.NewReader(w.Bytes())
	arg := r.Str16()
	require.True(t, arg.Terminated)
	require.True(t, arg.WellFormed)
	require.Equal(t, "hi", arg.Text)
	require.Equal(t, r.Len(), r.Pos())
}

func TestStr16UnterminatedRunsOffEnd(t *testing.T) {
	w := bytecode.NewWriter()
	w.WriteStr16("hi", false)
	r := bytecode.NewReader(w.Bytes())
	arg := r.Str16()
	require.False(t, arg.Terminated)
	require.Equal(t, r.Len(), r.Pos())
}

func TestStr16UnpairedSurrogateIsNotWellFormed(t *testing.T) {
	// 0xD800 is a lone high surrogate, immediately terminated.
	raw := []byte{0x00, 0xD8, 0x00, 0x00}
	r := bytecode.NewReader(raw)
	arg := r.Str16()
	require.True(t, arg.Terminated)
	require.False(t, arg.WellFormed)
	require.NotEmpty(t, arg.Raw)
}

func TestWriteRawHexRoundTrip(t *testing.T) {
	w := bytecode.NewWriter()
	require.NoError(t, w.WriteRawHex("41 00 42 00"))
	require.Equal(t, []byte{0x41, 0x00, 0x42, 0x00}, w.Bytes())
}

func TestWriteRawHexRejectsMalformedInput(t *testing.T) {
	w := bytecode.NewWriter()
	require.Error(t, w.WriteRawHex("ZZ"))
}

package assembler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advhd-tools/ws2kit/assembler"
	"github.com/advhd-tools/ws2kit/bytecode"
)

func assembleHex(t *testing.T, src string) []byte {
	t.Helper()
	code, err := assembler.Assemble(src, bytecode.NopSink{})
	require.NoError(t, err)
	return code
}

func TestAssembleBareOpcode(t *testing.T) {
	code := assembleHex(t, "loc_00000000: 00 () []\n")
	require.Equal(t, []byte{0x00}, code)
}

func TestAssembleSimpleJump(t *testing.T) {
	// loc_00000010 is not defined in this source, so the pointer resolves
	// to 0 (see TestAssembleUnresolvedLabelWarnsAndDefaultsToZero).
	code := assembleHex(t, `loc_00000000: 06 (Jump) ["loc_00000010"]`+"\n")
	require.Equal(t, []byte{0x06, 0x00, 0x00, 0x00, 0x00}, code)
}

func TestAssembleForwardLabelReference(t *testing.T) {
	// Jump to a label defined further down; pass 1 must still record the
	// label's final offset before pass 2 resolves the pointer.
	src := "loc_00000000: 06 (Jump) [\"loc_00000005\"]\n" +
		"loc_00000005: 00 () []\n"
	code := assembleHex(t, src)
	require.Equal(t, []byte{0x06, 0x05, 0x00, 0x00, 0x00, 0x00}, code)
}

func TestAssembleRawLine(t *testing.T) {
	code := assembleHex(t, "loc_00000000: RAW AABBCC\n")
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, code)
}

func TestAssembleUnresolvedLabelWarnsAndDefaultsToZero(t *testing.T) {
	var warned []string
	sink := &collectSink{lines: &warned}
	code, err := assembler.Assemble(`loc_00000000: 06 (Jump) ["loc_DEADBEEF"]`+"\n", sink)
	require.NoError(t, err)
	require.Equal(t, []byte{0x06, 0x00, 0x00, 0x00, 0x00}, code)
	require.NotEmpty(t, warned)
}

func TestAssembleUnknownOpcodeErrors(t *testing.T) {
	_, err := assembler.Assemble("loc_00000000: 03 () []\n", bytecode.NopSink{})
	require.ErrorIs(t, err, assembler.ErrUnknownOpcode)
}

func TestAssembleCountedArray(t *testing.T) {
	code := assembleHex(t, `loc_00000000: 0C () [1,2,{"count":2,"items":[3,4]}]`+"\n")
	require.Equal(t, []byte{0x0C, 0x01, 0x00, 0x02, 0x02, 0x03, 0x00, 0x04, 0x00}, code)
}

func TestAssembleFileEndRoundTrip(t *testing.T) {
	code := assembleHex(t, `loc_00000000: FF (FileEnd) [0,1,2,3,4]`+"\n")
	require.Equal(t, []byte{0xFF, 0, 0, 0, 0, 1, 2, 3, 4}, code)
}

type collectSink struct {
	lines *[]string
}

func (c *collectSink) Line(s string) { *c.lines = append(*c.lines, s) }

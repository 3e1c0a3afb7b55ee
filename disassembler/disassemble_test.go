package disassembler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advhd-tools/ws2kit/bytecode"
	"github.com/advhd-tools/ws2kit/disassembler"
)

func TestDisassembleSimpleJump(t *testing.T) {
	// 0x06 Jump to loc_00000010, then a bare 0x00 (sig {}).
	raw := []byte{0x06, 0x10, 0x00, 0x00, 0x00, 0x00}
	res := disassembler.Disassemble(raw, disassembler.ModeDecrypted)

	require.Len(t, res.Instructions, 2)

	jump := res.Instructions[0]
	require.Equal(t, disassembler.KindNormal, jump.Kind)
	require.Equal(t, uint8(0x06), jump.Opcode)
	require.Equal(t, "Jump", jump.Name)
	require.Equal(t, []any{"loc_00000010"}, jump.Args)

	nop := res.Instructions[1]
	require.Equal(t, disassembler.KindNormal, nop.Kind)
	require.Equal(t, uint32(5), nop.Offset)
}

func TestDisassembleZeroPointerRendersAsBareNumber(t *testing.T) {
	raw := []byte{0x06, 0x00, 0x00, 0x00, 0x00}
	res := disassembler.Disassemble(raw, disassembler.ModeDecrypted)
	require.Len(t, res.Instructions, 1)
	require.Equal(t, []any{uint32(0)}, res.Instructions[0].Args)
}

func TestDisassembleUnknownOpcodeYieldsRawTail(t *testing.T) {
	raw := []byte{0x06, 0x01, 0x00, 0x00, 0x00, 0xEE, 0xAA, 0xBB}
	res := disassembler.Disassemble(raw, disassembler.ModeDecrypted)
	require.Len(t, res.Instructions, 2)
	last := res.Instructions[1]
	require.Equal(t, disassembler.KindRaw, last.Kind)
	require.Equal(t, []byte{0xEE, 0xAA, 0xBB}, last.RawBytes)
}

func TestDisassembleFileEndDoesNotStopWalk(t *testing.T) {
	// FileEnd (0xFF) followed by a further instruction: the walk keeps going.
	raw := []byte{0xFF, 0, 0, 0, 0, 1, 2, 3, 4, 0x00}
	res := disassembler.Disassemble(raw, disassembler.ModeDecrypted)
	require.Len(t, res.Instructions, 2)
	require.Equal(t, "FileEnd", res.Instructions[0].Name)
	require.Equal(t, uint8(0x00), res.Instructions[1].Opcode)
}

func TestDisassembleMidInstructionEOF(t *testing.T) {
	// Jump declares a U32 pointer but only two bytes follow.
	raw := []byte{0x06, 0x01, 0x02}
	res := disassembler.Disassemble(raw, disassembler.ModeDecrypted)
	require.Len(t, res.Instructions, 1)
	inst := res.Instructions[0]
	require.Equal(t, disassembler.KindEOF, inst.Kind)
	require.Equal(t, uint8(0x06), inst.Opcode)
	require.Equal(t, raw, inst.RawBytes)
}

func TestDisassembleShowChoiceUnknownOpJump(t *testing.T) {
	// count=1, id=1, text="A\0" terminated, op1..op3=0, opJump=99 (unknown).
	raw := []byte{0x0F, 0x01, 0x01, 0x00, 'A', 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 99}
	res := disassembler.Disassemble(raw, disassembler.ModeDecrypted)
	require.Len(t, res.Instructions, 1)
	choices, ok := res.Instructions[0].Args[1].([]disassembler.Choice)
	require.True(t, ok)
	require.Len(t, choices, 1)
	require.NotEmpty(t, choices[0].Error)
	require.Nil(t, choices[0].Pointer)
	require.Nil(t, choices[0].File)
}

func TestDisassembleCountedArray(t *testing.T) {
	// 0x0C: {U16, U8, CountedArray, U16} -> U16, U8, then a count byte and
	// that many U16 items (the trailing U16 slot is the array's element
	// type, not a separate scalar argument).
	raw := []byte{
		0x0C,
		0x01, 0x00, // U16 = 1
		0x02,       // U8 = 2
		0x02,       // count = 2
		0x03, 0x00, // item 0
		0x04, 0x00, // item 1
	}
	res := disassembler.Disassemble(raw, disassembler.ModeDecrypted)
	require.Len(t, res.Instructions, 1)
	args := res.Instructions[0].Args
	require.Len(t, args, 3)

	arr, ok := args[2].(bytecode.ArrayArg)
	require.True(t, ok)
	require.Len(t, arr.Items, 2)
	require.Equal(t, uint16(3), arr.Items[0].U16)
	require.Equal(t, uint16(4), arr.Items[1].U16)
}

func TestDetectEncryptedVsDecrypted(t *testing.T) {
	plain := []byte{0x06, 0x10, 0x00, 0x00, 0x00, 0x00}
	for i := 0; i < 40; i++ {
		plain = append(plain, 0x06, 0x10, 0x00, 0x00, 0x00)
	}
	encrypted := make([]byte, len(plain))
	for i, b := range plain {
		encrypted[i] = byte(b<<2) | byte(b>>6)
	}

	require.Equal(t, disassembler.ModeDecrypted, disassembler.Detect(plain))
	require.Equal(t, disassembler.ModeEncrypted, disassembler.Detect(encrypted))
}

func TestDetectEmptyBufferDefaultsDecrypted(t *testing.T) {
	require.Equal(t, disassembler.ModeDecrypted, disassembler.Detect(nil))
}

func TestDetectTruncatedTrailingArgumentStillDecides(t *testing.T) {
	// Same well-formed plaintext as above, but cut off mid-argument on the
	// final instruction: the sample should still score on the instructions
	// before the cut rather than collapsing to -1.
	plain := []byte{0x06, 0x10, 0x00, 0x00, 0x00, 0x00}
	for i := 0; i < 40; i++ {
		plain = append(plain, 0x06, 0x10, 0x00, 0x00, 0x00)
	}
	plain = append(plain, 0x06, 0x01, 0x02)

	encrypted := make([]byte, len(plain))
	for i, b := range plain {
		encrypted[i] = byte(b<<2) | byte(b>>6)
	}

	require.Equal(t, disassembler.ModeDecrypted, disassembler.Detect(plain))
	require.Equal(t, disassembler.ModeEncrypted, disassembler.Detect(encrypted))
}

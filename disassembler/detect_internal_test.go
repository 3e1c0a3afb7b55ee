package disassembler

import "testing"

func TestCheckValidityTruncatedTrailingArgumentKeepsCount(t *testing.T) {
	// 0x00 (Sig{}), 0x00 (Sig{}), then 0x02 (Sig{U32}) with only two of its
	// four argument bytes present: the sample ends mid-argument on its last
	// instruction, so the two already-confirmed opcodes should still count.
	data := []byte{0x00, 0x00, 0x02, 0xAA, 0xBB}
	if got := checkValidity(data, 20); got != 2 {
		t.Errorf("checkValidity() = %d, want 2", got)
	}
}

func TestCheckValidityUnknownOpcodeInvalidatesSample(t *testing.T) {
	data := []byte{0x00, 0x03}
	if got := checkValidity(data, 20); got != -1 {
		t.Errorf("checkValidity() = %d, want -1", got)
	}
}

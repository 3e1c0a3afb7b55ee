package disassembler_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advhd-tools/ws2kit/disassembler"
)

func TestRenderTextIncludesDetectCommentOnlyWhenAuto(t *testing.T) {
	raw := []byte{0x00}

	auto := disassembler.Disassemble(raw, disassembler.ModeAuto)
	lines := disassembler.RenderText(auto)
	require.True(t, strings.HasPrefix(lines[0], "; 检测模式:"))

	forced := disassembler.Disassemble(raw, disassembler.ModeDecrypted)
	lines = disassembler.RenderText(forced)
	require.False(t, strings.HasPrefix(lines[0], "; 检测模式:"))
	require.True(t, strings.HasPrefix(lines[0], "; 来源:"))
}

func TestRenderTextInstructionLineShape(t *testing.T) {
	raw := []byte{0x06, 0x10, 0x00, 0x00, 0x00}
	res := disassembler.Disassemble(raw, disassembler.ModeDecrypted)
	lines := disassembler.RenderText(res)

	var instLine string
	for _, l := range lines {
		if strings.Contains(l, "Jump") {
			instLine = l
		}
	}
	require.NotEmpty(t, instLine)
	require.Contains(t, instLine, "loc_00000000: 06 (Jump)")
	require.Contains(t, instLine, `"loc_00000010"`)
}

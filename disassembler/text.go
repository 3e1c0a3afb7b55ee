package disassembler

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// RenderText renders a Result into the disassembly text grammar (§4.5):
// optional detection comment, source comment, size line, then one or two
// lines per instruction.
func RenderText(res *Result) []string {
	var lines []string

	if res.RequestedMode == ModeAuto {
		lines = append(lines, fmt.Sprintf("; 检测模式: %s", res.ResolvedMode))
	}
	if res.ResolvedMode == ModeEncrypted {
		lines = append(lines, "; 来源: 已加密 (Encrypted)")
	} else {
		lines = append(lines, "; 来源: 未加密 (Decrypted)")
	}
	lines = append(lines, fmt.Sprintf("解密后大小: %d", res.DecodedSize))

	for _, inst := range res.Instructions {
		switch inst.Kind {
		case KindNormal:
			argsJSON, err := json.Marshal(inst.Args)
			if err != nil {
				// Args are built exclusively from this package's own
				// json.Marshaler-friendly types; a failure here means a
				// decoder produced something it shouldn't have.
				panic(fmt.Sprintf("disassembler: %v", err))
			}
			lines = append(lines, fmt.Sprintf("loc_%08X: %02X (%s) %s", inst.Offset, inst.Opcode, inst.Name, argsJSON))
		case KindRaw:
			lines = append(lines, fmt.Sprintf("loc_%08X: RAW %s", inst.Offset, hex.EncodeToString(inst.RawBytes)))
		case KindEOF:
			lines = append(lines, fmt.Sprintf("loc_%08X: RAW %s", inst.Offset, hex.EncodeToString(inst.RawBytes)))
			lines = append(lines, fmt.Sprintf("loc_%08X: 在Opcode %02X 处遇到EOF", inst.Offset, inst.Opcode))
		}
	}
	return lines
}

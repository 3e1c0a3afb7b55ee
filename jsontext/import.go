package jsontext

import (
	"fmt"
	"os"
	"strings"

	"github.com/advhd-tools/ws2kit/assembler"
	"github.com/advhd-tools/ws2kit/bytecode"
	"github.com/advhd-tools/ws2kit/disassembler"
)

// ErrModeMismatch is raised by a directory-batch caller (cmd/ws2json's
// import subcommand) when one of the WS2/JSON inputs is a directory and
// the other isn't. Import itself always operates on a single buffer pair.
var ErrModeMismatch = fmt.Errorf("jsontext: input WS2 and JSON must both be single files or both be directories")

// Import reimplants entries into origRaw per §4.7.2: disassemble the
// original, walk its instructions patching DisplayMessage/ShowChoice text
// and retroactively patching SetDisplayName when a speaker changes,
// re-serialise to text, assemble, and re-apply the original obfuscation
// state. outputPath names where the caller intends to write the result;
// Import uses it only to place and clean up its transient text file, per
// §5/§6's persisted-state contract — it does not write outputPath itself.
func Import(origRaw []byte, entries []Entry, outputPath string, mode disassembler.Mode, sink bytecode.Sink) ([]byte, error) {
	res := disassembler.Disassemble(origRaw, mode)
	instructions := res.Instructions

	lastSetNameIdx := -1
	currentNameRaw := ""
	jsonCursor := 0

	for i := range instructions {
		inst := &instructions[i]
		if inst.Kind != disassembler.KindNormal {
			continue
		}
		switch inst.Opcode {
		case 0x15: // SetDisplayName
			name, ok := stringArg(inst.Args, 0)
			if !ok {
				continue
			}
			lastSetNameIdx = i
			currentNameRaw = name

		case 0x14: // DisplayMessage
			origMsg, ok := stringArg(inst.Args, 3)
			if !ok {
				continue
			}
			origText, origSuffix := stripControlSuffix(origMsg)
			if origText == "" {
				continue
			}
			if jsonCursor >= len(entries) {
				continue
			}
			entry := entries[jsonCursor]
			setStringArg(inst.Args, 3, entry.Message+origSuffix)

			// entry.Name is nil when the edited JSON omitted the field
			// entirely (leave the speaker alone) and non-nil, possibly
			// pointing at "", when it was set explicitly (retroactively
			// rename, or clear, the speaker).
			if entry.Name != nil && lastSetNameIdx != -1 {
				targetName := *entry.Name
				prefix := ""
				if strings.HasPrefix(currentNameRaw, "%LC") {
					prefix = "%LC"
				}
				if prefix+targetName != currentNameRaw {
					newRaw := prefix + targetName
					setStringArg(instructions[lastSetNameIdx].Args, 0, newRaw)
					currentNameRaw = newRaw
				}
			}
			jsonCursor++

		case 0x0F: // ShowChoice
			if len(inst.Args) < 2 {
				continue
			}
			choices, ok := inst.Args[1].([]disassembler.Choice)
			if !ok {
				continue
			}
			for ci := range choices {
				if jsonCursor >= len(entries) {
					break
				}
				choices[ci].Text = bytecode.StrArg{Text: entries[jsonCursor].Message, WellFormed: true, Terminated: true}
				jsonCursor++
			}
			inst.Args[1] = choices
		}
	}

	mutated := &disassembler.Result{
		RequestedMode: res.RequestedMode,
		ResolvedMode:  res.ResolvedMode,
		DecodedSize:   res.DecodedSize,
		Instructions:  instructions,
	}
	text := strings.Join(disassembler.RenderText(mutated), "\n") + "\n"

	tempPath := outputPath + ".temp.asm"
	if err := os.WriteFile(tempPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("jsontext: writing transient source: %w", err)
	}
	defer os.Remove(tempPath)

	assembled, err := assembler.Assemble(text, sink)
	if err != nil {
		return nil, fmt.Errorf("jsontext: assembling patched source: %w", err)
	}

	if res.ResolvedMode == disassembler.ModeEncrypted {
		return bytecode.Encode(assembled), nil
	}
	return assembled, nil
}

// setStringArg overwrites args[idx] with a freshly-authored, well-formed
// string argument.
func setStringArg(args []any, idx int, s string) {
	args[idx] = bytecode.Arg{Tag: bytecode.Str, Str: bytecode.StrArg{Text: s, WellFormed: true, Terminated: true}}
}

package jsontext

import (
	"regexp"
	"strings"

	"github.com/advhd-tools/ws2kit/bytecode"
	"github.com/advhd-tools/ws2kit/disassembler"
)

// controlCodeSuffix matches the longest trailing run of %K and/or %P
// control codes on a dialogue string.
var controlCodeSuffix = regexp.MustCompile(`(%K|%P)+$`)

// stripControlSuffix splits s into its text and its trailing %K/%P run (the
// run may be empty).
func stripControlSuffix(s string) (text, suffix string) {
	loc := controlCodeSuffix.FindStringIndex(s)
	if loc == nil {
		return s, ""
	}
	return s[:loc[0]], s[loc[0]:]
}

// Extract disassembles raw and walks it per §4.7.1, producing the ordered
// dialogue entry list a translator edits.
func Extract(raw []byte, mode disassembler.Mode) []Entry {
	res := disassembler.Disassemble(raw, mode)

	var entries []Entry
	var currentNameClean string
	var hasName bool

	for _, inst := range res.Instructions {
		if inst.Kind != disassembler.KindNormal {
			continue
		}
		switch inst.Opcode {
		case 0x15: // SetDisplayName
			name, ok := stringArg(inst.Args, 0)
			if !ok {
				continue
			}
			if name == "" {
				currentNameClean, hasName = "", false
				continue
			}
			currentNameClean = strings.TrimPrefix(name, "%LC")
			hasName = true

		case 0x14: // DisplayMessage
			msg, ok := stringArg(inst.Args, 3)
			if !ok {
				continue
			}
			text, _ := stripControlSuffix(msg)
			if text == "" {
				continue
			}
			entry := Entry{Message: text}
			if hasName {
				name := currentNameClean
				entry.Name = &name
			}
			entries = append(entries, entry)

		case 0x0F: // ShowChoice
			if len(inst.Args) < 2 {
				continue
			}
			choices, ok := inst.Args[1].([]disassembler.Choice)
			if !ok {
				continue
			}
			for _, c := range choices {
				entries = append(entries, Entry{Message: c.Text.Text})
			}
		}
	}
	return entries
}

// stringArg fetches args[idx] as a well-formed, terminated decoded string,
// or reports false if the slot is missing, not a Str argument, not
// well-formed, or (per the final string in a truncated file lacking its
// terminator) not terminated — matching bytecode.StrArg.MarshalJSON's own
// plain-string-vs-object rule.
func stringArg(args []any, idx int) (string, bool) {
	if idx >= len(args) {
		return "", false
	}
	a, ok := args[idx].(bytecode.Arg)
	if !ok || a.Tag != bytecode.Str || !a.Str.WellFormed || !a.Str.Terminated {
		return "", false
	}
	return a.Str.Text, true
}

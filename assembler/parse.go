package assembler

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// parseLines scans disassembly text into an ordered Node list and a label
// map, per §4.6 pass 1. Textual loc_ offsets are hints only; the offsets
// recorded here are the running output cursor as each node is laid out,
// authoritative for pass 2.
func parseLines(text string) ([]*Node, map[string]uint32, error) {
	labels := make(map[string]uint32)
	var nodes []*Node

	var offset uint32
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		// The informational "解密后大小: <N>" size line carries no bytes.
		if strings.HasPrefix(line, "解密后大小:") {
			continue
		}

		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
			labels[strings.TrimSuffix(line, ":")] = offset
			continue
		}

		colon := strings.Index(line, ":")
		if colon == -1 {
			continue
		}
		prefix := strings.TrimSpace(line[:colon])
		rest := strings.TrimSpace(line[colon+1:])
		if strings.HasPrefix(prefix, "loc_") {
			labels[prefix] = offset
		}
		if rest == "" {
			continue
		}

		fields := strings.SplitN(rest, " ", 2)
		opHex := strings.TrimSpace(fields[0])

		if opHex == "RAW" {
			if len(fields) < 2 {
				continue
			}
			raw, err := hex.DecodeString(strings.TrimSpace(fields[1]))
			if err != nil {
				return nil, nil, fmt.Errorf("%w: bad RAW hex at offset %d: %v", ErrMalformedLine, offset, err)
			}
			nodes = append(nodes, &Node{Kind: NodeRaw, Offset: offset, Raw: raw})
			offset += uint32(len(raw))
			continue
		}

		if len(opHex) != 2 || !isHexByte(opHex) {
			continue
		}
		opVal, err := strconv.ParseUint(opHex, 16, 8)
		if err != nil {
			continue
		}
		opByte := uint8(opVal)

		argsStr := ""
		if len(fields) > 1 {
			argsStr = strings.TrimSpace(fields[1])
			if strings.HasPrefix(argsStr, "(") {
				if end := strings.Index(argsStr, ")"); end != -1 {
					argsStr = strings.TrimSpace(argsStr[end+1:])
				}
			}
		}

		var args []json.RawMessage
		if argsStr != "" {
			var raw []json.RawMessage
			if err := json.Unmarshal([]byte(argsStr), &raw); err != nil {
				return nil, nil, fmt.Errorf("%w: bad argument JSON at offset %d: %v", ErrMalformedLine, offset, err)
			}
			args = raw
		}

		node := &Node{Kind: NodeInstruction, Offset: offset, Opcode: opByte, Args: args}
		size, err := measureInstruction(opByte, args)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: opcode %02X at offset %d: %w", ErrMalformedLine, opByte, offset, err)
		}
		nodes = append(nodes, node)
		offset += uint32(size)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("assembler: scanning source: %w", err)
	}
	return nodes, labels, nil
}

func isHexByte(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// Package assembler turns disassembly text back into WS2 bytecode,
// resolving loc_ labels to their instructions' final offsets in a second
// pass.
package assembler

import "encoding/json"

// NodeKind distinguishes the two forms of payload a parsed line can carry.
type NodeKind int

const (
	// NodeRaw is a "RAW <hex>" line: literal bytes, no opcode.
	NodeRaw NodeKind = iota
	// NodeInstruction is an "OO (NAME) <json-args>" line.
	NodeInstruction
)

// Node is one instruction or raw-byte run recorded during pass 1, with
// enough information for pass 2 to re-encode it once labels are known.
type Node struct {
	Kind   NodeKind
	Offset uint32

	// Opcode and Args are set for NodeInstruction.
	Opcode uint8
	Args   []json.RawMessage

	// Raw holds the literal bytes for NodeRaw.
	Raw []byte
}

// Package disassembler walks a decoded WS2 byte buffer into a sequence of
// typed instructions, auto-detecting whether the input needs the byte-rotate
// codec applied first.
package disassembler

// Kind distinguishes the three shapes a disassembled line can take: a
// normal decoded instruction, an unrecoverable tail the walker gave up on,
// or a mid-instruction EOF.
type Kind int

const (
	// KindNormal is a fully decoded instruction.
	KindNormal Kind = iota
	// KindRaw marks an undecodable tail: the opcode byte had no table entry
	// and wasn't one of the specially-handled ones. RawBytes holds
	// everything from Offset to the end of the buffer, and it is always
	// the last Instruction in a Result.
	KindRaw
	// KindEOF marks an opcode whose argument list ran past the end of the
	// buffer partway through decoding. It is always the last Instruction
	// in a Result.
	KindEOF
)

// Instruction is one decoded step of a disassembly walk.
type Instruction struct {
	Offset uint32
	Kind   Kind

	// Opcode and Name are set for KindNormal and KindEOF.
	Opcode uint8
	Name   string

	// Args holds the decoded arguments for KindNormal, in JSON-argument
	// order. For generic table-driven opcodes an element is a bytecode.Arg,
	// a bytecode.ArrayArg (CountedArray) or nil (Empty slot); the special
	// decoders in special.go produce plain integers, floats, pointer values
	// (uint32 0 or a loc_ string) and []Choice. Every element must be a
	// valid encoding/json value on its own.
	Args []any

	// RawBytes holds the undecoded tail for KindRaw and KindEOF.
	RawBytes []byte
}

// Mode names the byte-rotate codec state a buffer was disassembled under.
type Mode string

const (
	ModeAuto      Mode = "auto"
	ModeEncrypted Mode = "encrypted"
	ModeDecrypted Mode = "decrypted"
)

// Result is the outcome of disassembling one file: the resolved mode, the
// size of the buffer actually walked (post-decode), and the instruction
// stream.
type Result struct {
	RequestedMode Mode
	ResolvedMode  Mode
	DecodedSize   int
	Instructions  []Instruction
}

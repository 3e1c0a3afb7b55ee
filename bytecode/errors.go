package bytecode

import "errors"

// ErrEOF is returned by Reader methods when a read would run past the end
// of the buffer. Disassembly treats it as a recoverable sentinel condition;
// assembly treats any error as fatal.
var ErrEOF = errors.New("bytecode: unexpected end of buffer")

// ErrUnknownOpcode names the condition of an opcode byte that has no entry
// in SIG and is not one of the specially-handled opcodes. No function in
// this module returns it: Disassemble records such a byte as a KindRaw tail,
// and the assembler reports its own assembler.ErrUnknownOpcode.
var ErrUnknownOpcode = errors.New("bytecode: unknown opcode")

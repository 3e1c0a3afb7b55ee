package assembler

import "errors"

// ErrMalformedLine is wrapped with line context whenever a source line
// can't be parsed into a Node once it has committed to being an
// instruction or RAW line (blank lines, comments, and lines without a
// colon are silently skipped rather than erroring — this mirrors the
// source's lenient pass-1 scan).
var ErrMalformedLine = errors.New("assembler: malformed source line")

// ErrUnknownOpcode is returned when an instruction line's opcode has no
// entry in bytecode.Sig and isn't one of the specially-handled opcodes.
var ErrUnknownOpcode = errors.New("assembler: unknown opcode")

// ErrArgMismatch is returned when an instruction's JSON argument array
// doesn't match its opcode's signature shape.
var ErrArgMismatch = errors.New("assembler: argument count or shape mismatch")

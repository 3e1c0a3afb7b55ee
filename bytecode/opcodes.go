// Package bytecode implements the WS2 obfuscation codec, the static
// opcode tables, and typed little-endian binary reading/writing shared
// by the disassembler, assembler, and auto-detector.
package bytecode

// Name maps an opcode to the descriptive name used in disassembly
// commentary. Unknown opcodes are rendered by the caller as UnkXX.
// Transcribed verbatim from the original tool's OPCODE_NAMES table; this
// is the on-disk contract and must not be reordered or "cleaned up".
var Name = map[uint8]string{
	0x01: "Condition",
	0x02: "Jump2",
	0x04: "RunFile",
	0x05: "Unk05",
	0x06: "Jump",
	0x07: "NextFile",
	0x08: "Unk08",
	0x09: "LayerConfig",
	0x0A: "Unk0A",
	0x0B: "SetFlag",
	0x0D: "Unk0D",
	0x0E: "Unk0E",
	0x0F: "ShowChoice",
	0x11: "SetTimer",
	0x12: "StartTimer",
	0x13: "Unk13",
	0x14: "DisplayMessage",
	0x15: "SetDisplayName",
	0x16: "Unk16",
	0x17: "Unk17",
	0x18: "AddMessageToLog",
	0x19: "Unk19",
	0x1A: "OpenTitle",
	0x1B: "Unk1B",
	0x1C: "ExecuteFunction",
	0x1D: "Unk1D",
	0x1E: "PlayMusic",
	0x1F: "StopMusic",
	0x20: "MusicUnk1",
	0x28: "SoundEffect",
	0x29: "SoundUnk1",
	0x2A: "SoundUnk2",
	0x2E: "CharMessageStart",
	0x32: "VariableUnk32",
	0x33: "SetBackground",
	0x34: "UsePnaPackage",
	0x35: "PlayMovie",
	0x36: "PrepareBackgroundArea",
	0x37: "ClearLayer",
	0x38: "VariableUnk3",
	0x39: "DisplayCharacterImage",
	0x3A: "UnkBackground2",
	0x3B: "BackgroundMessage",
	0x3D: "Unk3D",
	0x3E: "Unk3E",
	0x3F: "LayersList",
	0x40: "SetMask",
	0x41: "UnkBackground3",
	0x42: "Unk42",
	0x43: "Unk43",
	0x44: "Effect44",
	0x45: "DragBackground",
	0x46: "MoveBackground",
	0x47: "Effect1",
	0x48: "Effect2",
	0x4A: "Unk4A",
	0x51: "VariableUnk51",
	0x52: "VariableUnk2",
	0x53: "VariableUnk4",
	0x56: "RainStart",
	0x57: "UnkBackground1",
	0x58: "Effect3",
	0x5B: "InitKeyName",
	0x5C: "RainEnd",
	0x64: "Unk64",
	0x65: "C65",
	0x67: "Unk67",
	0x68: "Unk68",
	0x6E: "SetVariable",
	0x6F: "VariableUnk",
	0x73: "SetPnaFile",
	0x75: "Unk75",
	0x78: "Unk78",
	0x7A: "Unk7A",
	0x7B: "Unk7B",
	0x84: "Unk84",
	0x97: "Unk97",
	0xFB: "UnkFB",
	0xFC: "UnkFC",
	0xFD: "UnkFD",
	0xFF: "FileEnd",
}

// Sig maps an opcode to its argument-type signature. Opcodes absent here
// are unknown to the disassembler unless specially handled (see package
// disassembler's decodeSpecial). Transcribed verbatim from the original
// tool's OPCODES table. A handful of entries (1, 2, 6, 15, 230) are
// shadowed by special-case dispatch and never actually consulted, but
// are kept for fidelity with the source contract.
var Sig = map[uint8][]ArgTag{
	0x00: {},
	0x01: {U8, U16, F32, U32, U32},
	0x02: {U32},
	0x04: {Str, Empty},
	0x05: {},
	0x06: {U32},
	0x07: {Str, Empty},
	0x08: {U8},
	0x09: {U8, U16, F32},
	0x0A: {U16, F32},
	0x0B: {U16, U8},
	0x0C: {U16, U8, CountedArray, U16},
	0x0D: {U16, U16, F32},
	0x0E: {U16, U16, U8},
	0x0F: {U8},
	0x11: {Str, Empty, U8, F32},
	0x12: {Str, Empty, U8, Str, Empty},
	0x13: {},
	0x14: {U32, Str, Empty, Str, Empty, U8},
	0x15: {Str, Empty, U8},
	0x16: {U8, U8},
	0x17: {},
	0x18: {U8, Str, Empty},
	0x19: {},
	0x1A: {Str, Empty},
	0x1B: {U8},
	0x1C: {Str, Empty, Str, Empty, U16, U8},
	0x1D: {U16},
	0x1E: {Str, Empty, Str, Empty, F32, F32, U16, U16, U8, F32},
	0x1F: {Str, Empty, F32},
	0x20: {Str, Empty, F32, U16},
	0x21: {Str, Empty, U16, U16, U16},
	0x22: {Str, Empty, U8},
	0x28: {Str, Empty, Str, Empty, F32, F32, U16, U16, U8, U16, U16, U8, F32},
	0x29: {Str, Empty, F32},
	0x2A: {Str, Empty, F32, U16},
	0x2B: {Str, Empty},
	0x2C: {Str, Empty},
	0x2D: {Str, Empty, U8},
	0x2E: {},
	0x2F: {Str, Empty, U16, F32},
	0x30: {Str, Empty, F32},
	0x32: {Str, Empty},
	0x33: {Str, Empty, Str, Empty, U8, U8},
	0x34: {Str, Empty, Str, Empty, U8, U8},
	0x35: {Str, Empty, Str, Empty, U8, U8, U8},
	0x36: {Str, Empty, F32, F32, F32, F32, F32, F32, F32, U8, U8},
	0x37: {Str, Empty},
	0x38: {Str, Empty, U8},
	0x39: {Str, Empty, U8, U8, CountedArray, U16},
	0x3A: {Str, Empty, U8, U8},
	0x3B: {Str, Empty, Str, Empty, U16, U16, U16, F32, F32, F32, F32, F32, F32, F32, F32},
	0x3C: {Str, Empty},
	0x3D: {U16},
	0x3E: {},
	0x3F: {CountedArray, Str},
	0x40: {Str, Empty, Str, Empty, U8},
	0x41: {Str, Empty, U8},
	0x42: {Str, Empty, U16},
	0x43: {Str, Empty},
	0x44: {Str, Empty, Str, Empty, U8},
	0x45: {Str, Empty, U16, F32, F32, F32, F32},
	0x46: {Str, Empty, U16, U8, F32, F32, F32, F32},
	0x47: {Str, Empty, Str, Empty, U16, U8, U8, F32, F32, F32, F32, F32, U16, F32},
	0x48: {Str, Empty, Str, Empty, U16, U8, U8, Str, Empty},
	0x49: {Str, Empty, Str, Empty, Str, Empty},
	0x4A: {Str, Empty, Str, Empty},
	0x4B: {Str, Empty, U16, U16, F32, F32, F32, F32},
	0x4C: {Str, Empty, U16, U16, U8, F32, F32, F32, F32},
	0x4D: {Str, Empty, Str, Empty, U16, U16, U8, U8, F32, F32, F32, F32, F32, U16, F32},
	0x4E: {Str, Empty, Str, Empty, U16, U16, U8, U8, Str, Empty},
	0x4F: {Str, Empty, Str, Empty, U16, Str, Empty},
	0x50: {Str, Empty, Str, Empty, U16},
	0x51: {Str, Empty, Str, Empty, U16, F32, U8},
	0x52: {Str, Empty, Str, Empty, F32, U16, F32, U8, Str, Empty},
	0x53: {Str, Empty, Str, Empty},
	0x54: {Str, Empty, Str, Empty, Str, Empty},
	0x55: {Str, Empty, Str, Empty},
	0x56: {Str, Empty, U8, U16, F32, F32, F32, F32, F32, F32, F32, F32, F32, F32, F32, U8, F32, F32, F32, F32, U8, U16, Str, Empty, U16, Str, Empty, Str, Empty, F32},
	0x57: {Str, Empty, U16},
	0x58: {Str, Empty, Str, Empty},
	0x59: {Str, Empty, Str, Empty, U16},
	0x5A: {Str, Empty, CountedArray, U16},
	0x5B: {Str, Empty, U16, U8},
	0x5C: {Str, Empty},
	0x5D: {Str, Empty, Str, Empty, U8},
	0x5E: {Str, Empty, F32, F32},
	0x5F: {Str, Empty},
	0x60: {U16, U16, U16, U16},
	0x61: {U8, F32, F32, F32, F32},
	0x62: {Str, Empty},
	0x63: {Str, Empty, U8},
	0x64: {U8},
	0x65: {U16, U8, F32, F32, U8, Str, Empty},
	0x66: {Str, Empty},
	0x67: {U8, U8, U16, F32, F32, F32, F32, F32, U8},
	0x68: {U8},
	0x69: {Str, Empty, U8, U8, F32, F32, F32, F32, F32, U16, F32},
	0x6A: {Str, Empty, U16, U8, U8, Str, Empty},
	0x6B: {Str, Empty, Str, Empty},
	0x6C: {Str, Empty, F32, F32},
	0x6D: {Str, Empty, F32, F32, U8, U8, U8},
	0x6E: {Str, Empty, Str, Empty},
	0x6F: {Str, Empty},
	0x70: {Str, Empty, U16},
	0x71: {},
	0x72: {Str, Empty, U16, U16, Str, Empty},
	0x73: {Str, Empty, Str, Empty, U16},
	0x74: {Str, Empty, Str, Empty},
	0x75: {Str, Empty, Str, Empty},
	0x78: {Str, Empty, Str, Empty, U8, U8, U8},
	0x79: {Str, Empty, Str, Empty, F32},
	0x7A: {Str, Empty, Str, Empty, F32, U8, U8, Str, Empty},
	0x7B: {Str, Empty, Str, Empty},
	0x7C: {Str, Empty, Str, Empty, F32},
	0x7D: {Str, Empty, F32},
	0x7E: {Str, Empty},
	0x7F: {Str, Empty, F32, F32, F32, F32, F32},
	0x80: {Str, Empty},
	0x81: {Str, Empty, U8, Str, Empty, F32, F32, U8},
	0x82: {Str, Empty, Str, Empty, F32},
	0x83: {Str, Empty, Str, Empty, F32, F32},
	0x84: {Str, Empty, Str, Empty, Str, Empty, F32, U16, F32},
	0x85: {Str, Empty, Str, Empty, U8, F32},
	0x86: {Str, Empty, F32, F32, F32},
	0x87: {Str, Empty, F32},
	0x88: {Str, Empty, Str, Empty, Str, Empty, F32, U16, F32},
	0x89: {Str, Empty, F32, F32},
	0x8A: {Str, Empty, Str, Empty, U8, U8, U8},
	0x8C: {Str, Empty, Str, Empty, Str, Empty, U8, U8, Str, Empty, Str, Empty},
	0x8D: {U32, Str, Empty, Str, Empty, U8, U8, U16, Str, Empty},
	0x8E: {U32, Str, Empty, Str, Empty, U8, U8, U16, Str, Empty},
	0x8F: {Str, Empty, Str, Empty},
	0x90: {Str, Empty},
	0x91: {},
	0x96: {U16, F32, F32, F32, F32},
	0x97: {U16, U8, F32, F32, F32, F32},
	0x98: {Str, Empty, U16, U8, U8, F32, F32, F32, F32, F32, U16, F32},
	0x99: {Str, Empty, U16, U8, U8, Str, Empty},
	0x9A: {},
	0x9B: {Str, Empty},
	0x9C: {Str, Empty, Str, Empty},
	0x9D: {Str, Empty},
	0x9E: {Str, Empty, U8},
	0x9F: {Str, Empty, U8},
	0xA0: {F32, F32, F32, F32},
	0xA1: {},
	0xA5: {Str, Empty, F32, F32, Str, Empty, Str, Empty, F32, U8, U8},
	0xA6: {Str, Empty, U16, U16, U8, U8, F32, F32, F32, F32, F32, U16, F32},
	0xA7: {Str, Empty, U16, U16, U8, U8, Str, Empty},
	0xA8: {Str, Empty, Str, Empty, U16, U16, U8, U8, F32, F32, F32, F32, F32, U16, F32},
	0xA9: {Str, Empty, Str, Empty, U16, U16, U8, U8, Str, Empty},
	0xAA: {U16, U8, U8, F32, F32, F32, F32, F32, U16, F32},
	0xAB: {U16, U8, U8},
	0xAC: {},
	0xAD: {U16},
	0xAE: {Str, Empty, U16},
	0xAF: {U16, U16, F32, F32, F32, F32},
	0xB0: {Str, Empty, U16, U16, F32, F32, F32, F32},
	0xB4: {Str, Empty, Str, Empty, U8, U8},
	0xB5: {Str, Empty, Str, Empty, U8, U8, F32, F32, F32, U8, U8, Str, Empty},
	0xB6: {Str, Empty, F32},
	0xB7: {Str, Empty, F32},
	0xB8: {Str, Empty},
	0xB9: {Str, Empty, Str, Empty},
	0xBA: {Str, Empty, Str, Empty, Str, Empty},
	0xBB: {Str, Empty, U8},
	0xBE: {Str, Empty, Str, Empty, U8, U8},
	0xBF: {Str, Empty, Str, Empty},
	0xC0: {Str, Empty, Str, Empty, U8, U8, U8, U8, Str, Empty},
	0xC1: {Str, Empty},
	0xC2: {Str, Empty, Str, Empty, U16, U16, U8, U8, U8},
	0xC3: {Str, Empty, U16, U16, Str, Empty},
	0xC8: {},
	0xC9: {Str, Empty, Str, Empty, U16, U16, U16, U16},
	0xCA: {Str, Empty, Str, Empty},
	0xCB: {Str, Empty, U8, U8},
	0xCC: {},
	0xCD: {Str, Empty, Str, Empty, Str, Empty, Str, Empty, Str, Empty, F32, U8},
	0xCE: {U8},
	0xCF: {Str, Empty, Str, Empty, F32},
	0xD0: {Str, Empty, U16},
	0xD1: {Str, Empty, U16},
	0xD2: {Str, Empty},
	0xD3: {Str, Empty},
	0xD4: {Str, Empty, U16, U16},
	0xD5: {Str, Empty, F32},
	0xD6: {Str, Empty, Str, Empty},
	0xDC: {Str, Empty, Str, Empty, U8, U8, F32, F32, F32, U8},
	0xDD: {Str, Empty, F32, F32, F32, U8, F32, U8, Str, Empty},
	0xDE: {Str, Empty, U16, F32, F32, F32, U8, F32, U8, Str, Empty},
	0xDF: {Str, Empty},
	0xE0: {Str, Empty, U16},
	0xE6: {U32, U32},
	0xE7: {},
	0xE8: {},
	0xE9: {U8},
	0xF0: {U8},
	0xF8: {},
	0xF9: {U8, Str, Empty},
	0xFA: {},
	0xFB: {U8},
	0xFC: {U16},
	0xFD: {},
	0xFE: {Str, Empty},
}

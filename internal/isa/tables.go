// Package isa holds the bidirectional mnemonic/register/type tables shared
// by the assembler and the VM, plus the fixed-width word codec built on top
// of them.
package isa

// Unknown is the all-ones sentinel an unrecognized mnemonic, register, or
// type token encodes to. The assembler never rejects a token; the VM faults
// on it at decode time instead.
const Unknown uint32 = 0xFFFFFFFF

// Opcode identifies one of the 22 instructions. Code 0x13 is intentionally
// unused — a gap inherited from the original instruction set.
type Opcode uint32

const (
	NOP Opcode = iota
	MOVL
	STMOVL
	ADDL
	SUBL
	IMUL
	IDIVL
	ANDL
	ORL
	XORL
	SHRW
	SHLW
	CMPL
	JE
	JL
	JG
	JLE
	JGE
	JMP
	_reservedOpcode // 0x13, never assigned a mnemonic
	PUSHL
	POPL
	INTL
)

// Register names an entry in the 8-register file.
type Register uint32

const (
	RegNOP Register = iota
	RegA
	RegB
	RegC
	RegD
	RegERR
	RegSTACK
	RegBASE
)

// Type is an addressing-mode code: how the raw val field of an instruction
// becomes an operand value.
type Type uint32

const (
	TypeNOP Type = iota
	TypeINTEGER
	TypeA
	TypeB
	TypeC
	TypeD
	TypeERR
	TypeSTACK
	TypeBASE
)

var opcodeNames = map[string]Opcode{
	"nop":    NOP,
	"movl":   MOVL,
	"stmovl": STMOVL,
	"addl":   ADDL,
	"subl":   SUBL,
	"imul":   IMUL,
	"idivl":  IDIVL,
	"andl":   ANDL,
	"orl":    ORL,
	"xorl":   XORL,
	"shrw":   SHRW,
	"shlw":   SHLW,
	"cmpl":   CMPL,
	"je":     JE,
	"jl":     JL,
	"jg":     JG,
	"jle":    JLE,
	"jge":    JGE,
	"jmp":    JMP,
	"pushl":  PUSHL,
	"popl":   POPL,
	"intl":   INTL,
}

var opcodeMnemonics = reverseOpcodes(opcodeNames)

var registerNames = map[string]Register{
	"nop":   RegNOP,
	"a":     RegA,
	"b":     RegB,
	"c":     RegC,
	"d":     RegD,
	"err":   RegERR,
	"stack": RegSTACK,
	"base":  RegBASE,
}

var registerMnemonics = reverseRegisters(registerNames)

var typeNames = map[string]Type{
	"nop":   TypeNOP,
	"int":   TypeINTEGER,
	"a":     TypeA,
	"b":     TypeB,
	"c":     TypeC,
	"d":     TypeD,
	"err":   TypeERR,
	"stack": TypeSTACK,
	"base":  TypeBASE,
}

var typeMnemonics = reverseTypes(typeNames)

func reverseOpcodes(m map[string]Opcode) map[Opcode]string {
	out := make(map[Opcode]string, len(m))
	for name, code := range m {
		out[code] = name
	}
	return out
}

func reverseRegisters(m map[string]Register) map[Register]string {
	out := make(map[Register]string, len(m))
	for name, code := range m {
		out[code] = name
	}
	return out
}

func reverseTypes(m map[string]Type) map[Type]string {
	out := make(map[Type]string, len(m))
	for name, code := range m {
		out[code] = name
	}
	return out
}

// OpcodeFromString encodes a mnemonic token into its numeric code, or
// Unknown if the token isn't recognized.
func OpcodeFromString(s string) uint32 {
	if code, ok := opcodeNames[s]; ok {
		return uint32(code)
	}
	return Unknown
}

// OpcodeToString returns the mnemonic for a numeric opcode, or false if the
// code does not name an instruction (including the reserved gap at 0x13).
func OpcodeToString(code uint32) (string, bool) {
	name, ok := opcodeMnemonics[Opcode(code)]
	return name, ok
}

// RegisterFromString encodes a register token into its numeric code, or
// Unknown if the token isn't recognized.
func RegisterFromString(s string) uint32 {
	if code, ok := registerNames[s]; ok {
		return uint32(code)
	}
	return Unknown
}

// RegisterToString returns the register name for a numeric code, or false
// if the code does not name a register.
func RegisterToString(code uint32) (string, bool) {
	name, ok := registerMnemonics[Register(code)]
	return name, ok
}

// TypeFromString encodes a type token into its numeric code, or Unknown if
// the token isn't recognized.
func TypeFromString(s string) uint32 {
	if code, ok := typeNames[s]; ok {
		return uint32(code)
	}
	return Unknown
}

// TypeToString returns the type name for a numeric code, or false if the
// code does not name a type.
func TypeToString(code uint32) (string, bool) {
	name, ok := typeMnemonics[Type(code)]
	return name, ok
}

// SegmentationFault is the fault code the VM records in ERR when decode
// fails to resolve an operand register or type.
const SegmentationFault uint32 = 0x15B3

// HeaderMagic is the first word of every disk image header record. Its
// only documented meaning is "this image has been flashed".
const HeaderMagic uint32 = 0x1

// Preset stack sizes, named after the constants in the original C source.
const (
	EightBitMaxMem   = 256
	SixteenBitMaxMem = 65535
)

package isa

import "fmt"

// Statement renders a Record back into its four source tokens, the
// reverse of EncodeStatement. An unrecognized code is rendered as a bare
// "0x%x" token rather than failing — disassembly of a hand-crafted or
// corrupt record should never panic, only produce an unfamiliar mnemonic.
func (r Record) Statement() (opcode, reg, typ string, val int64) {
	opcode = codeToToken(r.Opcode, OpcodeToString)
	reg = codeToToken(r.Reg, RegisterToString)
	typ = codeToToken(r.Type, TypeToString)
	val = int64(int32(r.Val))
	return
}

func codeToToken(code uint32, lookup func(uint32) (string, bool)) string {
	if name, ok := lookup(code); ok {
		return name
	}
	return fmt.Sprintf("0x%x", code)
}

// Disassemble renders a Record as one assembly source line, in the same
// four-token-whitespace-separated shape the assembler consumes.
func Disassemble(r Record) string {
	opcode, reg, typ, val := r.Statement()
	return fmt.Sprintf("%s %s %s %d", opcode, reg, typ, val)
}

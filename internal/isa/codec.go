package isa

// Record is a decoded instruction record: the 4-word tuple written to disk
// and read back by the loader. Val carries whatever value the assembler saw
// on the line, two's-complement wrapped into 32 bits.
type Record struct {
	Opcode uint32
	Reg    uint32
	Type   uint32
	Val    uint32
}

// EncodeStatement turns the four source tokens of one assembly statement
// into a Record. Unrecognized mnemonic/register/type tokens encode to
// Unknown; the assembler does not reject them — the VM faults on them at
// decode time instead.
func EncodeStatement(opcode, reg, typ string, val int64) Record {
	return Record{
		Opcode: OpcodeFromString(opcode),
		Reg:    RegisterFromString(reg),
		Type:   TypeFromString(typ),
		Val:    uint32(val),
	}
}

// Header builds the disk image's header record: [0x1, numLines, 0, 0].
func Header(numLines uint32) Record {
	return Record{Opcode: HeaderMagic, Reg: numLines, Type: 0, Val: 0}
}

// Words flattens a Record into its four on-disk words, in field order.
func (r Record) Words() [4]uint32 {
	return [4]uint32{r.Opcode, r.Reg, r.Type, r.Val}
}

// RecordFromWords rebuilds a Record from four on-disk words.
func RecordFromWords(w [4]uint32) Record {
	return Record{Opcode: w[0], Reg: w[1], Type: w[2], Val: w[3]}
}

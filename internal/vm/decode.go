package vm

import "github.com/suncloudsmoon/Dirt-Emulator/internal/isa"

// resolveRegister maps a raw register code to an index into m.regs. An
// unrecognized code is a decode fault: ERR is set to SegmentationFault and
// the returned index points at the write-ignore fault sink rather than at
// ERR itself (spec.md §9 Open Question 2; see faultSinkIndex).
//
// NOP (code 0) is read-as-zero scratch: writes to it are legal but never
// persist (spec.md §3). It resolves to its own discard slot, freshly zeroed
// on every resolve, so a read-modify-write instruction targeting NOP always
// reads 0 and its write is forgotten by the next instruction.
func (m *VM) resolveRegister(code uint32) int {
	if code == uint32(isa.RegNOP) {
		m.regs[nopSinkIndex] = 0
		return nopSinkIndex
	}
	if code <= uint32(isa.RegBASE) {
		return int(code)
	}
	m.faultSegv()
	return faultSinkIndex
}

// resolveValue computes an operand's numeric value per spec.md §4.5's type
// table. Register-addressed types are additive: type A_REG with val=4
// yields A+4, not a dereference.
func (m *VM) resolveValue(typ, val uint32) uint32 {
	switch isa.Type(typ) {
	case isa.TypeNOP:
		return 0
	case isa.TypeINTEGER:
		return val
	case isa.TypeA:
		return m.regs[isa.RegA] + val
	case isa.TypeB:
		return m.regs[isa.RegB] + val
	case isa.TypeC:
		return m.regs[isa.RegC] + val
	case isa.TypeD:
		return m.regs[isa.RegD] + val
	case isa.TypeERR:
		return m.regs[isa.RegERR] + val
	case isa.TypeSTACK:
		return m.regs[isa.RegSTACK] + val
	case isa.TypeBASE:
		return m.regs[isa.RegBASE] + val
	default:
		m.faultSegv()
		return m.regs[isa.RegERR]
	}
}

package vm

import "github.com/suncloudsmoon/Dirt-Emulator/internal/isa"

// branched is returned by an opcode handler to tell Step whether it already
// repositioned IC (a taken branch or JMP) and so must skip the normal
// IC += 4 post-step (spec.md §4.5 "Post-step").
type branched bool

// execute dispatches one decoded instruction. regIdx and value are the
// results of decode (resolveRegister / resolveValue); rec is the raw
// 4-tuple fetched, used here only for its opcode.
func (m *VM) execute(rec isa.Record, regIdx int, value uint32) branched {
	switch isa.Opcode(rec.Opcode) {
	case isa.NOP:
		return false

	case isa.MOVL:
		m.regs[regIdx] = value
		return false

	case isa.STMOVL:
		m.storeWord(value, m.regs[regIdx])
		return false

	case isa.ADDL:
		m.regs[regIdx] += value
		return false

	case isa.SUBL:
		m.regs[regIdx] -= value
		return false

	case isa.IMUL:
		m.regs[regIdx] *= value
		return false

	case isa.IDIVL:
		if value == 0 {
			m.fault(isa.IDIVL)
			return false
		}
		m.regs[regIdx] = uint32(int32(m.regs[regIdx]) / int32(value))
		return false

	case isa.ANDL:
		m.regs[regIdx] &= value
		return false

	case isa.ORL:
		m.regs[regIdx] |= value
		return false

	case isa.XORL:
		m.regs[regIdx] ^= value
		return false

	case isa.SHRW:
		m.regs[regIdx] >>= value & 31
		return false

	case isa.SHLW:
		m.regs[regIdx] <<= value & 31
		return false

	case isa.CMPL:
		m.x = int32(m.regs[regIdx]) - int32(value)
		return false

	case isa.JE:
		return m.branchIf(m.x == 0, value)
	case isa.JL:
		return m.branchIf(m.x < 0, value)
	case isa.JG:
		return m.branchIf(m.x > 0, value)
	case isa.JLE:
		return m.branchIf(m.x <= 0, value)
	case isa.JGE:
		return m.branchIf(m.x >= 0, value)

	case isa.JMP:
		m.ic = (value - 1) * 4
		return true

	case isa.PUSHL:
		m.push(value)
		return false

	case isa.POPL:
		if v, ok := m.pop(); ok {
			m.regs[regIdx] = v
		}
		return false

	case isa.INTL:
		m.interrupt(value)
		return false

	default:
		m.faultSegv()
		return false
	}
}

// branchIf applies a conditional branch: if taken, IC jumps to the 1-based
// line number value and the normal post-step increment is skipped.
func (m *VM) branchIf(taken bool, value uint32) branched {
	if !taken {
		return false
	}
	m.ic = (value - 1) * 4
	return true
}

// storeWord implements STMOVL: a store to an out-of-range index faults and
// does not write, per spec.md §3's invariants.
func (m *VM) storeWord(index, data uint32) {
	if index >= uint32(len(m.ram)) {
		m.fault(isa.STMOVL)
		return
	}
	m.ram[index] = data
}

// Interrupt codes (spec.md §4.5).
const (
	intStdout  = 0x01
	intSysExit = 0x02
)

// interrupt dispatches INTL. INT_STDOUT_CODE writes the B bytes
// RAM[A..A+B-1] to stdout as raw characters; INT_SYS_EXIT_CODE halts the
// run loop cleanly; anything else faults.
func (m *VM) interrupt(value uint32) {
	switch value {
	case intStdout:
		m.writeStdout()
	case intSysExit:
		m.Running = false
	default:
		m.fault(isa.INTL)
	}
}

func (m *VM) writeStdout() {
	a := m.regs[isa.RegA]
	b := m.regs[isa.RegB]
	if m.Stdout == nil {
		return
	}
	buf := make([]byte, 0, b)
	for i := uint32(0); i < b; i++ {
		idx := a + i
		var word uint32
		if idx < uint32(len(m.ram)) {
			word = m.ram[idx]
		}
		buf = append(buf, byte(word))
	}
	_, _ = m.Stdout.Write(buf)
}

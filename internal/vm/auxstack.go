package vm

import "github.com/suncloudsmoon/Dirt-Emulator/internal/isa"

// push writes value onto the auxiliary stack (pre-increment), faulting
// with PUSHL_INSTR and leaving the stack unchanged on overflow.
func (m *VM) push(value uint32) {
	if m.auxTop+1 >= len(m.aux) {
		m.fault(isa.PUSHL)
		return
	}
	m.auxTop++
	m.aux[m.auxTop] = value
}

// pop reads and removes the top of the auxiliary stack (post-decrement),
// faulting with POPL_INSTR and leaving the stack unchanged on underflow.
func (m *VM) pop() (uint32, bool) {
	if m.auxTop < 0 {
		m.fault(isa.POPL)
		return 0, false
	}
	v := m.aux[m.auxTop]
	m.auxTop--
	return v, true
}

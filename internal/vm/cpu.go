package vm

import "github.com/suncloudsmoon/Dirt-Emulator/internal/isa"

// Step runs one fetch/decode/execute cycle. It reports whether the VM is
// still running after the cycle (false once INT_SYS_EXIT_CODE has fired,
// or the instruction counter has run off the end of RAM).
func (m *VM) Step() bool {
	if !m.Running {
		return false
	}

	if m.ic+3 >= uint32(len(m.ram)) {
		// Out-of-range IC (spec.md §3 invariants): there is no instruction
		// to attribute the fault to, so this is treated like a decode
		// fault and the run loop stops rather than spinning forever on
		// the same unreadable address.
		m.faultSegv()
		m.Running = false
		return false
	}

	rec := isa.RecordFromWords([4]uint32{
		m.ram[m.ic], m.ram[m.ic+1], m.ram[m.ic+2], m.ram[m.ic+3],
	})

	regIdx := m.resolveRegister(rec.Reg)
	value := m.resolveValue(rec.Type, rec.Val)

	branched := m.execute(rec, regIdx, value)
	if !branched {
		m.ic += 4
	}

	if m.Tracer != nil {
		m.Tracer.Trace(m.snapshot(rec))
	}

	return m.Running
}

// Run executes instructions until the VM halts (INT_SYS_EXIT_CODE or a
// run-off-the-end IC fault). Faults never stop Run on their own — only
// INT_SYS_EXIT_CODE and the IC-out-of-range case do.
func (m *VM) Run() {
	for m.Step() {
	}
}

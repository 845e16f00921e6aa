// Package vm implements the fetch/decode/execute core: the register file,
// RAM, the auxiliary push/pop stack, operand addressing, the flag-producing
// compare/branch protocol, the interrupt subsystem, and CPU-fault handling.
//
// Grounded on the teacher's CPU type and Run loop
// (_examples/gmofishsauce-wut4/emul/cpu.go), generalized from its 16-bit
// multi-format instruction word and MMU down to this system's fixed 4-word
// record and flat RAM.
package vm

import (
	"io"

	"github.com/suncloudsmoon/Dirt-Emulator/internal/isa"
)

// faultSinkIndex is where an unresolvable register token's "handle" points.
// Per spec.md §9 Open Question 2, this implementation gives decode faults a
// dedicated write-ignore cell instead of aliasing ERR, so a fault code
// written by a faulting instruction cannot be clobbered by that same
// instruction's own write-back.
const faultSinkIndex = int(isa.RegBASE) + 1

// nopSinkIndex is where NOP (register code 0) resolves to: a discard slot
// reset to 0 on every resolveRegister call, so NOP reads as zero and writes
// to it never persist past the instruction that made them (spec.md §3).
const nopSinkIndex = faultSinkIndex + 1

// registerCount is the 8 architectural registers plus the fault sink and
// the NOP discard sink.
const registerCount = nopSinkIndex + 1

// Snapshot is the read-only view of VM state handed to a Tracer after every
// instruction. It never aliases VM-owned slices beyond the current prefix.
type Snapshot struct {
	Executed isa.Record

	A, B, C, D uint32
	Err        uint32
	Stack      uint32
	Base       uint32
	X          int32

	IC uint32

	RAM []uint32 // RAM[0:Stack]
	Aux []uint32 // Aux[0:auxTop+1]
}

// Tracer receives a Snapshot after each instruction. Implementations must
// not retain the slices in Snapshot past the call.
type Tracer interface {
	Trace(Snapshot)
}

// VM is one instance of the toy computer: register file, RAM, auxiliary
// stack, and the fetch/decode/execute loop over them. A VM is owned
// exclusively by its caller for its lifetime and is not safe for concurrent
// use, matching spec.md §5.
type VM struct {
	regs [registerCount]uint32
	x    int32 // hidden flag register: signed result of the most recent CMPL

	ram []uint32

	aux    []uint32
	auxTop int // index of the top aux element; -1 means empty

	ic      uint32
	Running bool

	Tracer Tracer

	Stdout io.Writer
}

// New allocates a VM with the given RAM size (spec.md's stackSize) and
// auxiliary memory of half that size. stdout receives INT_STDOUT_CODE
// output; if nil, os.Stdout-equivalent behavior is the caller's
// responsibility to wire.
func New(stackSize int, stdout io.Writer) *VM {
	return &VM{
		ram:     make([]uint32, stackSize),
		aux:     make([]uint32, stackSize/2),
		auxTop:  -1,
		Running: true,
		Stdout:  stdout,
	}
}

// Reg reads an architectural register (0-7) by its isa.Register code. Reg
// never redirects through resolveRegister's NOP discard slot, so
// Reg(isa.RegNOP) reads the raw backing cell directly — it stays 0 unless
// SetReg is used to poke it, since instruction execution never resolves a
// NOP register code to this index.
func (m *VM) Reg(r isa.Register) uint32 {
	return m.regs[r]
}

// SetReg writes an architectural register (0-7) directly by its
// isa.Register code, bypassing resolveRegister's NOP discard-slot
// redirection — used by tests that need to seed state directly.
func (m *VM) SetReg(r isa.Register, v uint32) {
	m.regs[r] = v
}

// IC returns the current instruction counter.
func (m *VM) IC() uint32 {
	return m.ic
}

// RAMSize returns the capacity of RAM in words (spec.md's stackSize).
func (m *VM) RAMSize() int {
	return len(m.ram)
}

// X returns the hidden compare-result flag register.
func (m *VM) X() int32 {
	return m.x
}

func (m *VM) snapshot(rec isa.Record) Snapshot {
	stack := m.regs[isa.RegSTACK]
	return Snapshot{
		Executed: rec,
		A:        m.regs[isa.RegA],
		B:        m.regs[isa.RegB],
		C:        m.regs[isa.RegC],
		D:        m.regs[isa.RegD],
		Err:      m.regs[isa.RegERR],
		Stack:    stack,
		Base:     m.regs[isa.RegBASE],
		X:        m.x,
		IC:       m.ic,
		RAM:      append([]uint32(nil), m.ram[:min(int(stack), len(m.ram))]...),
		Aux:      append([]uint32(nil), m.aux[:m.auxTop+1]...),
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// fault records a CPU fault: ERR is set to the faulting instruction's own
// opcode code. Faults never stop execution and never touch any other
// architectural state (spec.md §3 invariants, §7).
func (m *VM) fault(op isa.Opcode) {
	m.regs[isa.RegERR] = uint32(op)
}

// faultSegv records a decode-time fault (unknown register or type token).
func (m *VM) faultSegv() {
	m.regs[isa.RegERR] = isa.SegmentationFault
}

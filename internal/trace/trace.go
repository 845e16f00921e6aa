// Package trace implements vm.Tracer: a plain-text execution trace writer
// grounded on the teacher's Tracer
// (_examples/gmofishsauce-wut4/emul/trace.go), collapsed from that tracer's
// separate pre/post-instruction hooks down to the single post-instruction
// Snapshot this VM produces.
package trace

import (
	"fmt"
	"io"

	"github.com/suncloudsmoon/Dirt-Emulator/internal/isa"
	"github.com/suncloudsmoon/Dirt-Emulator/internal/vm"
)

// Tracer writes one block of text per executed instruction: the
// disassembled instruction, the raw 4-tuple, the register file, and the
// live prefixes of RAM and the auxiliary stack (spec.md §4.7).
type Tracer struct {
	out   io.Writer
	cycle uint64
}

// New creates a Tracer writing to out.
func New(out io.Writer) *Tracer {
	return &Tracer{out: out}
}

// Trace implements vm.Tracer.
func (t *Tracer) Trace(s vm.Snapshot) {
	t.cycle++

	fmt.Fprintf(t.out, "----- cycle %d -----\n", t.cycle)
	fmt.Fprintf(t.out, "IC=%d  %s\n", s.IC, isa.Disassemble(s.Executed))
	fmt.Fprintf(t.out, "RAW: opcode=%d reg=%d type=%d val=%d\n",
		s.Executed.Opcode, s.Executed.Reg, s.Executed.Type, s.Executed.Val)
	fmt.Fprintf(t.out, "REGS: A=%08x B=%08x C=%08x D=%08x ERR=%08x STACK=%08x BASE=%08x X=%d\n",
		s.A, s.B, s.C, s.D, s.Err, s.Stack, s.Base, s.X)
	fmt.Fprintf(t.out, "RAM[0:%d]: %s\n", len(s.RAM), formatWords(s.RAM))
	fmt.Fprintf(t.out, "AUX[0:%d]: %s\n", len(s.Aux), formatWords(s.Aux))
}

func formatWords(words []uint32) string {
	if len(words) == 0 {
		return "(empty)"
	}
	out := make([]byte, 0, len(words)*9)
	for i, w := range words {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, []byte(fmt.Sprintf("%08x", w))...)
	}
	return string(out)
}

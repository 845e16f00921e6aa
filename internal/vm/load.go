package vm

import (
	"fmt"

	"github.com/suncloudsmoon/Dirt-Emulator/internal/diskimage"
	"github.com/suncloudsmoon/Dirt-Emulator/internal/isa"
)

// loadRegs is the cycle of registers the loader stores each of an
// instruction record's four words through, per spec.md §4.4.
var loadRegs = [4]isa.Register{isa.RegA, isa.RegB, isa.RegC, isa.RegD}

// Load reads the header record at the given disk word offset, then copies
// numLines 4-word instruction records into the low end of RAM. IC and
// STACK start at 0; after a successful load STACK equals 4*numLines and
// RAM[0:4*numLines] holds the program.
//
// Each word is stored through one of A/B/C/D exactly as a store
// instruction would, so an out-of-range store during loading faults with
// STMOVL_INSTR and loading continues rather than aborting (spec.md §4.4
// step 2). Only a short read (fewer than numLines records available) is
// reported as a host-level error.
func (m *VM) Load(disk *diskimage.Disk, offset uint32) error {
	m.ic = 0
	m.regs[isa.RegSTACK] = 0

	header, err := disk.ReadWords(offset, 4)
	if err != nil {
		return fmt.Errorf("vm: load: reading header: %w", err)
	}
	numLines := header[1]

	for i := uint32(0); i < numLines; i++ {
		words, err := disk.ReadWords(offset+4+4*i, 4)
		if err != nil {
			return fmt.Errorf("vm: load: reading record %d of %d: ERR=0x%x: %w", i, numLines, m.regs[isa.RegERR], err)
		}
		for w, reg := range loadRegs {
			m.regs[reg] = words[w]
			m.storeWord(m.regs[isa.RegSTACK], m.regs[reg])
			m.regs[isa.RegSTACK]++
		}
	}

	return nil
}

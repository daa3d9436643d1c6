package vm

import "fmt"

// halt identifies the opcode/funct pattern reserved for syscall, the
// no-operand instruction spec.md names as the datapath's halt condition
// (SPEC_FULL.md §7's supplemented run-to-halt driver).
const (
	haltOpcode = 0x00
	haltFunct  = 0x0C
)

// Run ticks the datapath until it decodes a syscall instruction or
// reaches maxCycles, whichever comes first. It returns the number of
// cycles actually executed.
//
// Grounded on the teacher's Executor/ExecutionState run-loop shape,
// adapted to this datapath's fixpoint Tick rather than a fetch-decode-
// execute switch.
func (d *Datapath) Run(maxCycles uint64) (uint64, error) {
	var cycles uint64
	for cycles = 0; cycles < maxCycles; cycles++ {
		word, err := d.Mem.ReadWord(d.PC.Value())
		if err != nil {
			return cycles, fmt.Errorf("datapath: fetch at pc 0x%08X: %w", d.PC.Value(), err)
		}
		opcode := word >> 26 & 0x3F
		funct := word & 0x3F
		if opcode == haltOpcode && funct == haltFunct {
			return cycles, nil
		}
		if err := d.Tick(); err != nil {
			return cycles, fmt.Errorf("datapath: cycle %d: %w", cycles, err)
		}
	}
	return cycles, fmt.Errorf("datapath: did not reach syscall within %d cycles", maxCycles)
}

// Package loader places an assembled word stream into the simulator's
// memory image.
package loader

import (
	"fmt"

	"mipsasm/vm"
)

// Load writes words into mem starting at baseAddress, one word per four
// bytes, and returns the address immediately past the last word written.
//
// Byte order: bit 31 of the instruction is the MSB of the first byte
// written, matching every other Memory writer in this module (directive
// execution in parser/directive.go, the datapath's MemoryFile) so the
// stream round-trips through Memory.ReadWord's big-endian reconstruction.
// The original assembler this was distilled from called this layout
// "little-endian in-buffer," an inherited naming quirk this module keeps
// only as a comment, not as an actual byte reversal.
func Load(mem *vm.Memory, words []uint32, baseAddress uint32) (uint32, error) {
	addr := baseAddress
	for i, w := range words {
		bytes := []byte{byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)}
		if err := mem.Write(addr, bytes); err != nil {
			return 0, fmt.Errorf("loader: writing word %d at 0x%08X: %w", i, addr, err)
		}
		addr += 4
	}
	return addr, nil
}

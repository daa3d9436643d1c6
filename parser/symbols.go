package parser

import "fmt"

// ReservedTextSymbol and ReservedDataSymbol name the two segment-base
// entries that are always present in a SymbolTable and are never subject
// to Stage A address shifting.
const (
	ReservedTextSymbol = ".text"
	ReservedDataSymbol = ".data"
)

// SymbolTable maps label names (including the two reserved segment-base
// entries) to their absolute addresses. Every non-reserved entry resolves
// to a concrete 32-bit address once Pass 1 completes — there are no
// label-to-label chains.
type SymbolTable struct {
	addresses map[string]uint32
}

// NewSymbolTable creates a table seeded with the reserved segment bases.
func NewSymbolTable(textBase, dataBase uint32) *SymbolTable {
	return &SymbolTable{
		addresses: map[string]uint32{
			ReservedTextSymbol: textBase,
			ReservedDataSymbol: dataBase,
		},
	}
}

// Define records a new label at an address. Redefining a non-reserved
// label is an error; redefining a reserved segment entry is refused
// unconditionally (the spec treats those as fixed).
func (st *SymbolTable) Define(name string, addr uint32, line int) error {
	if name == ReservedTextSymbol || name == ReservedDataSymbol {
		return NewError(line, ErrorDuplicateLabel, name, "cannot redefine reserved segment symbol %q", name)
	}
	if _, exists := st.addresses[name]; exists {
		return NewError(line, ErrorDuplicateLabel, name, "label %q already defined", name)
	}
	st.addresses[name] = addr
	return nil
}

// Lookup returns a label's address.
func (st *SymbolTable) Lookup(name string) (uint32, bool) {
	addr, ok := st.addresses[name]
	return addr, ok
}

// MustResolve looks up name, returning an ErrorUnknownLabel AssemblerError
// if it is undefined.
func (st *SymbolTable) MustResolve(name string, line int) (uint32, error) {
	addr, ok := st.addresses[name]
	if !ok {
		return 0, NewError(line, ErrorUnknownLabel, name, "undefined label %q", name)
	}
	return addr, nil
}

// Shift adds delta to an already-defined label's address. Used by Stage A
// to relocate labels past a pseudo-instruction whose expansion grew.
func (st *SymbolTable) Shift(name string, delta int64) {
	if name == ReservedTextSymbol || name == ReservedDataSymbol {
		return
	}
	if addr, ok := st.addresses[name]; ok {
		st.addresses[name] = uint32(int64(addr) + delta)
	}
}

// Snapshot returns an immutable copy of the current name->address mapping,
// used by Stage A to decide shift eligibility against the Pass-1 addresses
// rather than against values that earlier shifts have already mutated
// (see the spec's "snapshot before mutation" design note).
func (st *SymbolTable) Snapshot() map[string]uint32 {
	out := make(map[string]uint32, len(st.addresses))
	for k, v := range st.addresses {
		out[k] = v
	}
	return out
}

// Names returns every non-reserved label name, for diagnostics/tests.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.addresses))
	for k := range st.addresses {
		if k != ReservedTextSymbol && k != ReservedDataSymbol {
			names = append(names, k)
		}
	}
	return names
}

func (st *SymbolTable) String() string {
	return fmt.Sprintf("SymbolTable(%d symbols)", len(st.addresses))
}

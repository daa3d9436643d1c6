// Package mipsasm exposes the assembler's single entry point: Assemble
// drives every stage in order and returns the address just past the
// loaded text.
package mipsasm

import (
	"fmt"

	"mipsasm/encoder"
	"mipsasm/loader"
	"mipsasm/parser"
	"mipsasm/vm"
)

// Assemble runs the full pipeline (spec §4, §6) over source: lex and
// normalize, validate, build the Pass-1 symbol table, resolve labels and
// operands (Stages A and B), expand pseudo-instructions (Stage C), encode
// to machine words, and load them into mem starting at baseAddress.
// atRegister and maxPseudoRounds are the SPEC_FULL §5.1 config tunables
// threaded into Stage C's pseudo expansion and Stage B's $at-clobber
// diagnostic. It returns the address immediately past the last word
// written (not baseAddress itself), the final symbol table (for a
// caller's diagnostics), and any non-fatal warnings collected along the
// way (spec §7).
func Assemble(mem *vm.Memory, source string, baseAddress, dataBase, atRegister uint32, maxPseudoRounds int) (uint32, *parser.SymbolTable, []parser.Warning, error) {
	lines, err := parser.Lex(source)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("assemble: %w", err)
	}

	if err := parser.Validate(lines); err != nil {
		return 0, nil, nil, fmt.Errorf("assemble: %w", err)
	}

	st, err := parser.BuildSymbolTable(lines, baseAddress, dataBase)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("assemble: %w", err)
	}

	warnings := &parser.WarningList{}
	resolved, err := parser.Resolve(lines, st, mem, dataBase, int(atRegister), maxPseudoRounds, warnings)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("assemble: %w", err)
	}

	expanded, err := parser.ExpandPseudos(resolved, int(atRegister), maxPseudoRounds)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("assemble: %w", err)
	}

	words, err := encoder.NewEncoder().EncodeAll(expanded)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("assemble: %w", err)
	}

	next, err := loader.Load(mem, words, baseAddress)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("assemble: %w", err)
	}
	return next, st, warnings.Warnings, nil
}

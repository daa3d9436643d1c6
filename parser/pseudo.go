package parser

import (
	"fmt"
	"strconv"
)

// pseudoStep is one line of a pseudo-instruction's expansion template.
// Args name either a positional placeholder ("a0", "a1", "a2") that is
// substituted with the pseudo's own operand, "$at" which is substituted
// with the configured assembler temp register, or a literal token ("$0",
// or a bare constant) carried through unchanged.
type pseudoStep struct {
	mnemonic string
	args     []string
}

// pseudoTemplates is the expansion table from spec §4.5, keyed by
// pseudo mnemonic. "li"/"la" are handled separately (expandLoadImmediate)
// since their expansion depends on the numeric value of the immediate,
// not just its position. The comparison-based branches stash their slt
// result in "$at" rather than a fixed register, so a config file
// overriding at_register actually changes what these pseudos emit.
var pseudoTemplates = map[string][]pseudoStep{
	"abs": {
		{"sub", []string{"a0", "$0", "a1"}},
		{"bge", []string{"a1", "$0", "1"}},
		{"sub", []string{"a0", "$0", "a1"}},
	},
	"neg":  {{"sub", []string{"a0", "$0", "a1"}}},
	"negu": {{"subu", []string{"a0", "$0", "a1"}}},
	"not":  {{"nor", []string{"a0", "a1", "$0"}}},
	"move": {{"add", []string{"a0", "$0", "a1"}}},
	"beqz": {{"beq", []string{"a0", "$0", "a1"}}},
	"blt":  {{"slt", []string{"$at", "a0", "a1"}}, {"bne", []string{"$at", "$0", "a2"}}},
	"bgt":  {{"slt", []string{"$at", "a1", "a0"}}, {"bne", []string{"$at", "$0", "a2"}}},
	"ble":  {{"slt", []string{"$at", "a1", "a0"}}, {"beq", []string{"$at", "$0", "a2"}}},
	"bge":  {{"slt", []string{"$at", "a1", "a0"}}, {"beq", []string{"$at", "$0", "a2"}}},
	"sge":  {{"slt", []string{"$at", "a2", "a1"}}, {"xori", []string{"a0", "$at", "1"}}},
	"sgt":  {{"slt", []string{"a0", "a2", "a1"}}},
}

// pseudoInstructionCount reports how many real instructions mnemonic
// eventually expands to, for Stage A's label-shift length L = 4*k. It is
// purely structural — it never looks at operand values — since the shape
// of an expansion never depends on them, only its mnemonic does. maxRounds
// is the config-supplied bound on nested pseudo expansion (SPEC_FULL §5.1).
func pseudoInstructionCount(mnemonic string, maxRounds int) (int, error) {
	return countExpansion(mnemonic, 0, maxRounds)
}

func countExpansion(mnemonic string, depth, maxRounds int) (int, error) {
	if mnemonic == "li" || mnemonic == "la" {
		return 2, nil
	}
	tmpl, ok := pseudoTemplates[mnemonic]
	if !ok {
		return 0, fmt.Errorf("not a pseudo-instruction: %q", mnemonic)
	}
	if depth >= maxRounds {
		return 0, fmt.Errorf("pseudo-instruction %q exceeds the expansion recursion bound", mnemonic)
	}
	total := 0
	for _, step := range tmpl {
		if IsPseudoMnemonic(step.mnemonic) {
			c, err := countExpansion(step.mnemonic, depth+1, maxRounds)
			if err != nil {
				return 0, err
			}
			total += c
		} else {
			total++
		}
	}
	return total, nil
}

// ExpandPseudos implements Stage C: every pseudo-instruction in lines
// (whose operands are already fully resolved by Stage B) is replaced by
// its real-instruction expansion, recursively, bounded at maxRounds.
// atRegister (SPEC_FULL §5.1's at_register) is substituted for every "$at"
// placeholder in a pseudo's template. Real instructions, which by this
// point are the only other kind of line left, pass through unchanged.
func ExpandPseudos(lines []LogicalLine, atRegister, maxRounds int) ([]LogicalLine, error) {
	out := make([]LogicalLine, 0, len(lines))
	for _, ln := range lines {
		if ln.Kind != LineInstruction || !IsPseudoMnemonic(ln.Mnemonic) {
			out = append(out, ln)
			continue
		}
		expanded, err := expandRecursive(ln, 0, atRegister, maxRounds)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

func expandRecursive(ln LogicalLine, depth, atRegister, maxRounds int) ([]LogicalLine, error) {
	if depth >= maxRounds {
		return nil, NewError(ln.Line, ErrorInstructionSyntax, ln.Mnemonic,
			"pseudo-instruction %q did not resolve to real instructions within %d expansion rounds",
			ln.Mnemonic, maxRounds)
	}
	steps, err := expandOneLevel(ln, atRegister)
	if err != nil {
		return nil, err
	}
	out := make([]LogicalLine, 0, len(steps))
	for _, step := range steps {
		if IsPseudoMnemonic(step.Mnemonic) {
			nested, err := expandRecursive(step, depth+1, atRegister, maxRounds)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		} else {
			out = append(out, step)
		}
	}
	return out, nil
}

func expandOneLevel(ln LogicalLine, atRegister int) ([]LogicalLine, error) {
	if ln.Mnemonic == "li" || ln.Mnemonic == "la" {
		return expandLoadImmediate(ln)
	}
	tmpl, ok := pseudoTemplates[ln.Mnemonic]
	if !ok {
		return nil, NewError(ln.Line, ErrorUnknownInstruction, ln.Mnemonic, "unknown pseudo-instruction %q", ln.Mnemonic)
	}
	out := make([]LogicalLine, 0, len(tmpl))
	for _, step := range tmpl {
		args := make([]string, len(step.args))
		for i, a := range step.args {
			args[i] = substitutePlaceholder(a, ln, atRegister)
		}
		out = append(out, LogicalLine{Kind: LineInstruction, Mnemonic: step.mnemonic, Args: args, Line: ln.Line})
	}
	return out, nil
}

func substitutePlaceholder(token string, ln LogicalLine, atRegister int) string {
	switch token {
	case "a0":
		if len(ln.Args) > 0 {
			return ln.Args[0]
		}
	case "a1":
		if len(ln.Args) > 1 {
			return ln.Args[1]
		}
	case "a2":
		if len(ln.Args) > 2 {
			return ln.Args[2]
		}
	case "$at":
		return CanonicalRegisterName(atRegister)
	}
	return token
}

// expandLoadImmediate implements the "li"/"la" expansion: a 32-bit
// constant split across lui's upper half and ori's lower half. It
// requires a0's immediate to already be numeric, which Stage B
// guarantees by the time Stage C runs.
func expandLoadImmediate(ln LogicalLine) ([]LogicalLine, error) {
	if len(ln.Args) != 2 {
		return nil, NewError(ln.Line, ErrorInstructionSyntax, ln.Mnemonic, "%q expects 2 operands", ln.Mnemonic)
	}
	n, ok := parseIntLiteral(ln.Args[1])
	if !ok {
		return nil, NewError(ln.Line, ErrorInstructionSyntax, ln.Args[1], "%q requires a resolved numeric immediate", ln.Mnemonic)
	}
	u := uint32(n)
	hi := strconv.Itoa(int((u >> 16) & 0xFFFF))
	lo := strconv.Itoa(int(u & 0xFFFF))
	dest := ln.Args[0]
	return []LogicalLine{
		{Kind: LineInstruction, Mnemonic: "lui", Args: []string{dest, hi}, Line: ln.Line},
		{Kind: LineInstruction, Mnemonic: "ori", Args: []string{dest, dest, lo}, Line: ln.Line},
	}, nil
}

package parser

// Resolve runs Pass 2 stages A and B over the normalized line stream and
// the Pass-1 symbol table: Stage A corrects labels that Pass 1
// mis-measured because it charged every pseudo-instruction a flat 4
// bytes, and Stage B strips labels and directives, executes directives
// against mem, and resolves every remaining instruction's operands
// (including pseudo-instructions' operands) to canonical register
// numbers and numeric addresses. Its output still contains pseudo
// mnemonics; ExpandPseudos (Stage C) turns those into real instructions.
// atRegister and maxPseudoRounds are the SPEC_FULL §5.1 config tunables
// (at_register, max_pseudo_expansion_rounds); warnings collects the
// non-fatal diagnostics spec §7 calls for (unsupported .float/.double,
// explicit use of the at register alongside a pseudo expansion).
func Resolve(lines []LogicalLine, st *SymbolTable, mem Memory, dataBase uint32, atRegister, maxPseudoRounds int, warnings *WarningList) ([]LogicalLine, error) {
	if err := stageAShift(lines, st, dataBase, maxPseudoRounds); err != nil {
		return nil, err
	}
	return stageBExecute(lines, st, mem, atRegister, maxPseudoRounds, warnings)
}

// stageAShift walks lines once, in lock-step with how Pass 1 measured
// addresses (flat 4 bytes per pseudo), and shifts every label recorded
// past a pseudo-instruction forward by that pseudo's real expanded
// length minus the 4 bytes Pass 1 already charged it. Shift eligibility
// is decided against an immutable snapshot of the Pass-1 addresses, not
// against addresses earlier shifts in this same walk have already
// mutated (see the spec's snapshot-before-mutation design note).
func stageAShift(lines []LogicalLine, st *SymbolTable, dataBase uint32, maxPseudoRounds int) error {
	snapshot := st.Snapshot()
	segment := ReservedTextSymbol
	pass1Counter := map[string]uint32{
		ReservedTextSymbol: snapshot[ReservedTextSymbol],
		ReservedDataSymbol: snapshot[ReservedDataSymbol],
	}

	labelSegment := func(addr uint32) string {
		if addr >= dataBase {
			return ReservedDataSymbol
		}
		return ReservedTextSymbol
	}

	for _, ln := range lines {
		switch ln.Kind {
		case LineLabel:
			continue
		case LineDirective:
			if ln.Mnemonic == ".text" || ln.Mnemonic == ".data" {
				segment = ln.Mnemonic
				continue
			}
			d := &Directive{Mnemonic: ln.Mnemonic, Args: ln.Args, Line: ln.Line}
			offset, err := d.ForwardOffset(pass1Counter[segment])
			if err != nil {
				return err
			}
			pass1Counter[segment] += offset
		case LineInstruction:
			if !IsPseudoMnemonic(ln.Mnemonic) {
				pass1Counter[segment] += 4
				continue
			}
			k, err := pseudoInstructionCount(ln.Mnemonic, maxPseudoRounds)
			if err != nil {
				return NewError(ln.Line, ErrorInstructionSyntax, ln.Mnemonic, "%v", err)
			}
			l := uint32(4 * k)
			threshold := pass1Counter[segment] + 4
			for name, addr := range snapshot {
				if name == ReservedTextSymbol || name == ReservedDataSymbol {
					continue
				}
				if labelSegment(addr) != segment {
					continue
				}
				if addr >= threshold {
					st.Shift(name, int64(l)-4)
				}
			}
			pass1Counter[segment] += 4
		}
	}
	return nil
}

// stageBExecute walks lines again with counters reset to the segment
// bases, executing directives, dropping labels and directives from the
// output, and resolving every instruction line's (real or pseudo)
// operands to their final textual form: register aliases become
// canonical "$N", label operands become numeric addresses, and a memory
// operand "rt, offset(base)" is rebuilt into the three-token internal
// form "rt base offset". Real instructions advance the counter by 4;
// pseudo-instructions advance it by their full expanded length, since
// Stage C has not yet run and later addresses must still land correctly.
//
// Along the way it appends two kinds of non-fatal diagnostic to warnings
// (spec §7): a ".float"/".double" directive is recognized but never
// emitted (non-goal: floating point), and an instruction that references
// the at register directly, in a program that also contains at least one
// pseudo-instruction, may have that register clobbered by the pseudo's
// own expansion (SPEC_FULL §7's supplemented $at-in-use warning).
func stageBExecute(lines []LogicalLine, st *SymbolTable, mem Memory, atRegister, maxPseudoRounds int, warnings *WarningList) ([]LogicalLine, error) {
	segment := ReservedTextSymbol
	counters := map[string]uint32{
		ReservedTextSymbol: 0,
		ReservedDataSymbol: 0,
	}
	if addr, ok := st.Lookup(ReservedTextSymbol); ok {
		counters[ReservedTextSymbol] = addr
	}
	if addr, ok := st.Lookup(ReservedDataSymbol); ok {
		counters[ReservedDataSymbol] = addr
	}

	hasPseudo := false
	for _, ln := range lines {
		if ln.Kind == LineInstruction && IsPseudoMnemonic(ln.Mnemonic) {
			hasPseudo = true
			break
		}
	}
	atName := CanonicalRegisterName(atRegister)

	out := make([]LogicalLine, 0, len(lines))
	for _, ln := range lines {
		switch ln.Kind {
		case LineLabel:
			continue
		case LineDirective:
			if ln.Mnemonic == ".text" || ln.Mnemonic == ".data" {
				segment = ln.Mnemonic
				continue
			}
			if isFloatDirective(ln.Mnemonic) && warnings != nil {
				warnings.Add(ln.Line, "%q directive is recognized but not emitted (floating point is unsupported); its reserved span is left zero-filled", ln.Mnemonic)
			}
			d := &Directive{Mnemonic: ln.Mnemonic, Args: ln.Args, Line: ln.Line}
			addr := counters[segment]
			if err := d.Execute(mem, addr); err != nil {
				return nil, err
			}
			offset, err := d.ForwardOffset(addr)
			if err != nil {
				return nil, err
			}
			counters[segment] += offset
		case LineInstruction:
			resolvedArgs, err := resolveOperands(ln, st)
			if err != nil {
				return nil, err
			}
			if hasPseudo && warnings != nil && !IsPseudoMnemonic(ln.Mnemonic) && containsRegister(resolvedArgs, atName) {
				warnings.Add(ln.Line, "instruction references %s directly; pseudo-instruction expansion elsewhere in this program may clobber it", atName)
			}
			out = append(out, LogicalLine{Kind: LineInstruction, Mnemonic: ln.Mnemonic, Args: resolvedArgs, Line: ln.Line})
			if IsPseudoMnemonic(ln.Mnemonic) {
				k, err := pseudoInstructionCount(ln.Mnemonic, maxPseudoRounds)
				if err != nil {
					return nil, NewError(ln.Line, ErrorInstructionSyntax, ln.Mnemonic, "%v", err)
				}
				counters[segment] += uint32(4 * k)
			} else {
				counters[segment] += 4
			}
		}
	}
	return out, nil
}

// containsRegister reports whether args contains the canonical register
// token name, e.g. from a resolved operand list where registers have
// already been rewritten to "$N" form.
func containsRegister(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

// resolveOperands tokenizes one instruction's raw argument strings and
// rebuilds them as resolved textual tokens: registers in canonical "$N"
// form, numeric immediates unchanged, label immediates and label memory
// offsets replaced by their resolved address, and a memory operand
// flattened to the three-token "rt base offset" form.
func resolveOperands(ln LogicalLine, st *SymbolTable) ([]string, error) {
	operands, err := TokenizeOperands(ln.Line, ln.Args)
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(operands)+1)
	for _, op := range operands {
		switch o := op.(type) {
		case RegisterOperand:
			args = append(args, o.String())
		case ImmediateOperand:
			resolved, err := resolveImmediate(o, ln.Line, st)
			if err != nil {
				return nil, err
			}
			args = append(args, resolved.String())
		case MemoryOperand:
			// The preceding RegisterOperand in this same operand list is
			// "rt"; it has already been appended above. Flattening
			// "rt, offset(base)" into the three-token internal form
			// "rt base offset" therefore only needs to append base and
			// offset here.
			resolvedOffset, err := resolveImmediate(o.Offset, ln.Line, st)
			if err != nil {
				return nil, err
			}
			args = append(args, CanonicalRegisterName(o.Base), resolvedOffset.String())
		}
	}

	// Degenerate "lw rt, offset" with no base: normalize by injecting
	// the zero register, per the resolved base-register open question.
	if info, ok := LookupInstruction(ln.Mnemonic); ok && info.Class == ClassILoadStore && len(operands) == 2 {
		if _, isMem := operands[1].(MemoryOperand); !isMem {
			args = []string{args[0], CanonicalRegisterName(ZeroRegister), args[1]}
		}
	}
	return args, nil
}

func resolveImmediate(imm ImmediateOperand, line int, st *SymbolTable) (ImmediateOperand, error) {
	if imm.Resolved() {
		return imm, nil
	}
	addr, err := st.MustResolve(imm.Label, line)
	if err != nil {
		return ImmediateOperand{}, err
	}
	return ImmediateOperand{Value: int64(addr)}, nil
}

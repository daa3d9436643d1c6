package parser

// BuildSymbolTable runs the Symbol-Table Builder (Pass 1, spec §4.4): a
// single forward walk that tracks the active segment and its location
// counter, charging every pseudo-instruction a flat 4 bytes regardless of
// its eventual expanded length — Stage A of the resolver corrects this.
func BuildSymbolTable(lines []LogicalLine, textBase, dataBase uint32) (*SymbolTable, error) {
	st := NewSymbolTable(textBase, dataBase)
	segment := ReservedTextSymbol
	counters := map[string]uint32{
		ReservedTextSymbol: textBase,
		ReservedDataSymbol: dataBase,
	}

	for _, ln := range lines {
		switch ln.Kind {
		case LineLabel:
			if err := st.Define(ln.Label, counters[segment], ln.Line); err != nil {
				return nil, err
			}
		case LineDirective:
			if ln.Mnemonic == ".text" || ln.Mnemonic == ".data" {
				segment = ln.Mnemonic
				continue
			}
			d := &Directive{Mnemonic: ln.Mnemonic, Args: ln.Args, Line: ln.Line}
			offset, err := d.ForwardOffset(counters[segment])
			if err != nil {
				return nil, err
			}
			counters[segment] += offset
		case LineInstruction:
			counters[segment] += 4
		}
	}
	return st, nil
}

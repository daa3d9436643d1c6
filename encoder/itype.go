package encoder

import "mipsasm/parser"

// encodeIArith packs "rt, rs, imm" for the arithmetic/compare-immediate
// family.
func (e *Encoder) encodeIArith(ln parser.LogicalLine, info parser.InstrInfo) (uint32, error) {
	rt, err := regArg(ln, 0)
	if err != nil {
		return 0, err
	}
	rs, err := regArg(ln, 1)
	if err != nil {
		return 0, err
	}
	imm, err := intArg(ln, 2)
	if err != nil {
		return 0, err
	}
	return packI(info.Opcode, rs, rt, uint32(imm)&0xFFFF), nil
}

// encodeILoadStore packs the resolver's normalized three-token form
// "rt, base, offset" — the degenerate two-operand "lw rt, offset" form
// was already expanded to this by Stage B, so base is always present.
func (e *Encoder) encodeILoadStore(ln parser.LogicalLine, info parser.InstrInfo) (uint32, error) {
	rt, err := regArg(ln, 0)
	if err != nil {
		return 0, err
	}
	base, err := regArg(ln, 1)
	if err != nil {
		return 0, err
	}
	offset, err := intArg(ln, 2)
	if err != nil {
		return 0, err
	}
	return packI(info.Opcode, base, rt, uint32(offset)&0xFFFF), nil
}

// encodeIBranch2Reg packs "rs, rt, offset" for beq/bne.
func (e *Encoder) encodeIBranch2Reg(ln parser.LogicalLine, info parser.InstrInfo) (uint32, error) {
	rs, err := regArg(ln, 0)
	if err != nil {
		return 0, err
	}
	rt, err := regArg(ln, 1)
	if err != nil {
		return 0, err
	}
	offset, err := intArg(ln, 2)
	if err != nil {
		return 0, err
	}
	return packI(info.Opcode, rs, rt, uint32(offset)&0xFFFF), nil
}

// encodeIBranch1Reg packs "rs, offset"; rt carries the REGIMM
// distinguishing constant for bgez/bgezal/bltz/bltzal rather than a real
// register.
func (e *Encoder) encodeIBranch1Reg(ln parser.LogicalLine, info parser.InstrInfo) (uint32, error) {
	rs, err := regArg(ln, 0)
	if err != nil {
		return 0, err
	}
	offset, err := intArg(ln, 1)
	if err != nil {
		return 0, err
	}
	return packI(info.Opcode, rs, info.ImmRT, uint32(offset)&0xFFFF), nil
}

// encodeIUpperImm packs "rt, imm" for lui.
func (e *Encoder) encodeIUpperImm(ln parser.LogicalLine, info parser.InstrInfo) (uint32, error) {
	rt, err := regArg(ln, 0)
	if err != nil {
		return 0, err
	}
	imm, err := intArg(ln, 1)
	if err != nil {
		return 0, err
	}
	return packI(info.Opcode, 0, rt, uint32(imm)&0xFFFF), nil
}

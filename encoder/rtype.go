package encoder

import "mipsasm/parser"

// encodeRArith packs the "rd, rs, rt" operand order shared by every
// R-type arithmetic/logical/compare/shift-by-register instruction.
func (e *Encoder) encodeRArith(ln parser.LogicalLine, info parser.InstrInfo) (uint32, error) {
	rd, err := regArg(ln, 0)
	if err != nil {
		return 0, err
	}
	rs, err := regArg(ln, 1)
	if err != nil {
		return 0, err
	}
	rt, err := regArg(ln, 2)
	if err != nil {
		return 0, err
	}
	return packR(info.Opcode, rs, rt, rd, 0, info.Funct), nil
}

// encodeRShiftConst packs "rd, rt, shamt".
func (e *Encoder) encodeRShiftConst(ln parser.LogicalLine, info parser.InstrInfo) (uint32, error) {
	rd, err := regArg(ln, 0)
	if err != nil {
		return 0, err
	}
	rt, err := regArg(ln, 1)
	if err != nil {
		return 0, err
	}
	shamt, err := intArg(ln, 2)
	if err != nil {
		return 0, err
	}
	return packR(info.Opcode, 0, rt, rd, uint32(shamt)&0x1F, info.Funct), nil
}

// encodeRJumpReg packs "rs" for jr/jalr.
func (e *Encoder) encodeRJumpReg(ln parser.LogicalLine, info parser.InstrInfo) (uint32, error) {
	rs, err := regArg(ln, 0)
	if err != nil {
		return 0, err
	}
	return packR(info.Opcode, rs, 0, 0, 0, info.Funct), nil
}

package encoder

import (
	"mipsasm/parser"
)

// Encoder packs fully-resolved real instructions (the output of the
// parser's Stage C) into 32-bit MIPS-I machine words.
type Encoder struct{}

// NewEncoder creates a new encoder instance.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeLine dispatches one real instruction to its class-specific field
// packer, per the table in spec §4.6.
func (e *Encoder) EncodeLine(ln parser.LogicalLine) (uint32, error) {
	info, ok := parser.LookupInstruction(ln.Mnemonic)
	if !ok {
		return 0, newEncodingError(ln.Line, ln.Mnemonic, "unknown real instruction")
	}
	switch info.Class {
	case parser.ClassRArith:
		return e.encodeRArith(ln, info)
	case parser.ClassRShiftConst:
		return e.encodeRShiftConst(ln, info)
	case parser.ClassRJumpReg:
		return e.encodeRJumpReg(ln, info)
	case parser.ClassIArith:
		return e.encodeIArith(ln, info)
	case parser.ClassILoadStore:
		return e.encodeILoadStore(ln, info)
	case parser.ClassIBranch2Reg:
		return e.encodeIBranch2Reg(ln, info)
	case parser.ClassIBranch1Reg:
		return e.encodeIBranch1Reg(ln, info)
	case parser.ClassIUpperImm:
		return e.encodeIUpperImm(ln, info)
	case parser.ClassJ:
		return e.encodeJ(ln, info)
	case parser.ClassNoOperand:
		return packR(info.Opcode, 0, 0, 0, 0, info.Funct), nil
	default:
		return 0, newEncodingError(ln.Line, ln.Mnemonic, "unhandled instruction class")
	}
}

// EncodeAll encodes every line in program order into the machine-word
// stream the Loader writes to memory.
func (e *Encoder) EncodeAll(lines []parser.LogicalLine) ([]uint32, error) {
	words := make([]uint32, 0, len(lines))
	for _, ln := range lines {
		w, err := e.EncodeLine(ln)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

func packR(opcode, rs, rt, rd, shamt, funct uint32) uint32 {
	return opcode<<26 | rs<<21 | rt<<16 | rd<<11 | shamt<<6 | funct
}

func packI(opcode, rs, rt, imm uint32) uint32 {
	return opcode<<26 | rs<<21 | rt<<16 | (imm & 0xFFFF)
}

func packJ(opcode, target uint32) uint32 {
	return opcode<<26 | (target & 0x3FFFFFF)
}

func regArg(ln parser.LogicalLine, idx int) (uint32, error) {
	if idx >= len(ln.Args) {
		return 0, newEncodingError(ln.Line, ln.Mnemonic, "missing register operand")
	}
	n, err := parser.ParseRegister(ln.Args[idx])
	if err != nil {
		return 0, newEncodingError(ln.Line, ln.Mnemonic, err.Error())
	}
	return uint32(n), nil
}

func intArg(ln parser.LogicalLine, idx int) (int64, error) {
	if idx >= len(ln.Args) {
		return 0, newEncodingError(ln.Line, ln.Mnemonic, "missing integer operand")
	}
	n, ok := parser.ParseIntLiteral(ln.Args[idx])
	if !ok {
		return 0, newEncodingError(ln.Line, ln.Mnemonic, "operand is not a resolved integer: "+ln.Args[idx])
	}
	return n, nil
}

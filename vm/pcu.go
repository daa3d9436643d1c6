package vm

import "fmt"

// Opcodes the PCU distinguishes. Mirrors parser.InstructionTable's values
// for the subset of MIPS-I the single-cycle datapath wires up (spec
// §4.7's "brief" core: R-type arithmetic, addi, lw/sw, beq, j).
const (
	opcodeRType = 0x00
	opcodeAddi  = 0x08
	opcodeLw    = 0x23
	opcodeSw    = 0x2B
	opcodeBeq   = 0x04
	opcodeJ     = 0x02
)

// PCU is the main control unit: opcode in, control lines out. ALUOp is a
// 2-bit line consumed by ALUControl (spec §4.7).
type PCU struct {
	Opcode *Wire

	RegDst, ALUSrc, MemToReg, RegWrite, MemRead, MemWrite, Branch, Jump *Wire
	ALUOp                                                               *Wire

	// Err is set when Update observes an opcode this control unit does
	// not recognize; the Datapath surfaces it as a fatal error.
	Err error
}

func (p *PCU) Update() bool {
	var regDst, aluSrc, memToReg, regWrite, memRead, memWrite, branch, jump, aluOp uint32
	switch p.Opcode.Get() {
	case opcodeRType:
		regDst, regWrite, aluOp = 1, 1, 2
	case opcodeAddi:
		aluSrc, regWrite, aluOp = 1, 1, 0
	case opcodeLw:
		aluSrc, memToReg, regWrite, memRead, aluOp = 1, 1, 1, 1, 0
	case opcodeSw:
		aluSrc, memWrite, aluOp = 1, 1, 0
	case opcodeBeq:
		branch, aluOp = 1, 1
	case opcodeJ:
		jump = 1
	default:
		p.Err = fmt.Errorf("datapath: opcode 0x%02X has no wired control decode", p.Opcode.Get())
	}
	changed := false
	changed = p.RegDst.Set(regDst) || changed
	changed = p.ALUSrc.Set(aluSrc) || changed
	changed = p.MemToReg.Set(memToReg) || changed
	changed = p.RegWrite.Set(regWrite) || changed
	changed = p.MemRead.Set(memRead) || changed
	changed = p.MemWrite.Set(memWrite) || changed
	changed = p.Branch.Set(branch) || changed
	changed = p.Jump.Set(jump) || changed
	changed = p.ALUOp.Set(aluOp) || changed
	return changed
}

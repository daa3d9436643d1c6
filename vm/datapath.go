package vm

import "fmt"

// Datapath wires together the combinational and state-holding components
// described in spec §4.7 into a single-cycle MIPS datapath, and drives
// the two-phase fixpoint tick loop from spec §5.
type Datapath struct {
	Mem *Memory

	PC   *Register
	Regs *RegisterFile

	components []Component

	// components that carry an Err field, checked after every fixpoint.
	errSources []func() error

	// latches run once per tick, after the combinational fixpoint
	// settles and before the PC register samples its next value.
	latches []func()

	maxTickIterations int
}

// NewDatapath wires a complete datapath against mem. maxTickIterations
// bounds the fixpoint loop; exceeding it without settling is the
// non-convergence error spec §5 requires detecting.
func NewDatapath(mem *Memory, maxTickIterations int) *Datapath {
	d := &Datapath{Mem: mem, maxTickIterations: maxTickIterations}

	pcOut := NewWire("pc", 32)
	pcIn := NewWire("pc.in", 32)
	d.PC = NewRegister(pcIn, pcOut, 0)

	instr := NewWire("instruction", 32)
	im := &InstructionMemory{Mem: mem, Address: pcOut, Out: instr}

	opcode := NewWire("opcode", 6)
	rs := NewWire("rs", 5)
	rt := NewWire("rt", 5)
	rd := NewWire("rd", 5)
	shamt := NewWire("shamt", 5)
	funct := NewWire("funct", 6)
	imm16 := NewWire("imm16", 16)
	addr26 := NewWire("addr26", 26)
	splitter := &InstructionSplitter{
		Instruction: instr,
		Opcode: opcode, Rs: rs, Rt: rt, Rd: rd, Shamt: shamt, Funct: funct, Imm: imm16, Addr: addr26,
	}

	regDst := NewWire("c.regdst", 1)
	aluSrc := NewWire("c.alusrc", 1)
	memToReg := NewWire("c.memtoreg", 1)
	regWrite := NewWire("c.regwrite", 1)
	memRead := NewWire("c.memread", 1)
	memWrite := NewWire("c.memwrite", 1)
	branch := NewWire("c.branch", 1)
	jump := NewWire("c.jump", 1)
	aluOp := NewWire("c.aluop", 2)
	pcu := &PCU{
		Opcode: opcode,
		RegDst: regDst, ALUSrc: aluSrc, MemToReg: memToReg, RegWrite: regWrite,
		MemRead: memRead, MemWrite: memWrite, Branch: branch, Jump: jump, ALUOp: aluOp,
	}

	writeRegSel := NewWire("writereg", 5)
	writeRegMux := &MUX{Inputs: []*Wire{rt, rd}, Sel: regDst, Out: writeRegSel}

	readData1 := NewWire("readdata1", 32)
	readData2 := NewWire("readdata2", 32)
	writeBackData := NewWire("writebackdata", 32)
	d.Regs = NewRegisterFile(rs, rt, writeRegSel, readData1, readData2)

	immExt := NewWire("immext", 32)
	signExt := &SignExtender{In: imm16, Out: immExt, Win: 16}

	aluInputB := NewWire("aluinputb", 32)
	aluSrcMux := &MUX{Inputs: []*Wire{readData2, immExt}, Sel: aluSrc, Out: aluInputB}

	aluOpCode := NewWire("aluopcode", 4)
	aluCtrl := &ALUControl{ALUOp: aluOp, Funct: funct, Op: aluOpCode}

	aluResult := NewWire("aluresult", 32)
	aluZero := NewWire("aluzero", 1)
	alu := &ALU{A: readData1, B: aluInputB, Op: aluOpCode, Out: aluResult, Zero: aluZero}

	memOut := NewWire("memout", 32)
	memFile := &MemoryFile{Mem: mem, Address: aluResult, WriteData: readData2, MemRead: memRead, ReadData: memOut}

	memToRegMux := &MUX{Inputs: []*Wire{aluResult, memOut}, Sel: memToReg, Out: writeBackData}

	four := NewWire("four", 32)
	four.Set(4)
	pcPlus4 := NewWire("pcplus4", 32)
	pcAdder := &Adder{A: pcOut, B: four, Out: pcPlus4}

	immShifted := NewWire("immshifted", 32)
	immShift := &ShiftLeft{In: immExt, Out: immShifted, K: 2}
	branchTarget := NewWire("branchtarget", 32)
	branchAdder := &Adder{A: pcPlus4, B: immShifted, Out: branchTarget}

	pcSrc := NewWire("pcsrc", 1)
	branchAndZero := &AndGate{A: branch, B: aluZero, Out: pcSrc}

	pcAfterBranch := NewWire("pcafterbranch", 32)
	branchMux := &MUX{Inputs: []*Wire{pcPlus4, branchTarget}, Sel: pcSrc, Out: pcAfterBranch}

	jumpShifted := NewWire("jumpshifted", 32)
	jumpShift := &ShiftLeft{In: addr26, Out: jumpShifted, K: 2}
	jumpMask := NewWire("jumpmask", 32)
	jumpMask.Set(0xF0000000)
	jumpHigh := NewWire("jumphigh", 32)
	jumpHighAnd := &AndGate{A: pcPlus4, B: jumpMask, Out: jumpHigh}
	jumpTarget := NewWire("jumptarget", 32)
	jumpOr := &OrGate{A: jumpHigh, B: jumpShifted, Out: jumpTarget}

	jumpMux := &MUX{Inputs: []*Wire{pcAfterBranch, jumpTarget}, Sel: jump, Out: pcIn}

	d.components = []Component{
		im, splitter, pcu, writeRegMux, d.Regs, signExt, aluSrcMux, aluCtrl, alu, memFile,
		memToRegMux, pcAdder, immShift, branchAdder, branchAndZero, branchMux,
		jumpShift, jumpHighAnd, jumpOr, jumpMux, d.PC,
	}
	d.errSources = []func() error{
		func() error { return im.Err },
		func() error { return pcu.Err },
		func() error { return aluCtrl.Err },
		func() error { return alu.Err },
		func() error { return memFile.Err },
	}

	d.latches = []func(){
		func() { d.Regs.Latch(regWrite.Get() != 0, writeBackData.Get()) },
		func() { memFile.Latch(memWrite.Get() != 0) },
	}
	return d
}

// Tick runs the two-phase fixpoint: repeatedly Update every component in
// registration order until a full pass makes no change, then lets
// state-holding components latch (spec §4.7/§5). Returns an error if a
// component reported one, or if the graph failed to converge within
// maxTickIterations.
func (d *Datapath) Tick() error {
	for i := 0; i < d.maxTickIterations; i++ {
		changed := false
		for _, c := range d.components {
			if c.Update() {
				changed = true
			}
		}
		for _, errFn := range d.errSources {
			if err := errFn(); err != nil {
				return err
			}
		}
		if !changed {
			for _, latch := range d.latches {
				latch()
			}
			d.PC.Latch(true)
			return nil
		}
	}
	return fmt.Errorf("datapath: combinational graph failed to converge within %d iterations", d.maxTickIterations)
}

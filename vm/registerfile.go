package vm

// RegisterFile is the datapath's 32-entry general-purpose register bank:
// two asynchronous read ports and one write port gated by RegWrite (spec
// §4.7). Reads are purely combinational (Update republishes them every
// tick); the write is state-holding and only takes effect at the tick
// boundary via Latch, mirroring Register.
type RegisterFile struct {
	ReadReg1, ReadReg2, WriteReg *Wire
	ReadData1, ReadData2         *Wire

	regs [32]uint32
}

// NewRegisterFile wires the given ports to a fresh, zeroed register bank.
func NewRegisterFile(readReg1, readReg2, writeReg, readData1, readData2 *Wire) *RegisterFile {
	return &RegisterFile{
		ReadReg1: readReg1, ReadReg2: readReg2, WriteReg: writeReg,
		ReadData1: readData1, ReadData2: readData2,
	}
}

func (r *RegisterFile) Update() bool {
	changed := r.ReadData1.Set(r.regs[r.ReadReg1.Get()&0x1F])
	changed = r.ReadData2.Set(r.regs[r.ReadReg2.Get()&0x1F]) || changed
	return changed
}

// Latch commits writeData into the register addressed by WriteReg's
// current value, when write (RegWrite, sampled after the tick's
// combinational fixpoint) is asserted. Register $0 is hardwired to zero
// and never actually stores a write.
func (r *RegisterFile) Latch(write bool, writeData uint32) {
	if !write {
		return
	}
	addr := r.WriteReg.Get() & 0x1F
	if addr == 0 {
		return
	}
	r.regs[addr] = writeData
}

// Get reads register n directly, for inspection/testing and the CLI's
// register dump.
func (r *RegisterFile) Get(n uint32) uint32 { return r.regs[n&0x1F] }

// Set writes register n directly, used to seed $sp at load time.
func (r *RegisterFile) Set(n uint32, v uint32) {
	if n&0x1F == 0 {
		return
	}
	r.regs[n&0x1F] = v
}

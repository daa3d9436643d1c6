package vm

// InstructionMemory is a read-only combinational view onto the external
// Memory image: it republishes the word at Address every tick (spec
// §4.7's "InstructionMemory wrapping the external memory image"). It never
// writes; a store through MemoryFile into the same addresses changes what
// it fetches.
type InstructionMemory struct {
	Mem     *Memory
	Address *Wire
	Out     *Wire

	Err error
}

func (im *InstructionMemory) Update() bool {
	w, err := im.Mem.ReadWord(im.Address.Get())
	if err != nil {
		im.Err = err
		return false
	}
	return im.Out.Set(w)
}

// MemoryFile is the data-memory component: a combinational read (gated
// by MemRead) and a write committed at the tick boundary (gated by
// MemWrite), both against the same external Memory image (spec §4.7).
type MemoryFile struct {
	Mem             *Memory
	Address         *Wire
	WriteData       *Wire
	MemRead         *Wire
	ReadData        *Wire

	Err error
}

func (mf *MemoryFile) Update() bool {
	if mf.MemRead.Get() == 0 {
		return false
	}
	w, err := mf.Mem.ReadWord(mf.Address.Get())
	if err != nil {
		mf.Err = err
		return false
	}
	return mf.ReadData.Set(w)
}

// Latch performs the gated write, once the tick's control lines have
// settled. Bytes are written big-endian, matching Memory.ReadWord's
// reconstruction and every other Memory writer in this module.
func (mf *MemoryFile) Latch(write bool) {
	if !write {
		return
	}
	addr := mf.Address.Get()
	v := mf.WriteData.Get()
	bytes := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	if err := mf.Mem.Write(addr, bytes); err != nil {
		mf.Err = err
	}
}

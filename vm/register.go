package vm

// Register is a state-holding component (RegisterFile is the other): it
// presents whatever it last latched as Out, unaffected by any combinational
// churn within the current tick, and only samples In into that latch when
// told to by the Datapath's two-phase Tick (spec §4.7/§5). Update only
// republishes the held value, so it reports a change only on the first
// pass after a Latch or Set moved that value; the output only moves
// across tick boundaries, which is what breaks combinational cycles that
// route through a register (PC -> ... -> PC, RegisterFile write -> read).
type Register struct {
	In, Out *Wire
	value   uint32
	write   bool
}

// NewRegister wires In to Out and seeds the latch with reset.
func NewRegister(in, out *Wire, reset uint32) *Register {
	r := &Register{In: in, Out: out, value: reset}
	r.Out.Set(reset)
	return r
}

// Update republishes the latched value; registers never change mid-tick.
func (r *Register) Update() bool {
	return r.Out.Set(r.value)
}

// Latch samples In into the register's held value, to take effect as Out
// starting the next tick. write gates the sample the way RegWrite/PCWrite
// control lines gate real register writes; when false the register keeps
// its current value.
func (r *Register) Latch(write bool) {
	if write {
		r.value = r.In.Get()
	}
}

// Set forcibly overwrites the held value, used to seed PC at load time.
func (r *Register) Set(v uint32) {
	r.value = v
	r.Out.Set(v)
}

// Value returns the currently latched value.
func (r *Register) Value() uint32 { return r.value }

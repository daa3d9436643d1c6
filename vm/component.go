package vm

// Component is the single capability every datapath node exposes: recompute
// outputs from current input wire values and report whether anything
// changed. The tick loop calls Update on every registered component,
// repeatedly, until a full pass reports no changes (spec §4.7/§5).
type Component interface {
	Update() bool
}

// MUX selects Inputs[Sel.Get()] onto Out. Sel is conventionally a 1-bit
// wire (two-way mux), but any width is accepted so the same type serves
// wider selectors.
type MUX struct {
	Inputs []*Wire
	Sel    *Wire
	Out    *Wire
}

func (m *MUX) Update() bool {
	i := int(m.Sel.Get())
	if i < 0 || i >= len(m.Inputs) {
		i = 0
	}
	return m.Out.Set(m.Inputs[i].Get())
}

// Adder drives Out = A + B, masked to Out's width.
type Adder struct {
	A, B, Out *Wire
}

func (a *Adder) Update() bool {
	return a.Out.Set(a.A.Get() + a.B.Get())
}

// AndGate drives Out = A & B.
type AndGate struct {
	A, B, Out *Wire
}

func (g *AndGate) Update() bool { return g.Out.Set(g.A.Get() & g.B.Get()) }

// OrGate drives Out = A | B.
type OrGate struct {
	A, B, Out *Wire
}

func (g *OrGate) Update() bool { return g.Out.Set(g.A.Get() | g.B.Get()) }

// NotGate drives Out = !A in the sense of A's own width: 0 maps to 1
// (masked), any nonzero value maps to 0: a single-bit inverter for control
// lines. NewDatapath does not currently wire one.
type NotGate struct {
	A, Out *Wire
}

func (g *NotGate) Update() bool {
	if g.A.Get() == 0 {
		return g.Out.Set(1)
	}
	return g.Out.Set(0)
}

// ZeroExtender widens In (Win bits, already masked by the wire itself) onto
// Out (Wout bits) without sign extension. NewDatapath does not wire one:
// its imm16 path goes through SignExtender below.
type ZeroExtender struct {
	In, Out *Wire
}

func (z *ZeroExtender) Update() bool { return z.Out.Set(z.In.Get()) }

// SignExtender widens In (Win bits) onto Out, replicating In's sign bit.
// Used for the imm16 -> 32-bit path the wiring text calls out explicitly.
type SignExtender struct {
	In, Out *Wire
	Win     uint
}

func (s *SignExtender) Update() bool {
	v := s.In.Get()
	signBit := uint32(1) << (s.Win - 1)
	if v&signBit != 0 {
		v |= ^uint32(0) << s.Win
	}
	return s.Out.Set(v)
}

// ShiftLeft drives Out = In << K.
type ShiftLeft struct {
	In, Out *Wire
	K       uint
}

func (s *ShiftLeft) Update() bool { return s.Out.Set(s.In.Get() << s.K) }

// InstructionSplitter decodes a 32-bit instruction word into its MIPS-I
// fields. Every output wire is present regardless of the instruction's
// actual format; downstream components read only the fields relevant to
// the decoded opcode.
type InstructionSplitter struct {
	Instruction                              *Wire
	Opcode, Rs, Rt, Rd, Shamt, Funct, Imm, Addr *Wire
}

func (s *InstructionSplitter) Update() bool {
	w := s.Instruction.Get()
	changed := false
	changed = s.Opcode.Set(w>>26&0x3F) || changed
	changed = s.Rs.Set(w>>21&0x1F) || changed
	changed = s.Rt.Set(w>>16&0x1F) || changed
	changed = s.Rd.Set(w>>11&0x1F) || changed
	changed = s.Shamt.Set(w>>6&0x1F) || changed
	changed = s.Funct.Set(w&0x3F) || changed
	changed = s.Imm.Set(w & 0xFFFF) || changed
	changed = s.Addr.Set(w & 0x3FFFFFF) || changed
	return changed
}

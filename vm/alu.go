package vm

import "fmt"

// ALU computes a 32-bit result and a zero flag from two operands and an
// ALUControl-supplied operation code (spec §4.7).
type ALU struct {
	A, B, Op *Wire
	Out      *Wire
	Zero     *Wire

	Err error
}

func (a *ALU) Update() bool {
	x, y := a.A.Get(), a.B.Get()
	var result uint32
	switch a.Op.Get() {
	case aluAdd:
		result = x + y
	case aluSub:
		result = x - y
	case aluAnd:
		result = x & y
	case aluOr:
		result = x | y
	case aluXor:
		result = x ^ y
	case aluNor:
		result = ^(x | y)
	case aluSlt:
		if AsInt32(x) < AsInt32(y) {
			result = 1
		}
	default:
		a.Err = fmt.Errorf("datapath: ALU operation code %d is not recognized", a.Op.Get())
	}
	changed := a.Out.Set(result)
	zero := uint32(0)
	if result == 0 {
		zero = 1
	}
	changed = a.Zero.Set(zero) || changed
	return changed
}

package encoder

import "mipsasm/parser"

// encodeJ packs the 26-bit target for j/jal.
func (e *Encoder) encodeJ(ln parser.LogicalLine, info parser.InstrInfo) (uint32, error) {
	target, err := intArg(ln, 0)
	if err != nil {
		return 0, err
	}
	return packJ(info.Opcode, uint32(target)&0x3FFFFFF), nil
}

package vm

import (
	"fmt"
	"math"
)

// SafeUintToUint32 safely converts uint to uint32, rejecting values that
// would overflow on a 64-bit uint. Used by the CLI's -mem-size override,
// where flag.Uint hands back a platform uint.
func SafeUintToUint32(v uint) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("uint value %d exceeds uint32 maximum", v)
	}
	return uint32(v), nil
}

// AsInt32 reinterprets a uint32's bit pattern as a signed int32, for
// showing the ALU's signed comparisons (slt) and the CLI's register dump
// in decimal. No error checking: the bit pattern is preserved either way.
func AsInt32(v uint32) int32 {
	//nolint:gosec // G115: intentional reinterpretation, not a narrowing conversion
	return int32(v)
}

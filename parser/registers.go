package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// registerAliases maps every MIPS ABI register name to its canonical
// number, grounded on the same "named register alias" table shape as the
// teacher's SP/LR/PC handling, generalized to the full MIPS-I register
// file.
var registerAliases = map[string]int{
	"zero": 0,
	"at":   1,
	"v0":   2, "v1": 3,
	"a0": 4, "a1": 5, "a2": 6, "a3": 7,
	"t0": 8, "t1": 9, "t2": 10, "t3": 11, "t4": 12, "t5": 13, "t6": 14, "t7": 15,
	"s0": 16, "s1": 17, "s2": 18, "s3": 19, "s4": 20, "s5": 21, "s6": 22, "s7": 23,
	"t8": 24, "t9": 25,
	"k0": 26, "k1": 27,
	"gp": 28,
	"sp": 29,
	"fp": 30,
	"ra": 31,
}

// canonicalRegisterNames is the inverse of registerAliases, used when
// rebuilding the canonical "$N" textual form during Stage B de-aliasing.
var canonicalRegisterNames [32]string

func init() {
	for i := range canonicalRegisterNames {
		canonicalRegisterNames[i] = fmt.Sprintf("$%d", i)
	}
}

// ParseRegister resolves a register reference of the form "$N" or "$alias"
// to its canonical 0-31 number. The leading "$" is required.
func ParseRegister(token string) (int, error) {
	if !strings.HasPrefix(token, "$") {
		return 0, fmt.Errorf("register reference must start with '$': %q", token)
	}
	body := token[1:]
	if body == "" {
		return 0, fmt.Errorf("empty register reference")
	}

	if n, err := strconv.Atoi(body); err == nil {
		if n < 0 || n > 31 {
			return 0, fmt.Errorf("register number out of range [0,31]: %q", token)
		}
		return n, nil
	}

	if n, ok := registerAliases[strings.ToLower(body)]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("unknown register: %q", token)
}

// CanonicalRegisterName returns the "$N" form of a register number.
func CanonicalRegisterName(n int) string {
	if n < 0 || n > 31 {
		return fmt.Sprintf("$%d", n)
	}
	return canonicalRegisterNames[n]
}

// IsRegisterToken reports whether a token looks like a register reference
// (used by the operand tokenizer to classify operands before attempting a
// full parse, so a malformed "$foo" produces a register-specific error
// rather than falling through to the label/immediate case).
func IsRegisterToken(token string) bool {
	return strings.HasPrefix(token, "$")
}

// ZeroRegister is "$0", hard-wired to zero in the datapath.
const ZeroRegister = 0

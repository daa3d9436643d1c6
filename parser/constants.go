package parser

// pseudoMnemonics is the fixed, closed set of pseudo-instructions.
var pseudoMnemonics = map[string]bool{
	"abs": true, "blt": true, "bgt": true, "ble": true, "bge": true,
	"beqz": true, "neg": true, "negu": true, "not": true, "li": true,
	"la": true, "move": true, "sge": true, "sgt": true,
}

// IsPseudoMnemonic reports whether mnemonic names a pseudo-instruction.
func IsPseudoMnemonic(mnemonic string) bool {
	return pseudoMnemonics[mnemonic]
}

// pseudoArity is the fixed operand count each pseudo-instruction's source
// form takes, used by the Validator exactly as InstructionTable.Arity is
// used for real mnemonics.
var pseudoArity = map[string]int{
	"abs": 2, "neg": 2, "negu": 2, "not": 2, "move": 2,
	"li": 2, "la": 2, "beqz": 2,
	"blt": 3, "bgt": 3, "ble": 3, "bge": 3, "sge": 3, "sgt": 3,
}

// directiveArity documents the fixed argument-count rule for each
// directive; the zero-arity directives are the segment switches.
var directiveArity = map[string]struct {
	min int
	max int // -1 == unbounded
}{
	".align":  {1, 1},
	".ascii":  {1, -1},
	".asciiz": {1, -1},
	".byte":   {1, -1},
	".half":   {1, -1},
	".word":   {1, -1},
	".double": {1, -1},
	".float":  {1, -1},
	".space":  {1, 1},
	".data":   {0, 0},
	".text":   {0, 0},
}

// IsDirective reports whether mnemonic names a recognized directive.
func IsDirective(mnemonic string) bool {
	_, ok := directiveArity[mnemonic]
	return ok
}

// floatDirectives are recognized but not emitted (non-goal: floating
// point). Encountering one is a warning, not an error; it still reserves
// its documented byte span.
var floatDirectives = map[string]bool{
	".float": true, ".double": true,
}

func isFloatDirective(mnemonic string) bool { return floatDirectives[mnemonic] }

package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Operand is the tagged variant from the data model: a register
// reference, an immediate (numeric or an as-yet-unresolved label), or a
// memory reference. Concrete types implement it; callers type-switch.
type Operand interface {
	isOperand()
	String() string
}

// RegisterOperand names a register by its canonical 0-31 number.
type RegisterOperand struct {
	Num int
}

func (RegisterOperand) isOperand() {}
func (r RegisterOperand) String() string {
	return CanonicalRegisterName(r.Num)
}

// ImmediateOperand is either a resolved numeric value (Label == "") or an
// unresolved label reference (Label != ""). Resolution replaces a label
// ImmediateOperand with a numeric one — the operand value is never a
// mixed-type field, per the spec's re-architecture note.
type ImmediateOperand struct {
	Value int64
	Label string
}

func (ImmediateOperand) isOperand() {}
func (i ImmediateOperand) String() string {
	if i.Label != "" {
		return i.Label
	}
	return strconv.FormatInt(i.Value, 10)
}

// Resolved reports whether this immediate is already numeric.
func (i ImmediateOperand) Resolved() bool { return i.Label == "" }

// MemoryOperand is `offset(base)`: an integer-or-label offset and a base
// register.
type MemoryOperand struct {
	Offset ImmediateOperand
	Base   int
}

func (MemoryOperand) isOperand() {}
func (m MemoryOperand) String() string {
	return fmt.Sprintf("%s(%s)", m.Offset.String(), CanonicalRegisterName(m.Base))
}

// TokenizeOperands implements the Operand Tokenizer (spec §4.2): it turns
// the raw, comma-split argument tokens of one instruction line into typed
// Operand values. Parenthesized memory operands are recognized before any
// other classification rule.
func TokenizeOperands(line int, args []string) ([]Operand, error) {
	operands := make([]Operand, 0, len(args))
	for _, raw := range args {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		op, err := tokenizeOne(line, tok)
		if err != nil {
			return nil, err
		}
		operands = append(operands, op)
	}
	return operands, nil
}

func tokenizeOne(line int, tok string) (Operand, error) {
	switch {
	case strings.Contains(tok, "("):
		return tokenizeMemory(line, tok)
	case IsRegisterToken(tok):
		n, err := ParseRegister(tok)
		if err != nil {
			return nil, NewError(line, ErrorInstructionSyntax, tok, "%v", err)
		}
		return RegisterOperand{Num: n}, nil
	default:
		if n, ok := parseIntLiteral(tok); ok {
			return ImmediateOperand{Value: n}, nil
		}
		if !isIdentifier(tok) {
			return nil, NewError(line, ErrorInstructionSyntax, tok, "operand is neither a register, an integer, nor a label")
		}
		return ImmediateOperand{Label: tok}, nil
	}
}

// tokenizeMemory splits "offset(base)" into its two parts. An empty
// offset is treated as 0; base must begin with "$".
func tokenizeMemory(line int, tok string) (Operand, error) {
	open := strings.IndexByte(tok, '(')
	if open < 0 || !strings.HasSuffix(tok, ")") {
		return nil, NewError(line, ErrorInstructionSyntax, tok, "unmatched parentheses in memory operand")
	}
	offsetText := strings.TrimSpace(tok[:open])
	baseText := strings.TrimSpace(tok[open+1 : len(tok)-1])

	if !IsRegisterToken(baseText) {
		return nil, NewError(line, ErrorInstructionSyntax, tok, "memory operand base must start with '$'")
	}
	base, err := ParseRegister(baseText)
	if err != nil {
		return nil, NewError(line, ErrorInstructionSyntax, tok, "%v", err)
	}

	var offset ImmediateOperand
	switch {
	case offsetText == "":
		offset = ImmediateOperand{Value: 0}
	default:
		if n, ok := parseIntLiteral(offsetText); ok {
			offset = ImmediateOperand{Value: n}
		} else if isIdentifier(offsetText) {
			offset = ImmediateOperand{Label: offsetText}
		} else {
			return nil, NewError(line, ErrorInstructionSyntax, tok, "invalid memory offset %q", offsetText)
		}
	}

	return MemoryOperand{Offset: offset, Base: base}, nil
}

// ParseIntLiteral is the exported form of parseIntLiteral, for the
// encoder's use when packing already-resolved numeric operand tokens.
func ParseIntLiteral(s string) (int64, bool) {
	return parseIntLiteral(s)
}

// parseIntLiteral accepts decimal, 0x hex, 0b binary, and 0o/leading-0
// octal integers, signed or not — a superset of the spec's "decimal
// integers (signed allowed)" grounded on the retrieval pack's MIPS
// assembler (hex immediates) and the teacher's lexer (hex/binary/octal
// number reading).
func parseIntLiteral(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	body := s
	if body[0] == '-' || body[0] == '+' {
		neg = body[0] == '-'
		body = body[1:]
	}
	if body == "" {
		return 0, false
	}

	var n uint64
	var err error
	switch {
	case strings.HasPrefix(body, "0x"), strings.HasPrefix(body, "0X"):
		n, err = strconv.ParseUint(body[2:], 16, 64)
	case strings.HasPrefix(body, "0b"), strings.HasPrefix(body, "0B"):
		n, err = strconv.ParseUint(body[2:], 2, 64)
	case strings.HasPrefix(body, "0o"), strings.HasPrefix(body, "0O"):
		n, err = strconv.ParseUint(body[2:], 8, 64)
	case len(body) > 1 && body[0] == '0' && isAllDigits(body):
		n, err = strconv.ParseUint(body[1:], 8, 64)
	default:
		if !isAllDigits(body) {
			return 0, false
		}
		n, err = strconv.ParseUint(body, 10, 64)
	}
	if err != nil {
		return 0, false
	}
	v := int64(n)
	if neg {
		v = -v
	}
	return v, true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_':
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

package parser

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes an assembler error. The spec describes a class
// hierarchy (Processor error -> Assembler error -> Syntax error -> ...);
// here that collapses to a flat set of sentinel kinds, checked with
// errors.Is/IsKind rather than a type switch down an inheritance chain.
type ErrorKind int

const (
	ErrorSyntax ErrorKind = iota
	ErrorDirectiveSyntax
	ErrorInstructionSyntax
	ErrorDirectiveSemantic
	ErrorUnknownLabel
	ErrorUnknownInstruction
	ErrorDuplicateLabel
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorSyntax:
		return "syntax error"
	case ErrorDirectiveSyntax:
		return "directive syntax error"
	case ErrorInstructionSyntax:
		return "instruction syntax error"
	case ErrorDirectiveSemantic:
		return "directive semantic error"
	case ErrorUnknownLabel:
		return "unknown label"
	case ErrorUnknownInstruction:
		return "unknown instruction"
	case ErrorDuplicateLabel:
		return "duplicate label"
	default:
		return "assembler error"
	}
}

// AssemblerError is a fatal error produced anywhere in the lex/tokenize/
// validate/resolve/encode pipeline. It carries the 1-based source line
// number and, where available, the offending token or instruction text.
type AssemblerError struct {
	Line  int
	Token string
	Kind  ErrorKind
	Err   error
}

func (e *AssemblerError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("line %d: %s: %q: %v", e.Line, e.Kind, e.Token, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Kind, e.Err)
}

func (e *AssemblerError) Unwrap() error { return e.Err }

// NewError builds an AssemblerError wrapping a formatted message.
func NewError(line int, kind ErrorKind, token string, format string, args ...any) *AssemblerError {
	return &AssemblerError{
		Line:  line,
		Token: token,
		Kind:  kind,
		Err:   fmt.Errorf(format, args...),
	}
}

// IsKind reports whether err is an *AssemblerError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ae *AssemblerError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// Warning is a non-fatal diagnostic: the directive or line it names is
// still processed (treated as a no-op that reserves its documented byte
// span) but the condition is surfaced to the caller.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: warning: %s", w.Line, w.Message)
}

// WarningList accumulates warnings across a single Assemble call.
type WarningList struct {
	Warnings []Warning
}

func (wl *WarningList) Add(line int, format string, args ...any) {
	wl.Warnings = append(wl.Warnings, Warning{Line: line, Message: fmt.Sprintf(format, args...)})
}

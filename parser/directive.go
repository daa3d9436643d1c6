package parser

// Directive is a parsed directive mnemonic with its raw argument list. It
// reports how many bytes it reserves (ForwardOffset) without touching
// memory, and separately writes its initializer bytes (Execute) once the
// final address is known.
type Directive struct {
	Mnemonic string
	Args     []string
	Line     int
}

// Memory is the write surface a Directive's Execute writes into. The
// shared memory image (vm.Memory) satisfies it.
type Memory interface {
	WriteByte(addr uint32, b byte) error
}

// ForwardOffset reports how many bytes this directive reserves, per the
// Pass-1 table (spec §4.4). align is the current location-counter value,
// needed only by ".align".
func (d *Directive) ForwardOffset(align uint32) (uint32, error) {
	switch d.Mnemonic {
	case ".align":
		n, err := d.alignArg()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, nil
		}
		rem := align % n
		if rem == 0 {
			return 0, nil
		}
		return n - rem, nil
	case ".ascii":
		return uint32(d.decodedStringLength()), nil
	case ".asciiz":
		return uint32(d.decodedStringLength()) + 1, nil
	case ".byte":
		return uint32(len(d.Args)), nil
	case ".half":
		return uint32(2 * len(d.Args)), nil
	case ".word", ".float":
		return uint32(4 * len(d.Args)), nil
	case ".double":
		return uint32(8 * len(d.Args)), nil
	case ".space":
		n, err := d.spaceArg()
		if err != nil {
			return 0, err
		}
		return n, nil
	case ".data", ".text":
		return 0, nil
	default:
		return 0, NewError(d.Line, ErrorDirectiveSyntax, d.Mnemonic, "unknown directive %q", d.Mnemonic)
	}
}

// Execute writes this directive's initializer bytes into mem starting at
// addr. Directives that only advance the location counter (.align's
// padding, .space, the segment switches) write nothing but still return
// without error.
func (d *Directive) Execute(mem Memory, addr uint32) error {
	switch d.Mnemonic {
	case ".align", ".space", ".data", ".text":
		return nil
	case ".byte":
		return d.writeIntegers(mem, addr, 1)
	case ".half":
		return d.writeIntegers(mem, addr, 2)
	case ".word":
		return d.writeIntegers(mem, addr, 4)
	case ".float", ".double":
		// Non-goal: floating point. The reserved span is already
		// charged by ForwardOffset; nothing is written. The caller
		// (Resolve's Stage B) is responsible for surfacing the warning;
		// Execute itself has no warnings channel.
		return nil
	case ".ascii":
		return d.writeString(mem, addr, false)
	case ".asciiz":
		return d.writeString(mem, addr, true)
	default:
		return NewError(d.Line, ErrorDirectiveSyntax, d.Mnemonic, "unknown directive %q", d.Mnemonic)
	}
}

func (d *Directive) alignArg() (uint32, error) {
	if len(d.Args) != 1 {
		return 0, NewError(d.Line, ErrorDirectiveSemantic, d.Mnemonic, ".align takes exactly one argument")
	}
	n, ok := parseIntLiteral(d.Args[0])
	if !ok || n < 0 {
		return 0, NewError(d.Line, ErrorDirectiveSemantic, d.Args[0], ".align argument must be a non-negative integer")
	}
	return uint32(n), nil
}

func (d *Directive) spaceArg() (uint32, error) {
	if len(d.Args) != 1 {
		return 0, NewError(d.Line, ErrorDirectiveSemantic, d.Mnemonic, ".space takes exactly one argument")
	}
	n, ok := parseIntLiteral(d.Args[0])
	if !ok || n < 0 {
		return 0, NewError(d.Line, ErrorDirectiveSemantic, d.Args[0], ".space argument must be a non-negative integer")
	}
	return uint32(n), nil
}

// decodedStringLength sums the post-escape-decode length of every quoted
// string argument. Multiple arguments are concatenated end to end, as
// the spec's "joined across args" arity note describes.
func (d *Directive) decodedStringLength() int {
	total := 0
	for _, a := range d.Args {
		total += DecodedLength(unquote(a))
	}
	return total
}

func (d *Directive) writeString(mem Memory, addr uint32, nulTerminate bool) error {
	off := addr
	for _, a := range d.Args {
		decoded := DecodeEscapes(unquote(a))
		for i := 0; i < len(decoded); i++ {
			if err := mem.WriteByte(off, decoded[i]); err != nil {
				return NewError(d.Line, ErrorDirectiveSemantic, d.Mnemonic, "%v", err)
			}
			off++
		}
	}
	if nulTerminate {
		if err := mem.WriteByte(off, 0); err != nil {
			return NewError(d.Line, ErrorDirectiveSemantic, d.Mnemonic, "%v", err)
		}
	}
	return nil
}

func (d *Directive) writeIntegers(mem Memory, addr uint32, width int) error {
	off := addr
	for _, a := range d.Args {
		n, ok := parseIntLiteral(a)
		if !ok {
			return NewError(d.Line, ErrorDirectiveSemantic, a, "%s argument must be an integer", d.Mnemonic)
		}
		// Big-endian, so a directive-initialized word round-trips through
		// Memory.ReadWord's big-endian reconstruction. The Loader writes
		// the instruction stream in the same byte order; "little-endian
		// in-buffer" survives there only as a name (loader.go).
		u := uint32(n)
		for i := 0; i < width; i++ {
			if err := mem.WriteByte(off+uint32(i), byte(u>>(8*uint(width-1-i)))); err != nil {
				return NewError(d.Line, ErrorDirectiveSemantic, d.Mnemonic, "%v", err)
			}
		}
		off += uint32(width)
	}
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

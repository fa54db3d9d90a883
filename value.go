package snfmt

import "fmt"

type kind uint8

const (
	kindNone kind = iota
	kindInt
	kindChar
	kindStr
	kindNilStr
	kindPtr
)

// Value is a single typed argument cell. Conversions pull cells from an
// [ArgList] in order; each constructor fixes how the payload is interpreted.
// The zero Value renders as 0 for integer conversions and as the empty
// string for %s.
type Value struct {
	kind kind
	bits uint64
	str  string
}

// Int returns an integer cell. The value is stored sign-extended; the
// directive's length modifier decides how many of its bits a conversion
// reads and at which width the sign test happens.
func Int(v int64) Value { return Value{kind: kindInt, bits: uint64(v)} }

// Uint returns an unsigned integer cell.
func Uint(v uint64) Value { return Value{kind: kindInt, bits: v} }

// Char returns a single-byte cell for %c.
func Char(c byte) Value { return Value{kind: kindChar, bits: uint64(c)} }

// Str returns a string cell for %s. The string is rendered verbatim; it is
// not scanned for NUL bytes.
func Str(s string) Value { return Value{kind: kindStr, str: s} }

// Bytes returns a string cell with C-string semantics: the slice is scanned
// up to the first NUL byte, and only that prefix is rendered. A nil slice is
// the NULL-pointer analogue and faults if %s consumes it.
func Bytes(b []byte) Value {
	if b == nil {
		return Value{kind: kindNilStr}
	}
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	return Value{kind: kindStr, str: string(b[:n])}
}

// Ptr returns a pointer cell for %p. The pointer's bit pattern is formatted
// as an unsigned hexadecimal integer with the base prefix forced.
func Ptr(p uintptr) Value { return Value{kind: kindPtr, bits: uint64(p)} }

// integer returns the cell's integer payload. Non-integer cells yield 0, so
// a mistyped argument renders a well-defined zero rather than garbage.
func (v Value) integer() uint64 {
	switch v.kind {
	case kindInt, kindChar, kindPtr:
		return v.bits
	}
	return 0
}

func (v Value) text() string {
	if v.kind == kindNilStr {
		panic("snfmt: nil string argument for %s")
	}
	return v.str
}

func (v Value) char() byte { return byte(v.bits) }

// ArgList is an ordered argument source, the va_list analogue. Rendering
// consumes cells front to back; a drained list yields zero cells so the
// output stays well-defined when the format string expects more arguments
// than were supplied.
type ArgList struct {
	values []Value
	pos    int
}

// NewArgList builds an argument source over the given cells.
func NewArgList(values ...Value) *ArgList {
	return &ArgList{values: values}
}

// Reset rewinds the list to the first cell, allowing the same arguments to
// be rendered again (for example to measure and then render).
func (a *ArgList) Reset() { a.pos = 0 }

func (a *ArgList) next() Value {
	if a == nil || a.pos >= len(a.values) {
		return Value{}
	}
	v := a.values[a.pos]
	a.pos++
	return v
}

func packArgs(args []any) []Value {
	if len(args) == 0 {
		return nil
	}
	values := make([]Value, len(args))
	for i, arg := range args {
		values[i] = valueOf(arg)
	}
	return values
}

// valueOf converts one variadic argument into a cell. Untyped nil becomes
// the NULL-string cell (it faults only if %s consumes it); any type outside
// the supported set is a caller bug and panics.
func valueOf(arg any) Value {
	switch v := arg.(type) {
	case Value:
		return v
	case nil:
		return Value{kind: kindNilStr}
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return Uint(uint64(v))
	case uint8:
		return Uint(uint64(v))
	case uint16:
		return Uint(uint64(v))
	case uint32:
		return Uint(uint64(v))
	case uint64:
		return Uint(v)
	case uintptr:
		return Ptr(v)
	case string:
		return Str(v)
	case []byte:
		return Bytes(v)
	default:
		panic(fmt.Sprintf("snfmt: unsupported argument type %T", arg))
	}
}

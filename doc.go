// Package snfmt renders printf-style format strings into bounded byte
// buffers without allocating.
//
// The central entry points are [Format] and [FormatList], which follow the
// snprintf/vsnprintf contract: output beyond the buffer's capacity is
// silently dropped, the last byte of a non-empty buffer is always forced to
// NUL, and the return value is the length the full output would have had.
// Comparing the return value against len(buf) detects truncation:
//
//	buf := make([]byte, 16)
//	n := snfmt.Format(buf, "%s=%d", "retries", 3)
//	if n >= len(buf) { /* truncated */ }
//
// The package targets freestanding use: the render path performs no
// dynamic allocation, no I/O, and needs no floating-point support. Calls
// are reentrant; concurrent callers only need distinct buffers and
// argument lists.
//
// # Conversions
//
// Supported conversions are %d, %i, %u, %x, %X, %o, %c, %s, %p, and the %%
// escape, with the flags '-', '+', ' ', '#', and '0', decimal field widths,
// '.'-precision, and the length modifiers hh, h, l, ll, j, z, and t.
// Unsupported conversion characters produce no output and consume no
// argument. Floating point, %n, positional arguments, '*' width and
// precision, and the ' grouping flag are out of scope; the ' flag is
// consumed but ignored.
//
// # Arguments
//
// [Format] accepts Go integers, strings, []byte, and uintptr directly.
// [FormatList] takes an explicit [ArgList] of [Value] cells built with
// [Int], [Uint], [Char], [Str], [Bytes], and [Ptr] — the variadic va_list
// analogue for callers that want full control (or zero allocation):
//
//	list := snfmt.NewArgList(snfmt.Str("up"), snfmt.Int(42))
//	n := snfmt.FormatList(buf, "state=%s count=%d", list)
//
// Integer cells carry 64 bits; the directive's length modifier decides how
// many of them a conversion reads and at which width signedness applies, so
// "%hhd" of -1 prints "-1" regardless of the cell's original Go type.
//
// # Faults
//
// There is no error return. The two conditions that cannot produce a
// well-defined count panic with an "snfmt:"-prefixed message instead of
// invoking undefined behavior: a nil argument consumed by %s, and a
// variadic argument of an unsupported type. A drained argument list does
// not fault; further conversions render zero values.
//
// # Measuring
//
// The return value is independent of capacity, so a nil buffer measures
// without writing:
//
//	n := snfmt.Format(nil, "%s: %d", name, count)
//
// [Sprint] packages the measure-allocate-render sequence for hosted
// callers that just want a string.
package snfmt

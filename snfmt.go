package snfmt

// Format renders format and args into buf and returns the number of bytes
// the full output occupies, excluding the NUL terminator. Output beyond
// len(buf) is counted but not stored, so a return value >= len(buf) means
// the result was truncated. If len(buf) > 0 the final byte of buf is always
// set to NUL, even when truncation cut a conversion short. A nil or empty
// buf writes nothing and still returns the full length.
//
// Format packages args into an [ArgList] and forwards to [FormatList]; the
// supported argument types are those accepted by the [Value] constructors.
func Format(buf []byte, format string, args ...any) int {
	return FormatList(buf, format, NewArgList(packArgs(args)...))
}

// FormatList is the explicit-argument-source form of [Format], the
// vsnprintf analogue. It consumes cells from list as conversions demand
// them; use [ArgList.Reset] to render the same arguments again. FormatList
// performs no allocation.
func FormatList(buf []byte, format string, list *ArgList) int {
	return vformat(buf, format, list)
}

// Sprint renders format and args into a freshly allocated string of exactly
// the right size. It is a hosted convenience built on the two-pass property
// that the returned length is independent of buffer capacity.
func Sprint(format string, args ...any) string {
	list := NewArgList(packArgs(args)...)
	n := vformat(nil, format, list)
	if n <= 0 {
		return ""
	}
	list.Reset()
	out := make([]byte, n+1)
	vformat(out, format, list)
	return string(out[:n])
}

// putChar is the character sink: the single point where buffer bounds are
// enforced. The logical index always advances; the store happens only when
// it lands inside buf.
func putChar(buf []byte, idx *int, c byte) {
	if *idx < len(buf) {
		buf[*idx] = c
	}
	*idx++
}

// vformat is the render loop. It walks the format string, copies literal
// text straight through the sink, and for each directive runs the scanner
// and then the conversion handler, pulling arguments from list.
func vformat(buf []byte, format string, list *ArgList) int {
	idx := 0
	pos := 0
	for pos < len(format) {
		c := format[pos]
		if c != '%' {
			putChar(buf, &idx, c)
			pos++
			continue
		}
		pos++
		if pos < len(format) && format[pos] == '%' {
			putChar(buf, &idx, '%')
			pos++
			continue
		}

		d, vi := scanDirective(format, pos)
		if vi >= len(format) {
			// Lone '%' or directive truncated by the end of the
			// format string: no output, nothing consumed.
			break
		}

		switch format[vi] {
		case 'd', 'i':
			emitInt(buf, &idx, list, d, 10, false, true)
		case 'u':
			emitInt(buf, &idx, list, d, 10, false, false)
		case 'x':
			emitInt(buf, &idx, list, d, 16, false, false)
		case 'X':
			emitInt(buf, &idx, list, d, 16, true, false)
		case 'o':
			emitInt(buf, &idx, list, d, 8, false, false)
		case 'c':
			// A lone character is a one-element string, so it
			// shares the string renderer's width handling.
			cc := [1]byte{list.next().char()}
			formatStr(buf, &idx, string(cc[:]), d)
		case 's':
			formatStr(buf, &idx, list.next().text(), d)
		case 'p':
			d.flags |= flagAltForm
			d.length = lenIntmax
			formatInt(buf, &idx, list.next().integer(), d, 16)
		default:
			// Unsupported conversion: no output, no argument
			// consumed, cursor advances past it.
		}
		pos = vi + 1
	}

	putChar(buf, &idx, 0)
	if len(buf) > 0 {
		buf[len(buf)-1] = 0
	}
	return idx - 1
}

// emitInt is the shared handler behind every integer conversion,
// parameterized by base, digit case, and signedness. It pulls the argument,
// narrows it to the width the length modifier consumes, and hands it to the
// renderer.
func emitInt(buf []byte, idx *int, list *ArgList, d directive, base uint64, upper, signed bool) {
	if upper {
		d.flags |= flagUpper
	}
	if signed {
		d.flags |= flagSigned
	}
	n := list.next().integer()
	if argWidth(d.length) == 32 {
		n &= 0xFFFFFFFF
	}
	formatInt(buf, idx, n, d, base)
}

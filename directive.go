package snfmt

type flags uint8

const (
	flagLeftJustify flags = 1 << iota // '-'
	flagForceSign                     // '+'
	flagSignSpace                     // ' '
	flagAltForm                       // '#'
	flagZeroPad                       // '0'
	flagSigned
	flagUpper
)

type lengthMod uint8

const (
	lenInt      lengthMod = iota // default
	lenChar                      // hh
	lenShort                     // h
	lenLong                      // l
	lenLongLong                  // ll
	lenIntmax                    // j
	lenSize                      // z
	lenPtrdiff                   // t
)

// maxWidth caps parsed field widths and precisions so a pathological format
// string saturates instead of overflowing the accumulator.
const maxWidth = 1<<31 - 1

// directive is the parsed form of one %-conversion: everything between the
// introducing '%' and the conversion character.
type directive struct {
	flags   flags
	width   int
	prec    int
	hasPrec bool
	length  lengthMod
}

// scanDirective parses flags, field width, precision, and length modifier
// starting at format[pos], which must be just past the '%'. It returns the
// descriptor and the index of the conversion character. It never reads past
// the end of format; if the directive is truncated the returned index equals
// len(format).
func scanDirective(format string, pos int) (directive, int) {
	var d directive
	pos = scanFlags(&d, format, pos)
	d.width, pos = scanNumber(format, pos)
	pos = scanPrecision(&d, format, pos)
	pos = scanLength(&d, format, pos)
	return d, pos
}

func scanFlags(d *directive, format string, pos int) int {
	for pos < len(format) && isFlag(format[pos]) {
		switch format[pos] {
		case '-':
			d.flags |= flagLeftJustify
		case '+':
			d.flags |= flagForceSign
		case ' ':
			d.flags |= flagSignSpace
		case '#':
			d.flags |= flagAltForm
		case '0':
			d.flags |= flagZeroPad
		}
		// '\'' is consumed but confers no behavior.
		pos++
	}
	if d.flags&flagLeftJustify != 0 {
		d.flags &^= flagZeroPad
	}
	return pos
}

func scanNumber(format string, pos int) (int, int) {
	n := 0
	for pos < len(format) && isDigit(format[pos]) {
		if n > (maxWidth-9)/10 {
			n = maxWidth
		} else {
			n = n*10 + int(format[pos]-'0')
		}
		pos++
	}
	return n, pos
}

func scanPrecision(d *directive, format string, pos int) int {
	if pos >= len(format) || format[pos] != '.' {
		return pos
	}
	d.hasPrec = true
	d.prec, pos = scanNumber(format, pos+1)
	return pos
}

func scanLength(d *directive, format string, pos int) int {
	if pos >= len(format) {
		return pos
	}
	switch format[pos] {
	case 'h':
		pos++
		d.length = lenShort
		if pos < len(format) && format[pos] == 'h' {
			pos++
			d.length = lenChar
		}
	case 'l':
		pos++
		d.length = lenLong
		if pos < len(format) && format[pos] == 'l' {
			pos++
			d.length = lenLongLong
		}
	case 'j':
		pos++
		d.length = lenIntmax
	case 'z':
		pos++
		d.length = lenSize
	case 't':
		pos++
		d.length = lenPtrdiff
	}
	return pos
}

func isFlag(c byte) bool {
	return c == '\'' || c == '-' || c == '+' || c == ' ' || c == '#' || c == '0'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

package snfmt

// scratchSize bounds the assembly buffer for one integer conversion: the
// widest supported value in the smallest base (64 octal digits) plus sign,
// prefix, and padding. Field widths beyond it are clamped, a documented
// limitation of the fixed-scratch design.
const scratchSize = 128

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// argWidth returns how many bits of an integer cell the conversion reads.
// Conversions at char, short, and int length consume a default-promoted
// 32-bit value; everything wider consumes all 64 bits.
func argWidth(length lengthMod) uint {
	switch length {
	case lenChar, lenShort, lenInt:
		return 32
	}
	return 64
}

// splitSign reinterprets n at the declared length and, when negative,
// returns a '-' sign and the magnitude obtained by two's-complement negation
// at that exact width. The most negative value of each width therefore
// yields its own magnitude (MinInt32 prints as -2147483648), not a
// sign-extended artifact.
func splitSign(n uint64, length lengthMod) (byte, uint64) {
	switch length {
	case lenChar:
		if v := int8(n); v < 0 {
			return '-', uint64(uint8(-v))
		}
	case lenShort:
		if v := int16(n); v < 0 {
			return '-', uint64(uint16(-v))
		}
	case lenInt:
		if v := int32(n); v < 0 {
			return '-', uint64(uint32(-v))
		}
	case lenLong, lenLongLong, lenIntmax, lenPtrdiff:
		if v := int64(n); v < 0 {
			return '-', uint64(-v)
		}
	}
	return 0, n
}

// formatInt renders one integer conversion through the sink: digits are
// accumulated least-significant first in a fixed scratch buffer, followed by
// sign, base prefix, and padding, then emitted in reverse so everything
// lands in left-to-right order.
func formatInt(buf []byte, idx *int, n uint64, d directive, base uint64) {
	digits := lowerDigits
	if d.flags&flagUpper != 0 {
		digits = upperDigits
	}

	// An explicit precision takes over the minimum-digit role from the
	// '0' flag.
	if d.hasPrec {
		d.flags &^= flagZeroPad
	}
	pad := byte(' ')
	if d.flags&flagZeroPad != 0 {
		pad = '0'
	}

	var sign byte
	if d.flags&flagSigned != 0 {
		sign, n = splitSign(n, d.length)
	}
	if sign == 0 {
		switch {
		case d.flags&flagForceSign != 0:
			sign = '+'
		case d.flags&flagSignSpace != 0:
			sign = ' '
		}
	}

	var scratch [scratchSize]byte
	i := 0

	// Minimum digit count: the precision when given, else one, so plain
	// %d of 0 prints "0" while %.0d of 0 prints the empty numeral.
	min := 1
	if d.hasPrec {
		min = d.prec
	}
	for n > 0 || min > 0 {
		putChar(scratch[:], &i, digits[n%base])
		n /= base
		if min > 0 {
			min--
		}
	}

	if sign != 0 {
		putChar(scratch[:], &i, sign)
	}

	width := d.width
	hexPrefix := d.flags&flagAltForm != 0 && base == 16
	x := byte('x')
	if d.flags&flagUpper != 0 {
		x = 'X'
	}
	switch {
	case hexPrefix && d.flags&flagZeroPad != 0:
		// Reserve two columns so the prefix lands between the zero
		// padding and the first digit.
		width -= 2
		if width < 0 {
			width = 0
		}
	case hexPrefix:
		putChar(scratch[:], &i, x)
		putChar(scratch[:], &i, '0')
	case d.flags&flagAltForm != 0 && base == 8:
		putChar(scratch[:], &i, '0')
	}

	content := i
	if d.flags&flagLeftJustify == 0 {
		for i < width {
			putChar(scratch[:], &i, pad)
		}
		if hexPrefix && d.flags&flagZeroPad != 0 {
			putChar(scratch[:], &i, x)
			putChar(scratch[:], &i, '0')
		}
	}

	if i > len(scratch) {
		i = len(scratch)
	}
	for i > 0 {
		i--
		putChar(buf, idx, scratch[i])
	}

	if d.flags&flagLeftJustify != 0 {
		for ; content < d.width; content++ {
			putChar(buf, idx, ' ')
		}
	}
}

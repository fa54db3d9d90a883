package snfmt

// formatStr renders one string (or single-character) conversion. A nonzero
// precision caps the number of bytes copied; precision 0 is the same as no
// precision and copies the whole string. Padding is always spaces, on the
// left unless the directive is left-justified.
func formatStr(buf []byte, idx *int, s string, d directive) {
	n := len(s)
	if d.prec > 0 && d.prec < n {
		n = d.prec
	}

	if d.flags&flagLeftJustify == 0 {
		for i := n; i < d.width; i++ {
			putChar(buf, idx, ' ')
		}
	}
	for i := 0; i < n; i++ {
		putChar(buf, idx, s[i])
	}
	if d.flags&flagLeftJustify != 0 {
		for i := n; i < d.width; i++ {
			putChar(buf, idx, ' ')
		}
	}
}

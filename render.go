package gopoly

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders p in storage order, e.g. "3x² - x + 5". Zero-coefficient
// terms are skipped and a polynomial with nothing to show renders as "0".
// That includes a non-empty polynomial whose terms are all zero, which earlier
// renderings of this format printed as the empty string.
// Call Normalize first for the canonical form.
func (p *Polynomial) String() string {
	return p.render(func(mag *Num, exp int) string {
		var b strings.Builder
		if exp == 0 || !mag.IsOne() {
			b.WriteString(mag.String())
		}
		if exp != 0 {
			b.WriteString("x")
			b.WriteString(superscript(exp))
		}
		return b.String()
	})
}

// LaTeX renders p with the same sign and spacing rules as String.
func (p *Polynomial) LaTeX() string {
	return p.render(func(mag *Num, exp int) string {
		var b strings.Builder
		if exp == 0 || !mag.IsOne() {
			b.WriteString(mag.LaTeX())
		}
		switch exp {
		case 0:
		case 1:
			b.WriteString("x")
		default:
			fmt.Fprintf(&b, "x^{%d}", exp)
		}
		return b.String()
	})
}

// render joins the nonzero terms with sign separators. A leading negative
// term gets a bare "-", later terms get " - " or " + ".
func (p *Polynomial) render(term func(mag *Num, exp int) string) string {
	var b strings.Builder
	first := true
	for _, t := range p.terms {
		if t.Coeff.IsZero() {
			continue
		}
		negative := t.Coeff.IsNegative()
		switch {
		case first && negative:
			b.WriteString("-")
		case negative:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		first = false
		b.WriteString(term(numAbs(t.Coeff), t.Exp))
	}
	if first {
		return "0"
	}
	return b.String()
}

// superscript maps the decimal digits of exp to superscript glyphs. Exponents
// 0 and 1 have no glyphs; negative exponents get a superscript minus.
func superscript(exp int) string {
	digits := [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}
	if exp == 0 || exp == 1 {
		return ""
	}
	var b strings.Builder
	s := strconv.Itoa(exp)
	if exp < 0 {
		b.WriteRune('⁻')
		s = s[1:]
	}
	for _, c := range s {
		b.WriteRune(digits[c-'0'])
	}
	return b.String()
}

// Describe returns a short multi-line report of p's size, degree and text.
func (p *Polynomial) Describe() string {
	degree := "none"
	if d, ok := p.Degree(); ok {
		degree = strconv.Itoa(d)
	}
	return fmt.Sprintf("/// Polynomial Information ///\n - Length: %d\n - Degree: %s\n - Equation: (%s)", p.Len(), degree, p.String())
}

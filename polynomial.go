package gopoly

import (
	"golang.org/x/exp/slices"
)

// Term is a single coeff·x^exp monomial.
type Term struct {
	Coeff *Num
	Exp   int
}

// T builds a term with an integer coefficient.
func T(coeff int64, exp int) Term { return Term{Coeff: N(coeff), Exp: exp} }

// TermOf builds a term from an existing coefficient. A nil coefficient is
// read as zero.
func TermOf(coeff *Num, exp int) Term {
	if coeff == nil {
		coeff = N(0)
	}
	return Term{Coeff: coeff, Exp: exp}
}

// Polynomial is an ordered sequence of terms in x. It owns its term slice.
type Polynomial struct{ terms []Term }

// New returns a polynomial holding exactly the given terms, in order.
// Duplicate exponents and zero coefficients are kept until Normalize.
func New(terms ...Term) *Polynomial {
	p := &Polynomial{terms: make([]Term, len(terms))}
	for i, t := range terms {
		p.terms[i] = TermOf(t.Coeff, t.Exp)
	}
	return p
}

// Zero returns the polynomial with no terms.
func Zero() *Polynomial { return &Polynomial{} }

// Len returns the number of stored terms, duplicates and zeros included.
func (p *Polynomial) Len() int { return len(p.terms) }

// Terms returns a copy of the stored terms.
func (p *Polynomial) Terms() []Term { return slices.Clone(p.terms) }

func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{terms: slices.Clone(p.terms)}
}

// Degree returns the highest exponent among terms with a nonzero
// coefficient. ok is false when there is no such term, which separates the
// zero polynomial from a nonzero constant.
func (p *Polynomial) Degree() (deg int, ok bool) {
	for _, t := range p.terms {
		if t.Coeff.IsZero() {
			continue
		}
		if !ok || t.Exp > deg {
			deg, ok = t.Exp, true
		}
	}
	return deg, ok
}

// IsZero reports whether every stored coefficient is zero.
func (p *Polynomial) IsZero() bool {
	_, ok := p.Degree()
	return !ok
}

// At returns a one-term polynomial holding term i. Negative i counts back
// from the end.
func (p *Polynomial) At(i int) (*Polynomial, error) {
	n := len(p.terms)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, IndexError.New("term index %d out of range [0,%d)", i, n)
	}
	return New(p.terms[i]), nil
}

// Slice returns a polynomial holding terms [lo, hi). Bounds are clamped to
// the stored terms and negative bounds count back from the end, so Slice
// never fails on a well-formed call; lo > hi yields the zero polynomial.
func (p *Polynomial) Slice(lo, hi int) *Polynomial {
	n := len(p.terms)
	clamp := func(i int) int {
		if i < 0 {
			i += n
		}
		if i < 0 {
			return 0
		}
		if i > n {
			return n
		}
		return i
	}
	lo, hi = clamp(lo), clamp(hi)
	if lo >= hi {
		return Zero()
	}
	return New(p.terms[lo:hi]...)
}

// Equal reports whether p and other normalize to the same terms.
func (p *Polynomial) Equal(other *Polynomial) bool {
	a, b := p.Clone().Normalize(), other.Clone().Normalize()
	if len(a.terms) != len(b.terms) {
		return false
	}
	for i := range a.terms {
		if a.terms[i].Exp != b.terms[i].Exp || a.terms[i].Coeff.Cmp(b.terms[i].Coeff) != 0 {
			return false
		}
	}
	return true
}

package gopoly

import "sort"

// Join appends other's terms to p without normalizing. other is unchanged.
func (p *Polynomial) Join(other *Polynomial) *Polynomial {
	p.terms = append(p.terms, other.terms...)
	return p
}

// Simplify merges like terms by summing their coefficients. The result keeps
// one term per exponent, in order of each exponent's first occurrence.
func (p *Polynomial) Simplify() *Polynomial {
	sums := map[int]*Num{}
	order := []int{}
	for _, t := range p.terms {
		if _, seen := sums[t.Exp]; !seen {
			order = append(order, t.Exp)
			sums[t.Exp] = N(0)
		}
		sums[t.Exp] = numAdd(sums[t.Exp], t.Coeff)
	}
	merged := make([]Term, len(order))
	for i, exp := range order {
		merged[i] = Term{Coeff: sums[exp], Exp: exp}
	}
	p.terms = merged
	return p
}

// Sort orders terms by exponent, highest first. Terms sharing an exponent
// keep their relative order.
func (p *Polynomial) Sort() *Polynomial {
	sort.SliceStable(p.terms, func(i, j int) bool {
		return p.terms[i].Exp > p.terms[j].Exp
	})
	return p
}

// Strip drops every term whose coefficient is exactly zero.
func (p *Polynomial) Strip() *Polynomial {
	kept := p.terms[:0]
	for _, t := range p.terms {
		if !t.Coeff.IsZero() {
			kept = append(kept, t)
		}
	}
	// release dropped terms held past len
	for i := len(kept); i < len(p.terms); i++ {
		p.terms[i] = Term{}
	}
	p.terms = kept
	return p
}

// Normalize runs Simplify, Sort and Strip in that order.
func (p *Polynomial) Normalize() *Polynomial {
	return p.Simplify().Sort().Strip()
}

package gopoly

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Map returns exponent → coefficient. Later terms overwrite earlier ones with
// the same exponent, so simplify first.
func (p *Polynomial) Map() map[int]*Num {
	m := make(map[int]*Num, len(p.terms))
	for _, t := range p.terms {
		m[t.Exp] = t.Coeff
	}
	return m
}

// Exponents returns the distinct stored exponents, highest first.
func (p *Polynomial) Exponents() []int {
	exps := maps.Keys(p.Map())
	slices.Sort(exps)
	for i, j := 0, len(exps)-1; i < j; i, j = i+1, j-1 {
		exps[i], exps[j] = exps[j], exps[i]
	}
	return exps
}

// Fingerprint returns the hex blake3 digest of p's canonical text. Polynomials
// that are Equal share a fingerprint regardless of term order.
func (p *Polynomial) Fingerprint() string {
	sum := blake3.Sum256([]byte(p.Clone().Normalize().String()))
	return hex.EncodeToString(sum[:])
}

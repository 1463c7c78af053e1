package gopoly

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Add returns the normalized sum p + other.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	return p.Clone().Join(other).Normalize()
}

// Sub returns the normalized difference p - other.
func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	return p.Clone().Join(other.Neg()).Normalize()
}

// Neg returns a copy of p with every coefficient negated. Term order is kept
// and the result is not normalized.
func (p *Polynomial) Neg() *Polynomial {
	out := &Polynomial{terms: make([]Term, len(p.terms))}
	for i, t := range p.terms {
		out.terms[i] = Term{Coeff: numNeg(t.Coeff), Exp: t.Exp}
	}
	return out
}

// Mul returns the normalized product p * other.
func (p *Polynomial) Mul(other *Polynomial) *Polynomial {
	out := &Polynomial{terms: make([]Term, 0, len(p.terms)*len(other.terms))}
	for _, a := range p.terms {
		for _, b := range other.terms {
			out.terms = append(out.terms, Term{Coeff: numMul(a.Coeff, b.Coeff), Exp: a.Exp + b.Exp})
		}
	}
	return out.Normalize()
}

// Derivative returns the normalized first derivative d/dx.
func (p *Polynomial) Derivative() *Polynomial {
	out := &Polynomial{terms: make([]Term, 0, len(p.terms))}
	for _, t := range p.terms {
		if t.Exp == 0 {
			continue
		}
		out.terms = append(out.terms, Term{Coeff: numMul(t.Coeff, N(int64(t.Exp))), Exp: t.Exp - 1})
	}
	return out.Normalize()
}

// Evaluate returns the sum of coeff·x^exp over the stored terms. Duplicate
// exponents are each counted; normalize first if that is not wanted.
// Evaluating a negative exponent at zero panics.
func (p *Polynomial) Evaluate(x *Num) *Num {
	sum := N(0)
	for _, t := range p.terms {
		sum = numAdd(sum, numMul(t.Coeff, numPow(x, t.Exp)))
	}
	return sum
}

// EvaluateFloat evaluates p at x with x's precision (53 bits if unset).
func (p *Polynomial) EvaluateFloat(x *big.Float) *big.Float {
	prec := x.Prec()
	if prec == 0 {
		prec = 53
	}
	sum := new(big.Float).SetPrec(prec)
	for _, t := range p.terms {
		c := new(big.Float).SetPrec(prec).SetRat(t.Coeff.val)
		sum.Add(sum, c.Mul(c, floatPow(x, t.Exp, prec)))
	}
	return sum
}

// floatPow computes x^exp. bigfloat.Pow only takes a non-negative base, so the
// sign is restored from the parity of exp.
func floatPow(x *big.Float, exp int, prec uint) *big.Float {
	if exp == 0 {
		return new(big.Float).SetPrec(prec).SetInt64(1)
	}
	if x.Sign() == 0 {
		if exp < 0 {
			panic("gopoly: division by zero")
		}
		return new(big.Float).SetPrec(prec)
	}
	base := new(big.Float).SetPrec(prec).Abs(x)
	r := bigfloat.Pow(base, new(big.Float).SetPrec(prec).SetInt64(int64(exp)))
	if x.Sign() < 0 && exp%2 != 0 {
		r.Neg(r)
	}
	return r
}

package gopoly

import (
	"fmt"
	"math/big"
)

// Num is an exact rational number. A Num is never mutated once built; every
// operation allocates a fresh value.
type Num struct{ val *big.Rat }

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }
func F(p, q int64) *Num {
	if q == 0 {
		panic("gopoly: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}
func NFloat(f float64) *Num { return &Num{val: new(big.Rat).SetFloat64(f)} }

// ParseNum reads an integer, a fraction "p/q" or a decimal such as "2.5".
func ParseNum(s string) (*Num, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, DecodeError.New("invalid number %q", s)
	}
	return &Num{val: r}, nil
}

func (n *Num) Float64() float64 { f, _ := n.val.Float64(); return f }
func (n *Num) IsZero() bool     { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool      { return n.val.Cmp(big.NewRat(1, 1)) == 0 }
func (n *Num) IsInteger() bool  { return n.val.IsInt() }
func (n *Num) IsNegative() bool { return n.val.Sign() < 0 }
func (n *Num) Rat() *big.Rat    { return new(big.Rat).Set(n.val) }
func (n *Num) Cmp(o *Num) int   { return n.val.Cmp(o.val) }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }
func numAbs(a *Num) *Num    { return &Num{val: new(big.Rat).Abs(a.val)} }

func numRecip(a *Num) *Num {
	if a.IsZero() {
		panic("gopoly: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

// numPow raises a to an integer power. a^0 is 1 for every a, zero included.
func numPow(a *Num, exp int) *Num {
	if exp < 0 {
		return numRecip(numPow(a, -exp))
	}
	e := big.NewInt(int64(exp))
	num := new(big.Int).Exp(a.val.Num(), e, nil)
	den := new(big.Int).Exp(a.val.Denom(), e, nil)
	return &Num{val: new(big.Rat).SetFrac(num, den)}
}

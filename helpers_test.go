package gopoly_test

import (
	"fmt"
	"math/rand"

	"github.com/njchilds90/gopoly"
)

// termList flattens p into "coeff@exp" strings so go-cmp can diff it.
func termList(p *gopoly.Polynomial) []string {
	ts := p.Terms()
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = fmt.Sprintf("%s@%d", t.Coeff, t.Exp)
	}
	return out
}

// randomPoly returns an unnormalized polynomial with small coefficients, so
// zeros and like terms show up often.
func randomPoly(r *rand.Rand) *gopoly.Polynomial {
	n := r.Intn(7)
	ts := make([]gopoly.Term, n)
	for i := range ts {
		ts[i] = gopoly.T(int64(r.Intn(7)-3), r.Intn(6))
	}
	return gopoly.New(ts...)
}

func sample() *gopoly.Polynomial {
	return gopoly.New(gopoly.T(3, 2), gopoly.T(-1, 1), gopoly.T(5, 0))
}

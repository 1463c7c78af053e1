package gopoly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gopoly"
)

func TestNum_String(t *testing.T) {
	assert.Equal(t, "42", gopoly.N(42).String())
	assert.Equal(t, "1/3", gopoly.F(1, 3).String())
	assert.Equal(t, "2", gopoly.F(4, 2).String())
	assert.Equal(t, "-5/2", gopoly.NFloat(-2.5).String())
}

func TestNum_LaTeX(t *testing.T) {
	assert.Equal(t, `\frac{2}{5}`, gopoly.F(2, 5).LaTeX())
	assert.Equal(t, `-\frac{1}{3}`, gopoly.F(-1, 3).LaTeX())
	assert.Equal(t, "7", gopoly.N(7).LaTeX())
}

func TestNum_Predicates(t *testing.T) {
	assert.True(t, gopoly.N(0).IsZero())
	assert.True(t, gopoly.N(1).IsOne())
	assert.True(t, gopoly.N(-3).IsNegative())
	assert.False(t, gopoly.F(1, 2).IsInteger())
	assert.Equal(t, 0, gopoly.F(2, 4).Cmp(gopoly.F(1, 2)))
}

func TestParseNum(t *testing.T) {
	for in, want := range map[string]string{"3": "3", "-1/2": "-1/2", "2.5": "5/2", "6/4": "3/2"} {
		n, err := gopoly.ParseNum(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, n.String(), in)
	}

	_, err := gopoly.ParseNum("x")
	require.Error(t, err)
	assert.True(t, gopoly.DecodeError.Has(err))
}

func TestF_ZeroDenominator(t *testing.T) {
	assert.Panics(t, func() { gopoly.F(1, 0) })
}

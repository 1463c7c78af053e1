package gopoly_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gopoly"
)

var testKey = []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
	0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

func TestKeyedSource(t *testing.T) {
	t.Run("SameKeySameStream", func(t *testing.T) {
		a, err := gopoly.NewKeyedSource(testKey)
		require.NoError(t, err)
		b, err := gopoly.NewKeyedSource(testKey)
		require.NoError(t, err)
		for i := 0; i < 64; i++ {
			require.Equal(t, a.Uint64(), b.Uint64())
		}
	})

	t.Run("Seed", func(t *testing.T) {
		s, err := gopoly.NewKeyedSource(testKey)
		require.NoError(t, err)
		s.Seed(7)
		first := s.Int63()
		s.Uint64()
		s.Seed(7)
		assert.Equal(t, first, s.Int63())
		assert.GreaterOrEqual(t, first, int64(0))
		assert.Equal(t, testKey, s.Key())
	})

	t.Run("KeyTooLong", func(t *testing.T) {
		_, err := gopoly.NewKeyedSource(make([]byte, 65))
		require.Error(t, err)
	})
}

func TestShuffle(t *testing.T) {
	build := func() *gopoly.Polynomial {
		ts := make([]gopoly.Term, 12)
		for i := range ts {
			ts[i] = gopoly.T(int64(i+1), i)
		}
		return gopoly.New(ts...)
	}

	shuffled := func() []string {
		src, err := gopoly.NewKeyedSource(testKey)
		require.NoError(t, err)
		return termList(build().Shuffle(rand.New(src)))
	}

	first, second := shuffled(), shuffled()
	assert.Equal(t, first, second, "same key must give the same permutation")
	assert.ElementsMatch(t, termList(build()), first)

	p := build()
	p.Shuffle(rand.New(rand.NewSource(42)))
	assert.True(t, p.Equal(build()))
	assert.Equal(t, 12, p.Len())
}

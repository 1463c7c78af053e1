package gopoly_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gopoly"
)

func TestJSON_RoundTrip(t *testing.T) {
	p := gopoly.New(gopoly.T(3, 2), gopoly.TermOf(gopoly.F(1, 2), 0))
	s, err := gopoly.ToJSON(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"poly","var":"x","terms":[{"coeff":"3","exp":2},{"coeff":"1/2","exp":0}]}`, s)

	var back gopoly.Polynomial
	require.NoError(t, json.Unmarshal([]byte(s), &back))
	assert.Equal(t, "3x² + 1/2", back.String())
	assert.True(t, back.Equal(p))
}

func TestJSON_UnmarshalErrors(t *testing.T) {
	for _, in := range []string{
		`{"type":"sym","terms":[]}`,
		`{"terms":[{"coeff":"abc","exp":1}]}`,
		`{"terms":[{"coeff":"1","exp":1.5}]}`,
		`{"var":"y","terms":[]}`,
		`{"terms":[{"coeff":"1","exp":65537}]}`,
		`{"terms":[{"coeff":"1","exp":-65537}]}`,
		`[1,2]`,
	} {
		var p gopoly.Polynomial
		err := json.Unmarshal([]byte(in), &p)
		require.Error(t, err, in)
		assert.True(t, gopoly.DecodeError.Has(err), in)
	}
}

func TestFromJSON(t *testing.T) {
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"poly","terms":[{"coeff":"-1","exp":1},{"coeff":2.5,"exp":0}]}`), &m))
	p, err := gopoly.FromJSON(m)
	require.NoError(t, err)
	assert.Equal(t, "-x + 5/2", p.String())

	bad := []map[string]interface{}{
		nil,
		{"type": "num"},
		{"type": "poly"},
		{"terms": "x"},
		{"terms": []interface{}{"x"}},
		{"terms": []interface{}{map[string]interface{}{"exp": 1.0}}},
		{"terms": []interface{}{map[string]interface{}{"coeff": "1", "exp": 0.5}}},
		{"terms": []interface{}{map[string]interface{}{"coeff": "1"}}},
		{"var": "y", "terms": []interface{}{}},
		{"terms": []interface{}{map[string]interface{}{"coeff": "1", "exp": float64(gopoly.MaxExp + 1)}}},
		{"terms": []interface{}{map[string]interface{}{"coeff": "1", "exp": float64(1 << 24)}}},
	}
	for i, in := range bad {
		_, err := gopoly.FromJSON(in)
		require.Error(t, err, "case %d", i)
		assert.True(t, gopoly.DecodeError.Has(err), "case %d", i)
	}
}

func TestJSON_ExponentBound(t *testing.T) {
	var p gopoly.Polynomial
	require.NoError(t, json.Unmarshal([]byte(`{"var":"x","terms":[{"coeff":"1","exp":65536},{"coeff":"1","exp":-65536}]}`), &p))
	assert.Equal(t, 2, p.Len())

	m := map[string]interface{}{"terms": []interface{}{map[string]interface{}{"coeff": "1", "exp": float64(gopoly.MaxExp)}}}
	_, err := gopoly.FromJSON(m)
	require.NoError(t, err)
}

func TestJSON_UnmarshalKeepsCoeffError(t *testing.T) {
	var p gopoly.Polynomial
	err := json.Unmarshal([]byte(`{"terms":[{"coeff":"abc","exp":1}]}`), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terms[0]: coeff:")
	assert.Contains(t, err.Error(), `invalid number "abc"`)
}

package gopoly

import (
	"encoding/json"
	"math"
)

// MaxExp bounds the magnitude of exponents accepted from JSON. Decoded input
// feeds exact big.Int powers, so an unbounded exponent costs unbounded work.
const MaxExp = 1 << 16

type jsonTerm struct {
	Coeff string `json:"coeff"`
	Exp   int    `json:"exp"`
}

type jsonPoly struct {
	Type  string     `json:"type"`
	Var   string     `json:"var"`
	Terms []jsonTerm `json:"terms"`
}

// MarshalJSON encodes p as {"type":"poly","var":"x","terms":[{"coeff":"3","exp":2},...]}
// in storage order. Coefficients are strings so rationals stay exact.
func (p *Polynomial) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toJSON())
}

func (p *Polynomial) toJSON() jsonPoly {
	out := jsonPoly{Type: "poly", Var: "x", Terms: make([]jsonTerm, len(p.terms))}
	for i, t := range p.terms {
		out.Terms[i] = jsonTerm{Coeff: t.Coeff.String(), Exp: t.Exp}
	}
	return out
}

func (p *Polynomial) UnmarshalJSON(data []byte) error {
	var in jsonPoly
	if err := json.Unmarshal(data, &in); err != nil {
		return DecodeError.Wrap(err)
	}
	if in.Type != "" && in.Type != "poly" {
		return DecodeError.New("unexpected type %q", in.Type)
	}
	if in.Var != "" && in.Var != "x" {
		return DecodeError.New("unsupported variable %q", in.Var)
	}
	terms := make([]Term, len(in.Terms))
	for i, t := range in.Terms {
		c, err := ParseNum(t.Coeff)
		if err != nil {
			return DecodeError.New("terms[%d]: coeff: %v", i, err)
		}
		if t.Exp > MaxExp || t.Exp < -MaxExp {
			return DecodeError.New("terms[%d]: exp %d exceeds ±%d", i, t.Exp, MaxExp)
		}
		terms[i] = Term{Coeff: c, Exp: t.Exp}
	}
	p.terms = terms
	return nil
}

func ToJSON(p *Polynomial) (string, error) {
	b, err := json.Marshal(p)
	return string(b), err
}

// FromJSON builds a polynomial from an already decoded JSON object, as found
// in tool call parameters. A coeff may be a string or a JSON number; exp must
// be an integral number no larger than MaxExp in magnitude.
func FromJSON(data map[string]interface{}) (*Polynomial, error) {
	if data == nil {
		return nil, DecodeError.New("polynomial must be an object")
	}
	if typ, ok := data["type"]; ok && typ != "poly" {
		return nil, DecodeError.New("unexpected type %v", typ)
	}
	if v, ok := data["var"]; ok && v != "x" {
		return nil, DecodeError.New("unsupported variable %v", v)
	}
	raw, ok := data["terms"]
	if !ok {
		return nil, DecodeError.New("poly: missing \"terms\"")
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, DecodeError.New("poly: \"terms\" must be an array")
	}
	terms := make([]Term, len(list))
	for i, it := range list {
		m, ok := it.(map[string]interface{})
		if !ok {
			return nil, DecodeError.New("poly: terms[%d] must be an object", i)
		}
		c, err := numParam(m["coeff"])
		if err != nil {
			return nil, DecodeError.New("poly: terms[%d]: coeff: %v", i, err)
		}
		e, ok := m["exp"].(float64)
		if !ok || e != math.Trunc(e) {
			return nil, DecodeError.New("poly: terms[%d]: exp must be an integer", i)
		}
		if math.Abs(e) > MaxExp {
			return nil, DecodeError.New("poly: terms[%d]: exp %v exceeds ±%d", i, e, MaxExp)
		}
		terms[i] = Term{Coeff: c, Exp: int(e)}
	}
	return New(terms...), nil
}

// numParam reads a number given either as a JSON number or as a string.
func numParam(v interface{}) (*Num, error) {
	switch x := v.(type) {
	case string:
		return ParseNum(x)
	case float64:
		return NFloat(x), nil
	case nil:
		return nil, DecodeError.New("missing number")
	}
	return nil, DecodeError.New("number must be a string or a number, got %T", v)
}

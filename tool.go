package gopoly

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func HandleToolCall(req ToolRequest) ToolResponse {
	getPoly := func(key string) (*Polynomial, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, DecodeError.New("missing param: %s", key)
		}
		val, ok := v.(map[string]interface{})
		if !ok {
			return nil, DecodeError.New("invalid type for param %s", key)
		}
		return FromJSON(val)
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", DecodeError.New("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", DecodeError.New("param %s must be a string", key)
		}
		return s, nil
	}
	respond := func(p *Polynomial) ToolResponse {
		return ToolResponse{Result: p.toJSON(), String: p.String(), LaTeX: p.LaTeX()}
	}
	binary := func(op func(a, b *Polynomial) *Polynomial) ToolResponse {
		a, err := getPoly("a")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		b, err := getPoly("b")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		out := op(a, b)
		if out == nil {
			return ToolResponse{Error: fmt.Sprintf("%s: %d x %d terms exceeds the %d term product limit", req.Tool, a.Len(), b.Len(), maxProductTerms)}
		}
		return respond(out)
	}

	switch req.Tool {
	case "normalize":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(p.Normalize())

	case "add":
		return binary((*Polynomial).Add)

	case "sub":
		return binary((*Polynomial).Sub)

	case "mul":
		return binary(func(a, b *Polynomial) *Polynomial {
			if a.Len()*b.Len() > maxProductTerms {
				return nil
			}
			return a.Mul(b)
		})

	case "neg":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(p.Neg())

	case "derivative":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(p.Derivative())

	case "evaluate":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		x, err := numParam(req.Params["x"])
		if err != nil {
			return ToolResponse{Error: fmt.Sprintf("param x: %v", err)}
		}
		if p.hasNegativeExpAtZero(x) {
			return ToolResponse{Error: "evaluate: negative exponent at x = 0"}
		}
		if bits := p.powerBits(x); bits > maxEvalBits {
			return ToolResponse{Error: fmt.Sprintf("evaluate: x^exp needs about %d bits, limit is %d", bits, maxEvalBits)}
		}
		v := p.Evaluate(x)
		return ToolResponse{Result: v.String(), String: v.String(), LaTeX: v.LaTeX()}

	case "degree":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		d, ok := p.Degree()
		if !ok {
			return ToolResponse{Result: nil, String: "none"}
		}
		return ToolResponse{Result: d, String: strconv.Itoa(d)}

	case "to_latex":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{LaTeX: p.LaTeX(), String: p.String()}

	case "to_map":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		m := p.Map()
		result := make(map[string]string, len(m))
		for exp, c := range m {
			result[strconv.Itoa(exp)] = c.String()
		}
		return ToolResponse{Result: result}

	case "describe":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{String: p.Describe()}

	case "shuffle":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		seed, err := getString("seed")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		src, err := NewKeyedSource([]byte(seed))
		if err != nil {
			return ToolResponse{Error: fmt.Sprintf("param seed: %v", err)}
		}
		return respond(p.Shuffle(rand.New(src)))

	case "fingerprint":
		p, err := getPoly("poly")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		fp := p.Fingerprint()
		return ToolResponse{Result: fp, String: fp}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// Work limits for tool calls. Decoded exponents are already bounded by MaxExp;
// these bound what a single request can make the evaluator and multiplier do.
const (
	maxEvalBits     = 1 << 22
	maxProductTerms = 1 << 20
)

// powerBits estimates the size of the largest exact power x^|exp| that
// Evaluate would build for p.
func (p *Polynomial) powerBits(x *Num) int {
	xBits := x.val.Num().BitLen() + x.val.Denom().BitLen()
	most := 0
	for _, t := range p.terms {
		e := t.Exp
		if e < 0 {
			e = -e
		}
		if e > most {
			most = e
		}
	}
	return most * xBits
}

func (p *Polynomial) hasNegativeExpAtZero(x *Num) bool {
	if !x.IsZero() {
		return false
	}
	for _, t := range p.terms {
		if t.Exp < 0 {
			return true
		}
	}
	return false
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	poly := map[string]interface{}{"poly": "object"}
	pair := map[string]interface{}{"a": "object", "b": "object"}
	tools := []map[string]interface{}{
		ts("normalize", "Merge like terms, sort by exponent descending, drop zero terms", []string{"poly"}, poly),
		ts("add", "Normalized sum a + b", []string{"a", "b"}, pair),
		ts("sub", "Normalized difference a - b", []string{"a", "b"}, pair),
		ts("mul", "Normalized product a * b", []string{"a", "b"}, pair),
		ts("neg", "Negate every coefficient, order kept", []string{"poly"}, poly),
		ts("derivative", "First derivative d/dx", []string{"poly"}, poly),
		ts("evaluate", "Exact value at x. x is a number or a rational string", []string{"poly", "x"}, map[string]interface{}{"poly": "object", "x": []string{"string", "number"}}),
		ts("degree", "Highest exponent with a nonzero coefficient, null for the zero polynomial", []string{"poly"}, poly),
		ts("to_latex", "Render as LaTeX", []string{"poly"}, poly),
		ts("to_map", "Exponent to coefficient map (last write wins)", []string{"poly"}, poly),
		ts("describe", "Length, degree and text summary", []string{"poly"}, poly),
		ts("shuffle", "Deterministically permute terms from a seed string", []string{"poly", "seed"}, map[string]interface{}{"poly": "object", "seed": "string"}),
		ts("fingerprint", "blake3 digest of the canonical form", []string{"poly"}, poly),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]interface{}{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]interface{}) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

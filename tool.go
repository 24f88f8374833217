package splitoct

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/njchilds90/splitoct/gosymbol"
)

// ============================================================
// Operands
// ============================================================

// OperandKind tags the two operand shapes accepted by the tool interface.
type OperandKind string

const (
	KindOctonion OperandKind = "octonion"
	KindScalar   OperandKind = "scalar"
)

// Operand is either a split-octonion or a scalar expression.
type Operand struct {
	Kind     OperandKind
	Octonion *SplitOctonion
	Scalar   gosymbol.Expr
}

// ParseOperand decodes {"kind":"octonion","coeffs":[...8]},
// {"kind":"scalar","value":expr}, a bare array of 8 expressions, or a bare
// scalar expression.
func ParseOperand(v interface{}) (Operand, error) {
	switch x := v.(type) {
	case []interface{}:
		return parseOctonion(x)
	case map[string]interface{}:
		kind, tagged := x["kind"].(string)
		if !tagged {
			break
		}
		switch OperandKind(kind) {
		case KindOctonion:
			raw, ok := x["coeffs"].([]interface{})
			if !ok {
				return Operand{}, fmt.Errorf("octonion operand: %q must be an array", "coeffs")
			}
			return parseOctonion(raw)
		case KindScalar:
			e, err := gosymbol.FromJSONValue(x["value"])
			if err != nil {
				return Operand{}, fmt.Errorf("scalar operand: %w", err)
			}
			return Operand{Kind: KindScalar, Scalar: e}, nil
		}
		return Operand{}, fmt.Errorf("unknown operand kind %q", kind)
	}
	e, err := gosymbol.FromJSONValue(v)
	if err != nil {
		return Operand{}, err
	}
	return Operand{Kind: KindScalar, Scalar: e}, nil
}

func parseOctonion(raw []interface{}) (Operand, error) {
	if len(raw) != Dim {
		return Operand{}, fmt.Errorf("%w: got %d", ErrDimension, len(raw))
	}
	c := make([]gosymbol.Expr, Dim)
	for i, r := range raw {
		e, err := gosymbol.FromJSONValue(r)
		if err != nil {
			return Operand{}, fmt.Errorf("coeffs[%d]: %w", i, err)
		}
		c[i] = e
	}
	x, err := New(c)
	if err != nil {
		return Operand{}, err
	}
	return Operand{Kind: KindOctonion, Octonion: x}, nil
}

// ============================================================
// Tool Interface
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

var errScalarOnly = errors.New("at least one operand must be a split-octonion")

// HandleToolCall evaluates one tool request. Failures are reported in
// ToolResponse.Error, never as a panic.
func HandleToolCall(req ToolRequest) (resp ToolResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			resp = ToolResponse{Error: fmt.Sprintf("%s: %v", req.Tool, rec)}
		}
	}()
	result, err := dispatch(req)
	if err != nil {
		return ToolResponse{Error: err.Error()}
	}
	return result
}

func dispatch(req ToolRequest) (ToolResponse, error) {
	operand := func(key string) (Operand, error) {
		v, ok := req.Params[key]
		if !ok {
			return Operand{}, fmt.Errorf("missing param: %s", key)
		}
		op, err := ParseOperand(v)
		if err != nil {
			return Operand{}, fmt.Errorf("param %s: %w", key, err)
		}
		return op, nil
	}
	octonion := func(key string) (*SplitOctonion, error) {
		op, err := operand(key)
		if err != nil {
			return nil, err
		}
		if op.Kind != KindOctonion {
			return nil, fmt.Errorf("param %s: %w", key, ErrNotSplitOctonion)
		}
		return op.Octonion, nil
	}

	unary := map[string]func(*SplitOctonion) (*SplitOctonion, error){
		"neg":      func(x *SplitOctonion) (*SplitOctonion, error) { return x.Neg(), nil },
		"conj":     func(x *SplitOctonion) (*SplitOctonion, error) { return x.Conj(), nil },
		"conj_j":   func(x *SplitOctonion) (*SplitOctonion, error) { return x.Conjj(), nil },
		"conj_I":   func(x *SplitOctonion) (*SplitOctonion, error) { return x.ConjI(), nil },
		"conj_J":   func(x *SplitOctonion) (*SplitOctonion, error) { return x.ConjJ(), nil },
		"star":     func(x *SplitOctonion) (*SplitOctonion, error) { return x.Star(), nil },
		"imag":     func(x *SplitOctonion) (*SplitOctonion, error) { return x.Imag(), nil },
		"inverse":  func(x *SplitOctonion) (*SplitOctonion, error) { return x.Inv() },
		"simplify": func(x *SplitOctonion) (*SplitOctonion, error) { return x.Simplify(), nil },
		"latex":    func(x *SplitOctonion) (*SplitOctonion, error) { return x, nil },
	}
	if fn, ok := unary[req.Tool]; ok {
		x, err := octonion("x")
		if err != nil {
			return ToolResponse{}, err
		}
		y, err := fn(x)
		if err != nil {
			return ToolResponse{}, err
		}
		return octonionResponse(y), nil
	}

	switch req.Tool {
	case "add", "sub", "mul", "div":
		x, err := operand("x")
		if err != nil {
			return ToolResponse{}, err
		}
		y, err := operand("y")
		if err != nil {
			return ToolResponse{}, err
		}
		z, err := binary(req.Tool, x, y)
		if err != nil {
			return ToolResponse{}, err
		}
		return octonionResponse(z), nil

	case "dot":
		x, err := octonion("x")
		if err != nil {
			return ToolResponse{}, err
		}
		y, err := octonion("y")
		if err != nil {
			return ToolResponse{}, err
		}
		d, err := x.Dot(y)
		if err != nil {
			return ToolResponse{}, err
		}
		return exprResponse(d), nil

	case "quadrance":
		x, err := octonion("x")
		if err != nil {
			return ToolResponse{}, err
		}
		return exprResponse(x.Quadrance()), nil

	case "left_derivative":
		x, err := octonion("x")
		if err != nil {
			return ToolResponse{}, err
		}
		wrt, err := operand("wrt")
		if err != nil {
			return ToolResponse{}, err
		}
		var d *SplitOctonion
		if wrt.Kind == KindOctonion {
			d, err = x.LeftDerivative(wrt.Octonion)
		} else {
			d, err = x.Derivative(wrt.Scalar)
		}
		if err != nil {
			return ToolResponse{}, err
		}
		return octonionResponse(d), nil

	case "equal":
		x, err := octonion("x")
		if err != nil {
			return ToolResponse{}, err
		}
		y, err := operand("y")
		if err != nil {
			return ToolResponse{}, err
		}
		eq := y.Kind == KindOctonion && x.Equal(y.Octonion) ||
			y.Kind == KindScalar && x.EqualScalar(y.Scalar)
		return ToolResponse{Result: eq}, nil

	case "free_symbols":
		x, err := octonion("x")
		if err != nil {
			return ToolResponse{}, err
		}
		seen := map[string]bool{}
		names := []string{}
		for _, c := range x.c {
			for _, n := range gosymbol.FreeSymbols(c) {
				if !seen[n] {
					seen[n] = true
					names = append(names, n)
				}
			}
		}
		return ToolResponse{Result: names}, nil

	case "evaluate":
		x, err := octonion("x")
		if err != nil {
			return ToolResponse{}, err
		}
		values := map[string]gosymbol.Expr{}
		if raw, ok := req.Params["values"]; ok {
			m, ok := raw.(map[string]interface{})
			if !ok {
				return ToolResponse{}, fmt.Errorf("param values: must be an object of symbol values")
			}
			for name, v := range m {
				e, err := gosymbol.FromJSONValue(v)
				if err != nil {
					return ToolResponse{}, fmt.Errorf("param values: %s: %w", name, err)
				}
				values[name] = e
			}
		}
		nums, err := x.Evaluate(values)
		if err != nil {
			return ToolResponse{}, err
		}
		return ToolResponse{Result: nums, String: x.Subs(values).String()}, nil

	case "tool_spec":
		var spec interface{}
		if err := json.Unmarshal([]byte(ToolSpec()), &spec); err != nil {
			return ToolResponse{}, err
		}
		return ToolResponse{Result: spec}, nil
	}
	return ToolResponse{}, fmt.Errorf("unknown tool: %s", req.Tool)
}

// binary applies an arithmetic tool to a tagged operand pair.
func binary(tool string, x, y Operand) (*SplitOctonion, error) {
	xo, yo := x.Kind == KindOctonion, y.Kind == KindOctonion
	switch {
	case xo && yo:
		switch tool {
		case "add":
			return x.Octonion.Add(y.Octonion), nil
		case "sub":
			return x.Octonion.Sub(y.Octonion), nil
		case "mul":
			return x.Octonion.Mul(y.Octonion), nil
		}
		return x.Octonion.Div(y.Octonion)
	case xo:
		switch tool {
		case "add":
			return x.Octonion.AddScalar(y.Scalar), nil
		case "sub":
			return x.Octonion.SubScalar(y.Scalar), nil
		case "mul":
			return x.Octonion.MulScalar(y.Scalar), nil
		}
		return x.Octonion.DivScalar(y.Scalar)
	case yo:
		switch tool {
		case "add":
			return y.Octonion.ScalarAdd(x.Scalar), nil
		case "sub":
			return y.Octonion.ScalarSub(x.Scalar), nil
		case "mul":
			return y.Octonion.ScalarMul(x.Scalar), nil
		}
		return nil, ErrDivisionUnsupported
	}
	return nil, errScalarOnly
}

func octonionResponse(x *SplitOctonion) ToolResponse {
	coeffs := make([]interface{}, Dim)
	for i, c := range x.c {
		coeffs[i] = gosymbol.JSONValue(c)
	}
	return ToolResponse{
		Result: map[string]interface{}{"kind": string(KindOctonion), "coeffs": coeffs},
		LaTeX:  x.LaTeX(),
		String: x.String(),
	}
}

func exprResponse(e gosymbol.Expr) ToolResponse {
	return ToolResponse{
		Result: gosymbol.JSONValue(e),
		LaTeX:  gosymbol.LaTeX(e),
		String: gosymbol.String(e),
	}
}

// ToolSpec returns the JSON schema of every tool, for agent registration.
func ToolSpec() string {
	oct := map[string]string{"x": "object"}
	pair := map[string]string{"x": "object", "y": "object"}
	tools := []map[string]interface{}{
		ts("add", "x + y; a scalar operand is added to the real part", []string{"x", "y"}, pair),
		ts("sub", "x - y; a scalar operand acts on the real part", []string{"x", "y"}, pair),
		ts("mul", "Split-octonion product x*y (non-associative, non-commutative)", []string{"x", "y"}, pair),
		ts("div", "x / scalar. Division by a split-octonion is rejected; use inverse", []string{"x", "y"}, pair),
		ts("neg", "Negate all components", []string{"x"}, oct),
		ts("conj", "Full conjugate: negate all imaginary components", []string{"x"}, oct),
		ts("conj_j", "Negate j1, j2, j3", []string{"x"}, oct),
		ts("conj_I", "Negate I", []string{"x"}, oct),
		ts("conj_J", "Negate J1, J2, J3", []string{"x"}, oct),
		ts("star", "Negate I, J1, J2, J3", []string{"x"}, oct),
		ts("imag", "Zero the real part", []string{"x"}, oct),
		ts("dot", "Bilinear form of signature (4,4)", []string{"x", "y"}, pair),
		ts("quadrance", "dot(x, x)", []string{"x"}, oct),
		ts("inverse", "conj(x)/quadrance(x); fails for null values", []string{"x"}, oct),
		ts("left_derivative", "d x / d wrt; wrt is a split-octonion of symbols or a scalar symbol", []string{"x", "wrt"}, map[string]string{"x": "object", "wrt": "object"}),
		ts("equal", "Simplification-aware equality", []string{"x", "y"}, pair),
		ts("simplify", "Canonical form of every component", []string{"x"}, oct),
		ts("latex", "Render x", []string{"x"}, oct),
		ts("free_symbols", "Symbols occurring in x", []string{"x"}, oct),
		ts("evaluate", "Numeric coefficients of x after substituting values, an object of symbol name to number", []string{"x"}, map[string]string{"x": "object", "values": "object"}),
		ts("tool_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	b, _ := json.MarshalIndent(map[string]interface{}{"tools": tools}, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
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

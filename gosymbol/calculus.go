package gosymbol

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
)

// ErrNotSymbol is returned when differentiating with respect to an
// expression that does not simplify to a single symbol.
var ErrNotSymbol = errors.New("gosymbol: can only differentiate with respect to a symbol")

// ============================================================
// Top-level convenience functions
// ============================================================

func String(e Expr) string { return e.String() }
func LaTeX(e Expr) string  { return e.LaTeX() }

// Diff returns the canonical partial derivative of expr with respect to varName.
func Diff(expr Expr, varName string) Expr {
	return Simplify(expr.Diff(varName))
}

// Differentiate is Diff with the variable given as an expression.
func Differentiate(expr, wrt Expr) (Expr, error) {
	s, ok := Simplify(wrt).(*Sym)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotSymbol, wrt.String())
	}
	return Diff(expr, s.name), nil
}

// Expand distributes products and integer powers. The result is the
// canonical form, so it also collects like terms.
func Expand(e Expr) Expr { return Simplify(e) }

// Subs replaces every symbol named in values and returns the canonical
// result. Symbols not in values are left alone.
func Subs(expr Expr, values map[string]Expr) Expr {
	return Simplify(subs(expr, values))
}

func subs(e Expr, values map[string]Expr) Expr {
	switch v := e.(type) {
	case *Sym:
		if r, ok := values[v.name]; ok {
			return r
		}
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = subs(t, values)
		}
		return AddOf(terms...)
	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = subs(f, values)
		}
		return MulOf(factors...)
	case *Pow:
		return PowOf(subs(v.base, values), subs(v.exp, values))
	case *Func:
		return funcOf(v.name, subs(v.arg, values)).Simplify()
	}
	return e
}

// Float evaluates e to a float64 when it has a closed numeric value.
func Float(e Expr) (float64, bool) {
	n, ok := Simplify(e).Eval()
	if !ok {
		return 0, false
	}
	return n.Float64(), true
}

// ============================================================
// Factoring
// ============================================================

// Factor pulls the signed rational content and the common monomial out of
// the canonical numerator of expr:
//
//	-3*a*b - 6*a  ->  -3*a*(b + 2)
func Factor(expr Expr) Expr {
	r := toRat(expr)
	if r.num.isZero() {
		return N(0)
	}
	content := r.num.content()
	mono := r.num.monoGCD()
	prim := r.num.scale(new(big.Rat).Inv(content)).divMono(mono)

	factors := []Expr{}
	if c := (&Num{val: content}); !c.IsOne() {
		factors = append(factors, c)
	}
	factors = append(factors, mono.factors()...)
	if !prim.isOne() {
		factors = append(factors, prim.toExpr())
	}
	if !r.den.isOne() {
		factors = append(factors, &Pow{base: r.den.toExpr(), exp: N(-1)})
	}
	switch len(factors) {
	case 0:
		return N(1)
	case 1:
		return factors[0]
	}
	return &Mul{factors: factors}
}

// ============================================================
// Free Symbols
// ============================================================

// FreeSymbols returns the sorted names of the symbols occurring in e.
func FreeSymbols(e Expr) []string {
	seen := map[string]struct{}{}
	collectSymbols(e, seen)
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Func:
		collectSymbols(v.arg, out)
	}
}

package splitoct

import (
	"fmt"

	"github.com/njchilds90/splitoct/gosymbol"
)

// ============================================================
// Structure constants
// ============================================================

// product is one signed term x[a]*y[b] of a coefficient of x*y.
type product struct{ a, b, sign int }

// productTerms[k] lists the eight signed products summed into (x*y)[k].
var productTerms = [Dim][Dim]product{
	{{0, 0, +1}, {1, 1, -1}, {2, 2, -1}, {3, 3, -1}, {4, 4, +1}, {5, 5, +1}, {6, 6, +1}, {7, 7, +1}},
	{{0, 1, +1}, {1, 0, +1}, {2, 3, +1}, {3, 2, -1}, {4, 5, -1}, {5, 4, +1}, {6, 7, +1}, {7, 6, -1}},
	{{0, 2, +1}, {1, 3, -1}, {2, 0, +1}, {3, 1, +1}, {4, 6, -1}, {5, 7, -1}, {6, 4, +1}, {7, 5, +1}},
	{{0, 3, +1}, {1, 2, +1}, {2, 1, -1}, {3, 0, +1}, {4, 7, -1}, {5, 6, +1}, {6, 5, -1}, {7, 4, +1}},
	{{0, 4, +1}, {1, 5, -1}, {2, 6, -1}, {3, 7, -1}, {4, 0, +1}, {5, 1, +1}, {6, 2, +1}, {7, 3, +1}},
	{{0, 5, +1}, {1, 4, +1}, {2, 7, -1}, {3, 6, +1}, {4, 1, -1}, {5, 0, +1}, {6, 3, -1}, {7, 2, +1}},
	{{0, 6, +1}, {1, 7, +1}, {2, 4, +1}, {3, 5, -1}, {4, 2, -1}, {5, 3, +1}, {6, 0, +1}, {7, 1, -1}},
	{{0, 7, +1}, {1, 6, -1}, {2, 5, +1}, {3, 4, +1}, {4, 3, -1}, {5, 2, -1}, {6, 1, +1}, {7, 0, +1}},
}

// formSigns is the diagonal of the (4,4) bilinear form.
var formSigns = [Dim]int64{+1, +1, +1, +1, -1, -1, -1, -1}

// signed returns e, or -e for a negative sign.
func signed(sign int, e gosymbol.Expr) gosymbol.Expr {
	if sign < 0 {
		return gosymbol.MulOf(gosymbol.N(-1), e)
	}
	return e
}

// ============================================================
// Conjugations
// ============================================================

// flip negates the coefficients whose index is listed.
func (x *SplitOctonion) flip(idx ...int) *SplitOctonion {
	y := x.Copy()
	for _, i := range idx {
		y.c[i] = gosymbol.MulOf(gosymbol.N(-1), y.c[i])
	}
	return y
}

// Conj negates all seven imaginary coefficients.
func (x *SplitOctonion) Conj() *SplitOctonion { return x.flip(1, 2, 3, 4, 5, 6, 7) }

// Conjj negates j1, j2, j3.
func (x *SplitOctonion) Conjj() *SplitOctonion { return x.flip(1, 2, 3) }

// ConjI negates I only.
func (x *SplitOctonion) ConjI() *SplitOctonion { return x.flip(4) }

// ConjJ negates J1, J2, J3.
func (x *SplitOctonion) ConjJ() *SplitOctonion { return x.flip(5, 6, 7) }

// Star negates I, J1, J2, J3.
func (x *SplitOctonion) Star() *SplitOctonion { return x.flip(4, 5, 6, 7) }

// Neg negates all eight coefficients.
func (x *SplitOctonion) Neg() *SplitOctonion { return x.flip(0, 1, 2, 3, 4, 5, 6, 7) }

// Conj is the free-function form of x.Conj().
func Conj(x *SplitOctonion) *SplitOctonion { return x.Conj() }

// ============================================================
// Addition and subtraction
// ============================================================

// Add returns x + y, componentwise.
func (x *SplitOctonion) Add(y *SplitOctonion) *SplitOctonion {
	return build(func(i int) gosymbol.Expr { return gosymbol.AddOf(x.c[i], y.c[i]) }).Simplify()
}

// Sub returns x - y, componentwise.
func (x *SplitOctonion) Sub(y *SplitOctonion) *SplitOctonion {
	return build(func(i int) gosymbol.Expr { return gosymbol.SubOf(x.c[i], y.c[i]) }).Simplify()
}

// AddScalar returns x + s, with s added to the real part only.
func (x *SplitOctonion) AddScalar(s gosymbol.Expr) *SplitOctonion {
	y := x.Copy()
	y.c[0] = gosymbol.AddOf(y.c[0], s)
	return y.Simplify()
}

// SubScalar returns x - s, with s subtracted from the real part only.
func (x *SplitOctonion) SubScalar(s gosymbol.Expr) *SplitOctonion {
	y := x.Copy()
	y.c[0] = gosymbol.SubOf(y.c[0], s)
	return y.Simplify()
}

// ScalarAdd returns s + x, which equals x + s.
func (x *SplitOctonion) ScalarAdd(s gosymbol.Expr) *SplitOctonion { return x.AddScalar(s) }

// ScalarSub returns s - x: every coefficient negated and s added to the real part.
func (x *SplitOctonion) ScalarSub(s gosymbol.Expr) *SplitOctonion {
	y := x.Neg()
	y.c[0] = gosymbol.AddOf(s, y.c[0])
	return y.Simplify()
}

// ============================================================
// Multiplication and division
// ============================================================

// Mul returns the split-octonion product x*y. The product is neither
// commutative nor associative.
func (x *SplitOctonion) Mul(y *SplitOctonion) *SplitOctonion {
	return build(func(k int) gosymbol.Expr {
		terms := make([]gosymbol.Expr, 0, Dim)
		for _, p := range productTerms[k] {
			terms = append(terms, signed(p.sign, gosymbol.MulOf(x.c[p.a], y.c[p.b])))
		}
		return gosymbol.AddOf(terms...)
	}).Simplify()
}

// MulScalar returns x*s, every coefficient multiplied by s.
func (x *SplitOctonion) MulScalar(s gosymbol.Expr) *SplitOctonion {
	return build(func(i int) gosymbol.Expr { return gosymbol.MulOf(x.c[i], s) }).Simplify()
}

// ScalarMul returns s*x. Scalars commute with every split-octonion.
func (x *SplitOctonion) ScalarMul(s gosymbol.Expr) *SplitOctonion {
	return build(func(i int) gosymbol.Expr { return gosymbol.MulOf(s, x.c[i]) }).Simplify()
}

// DivScalar returns x/s, every coefficient divided by s.
func (x *SplitOctonion) DivScalar(s gosymbol.Expr) (*SplitOctonion, error) {
	if gosymbol.IsZero(s) {
		return nil, fmt.Errorf("%w: scalar %s", ErrDivisionByZero, s.String())
	}
	return build(func(i int) gosymbol.Expr { return gosymbol.DivOf(x.c[i], s) }).Simplify(), nil
}

// Div always fails: the quotient of two split-octonions is not defined here.
// Use x.Mul(y.Inv()) or y.Inv().Mul(x), which differ in general.
func (x *SplitOctonion) Div(*SplitOctonion) (*SplitOctonion, error) {
	return nil, ErrDivisionUnsupported
}

// ============================================================
// Bilinear form, quadrance, inverse
// ============================================================

// Dot returns the bilinear form
//
//	x0y0 + x1y1 + x2y2 + x3y3 - x4y4 - x5y5 - x6y6 - x7y7.
func (x *SplitOctonion) Dot(y *SplitOctonion) (gosymbol.Expr, error) {
	if y == nil {
		return nil, ErrNotSplitOctonion
	}
	terms := make([]gosymbol.Expr, Dim)
	for i := range terms {
		terms[i] = gosymbol.MulOf(gosymbol.N(formSigns[i]), x.c[i], y.c[i])
	}
	return gosymbol.Simplify(gosymbol.AddOf(terms...)), nil
}

// Quadrance returns Dot(x, x). The form is indefinite, so the quadrance of a
// non-zero value may be negative or zero.
func (x *SplitOctonion) Quadrance() gosymbol.Expr {
	q, _ := x.Dot(x)
	return q
}

// Inv returns Conj(x)/Quadrance(x). Null values, whose quadrance simplifies
// to zero, have no inverse.
func (x *SplitOctonion) Inv() (*SplitOctonion, error) {
	q := x.Quadrance()
	if gosymbol.IsZero(q) {
		return nil, fmt.Errorf("%w: quadrance of %s is 0", ErrDivisionByZero, x.String())
	}
	return x.Conj().DivScalar(q)
}

// ============================================================
// Derivatives
// ============================================================

// LeftDerivative differentiates x with respect to the split-octonion
// variable y. Coefficient k of the result is half the sum, over the product
// terms of (x*y)[k], of sign * d x[a] / d y[b]. Every coefficient of y must
// be a symbol.
func (x *SplitOctonion) LeftDerivative(y *SplitOctonion) (*SplitOctonion, error) {
	if y == nil {
		return nil, ErrNotSplitOctonion
	}
	half := gosymbol.F(1, 2)
	c := make([]gosymbol.Expr, Dim)
	for k := range c {
		terms := make([]gosymbol.Expr, 0, Dim)
		for _, p := range productTerms[k] {
			d, err := gosymbol.Differentiate(x.c[p.a], y.c[p.b])
			if err != nil {
				return nil, fmt.Errorf("splitoct: left derivative, coefficient %d: %w", p.b, err)
			}
			terms = append(terms, signed(p.sign, d))
		}
		c[k] = gosymbol.MulOf(half, gosymbol.AddOf(terms...))
	}
	return (&SplitOctonion{c: c}).Simplify(), nil
}

// Derivative returns the componentwise partial derivative of x with respect
// to the scalar variable wrt.
func (x *SplitOctonion) Derivative(wrt gosymbol.Expr) (*SplitOctonion, error) {
	c := make([]gosymbol.Expr, Dim)
	for i, v := range x.c {
		d, err := gosymbol.Differentiate(v, wrt)
		if err != nil {
			return nil, fmt.Errorf("splitoct: derivative: %w", err)
		}
		c[i] = d
	}
	return &SplitOctonion{c: c}, nil
}

// Subs replaces the named symbols in every coefficient of x.
func (x *SplitOctonion) Subs(values map[string]gosymbol.Expr) *SplitOctonion {
	return build(func(i int) gosymbol.Expr { return gosymbol.Subs(x.c[i], values) })
}

// Evaluate substitutes values into x and returns the eight coefficients as
// floats.
func (x *SplitOctonion) Evaluate(values map[string]gosymbol.Expr) ([]float64, error) {
	out := make([]float64, Dim)
	for i, c := range x.Subs(values).c {
		v, ok := gosymbol.Float(c)
		if !ok {
			return nil, fmt.Errorf("%w: coefficient %d is %s", ErrNotNumeric, i, c.String())
		}
		out[i] = v
	}
	return out, nil
}

// ============================================================
// Equality
// ============================================================

// Equal reports whether every coefficient difference simplifies to zero.
func (x *SplitOctonion) Equal(y *SplitOctonion) bool {
	if y == nil {
		return false
	}
	for i := range x.c {
		if !gosymbol.Same(x.c[i], y.c[i]) {
			return false
		}
	}
	return true
}

// EqualScalar compares x with the real embedding of s.
func (x *SplitOctonion) EqualScalar(s gosymbol.Expr) bool {
	return x.Equal(FromScalar(s))
}

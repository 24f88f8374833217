// Package splitoct implements arithmetic over split-octonions, the
// 8-dimensional non-associative composition algebra with a quadratic form of
// signature (4,4), whose coefficients are symbolic expressions.
//
// A split-octonion is written over the basis
//
//	1, j1, j2, j3, I, J1, J2, J3
//
// and stored as the coefficient vector c[0..7] in that order. Multiplication
// is neither commutative nor associative: (a*b)*c and a*(b*c) generally
// differ, as do a*b and b*a.
//
// Coefficients are gosymbol expressions; plain numbers are gosymbol.Num
// values and are handled by the same code paths. Every operation returns a
// fresh value, except Simplify, which rewrites the receiver in place.
package splitoct

import (
	"fmt"

	"github.com/njchilds90/splitoct/gosymbol"
)

// Dim is the number of coefficients of a split-octonion.
const Dim = 8

// SplitOctonion is c[0] + c[1] j1 + c[2] j2 + c[3] j3 + c[4] I + c[5] J1 + c[6] J2 + c[7] J3.
type SplitOctonion struct {
	c []gosymbol.Expr
}

// New builds a split-octonion that uses c as its coefficient storage. The
// slice is not copied: later writes to c are visible through the result.
func New(c []gosymbol.Expr) (*SplitOctonion, error) {
	if len(c) != Dim {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, len(c))
	}
	for i, v := range c {
		if v == nil {
			return nil, fmt.Errorf("splitoct: coefficient %d is nil", i)
		}
	}
	return &SplitOctonion{c: c}, nil
}

// MustNew is New that panics on error. Intended for literals in tests and
// examples.
func MustNew(c ...gosymbol.Expr) *SplitOctonion {
	x, err := New(c)
	if err != nil {
		panic(err)
	}
	return x
}

// FromScalar embeds s as the real part: (s, 0, 0, 0, 0, 0, 0, 0).
func FromScalar(s gosymbol.Expr) *SplitOctonion {
	c := zeros()
	c[0] = s
	return &SplitOctonion{c: c}
}

// FromInts builds a split-octonion with integer coefficients.
func FromInts(v ...int64) (*SplitOctonion, error) {
	if len(v) != Dim {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, len(v))
	}
	c := make([]gosymbol.Expr, Dim)
	for i, n := range v {
		c[i] = gosymbol.N(n)
	}
	return &SplitOctonion{c: c}, nil
}

func zeros() []gosymbol.Expr {
	c := make([]gosymbol.Expr, Dim)
	for i := range c {
		c[i] = gosymbol.N(0)
	}
	return c
}

// build returns the split-octonion whose i-th coefficient is f(i).
func build(f func(i int) gosymbol.Expr) *SplitOctonion {
	c := make([]gosymbol.Expr, Dim)
	for i := range c {
		c[i] = f(i)
	}
	return &SplitOctonion{c: c}
}

// ============================================================
// Component access
// ============================================================

// At returns c[i]. It panics if i is outside 0..7, like a slice index.
func (x *SplitOctonion) At(i int) gosymbol.Expr { return x.c[i] }

// Coeff returns the coefficient of basis unit b.
func (x *SplitOctonion) Coeff(b Basis) gosymbol.Expr { return x.c[b] }

func (x *SplitOctonion) Real() gosymbol.Expr    { return x.c[0] }
func (x *SplitOctonion) Coeffj1() gosymbol.Expr { return x.c[1] }
func (x *SplitOctonion) Coeffj2() gosymbol.Expr { return x.c[2] }
func (x *SplitOctonion) Coeffj3() gosymbol.Expr { return x.c[3] }
func (x *SplitOctonion) CoeffI() gosymbol.Expr  { return x.c[4] }
func (x *SplitOctonion) CoeffJ1() gosymbol.Expr { return x.c[5] }
func (x *SplitOctonion) CoeffJ2() gosymbol.Expr { return x.c[6] }
func (x *SplitOctonion) CoeffJ3() gosymbol.Expr { return x.c[7] }

// Coeffs returns a copy of the coefficient vector.
func (x *SplitOctonion) Coeffs() []gosymbol.Expr {
	out := make([]gosymbol.Expr, Dim)
	copy(out, x.c)
	return out
}

// Imag returns x with its real part set to zero.
func (x *SplitOctonion) Imag() *SplitOctonion {
	y := x.Copy()
	y.c[0] = gosymbol.N(0)
	return y
}

// Set replaces c[i] with v. It is the only way to mutate a split-octonion.
func (x *SplitOctonion) Set(i int, v gosymbol.Expr) error {
	if i < 0 || i >= Dim {
		return fmt.Errorf("%w: got %d", ErrIndex, i)
	}
	if v == nil {
		return fmt.Errorf("splitoct: coefficient %d is nil", i)
	}
	x.c[i] = v
	return nil
}

// Copy returns x with its own coefficient slice. Coefficients are immutable
// expressions and are shared.
func (x *SplitOctonion) Copy() *SplitOctonion {
	return &SplitOctonion{c: x.Coeffs()}
}

// Simplify rewrites every coefficient into canonical form and returns x.
// Copy first if the unsimplified value is still needed.
func (x *SplitOctonion) Simplify() *SplitOctonion {
	for i, v := range x.c {
		x.c[i] = gosymbol.Simplify(v)
	}
	return x
}

// Simplified returns a simplified copy and leaves x untouched.
func (x *SplitOctonion) Simplified() *SplitOctonion {
	return x.Copy().Simplify()
}

// ============================================================
// Basis units
// ============================================================

// Basis names one of the eight basis units; its value is the coefficient index.
type Basis int

const (
	BasisOne Basis = iota
	Basisj1
	Basisj2
	Basisj3
	BasisI
	BasisJ1
	BasisJ2
	BasisJ3
)

var basisNames = [Dim]string{"1", "j1", "j2", "j3", "I", "J1", "J2", "J3"}

// basisSymbols are the display symbols multiplied onto each coefficient.
var basisSymbols = [Dim]gosymbol.Expr{
	gosymbol.N(1),
	gosymbol.S("j_1"), gosymbol.S("j_2"), gosymbol.S("j_3"),
	gosymbol.S("I"),
	gosymbol.S("J_1"), gosymbol.S("J_2"), gosymbol.S("J_3"),
}

func (b Basis) String() string {
	if b < 0 || int(b) >= Dim {
		return fmt.Sprintf("Basis(%d)", int(b))
	}
	return basisNames[b]
}

// units are built once and never handed out; Unit returns copies.
var units = func() [Dim]*SplitOctonion {
	var u [Dim]*SplitOctonion
	for b := range u {
		c := zeros()
		c[b] = gosymbol.N(1)
		u[b] = &SplitOctonion{c: c}
	}
	return u
}()

// Unit returns a fresh copy of the basis unit b.
func Unit(b Basis) *SplitOctonion { return units[b].Copy() }

// One returns the multiplicative identity.
func One() *SplitOctonion { return Unit(BasisOne) }

// Units returns fresh copies of all eight basis units in index order.
func Units() []*SplitOctonion {
	out := make([]*SplitOctonion, Dim)
	for b := range out {
		out[b] = Unit(Basis(b))
	}
	return out
}

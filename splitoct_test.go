package splitoct_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/splitoct"
	"github.com/njchilds90/splitoct/gosymbol"
)

func syms(prefix string) []gosymbol.Expr {
	out := make([]gosymbol.Expr, splitoct.Dim)
	for i := range out {
		out[i] = gosymbol.S(fmt.Sprintf("%s_%d", prefix, i))
	}
	return out
}

func ints(t *testing.T, v ...int64) *splitoct.SplitOctonion {
	t.Helper()
	x, err := splitoct.FromInts(v...)
	require.NoError(t, err)
	return x
}

// samples are split-octonions used for identities that should hold for all values.
func samples(t *testing.T) []*splitoct.SplitOctonion {
	a, b, c := gosymbol.S("a"), gosymbol.S("b"), gosymbol.S("c")
	zero := gosymbol.N(0)
	return []*splitoct.SplitOctonion{
		ints(t, 1, 2, 3, 4, 5, 6, 7, 8),
		ints(t, 0, 1, 0, 0, 1, 0, 0, 0),
		splitoct.MustNew(a, b, zero, zero, c, zero, zero, zero),
		splitoct.MustNew(syms("x")...),
		splitoct.MustNew(gosymbol.F(1, 2), gosymbol.SinOf(a), zero, gosymbol.MulOf(a, b), zero, zero, gosymbol.N(-3), c),
	}
}

// referenceProduct spells out the multiplication table coefficient by coefficient.
func referenceProduct(x, y [8]int64) [8]int64 {
	return [8]int64{
		x[0]*y[0] - x[1]*y[1] - x[2]*y[2] - x[3]*y[3] + x[4]*y[4] + x[5]*y[5] + x[6]*y[6] + x[7]*y[7],
		x[0]*y[1] + x[1]*y[0] + x[2]*y[3] - x[3]*y[2] - x[4]*y[5] + x[5]*y[4] + x[6]*y[7] - x[7]*y[6],
		x[0]*y[2] - x[1]*y[3] + x[2]*y[0] + x[3]*y[1] - x[4]*y[6] - x[5]*y[7] + x[6]*y[4] + x[7]*y[5],
		x[0]*y[3] + x[1]*y[2] - x[2]*y[1] + x[3]*y[0] - x[4]*y[7] + x[5]*y[6] - x[6]*y[5] + x[7]*y[4],
		x[0]*y[4] - x[1]*y[5] - x[2]*y[6] - x[3]*y[7] + x[4]*y[0] + x[5]*y[1] + x[6]*y[2] + x[7]*y[3],
		x[0]*y[5] + x[1]*y[4] - x[2]*y[7] + x[3]*y[6] - x[4]*y[1] + x[5]*y[0] - x[6]*y[3] + x[7]*y[2],
		x[0]*y[6] + x[1]*y[7] + x[2]*y[4] - x[3]*y[5] - x[4]*y[2] + x[5]*y[3] + x[6]*y[0] - x[7]*y[1],
		x[0]*y[7] - x[1]*y[6] + x[2]*y[5] + x[3]*y[4] - x[4]*y[3] - x[5]*y[2] + x[6]*y[1] + x[7]*y[0],
	}
}

func assertCoeffs(t *testing.T, label string, want []int64, got *splitoct.SplitOctonion) {
	t.Helper()
	for k, w := range want {
		assert.True(t, gosymbol.Same(got.At(k), gosymbol.N(w)), "%s: coefficient %d: want %d, got %s", label, k, w, got.At(k))
	}
}

// ============================================================
// Construction and mutation
// ============================================================

func TestNew_WrongLength(t *testing.T) {
	_, err := splitoct.New(make([]gosymbol.Expr, 7))
	assert.ErrorIs(t, err, splitoct.ErrDimension)
	_, err = splitoct.FromInts(1, 2, 3)
	assert.ErrorIs(t, err, splitoct.ErrDimension)
}

func TestNew_SharesSlice(t *testing.T) {
	c := syms("x")
	x, err := splitoct.New(c)
	require.NoError(t, err)
	c[0] = gosymbol.N(5)
	assert.Equal(t, "5", x.Real().String())
}

func TestNew_NilCoefficient(t *testing.T) {
	c := syms("x")
	c[3] = nil
	_, err := splitoct.New(c)
	assert.Error(t, err)
}

func TestFromScalar(t *testing.T) {
	x := splitoct.FromScalar(gosymbol.S("s"))
	assert.Equal(t, "s", x.Real().String())
	for i := 1; i < splitoct.Dim; i++ {
		assert.Equal(t, "0", x.At(i).String())
	}
}

func TestAccessors(t *testing.T) {
	x := splitoct.MustNew(syms("x")...)
	got := []gosymbol.Expr{x.Real(), x.Coeffj1(), x.Coeffj2(), x.Coeffj3(), x.CoeffI(), x.CoeffJ1(), x.CoeffJ2(), x.CoeffJ3()}
	for i, g := range got {
		assert.Equal(t, fmt.Sprintf("x_%d", i), g.String())
		assert.Equal(t, g, x.Coeff(splitoct.Basis(i)))
	}
	im := x.Imag()
	assert.Equal(t, "0", im.Real().String())
	assert.Equal(t, "x_7", im.CoeffJ3().String())
	assert.Equal(t, "x_0", x.Real().String())
}

func TestSet(t *testing.T) {
	x := ints(t, 1, 2, 3, 4, 5, 6, 7, 8)
	require.NoError(t, x.Set(4, gosymbol.S("q")))
	assert.Equal(t, "q", x.CoeffI().String())

	assert.ErrorIs(t, x.Set(8, gosymbol.N(0)), splitoct.ErrIndex)
	assert.ErrorIs(t, x.Set(-1, gosymbol.N(0)), splitoct.ErrIndex)
	assertCoeffs(t, "after failed Set", []int64{1, 2, 3, 4}, x)
}

func TestCopy_Independent(t *testing.T) {
	x := ints(t, 1, 2, 3, 4, 5, 6, 7, 8)
	y := x.Copy()
	require.NoError(t, y.Set(0, gosymbol.N(100)))
	assert.Equal(t, "1", x.Real().String())
	assert.Equal(t, "100", y.Real().String())
}

func TestUnit_ReturnsCopy(t *testing.T) {
	u := splitoct.Unit(splitoct.BasisI)
	require.NoError(t, u.Set(4, gosymbol.N(7)))
	assert.Equal(t, "1", splitoct.Unit(splitoct.BasisI).CoeffI().String())
	assert.Len(t, splitoct.Units(), splitoct.Dim)
	assert.Equal(t, "J2", splitoct.BasisJ2.String())
}

func TestSimplify_InPlace(t *testing.T) {
	a, b := gosymbol.S("a"), gosymbol.S("b")
	zero := gosymbol.N(0)
	num := gosymbol.SubOf(gosymbol.PowOf(a, gosymbol.N(2)), gosymbol.PowOf(b, gosymbol.N(2)))
	x := splitoct.MustNew(gosymbol.DivOf(num, gosymbol.SubOf(a, b)), zero, zero, zero, zero, zero, zero, zero)
	want := gosymbol.Simplify(gosymbol.AddOf(a, b))

	pure := x.Simplified()
	assert.True(t, pure.Real().Equal(want), "got %s", pure.Real())
	assert.False(t, x.Real().Equal(want), "Simplified must not touch the receiver")

	got := x.Simplify()
	assert.Same(t, x, got)
	assert.True(t, x.Real().Equal(want))
}

// ============================================================
// Multiplication
// ============================================================

func TestMul_UnitTable(t *testing.T) {
	for a := 0; a < splitoct.Dim; a++ {
		for b := 0; b < splitoct.Dim; b++ {
			var ea, eb [8]int64
			ea[a], eb[b] = 1, 1
			want := referenceProduct(ea, eb)
			got := splitoct.Unit(splitoct.Basis(a)).Mul(splitoct.Unit(splitoct.Basis(b)))
			assertCoeffs(t, splitoct.Basis(a).String()+"*"+splitoct.Basis(b).String(), want[:], got)
		}
	}
}

func TestMul_IntegerValues(t *testing.T) {
	xv := [8]int64{1, -2, 3, 0, 5, -1, 2, 4}
	yv := [8]int64{-3, 1, 0, 2, 1, 1, -2, 7}
	want := referenceProduct(xv, yv)
	got := ints(t, xv[:]...).Mul(ints(t, yv[:]...))
	assertCoeffs(t, "x*y", want[:], got)
}

func TestMul_Symbolic(t *testing.T) {
	x, y := syms("x"), syms("y")
	p := func(i, j int) gosymbol.Expr { return gosymbol.MulOf(x[i], y[j]) }
	neg := func(e gosymbol.Expr) gosymbol.Expr { return gosymbol.MulOf(gosymbol.N(-1), e) }
	want := []gosymbol.Expr{
		gosymbol.AddOf(p(0, 0), neg(p(1, 1)), neg(p(2, 2)), neg(p(3, 3)), p(4, 4), p(5, 5), p(6, 6), p(7, 7)),
		gosymbol.AddOf(p(0, 1), p(1, 0), p(2, 3), neg(p(3, 2)), neg(p(4, 5)), p(5, 4), p(6, 7), neg(p(7, 6))),
		gosymbol.AddOf(p(0, 2), neg(p(1, 3)), p(2, 0), p(3, 1), neg(p(4, 6)), neg(p(5, 7)), p(6, 4), p(7, 5)),
		gosymbol.AddOf(p(0, 3), p(1, 2), neg(p(2, 1)), p(3, 0), neg(p(4, 7)), p(5, 6), neg(p(6, 5)), p(7, 4)),
		gosymbol.AddOf(p(0, 4), neg(p(1, 5)), neg(p(2, 6)), neg(p(3, 7)), p(4, 0), p(5, 1), p(6, 2), p(7, 3)),
		gosymbol.AddOf(p(0, 5), p(1, 4), neg(p(2, 7)), p(3, 6), neg(p(4, 1)), p(5, 0), neg(p(6, 3)), p(7, 2)),
		gosymbol.AddOf(p(0, 6), p(1, 7), p(2, 4), neg(p(3, 5)), neg(p(4, 2)), p(5, 3), p(6, 0), neg(p(7, 1))),
		gosymbol.AddOf(p(0, 7), neg(p(1, 6)), p(2, 5), p(3, 4), neg(p(4, 3)), neg(p(5, 2)), p(6, 1), p(7, 0)),
	}
	got := splitoct.MustNew(x...).Mul(splitoct.MustNew(y...))
	for k := range want {
		assert.True(t, gosymbol.Same(want[k], got.At(k)), "coefficient %d: %s", k, got.At(k))
	}
}

func TestMul_j1j2(t *testing.T) {
	j1, j2, j3 := splitoct.Unit(splitoct.Basisj1), splitoct.Unit(splitoct.Basisj2), splitoct.Unit(splitoct.Basisj3)
	assert.True(t, j1.Mul(j2).Equal(j3))
	assert.True(t, j2.Mul(j1).Equal(j3.Neg()), "j2*j1 = -j3")
}

func TestMul_NotAssociative(t *testing.T) {
	j1, j2, I := splitoct.Unit(splitoct.Basisj1), splitoct.Unit(splitoct.Basisj2), splitoct.Unit(splitoct.BasisI)
	left := j1.Mul(j2).Mul(I)
	right := j1.Mul(j2.Mul(I))
	assert.False(t, left.Equal(right))
	assert.True(t, left.Equal(splitoct.Unit(splitoct.BasisJ3)))
	assert.True(t, right.Equal(splitoct.Unit(splitoct.BasisJ3).Neg()))
}

func TestMul_UnitSquares(t *testing.T) {
	// j-units square to -1, split units to +1.
	want := []int64{1, -1, -1, -1, 1, 1, 1, 1}
	for b, w := range want {
		u := splitoct.Unit(splitoct.Basis(b))
		assert.True(t, u.Mul(u).EqualScalar(gosymbol.N(w)), "%s^2", splitoct.Basis(b))
	}
}

func TestMulScalar(t *testing.T) {
	s := gosymbol.S("s")
	x := splitoct.MustNew(syms("x")...)
	for i, got := range []*splitoct.SplitOctonion{x.MulScalar(s), x.ScalarMul(s)} {
		for k := 0; k < splitoct.Dim; k++ {
			assert.True(t, gosymbol.Same(got.At(k), gosymbol.MulOf(s, x.At(k))), "form %d coefficient %d", i, k)
		}
	}
	assert.True(t, x.MulScalar(s).Equal(x.Mul(splitoct.FromScalar(s))))
}

// ============================================================
// Addition, subtraction, scalars
// ============================================================

func TestAdd_Componentwise(t *testing.T) {
	x := ints(t, 1, 2, 3, 4, 5, 6, 7, 8)
	y := ints(t, 8, 7, 6, 5, 4, 3, 2, 1)
	assertCoeffs(t, "x+y", []int64{9, 9, 9, 9, 9, 9, 9, 9}, x.Add(y))
	assertCoeffs(t, "x-y", []int64{-7, -5, -3, -1, 1, 3, 5, 7}, x.Sub(y))
}

func TestScalarEmbedding(t *testing.T) {
	for _, x := range samples(t) {
		assert.True(t, x.AddScalar(gosymbol.N(0)).Equal(x), "x + 0 == x for %s", x)
		assert.True(t, x.MulScalar(gosymbol.N(1)).Equal(x), "x * 1 == x for %s", x)
	}
}

func TestAddScalar_RealPartOnly(t *testing.T) {
	x := ints(t, 1, 2, 3, 4, 5, 6, 7, 8)
	s := gosymbol.S("s")
	got := x.AddScalar(s)
	assert.True(t, gosymbol.Same(got.Real(), gosymbol.AddOf(gosymbol.N(1), s)))
	for k := 1; k < splitoct.Dim; k++ {
		assert.True(t, gosymbol.Same(got.At(k), x.At(k)), "coefficient %d", k)
	}
	assert.True(t, x.ScalarAdd(s).Equal(got))

	sub := x.SubScalar(s)
	assert.True(t, gosymbol.Same(sub.Real(), gosymbol.SubOf(gosymbol.N(1), s)))
	assert.True(t, gosymbol.Same(sub.CoeffJ3(), gosymbol.N(8)))
}

func TestScalarSub(t *testing.T) {
	s := gosymbol.S("s")
	for _, x := range samples(t) {
		got := x.ScalarSub(s)
		assert.True(t, got.Equal(splitoct.FromScalar(s).Sub(x)), "s - x for %s", x)
		assert.True(t, got.Equal(x.Neg().AddScalar(s)))
	}
}

// ============================================================
// Conjugations
// ============================================================

func TestConjugations_Signs(t *testing.T) {
	x := splitoct.MustNew(syms("x")...)
	cases := []struct {
		name  string
		got   *splitoct.SplitOctonion
		signs [8]int64
	}{
		{"conj", x.Conj(), [8]int64{1, -1, -1, -1, -1, -1, -1, -1}},
		{"conj_j", x.Conjj(), [8]int64{1, -1, -1, -1, 1, 1, 1, 1}},
		{"conj_I", x.ConjI(), [8]int64{1, 1, 1, 1, -1, 1, 1, 1}},
		{"conj_J", x.ConjJ(), [8]int64{1, 1, 1, 1, 1, -1, -1, -1}},
		{"star", x.Star(), [8]int64{1, 1, 1, 1, -1, -1, -1, -1}},
		{"neg", x.Neg(), [8]int64{-1, -1, -1, -1, -1, -1, -1, -1}},
		{"free conj", splitoct.Conj(x), [8]int64{1, -1, -1, -1, -1, -1, -1, -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, s := range tc.signs {
				want := gosymbol.MulOf(gosymbol.N(s), x.At(k))
				assert.True(t, gosymbol.Same(want, tc.got.At(k)), "coefficient %d", k)
			}
		})
	}
	assert.Equal(t, "x_1", x.Coeffj1().String(), "conjugations must not mutate")
}

func TestConj_Involution(t *testing.T) {
	for _, x := range samples(t) {
		assert.True(t, x.Conj().Conj().Equal(x), "%s", x)
	}
}

func TestConj_ProductIsQuadrance(t *testing.T) {
	for _, x := range samples(t) {
		q := x.Quadrance()
		assert.True(t, x.Mul(x.Conj()).EqualScalar(q), "x*conj(x) for %s", x)
		assert.True(t, x.Conj().Mul(x).EqualScalar(q), "conj(x)*x for %s", x)
	}
}

// ============================================================
// Dot, quadrance, inverse
// ============================================================

func TestDot(t *testing.T) {
	x := ints(t, 1, 2, 3, 4, 5, 6, 7, 8)
	y := ints(t, 1, 1, 1, 1, 1, 1, 1, 1)
	d, err := x.Dot(y)
	require.NoError(t, err)
	assert.Equal(t, "-16", d.String())

	_, err = x.Dot(nil)
	assert.ErrorIs(t, err, splitoct.ErrNotSplitOctonion)
}

func TestDot_MatchesQuadrance(t *testing.T) {
	for _, x := range samples(t) {
		d, err := x.Dot(x)
		require.NoError(t, err)
		assert.True(t, gosymbol.Same(d, x.Quadrance()))
	}
}

func TestQuadrance_Units(t *testing.T) {
	want := []int64{1, 1, 1, 1, -1, -1, -1, -1}
	for b, w := range want {
		q := splitoct.Unit(splitoct.Basis(b)).Quadrance()
		assert.True(t, gosymbol.Same(q, gosymbol.N(w)), "quadrance(%s) = %s", splitoct.Basis(b), q)
	}
	assert.Equal(t, "1", splitoct.One().Quadrance().String())
	assert.Equal(t, "-1", splitoct.Unit(splitoct.BasisI).Quadrance().String())
}

func TestQuadrance_Symbolic(t *testing.T) {
	a, b, c := gosymbol.S("a"), gosymbol.S("b"), gosymbol.S("c")
	zero := gosymbol.N(0)
	x := splitoct.MustNew(a, b, zero, zero, c, zero, zero, zero)
	assert.Equal(t, "a^2 + b^2 - c^2", x.Quadrance().String())
}

func TestInv_Numeric(t *testing.T) {
	x := ints(t, 1, 2, 0, 0, 1, 0, 3, 0)
	inv, err := x.Inv()
	require.NoError(t, err)
	assert.True(t, x.Mul(inv).EqualScalar(gosymbol.N(1)))
	assert.True(t, inv.Mul(x).EqualScalar(gosymbol.N(1)))
}

func TestInv_Symbolic(t *testing.T) {
	for _, x := range samples(t)[2:4] {
		inv, err := x.Inv()
		require.NoError(t, err)
		assert.True(t, x.Mul(inv).EqualScalar(gosymbol.N(1)), "x*inv(x) for %s", x)
		assert.True(t, inv.Mul(x).EqualScalar(gosymbol.N(1)), "inv(x)*x for %s", x)
	}
}

func TestInv_NullVector(t *testing.T) {
	x := splitoct.Unit(splitoct.Basisj1).Add(splitoct.Unit(splitoct.BasisI))
	_, err := x.Inv()
	assert.ErrorIs(t, err, splitoct.ErrDivisionByZero)
	assert.NotErrorIs(t, err, splitoct.ErrDivisionUnsupported)
}

func TestInv_TrigonometricNullVector(t *testing.T) {
	tt := gosymbol.S("t")
	zero := gosymbol.N(0)
	x := splitoct.MustNew(gosymbol.CosOf(tt), gosymbol.SinOf(tt), zero, zero, gosymbol.N(1), zero, zero, zero)
	assert.Equal(t, "0", gosymbol.Simplify(x.Quadrance()).String())
	_, err := x.Inv()
	assert.ErrorIs(t, err, splitoct.ErrDivisionByZero)

	h := splitoct.MustNew(gosymbol.CoshOf(tt), zero, zero, zero, gosymbol.SinhOf(tt), zero, zero, zero)
	_, err = h.Inv()
	require.NoError(t, err, "quadrance of cosh(t) + sinh(t) I is 1")
	assert.True(t, h.Mul(h.Conj()).EqualScalar(gosymbol.N(1)))
}

func TestDiv_Unsupported(t *testing.T) {
	for _, x := range samples(t) {
		_, err := x.Div(splitoct.One())
		assert.ErrorIs(t, err, splitoct.ErrDivisionUnsupported)
		_, err = x.Div(x)
		assert.ErrorIs(t, err, splitoct.ErrDivisionUnsupported)
	}
}

func TestDivScalar(t *testing.T) {
	x := splitoct.MustNew(syms("x")...)
	s := gosymbol.S("s")
	q, err := x.DivScalar(s)
	require.NoError(t, err)
	assert.True(t, q.MulScalar(s).Equal(x))

	_, err = x.DivScalar(gosymbol.SubOf(s, s))
	assert.ErrorIs(t, err, splitoct.ErrDivisionByZero)
}

// ============================================================
// Equality
// ============================================================

func TestEqual_SimplificationAware(t *testing.T) {
	zero := gosymbol.N(0)
	two := ints(t, 2, 0, 0, 0, 0, 0, 0, 0)
	onePlusOne := splitoct.MustNew(gosymbol.AddOf(gosymbol.N(1), gosymbol.N(1)), zero, zero, zero, zero, zero, zero, zero)
	assert.True(t, two.Equal(onePlusOne))
	assert.True(t, two.EqualScalar(gosymbol.N(2)))

	a, b := gosymbol.S("a"), gosymbol.S("b")
	x := splitoct.MustNew(gosymbol.PowOf(gosymbol.AddOf(a, b), gosymbol.N(2)), zero, zero, zero, zero, zero, zero, zero)
	y := splitoct.MustNew(gosymbol.AddOf(gosymbol.PowOf(a, gosymbol.N(2)), gosymbol.MulOf(gosymbol.N(2), a, b), gosymbol.PowOf(b, gosymbol.N(2))),
		zero, zero, zero, zero, zero, zero, zero)
	assert.True(t, x.Equal(y))
	assert.False(t, x.Equal(two))
	assert.False(t, x.Equal(nil))
}

func TestEqual_Pythagorean(t *testing.T) {
	tt := gosymbol.S("t")
	s2 := gosymbol.PowOf(gosymbol.SinOf(tt), gosymbol.N(2))
	c2 := gosymbol.PowOf(gosymbol.CosOf(tt), gosymbol.N(2))
	assert.True(t, splitoct.FromScalar(gosymbol.AddOf(s2, c2)).Equal(splitoct.One()))
	assert.False(t, splitoct.FromScalar(s2).Equal(splitoct.One()))
}

// ============================================================
// Derivatives
// ============================================================

func TestLeftDerivative_Identity(t *testing.T) {
	y := splitoct.MustNew(syms("y")...)
	d, err := y.LeftDerivative(y)
	require.NoError(t, err)
	assert.True(t, d.EqualScalar(gosymbol.N(1)), "d y/d y = %s", d)
}

func TestLeftDerivative_Conjugate(t *testing.T) {
	y := splitoct.MustNew(syms("y")...)
	d, err := y.Conj().LeftDerivative(y)
	require.NoError(t, err)
	assert.True(t, d.EqualScalar(gosymbol.N(0)), "d conj(y)/d y = %s", d)
}

func TestLeftDerivative_RealSquare(t *testing.T) {
	ys := syms("y")
	y := splitoct.MustNew(ys...)
	f := splitoct.FromScalar(gosymbol.PowOf(ys[0], gosymbol.N(2)))
	d, err := f.LeftDerivative(y)
	require.NoError(t, err)
	assert.True(t, d.EqualScalar(ys[0]), "got %s", d)
}

// Multiplying y by a unit on the left and on the right differentiates to
// opposite signs away from the identity.
func TestLeftDerivative_UnitProducts(t *testing.T) {
	y := splitoct.MustNew(syms("y")...)
	j2 := splitoct.Unit(splitoct.Basisj2)

	left, err := j2.Mul(y).LeftDerivative(y)
	require.NoError(t, err)
	assertCoeffs(t, "d(j2*y)/dy", []int64{0, 0, 1, 0, 0, 0, 0, 0}, left)

	right, err := y.Mul(j2).LeftDerivative(y)
	require.NoError(t, err)
	assertCoeffs(t, "d(y*j2)/dy", []int64{0, 0, -1, 0, 0, 0, 0, 0}, right)
	assert.True(t, right.Equal(j2.Neg()))
}

func TestLeftDerivative_ScaledByUnit(t *testing.T) {
	y := splitoct.MustNew(syms("y")...)
	for _, u := range splitoct.Units()[1:] {
		d, err := u.Mul(y).LeftDerivative(y)
		require.NoError(t, err)
		assert.True(t, d.Equal(u), "d(%s*y)/dy = %s", u, d)
	}
}

func TestLeftDerivative_Errors(t *testing.T) {
	x := splitoct.MustNew(syms("x")...)
	_, err := x.LeftDerivative(nil)
	assert.ErrorIs(t, err, splitoct.ErrNotSplitOctonion)
	_, err = x.LeftDerivative(splitoct.One())
	assert.ErrorIs(t, err, gosymbol.ErrNotSymbol)
}

func TestDerivative_Scalar(t *testing.T) {
	tt := gosymbol.S("t")
	zero := gosymbol.N(0)
	x := splitoct.MustNew(gosymbol.PowOf(tt, gosymbol.N(2)), gosymbol.SinOf(tt), zero, zero, tt, zero, zero, gosymbol.S("k"))
	d, err := x.Derivative(tt)
	require.NoError(t, err)
	want := splitoct.MustNew(gosymbol.MulOf(gosymbol.N(2), tt), gosymbol.CosOf(tt), zero, zero, gosymbol.N(1), zero, zero, zero)
	assert.True(t, d.Equal(want), "got %s", d)

	_, err = x.Derivative(gosymbol.N(3))
	assert.ErrorIs(t, err, gosymbol.ErrNotSymbol)
}

// ============================================================
// Display
// ============================================================

func TestEvaluate(t *testing.T) {
	tt := gosymbol.S("t")
	zero := gosymbol.N(0)
	x := splitoct.MustNew(gosymbol.CoshOf(tt), zero, zero, zero, gosymbol.SinhOf(tt), zero, gosymbol.F(-3, 4), tt)

	got, err := x.Evaluate(map[string]gosymbol.Expr{"t": gosymbol.N(1)})
	require.NoError(t, err)
	want := []float64{1.5430806348152437, 0, 0, 0, 1.1752011936438014, 0, -0.75, 1}
	assert.InDeltaSlice(t, want, got, 1e-12)

	_, err = x.Evaluate(nil)
	assert.ErrorIs(t, err, splitoct.ErrNotNumeric)

	sub := x.Subs(map[string]gosymbol.Expr{"t": gosymbol.N(0)})
	assert.True(t, sub.Equal(splitoct.Unit(splitoct.BasisOne).Add(splitoct.MustNew(zero, zero, zero, zero, zero, zero, gosymbol.F(-3, 4), zero))))
}

func TestString(t *testing.T) {
	a, b := gosymbol.S("a"), gosymbol.S("b")
	zero := gosymbol.N(0)
	x := splitoct.MustNew(a, gosymbol.N(2), zero, zero, gosymbol.MulOf(gosymbol.N(-1), b), zero, zero, zero)
	assert.Equal(t, "a + 2*j_1 -I*b", x.String())
	assert.Equal(t, "a + 2 j_{1} -I b", x.LaTeX())
	assert.Equal(t, "$a + 2 j_{1} -I b$", x.Markdown())
}

func TestString_ZeroAndPureImaginary(t *testing.T) {
	assert.Equal(t, "0", ints(t, 0, 0, 0, 0, 0, 0, 0, 0).String())
	assert.Equal(t, "J_{1}", splitoct.Unit(splitoct.BasisJ1).LaTeX())
	assert.Equal(t, "-j_{2}", splitoct.Unit(splitoct.Basisj2).Neg().LaTeX())
	assert.Equal(t, "1", splitoct.One().String())
}

func TestString_FactorsCoefficient(t *testing.T) {
	a, b := gosymbol.S("a"), gosymbol.S("b")
	zero := gosymbol.N(0)
	x := splitoct.MustNew(zero, zero, zero, gosymbol.AddOf(a, b), zero, zero, zero, zero)
	assert.Equal(t, `j_{3} \left(a + b\right)`, x.LaTeX())
}

package gosymbol

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// ============================================================
// Canonical form
// ============================================================
//
// An expression is canonicalised by converting it to a quotient of two
// polynomials over the rationals whose indeterminates are "atoms": symbols,
// function applications, roots of compound bases and powers with a symbolic
// exponent. An atom carries a positive rational exponent, so a^(1/2)*a^(1/2)
// and a^50*a^50 merge like any other power. Numerators are fully expanded,
// like terms collected and ordered by graded lexicographic monomial order.
//
// Two rewrites keep the form unique:
//
//	sin(u)^2  -> 1 - cos(u)^2
//	sinh(u)^2 -> cosh(u)^2 - 1
//
// and a compound base b with exponent e >= 1 is split into the expanded
// b^floor(e) times an atom b^(e - floor(e)).
//
// The denominator is monic and shares no common monomial or exact
// polynomial divisor with the numerator.

const (
	maxExpandPower   = 64
	maxExpandTerms   = 256
	maxDivisionSteps = 1 << 14
	maxExponent      = 1 << 20
	maxCoeffPower    = 1 << 10
)

// Atom key prefixes.
const (
	keySym      = "s:"
	keyFunc     = "f:"
	keyCompound = "b:"
	keyOpaque   = "p:"
)

// ============================================================
// Exponents
// ============================================================

// frac is a reduced rational exponent with d > 0.
type frac struct{ n, d int64 }

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func newFrac(n, d int64) frac {
	if d < 0 {
		n, d = -n, -d
	}
	if g := gcd64(abs64(n), d); g > 1 {
		n, d = n/g, d/g
	}
	return frac{n: n, d: d}
}

func fracInt(n int64) frac { return frac{n: n, d: 1} }

// fracOf converts r when both parts fit the exponent bound.
func fracOf(r *big.Rat) (frac, bool) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return frac{}, false
	}
	f := newFrac(r.Num().Int64(), r.Denom().Int64())
	return f, f.small()
}

func (f frac) small() bool     { return abs64(f.n) <= maxExponent && f.d <= maxExponent }
func (f frac) isOne() bool     { return f.n == 1 && f.d == 1 }
func (f frac) neg() frac       { return frac{n: -f.n, d: f.d} }
func (f frac) add(g frac) frac { return newFrac(f.n*g.d+g.n*f.d, f.d*g.d) }
func (f frac) sub(g frac) frac { return f.add(g.neg()) }
func (f frac) mul(g frac) frac { return newFrac(f.n*g.n, f.d*g.d) }

func (f frac) cmp(g frac) int {
	l, r := f.n*g.d, g.n*f.d
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

func (f frac) floor() int64 {
	if f.n >= 0 {
		return f.n / f.d
	}
	return -((-f.n + f.d - 1) / f.d)
}

func (f frac) String() string {
	if f.d == 1 {
		return strconv.FormatInt(f.n, 10)
	}
	return strconv.FormatInt(f.n, 10) + "/" + strconv.FormatInt(f.d, 10)
}

func (f frac) toNum() *Num { return F(f.n, f.d) }

// ============================================================
// Monomials
// ============================================================

// power is one atom raised to a positive rational exponent.
type power struct {
	key  string
	atom Expr
	exp  frac
}

// monomial is a product of powers sorted by atom key.
type monomial []power

func (m monomial) key() string {
	var b strings.Builder
	for i, p := range m {
		if i > 0 {
			b.WriteByte(0)
		}
		b.WriteString(p.key)
		if !p.exp.isOne() {
			b.WriteByte(1)
			b.WriteString(p.exp.String())
		}
	}
	return b.String()
}

func (m monomial) degree() frac {
	d := fracInt(0)
	for _, p := range m {
		d = d.add(p.exp)
	}
	return d
}

// with returns m with the exponent of m[i] replaced by exp, dropping the
// power when exp is zero.
func (m monomial) with(i int, exp frac) monomial {
	out := make(monomial, 0, len(m))
	out = append(out, m[:i]...)
	if exp.n > 0 {
		out = append(out, power{key: m[i].key, atom: m[i].atom, exp: exp})
	}
	return append(out, m[i+1:]...)
}

func mulMono(a, b monomial) monomial {
	out := make(monomial, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].key < b[j].key:
			out = append(out, a[i])
			i++
		case a[i].key > b[j].key:
			out = append(out, b[j])
			j++
		default:
			out = append(out, power{key: a[i].key, atom: a[i].atom, exp: a[i].exp.add(b[j].exp)})
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// divMono returns a / b when b divides a.
func divMono(a, b monomial) (monomial, bool) {
	out := make(monomial, 0, len(a))
	j := 0
	for _, p := range a {
		if j < len(b) && b[j].key < p.key {
			return nil, false
		}
		if j < len(b) && b[j].key == p.key {
			if b[j].exp.cmp(p.exp) > 0 {
				return nil, false
			}
			if rest := p.exp.sub(b[j].exp); rest.n > 0 {
				out = append(out, power{key: p.key, atom: p.atom, exp: rest})
			}
			j++
			continue
		}
		out = append(out, p)
	}
	if j < len(b) {
		return nil, false
	}
	return out, true
}

func gcdMono(a, b monomial) monomial {
	var out monomial
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].key < b[j].key:
			i++
		case a[i].key > b[j].key:
			j++
		default:
			e := a[i].exp
			if b[j].exp.cmp(e) < 0 {
				e = b[j].exp
			}
			out = append(out, power{key: a[i].key, atom: a[i].atom, exp: e})
			i++
			j++
		}
	}
	return out
}

// cmpMono orders monomials by total degree, then lexicographically with
// atoms of smaller key ranking higher.
func cmpMono(a, b monomial) int {
	if c := a.degree().cmp(b.degree()); c != 0 {
		return c
	}
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i].key < b[j].key):
			return 1
		case i >= len(a) || a[i].key > b[j].key:
			return -1
		}
		if c := a[i].exp.cmp(b[j].exp); c != 0 {
			return c
		}
		i++
		j++
	}
	return 0
}

// ============================================================
// Polynomials
// ============================================================

type term struct {
	mono  monomial
	coeff *big.Rat
}

type poly map[string]term

func polyConst(r *big.Rat) poly {
	if r.Sign() == 0 {
		return poly{}
	}
	return poly{"": term{coeff: new(big.Rat).Set(r)}}
}

func polyOne() poly { return polyConst(ratOne) }

func polyAtom(key string, atom Expr) poly {
	return polyOf(term{mono: monomial{{key: key, atom: atom, exp: fracInt(1)}}, coeff: ratOne})
}

func polyOf(t term) poly {
	p := poly{}
	p.addTerm(t)
	return p
}

func (p poly) isZero() bool { return len(p) == 0 }

func (p poly) constValue() (*big.Rat, bool) {
	switch len(p) {
	case 0:
		return new(big.Rat), true
	case 1:
		if t, ok := p[""]; ok {
			return t.coeff, true
		}
	}
	return nil, false
}

func (p poly) isOne() bool {
	c, ok := p.constValue()
	return ok && c.Cmp(ratOne) == 0
}

// only returns the single term of a one-term polynomial.
func (p poly) only() term {
	for _, t := range p {
		return t
	}
	return term{}
}

func (p poly) clone() poly {
	out := make(poly, len(p))
	for k, t := range p {
		out[k] = t
	}
	return out
}

func (p poly) addTerm(t term) {
	k := t.mono.key()
	if cur, ok := p[k]; ok {
		sum := new(big.Rat).Add(cur.coeff, t.coeff)
		if sum.Sign() == 0 {
			delete(p, k)
			return
		}
		p[k] = term{mono: cur.mono, coeff: sum}
		return
	}
	if t.coeff.Sign() != 0 {
		p[k] = term{mono: t.mono, coeff: new(big.Rat).Set(t.coeff)}
	}
}

func (p poly) add(q poly) poly {
	out := p.clone()
	for _, t := range q {
		out.addTerm(t)
	}
	return out
}

func (p poly) sub(q poly) poly { return p.add(q.scale(ratNegOne)) }

func (p poly) scale(r *big.Rat) poly {
	if r.Sign() == 0 {
		return poly{}
	}
	out := make(poly, len(p))
	for k, t := range p {
		out[k] = term{mono: t.mono, coeff: new(big.Rat).Mul(t.coeff, r)}
	}
	return out
}

func (p poly) mulTerm(t term) poly {
	out := make(poly, len(p))
	for _, u := range p {
		out.addTerm(term{mono: mulMono(u.mono, t.mono), coeff: new(big.Rat).Mul(u.coeff, t.coeff)})
	}
	return out
}

func (p poly) mul(q poly) poly {
	out := poly{}
	for _, t := range q {
		for _, u := range p {
			out.addTerm(term{mono: mulMono(u.mono, t.mono), coeff: new(big.Rat).Mul(u.coeff, t.coeff)})
		}
	}
	return out
}

func (p poly) equal(q poly) bool {
	if len(p) != len(q) {
		return false
	}
	for k, t := range p {
		u, ok := q[k]
		if !ok || t.coeff.Cmp(u.coeff) != 0 {
			return false
		}
	}
	return true
}

// leading returns the greatest term; p must be non-zero.
func (p poly) leading() term {
	var best term
	first := true
	for _, t := range p {
		if first || cmpMono(t.mono, best.mono) > 0 {
			best = t
			first = false
		}
	}
	return best
}

func (p poly) sorted() []term {
	ts := make([]term, 0, len(p))
	for _, t := range p {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return cmpMono(ts[i].mono, ts[j].mono) > 0 })
	return ts
}

// monoGCD is the largest monomial dividing every term of p.
func (p poly) monoGCD() monomial {
	var g monomial
	first := true
	for _, t := range p {
		if first {
			g = t.mono
			first = false
			continue
		}
		g = gcdMono(g, t.mono)
		if len(g) == 0 {
			break
		}
	}
	return g
}

func (p poly) divMono(m monomial) poly {
	if len(m) == 0 {
		return p
	}
	out := make(poly, len(p))
	for _, t := range p {
		q, _ := divMono(t.mono, m)
		out.addTerm(term{mono: q, coeff: t.coeff})
	}
	return out
}

// divExact returns q with p = q*d, or false when d does not divide p.
func (p poly) divExact(d poly) (poly, bool) {
	if d.isZero() {
		return nil, false
	}
	lt := d.leading()
	q := poly{}
	r := p.clone()
	for steps := 0; !r.isZero(); steps++ {
		if steps > maxDivisionSteps {
			return nil, false
		}
		rt := r.leading()
		m, ok := divMono(rt.mono, lt.mono)
		if !ok {
			return nil, false
		}
		t := term{mono: m, coeff: new(big.Rat).Quo(rt.coeff, lt.coeff)}
		q.addTerm(t)
		r = r.sub(d.mulTerm(t))
	}
	return q, true
}

// content is the positive rational gcd of the coefficients, signed like the
// leading coefficient.
func (p poly) content() *big.Rat {
	num := new(big.Int)
	den := big.NewInt(1)
	for _, t := range p {
		num.GCD(nil, nil, num, new(big.Int).Abs(t.coeff.Num()))
		d := t.coeff.Denom()
		g := new(big.Int).GCD(nil, nil, den, d)
		den.Mul(den, new(big.Int).Quo(d, g))
	}
	c := new(big.Rat).SetFrac(num, den)
	if !p.isZero() && p.leading().coeff.Sign() < 0 {
		c.Neg(c)
	}
	return c
}

func (p poly) toExpr() Expr {
	ts := p.sorted()
	switch len(ts) {
	case 0:
		return N(0)
	case 1:
		return ts[0].toExpr()
	}
	terms := make([]Expr, len(ts))
	for i, t := range ts {
		terms[i] = t.toExpr()
	}
	return &Add{terms: terms}
}

func (m monomial) factors() []Expr {
	out := make([]Expr, len(m))
	for i, p := range m {
		if p.exp.isOne() {
			out[i] = p.atom
		} else {
			out[i] = &Pow{base: p.atom, exp: p.exp.toNum()}
		}
	}
	return out
}

func (t term) toExpr() Expr {
	fs := t.mono.factors()
	c := &Num{val: new(big.Rat).Set(t.coeff)}
	switch {
	case len(fs) == 0:
		return c
	case c.IsOne() && len(fs) == 1:
		return fs[0]
	case c.IsOne():
		return &Mul{factors: fs}
	}
	return &Mul{factors: append([]Expr{c}, fs...)}
}

// pow raises t to k > 0. It fails when the exponents or the coefficient
// would outgrow their bounds.
func (t term) pow(k int64) (term, bool) {
	c, ok := ratPow(t.coeff, k)
	if !ok {
		return term{}, false
	}
	m := make(monomial, len(t.mono))
	for i, p := range t.mono {
		e := p.exp.mul(fracInt(k))
		if !e.small() {
			return term{}, false
		}
		m[i] = power{key: p.key, atom: p.atom, exp: e}
	}
	return term{mono: m, coeff: c}, true
}

func ratPow(c *big.Rat, k int64) (*big.Rat, bool) {
	if c.Cmp(ratOne) == 0 || c.Cmp(ratNegOne) == 0 {
		if k%2 == 0 {
			return new(big.Rat).Set(ratOne), true
		}
		return new(big.Rat).Set(c), true
	}
	if k > maxCoeffPower {
		return nil, false
	}
	e := big.NewInt(k)
	num := new(big.Int).Exp(c.Num(), e, nil)
	den := new(big.Int).Exp(c.Denom(), e, nil)
	return new(big.Rat).SetFrac(num, den), true
}

// termsBound is the number of monomials of an n-term polynomial raised to
// the k-th power, C(n+k-1, k), or any value above maxExpandTerms.
func termsBound(n int, k int64) int64 {
	if n <= 1 {
		return 1
	}
	c := int64(1)
	for i := int64(1); i <= k; i++ {
		c = c * (int64(n) - 1 + i) / i
		if c > maxExpandTerms {
			return c
		}
	}
	return c
}

// ============================================================
// Normal-form rewrites
// ============================================================

// pythagorean rewrites one sin(u)^2 or sinh(u)^2 factor of t.
func pythagorean(t term) (poly, bool) {
	for i, p := range t.mono {
		f, ok := p.atom.(*Func)
		if !ok || p.exp.cmp(fracInt(2)) < 0 {
			continue
		}
		var partner string
		var sign *big.Rat
		switch f.name {
		case "sin":
			partner, sign = "cos", ratNegOne
		case "sinh":
			partner, sign = "cosh", ratOne
		default:
			continue
		}
		c := toRat(funcOf(partner, f.arg)).num
		sq := c.mul(c).scale(sign)
		sq.addTerm(term{coeff: new(big.Rat).Neg(sign)})
		rest := polyOf(term{mono: t.mono.with(i, p.exp.sub(fracInt(2))), coeff: t.coeff})
		return rest.mul(sq), true
	}
	return nil, false
}

func reduceTrig(p poly) (poly, bool) {
	changed := false
	for {
		next := poly{}
		found := false
		for _, t := range p {
			if q, ok := pythagorean(t); ok {
				found = true
				for _, u := range q {
					next.addTerm(u)
				}
				continue
			}
			next.addTerm(t)
		}
		if !found {
			return p, changed
		}
		p, changed = next, true
	}
}

// splitCompound expands the integer part of a compound power of t.
func splitCompound(t term) (rat, bool) {
	for i, p := range t.mono {
		if !strings.HasPrefix(p.key, keyCompound) || p.exp.cmp(fracInt(1)) < 0 {
			continue
		}
		base := toRat(p.atom)
		fl := p.exp.floor()
		if !fits(base, fl) {
			continue
		}
		rest := term{mono: t.mono.with(i, p.exp.sub(fracInt(fl))), coeff: t.coeff}
		return ratOf(polyOf(rest)).mul(base.pow(int(fl))), true
	}
	return rat{}, false
}

// reduce applies the normal-form rewrites to p.
func reduce(p poly) (rat, bool) {
	p, changed := reduceTrig(p)
	plain := poly{}
	var split []rat
	for _, t := range p {
		if r, ok := splitCompound(t); ok {
			split = append(split, r)
			continue
		}
		plain.addTerm(t)
	}
	if len(split) == 0 {
		return ratOf(p), changed
	}
	out := ratOf(plain)
	for _, r := range split {
		out = out.add(r)
	}
	return out, true
}

// ============================================================
// Rational functions
// ============================================================

type rat struct{ num, den poly }

func ratOf(p poly) rat { return rat{num: p, den: polyOne()} }

func (r rat) add(o rat) rat {
	switch {
	case r.num.isZero():
		return o
	case o.num.isZero():
		return r
	case r.den.equal(o.den):
		return normalize(rat{num: r.num.add(o.num), den: r.den})
	}
	if q, ok := o.den.divExact(r.den); ok {
		return normalize(rat{num: r.num.mul(q).add(o.num), den: o.den})
	}
	if q, ok := r.den.divExact(o.den); ok {
		return normalize(rat{num: r.num.add(o.num.mul(q)), den: r.den})
	}
	return normalize(rat{num: r.num.mul(o.den).add(o.num.mul(r.den)), den: r.den.mul(o.den)})
}

func (r rat) neg() rat { return rat{num: r.num.scale(ratNegOne), den: r.den} }

func (r rat) mul(o rat) rat {
	if r.num.isZero() || o.num.isZero() {
		return ratOf(poly{})
	}
	a, b, c, d := r.num, r.den, o.num, o.den
	if !d.isOne() {
		if q, ok := a.divExact(d); ok {
			a, d = q, polyOne()
		}
	}
	if !b.isOne() {
		if q, ok := c.divExact(b); ok {
			c, b = q, polyOne()
		}
	}
	return normalize(rat{num: a.mul(c), den: b.mul(d)})
}

func (r rat) inv() rat {
	if r.num.isZero() {
		panic("gosymbol: division by zero")
	}
	return normalize(rat{num: r.den, den: r.num})
}

func (r rat) pow(k int) rat {
	if k < 0 {
		return r.inv().pow(-k)
	}
	out := ratOf(polyOne())
	for i := 0; i < k; i++ {
		out = out.mul(r)
	}
	return out
}

// atomPower reports whether r is a single atom power with coefficient 1,
// returning that power with a signed exponent.
func (r rat) atomPower() (power, bool) {
	if r.den.isOne() && len(r.num) == 1 {
		if t := r.num.only(); t.coeff.Cmp(ratOne) == 0 && len(t.mono) == 1 {
			return t.mono[0], true
		}
	}
	if r.num.isOne() && len(r.den) == 1 {
		if t := r.den.only(); t.coeff.Cmp(ratOne) == 0 && len(t.mono) == 1 {
			p := t.mono[0]
			p.exp = p.exp.neg()
			return p, true
		}
	}
	return power{}, false
}

// termPow raises a quotient of two single terms to the integer k != 0.
func (r rat) termPow(k int64) (rat, bool) {
	n, d := r.num.only(), r.den.only()
	if k < 0 {
		n, d, k = d, n, -k
	}
	nk, ok := n.pow(k)
	if !ok {
		return rat{}, false
	}
	dk, ok := d.pow(k)
	if !ok {
		return rat{}, false
	}
	return normalize(rat{num: polyOf(nk), den: polyOf(dk)}), true
}

// fits reports whether r^k may be expanded.
func fits(r rat, k int64) bool {
	k = abs64(k)
	if k > maxExpandPower {
		return false
	}
	return termsBound(len(r.num), k) <= maxExpandTerms && termsBound(len(r.den), k) <= maxExpandTerms
}

// monoRat is the rational function of a single power with a signed exponent.
func monoRat(p power) rat {
	if p.exp.n < 0 {
		p.exp = p.exp.neg()
		return normalize(rat{num: polyOne(), den: polyOf(term{mono: monomial{p}, coeff: ratOne})})
	}
	return normalize(ratOf(polyOf(term{mono: monomial{p}, coeff: ratOne})))
}

// compoundPow keeps r^e as an expanded integer part times a compound atom.
// Powers too large to expand stay whole as the atom.
func compoundPow(r rat, e frac) rat {
	atom := func(x frac) rat {
		base := r.toExpr()
		return monoRat(power{key: keyCompound + base.String(), atom: base, exp: x})
	}
	fl := e.floor()
	if !fits(r, fl) {
		return atom(e)
	}
	head := r.pow(int(fl))
	if fr := e.sub(fracInt(fl)); fr.n != 0 {
		return head.mul(atom(fr))
	}
	return head
}

// powRat raises r to e. It fails for zero to a non-positive power.
func powRat(r rat, e frac) (rat, bool) {
	switch {
	case r.num.isZero():
		return ratOf(poly{}), e.n > 0
	case e.n == 0, r.num.isOne() && r.den.isOne():
		return ratOf(polyOne()), true
	}
	if p, ok := r.atomPower(); ok {
		if x := p.exp.mul(e); x.small() {
			return monoRat(power{key: p.key, atom: p.atom, exp: x}), true
		}
	} else if e.d == 1 && len(r.num) == 1 && len(r.den) == 1 {
		if out, ok := r.termPow(e.n); ok {
			return out, true
		}
	}
	return compoundPow(r, e), true
}

// liftRoot returns the power that clears a fractional compound exponent
// from a single-term denominator.
func liftRoot(den poly) (power, bool) {
	if len(den) != 1 {
		return power{}, false
	}
	for _, p := range den.only().mono {
		if strings.HasPrefix(p.key, keyCompound) && p.exp.d != 1 {
			return power{key: p.key, atom: p.atom, exp: fracInt(p.exp.floor() + 1).sub(p.exp)}, true
		}
	}
	return power{}, false
}

func normalize(r rat) rat {
	if r.num.isZero() {
		return ratOf(poly{})
	}
	if p, ok := liftRoot(r.den); ok {
		lift := term{mono: monomial{p}, coeff: ratOne}
		r = rat{num: r.num.mulTerm(lift), den: r.den.mulTerm(lift)}
	}
	num, numChanged := reduce(r.num)
	den, denChanged := reduce(r.den)
	if numChanged || denChanged {
		return num.mul(den.inv())
	}
	if g := gcdMono(r.num.monoGCD(), r.den.monoGCD()); len(g) > 0 {
		r = rat{num: r.num.divMono(g), den: r.den.divMono(g)}
	}
	if c, ok := r.den.constValue(); ok {
		return ratOf(r.num.scale(new(big.Rat).Inv(c)))
	}
	if q, ok := r.num.divExact(r.den); ok {
		return ratOf(q)
	}
	if _, isConst := r.num.constValue(); !isConst {
		if q, ok := r.den.divExact(r.num); ok {
			return normalize(rat{num: polyOne(), den: q})
		}
	}
	if lc := r.den.leading().coeff; lc.Cmp(ratOne) != 0 {
		inv := new(big.Rat).Inv(lc)
		r = rat{num: r.num.scale(inv), den: r.den.scale(inv)}
	}
	return r
}

func (r rat) toExpr() Expr {
	if r.den.isOne() {
		return r.num.toExpr()
	}
	den := &Pow{base: r.den.toExpr(), exp: N(-1)}
	if r.num.isOne() {
		return den
	}
	if m, ok := r.num.toExpr().(*Mul); ok {
		fs := make([]Expr, 0, len(m.factors)+1)
		fs = append(fs, m.factors...)
		return &Mul{factors: append(fs, den)}
	}
	return &Mul{factors: []Expr{r.num.toExpr(), den}}
}

// toRat converts an expression tree into canonical rational form.
func toRat(e Expr) rat {
	switch v := e.(type) {
	case *Num:
		return ratOf(polyConst(v.val))
	case *Sym:
		return ratOf(polyAtom(keySym+v.name, v))
	case *Add:
		acc := ratOf(poly{})
		for _, t := range v.terms {
			acc = acc.add(toRat(t))
		}
		return acc
	case *Mul:
		acc := ratOf(polyOne())
		for _, f := range v.factors {
			acc = acc.mul(toRat(f))
		}
		return acc
	case *Pow:
		exp := Simplify(v.exp)
		if n, ok := exp.(*Num); ok {
			if x, ok := fracOf(n.val); ok {
				if r, ok := powRat(toRat(v.base), x); ok {
					return r
				}
			}
		}
		p := (&Pow{base: Simplify(v.base), exp: exp}).Simplify()
		if pp, ok := p.(*Pow); ok {
			return ratOf(polyAtom(keyOpaque+pp.String(), pp))
		}
		return toRat(p)
	case *Func:
		f := funcOf(v.name, Simplify(v.arg)).Simplify()
		if ff, ok := f.(*Func); ok {
			return ratOf(polyAtom(keyFunc+ff.String(), ff))
		}
		return toRat(f)
	}
	return ratOf(polyAtom(e.exprType()+":"+e.String(), e))
}

// Simplify returns the canonical form of e. Algebraically equal rational
// expressions produce Equal trees; an expression equal to zero always
// simplifies to the literal 0.
func Simplify(e Expr) Expr { return toRat(e).toExpr() }

// IsZero reports whether e simplifies to the literal 0.
func IsZero(e Expr) bool {
	return toRat(e).num.isZero()
}

// Same reports whether a and b are algebraically equal.
func Same(a, b Expr) bool { return IsZero(SubOf(a, b)) }

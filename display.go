package splitoct

import (
	"strings"

	"github.com/njchilds90/splitoct/gosymbol"
)

// String renders x as plain text, e.g. "a + 2*j_1 -I*b".
func (x *SplitOctonion) String() string { return x.render(gosymbol.String) }

// LaTeX renders x as a LaTeX math fragment, e.g. "a + 2 j_{1} -I b".
func (x *SplitOctonion) LaTeX() string { return x.render(gosymbol.LaTeX) }

// Markdown wraps LaTeX in inline math delimiters.
func (x *SplitOctonion) Markdown() string { return "$" + x.LaTeX() + "$" }

// render starts from the real part and appends each non-zero imaginary
// coefficient multiplied by its unit symbol and factored.
func (x *SplitOctonion) render(show func(gosymbol.Expr) string) string {
	out := show(gosymbol.Simplify(x.c[0]))
	for n := 1; n < Dim; n++ {
		out = appendTerm(out, show(gosymbol.Factor(gosymbol.MulOf(x.c[n], basisSymbols[n]))))
	}
	return out
}

func appendTerm(s, t string) string {
	switch {
	case t == "0":
		return s
	case s == "0":
		return t
	case strings.HasPrefix(t, "-"):
		return s + " " + t
	}
	return s + " + " + t
}

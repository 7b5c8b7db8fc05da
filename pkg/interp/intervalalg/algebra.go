package intervalalg

import (
	"math"

	"github.com/sigma-ir/sigma/pkg/algebra"
)

// bottomBound is the starting approximation [-1000, 1000] for a recursive
// variable. A genuinely infinite bottom ([-Inf, +Inf]) never tightens under
// most contractive operator sets, so it never converges; 1000 is large
// enough for the values this framework's test terms produce while still
// converging within MaxIterations.
const bottomBound = 1000.0

// convergenceEpsilon bounds the per-side movement Converged tolerates
// between two successive approximations.
const convergenceEpsilon = 1e-9

// Algebra implements algebra.Interpretation[Interval] and
// algebra.Fixpoint[Interval]. It is stateless; the zero value is ready to
// use.
type Algebra struct{}

// Num injects a real constant as a point interval.
func (Algebra) Num(value float64) Interval {
	return Point(value)
}

// Unary applies abs: [0, max(|Lo|,|Hi|)] when the interval contains zero,
// otherwise the interval itself when non-negative and [-Hi, -Lo] when
// negative.
func (Algebra) Unary(op algebra.UnaryOp, a Interval) Interval {
	switch op {
	case algebra.Abs:
		return absInterval(a)
	default:
		panic("intervalalg: unknown unary operator")
	}
}

// Binary applies add/sub/mul/div/mod per IntervalAlgebra.hh.
func (Algebra) Binary(op algebra.BinaryOp, a, b Interval) Interval {
	switch op {
	case algebra.Add:
		return addInterval(a, b)
	case algebra.Sub:
		return subInterval(a, b)
	case algebra.Mul:
		return mulInterval(a, b)
	case algebra.Div:
		return divInterval(a, b)
	case algebra.Mod:
		return modInterval(a, b)
	default:
		panic("intervalalg: unknown binary operator")
	}
}

// Bottom returns [-1000, 1000].
func (Algebra) Bottom() Interval {
	return Interval{Lo: -bottomBound, Hi: bottomBound}
}

// Converged compares both bounds within 1e-9. Two empty intervals have
// converged; one empty and one not have not.
func (Algebra) Converged(prev, current Interval) bool {
	if prev.empty && current.empty {
		return true
	}

	if prev.empty || current.empty {
		return false
	}

	return math.Abs(prev.Lo-current.Lo) < convergenceEpsilon &&
		math.Abs(prev.Hi-current.Hi) < convergenceEpsilon
}

func addInterval(a, b Interval) Interval {
	if a.empty || b.empty {
		return Empty
	}

	return Interval{Lo: a.Lo + b.Lo, Hi: a.Hi + b.Hi}
}

func subInterval(a, b Interval) Interval {
	if a.empty || b.empty {
		return Empty
	}

	return Interval{Lo: a.Lo - b.Hi, Hi: a.Hi - b.Lo}
}

func mulInterval(a, b Interval) Interval {
	if a.empty || b.empty {
		return Empty
	}

	ac, ad, bc, bd := a.Lo*b.Lo, a.Lo*b.Hi, a.Hi*b.Lo, a.Hi*b.Hi

	return Interval{
		Lo: math.Min(math.Min(ac, ad), math.Min(bc, bd)),
		Hi: math.Max(math.Max(ac, ad), math.Max(bc, bd)),
	}
}

// divInterval computes a / b as a * (1/b); it is empty whenever b's range
// includes zero, since the reciprocal is unbounded there.
func divInterval(a, b Interval) Interval {
	if a.empty || b.empty || b.Contains(0) {
		return Empty
	}

	reciprocal := Interval{Lo: 1 / b.Hi, Hi: 1 / b.Lo}

	return mulInterval(a, reciprocal)
}

// modInterval is a conservative approximation: a sign-based bound rather
// than an exact case analysis, matching IntervalAlgebra.hh's documented
// trade-off. |a mod b| is below the divisor's largest magnitude and, as with
// math.Mod, the result takes the sign of the dividend a.
func modInterval(a, b Interval) Interval {
	if a.empty || b.empty || b.Contains(0) {
		return Empty
	}

	bound := math.Max(math.Abs(b.Lo), math.Abs(b.Hi))

	switch {
	case a.Lo >= 0:
		return Interval{Lo: 0, Hi: bound}
	case a.Hi <= 0:
		return Interval{Lo: -bound, Hi: 0}
	default:
		return Interval{Lo: -bound, Hi: bound}
	}
}

func absInterval(a Interval) Interval {
	if a.empty {
		return Empty
	}

	if a.Contains(0) {
		return Interval{Lo: 0, Hi: math.Max(math.Abs(a.Lo), math.Abs(a.Hi))}
	}

	if a.Lo >= 0 {
		return a
	}

	return Interval{Lo: -a.Hi, Hi: -a.Lo}
}

var (
	_ algebra.Interpretation[Interval] = Algebra{}
	_ algebra.Fixpoint[Interval]       = Algebra{}
)

// Package floatalg interprets terms as ordinary IEEE-754 arithmetic: the
// simplest concrete interpretation, and the one most readers will reach for
// first when exercising pkg/eval.
package floatalg

import (
	"math"

	"github.com/sigma-ir/sigma/pkg/algebra"
)

// defaultAbsTol and defaultRelTol give Converged a mixed absolute/relative
// tolerance: absolute near zero, relative for large magnitudes, matching
// DoubleAlgebra.hh's equality note.
const (
	defaultAbsTol = 1e-9
	defaultRelTol = 1e-9
)

// Float64 implements algebra.Interpretation[float64] and
// algebra.Fixpoint[float64] with native double-precision arithmetic.
// AbsTol and RelTol control Converged; the zero value uses the defaults
// above, so an empty Float64{} is already usable.
type Float64 struct {
	AbsTol float64
	RelTol float64
}

// Num injects a real constant.
func (Float64) Num(value float64) float64 {
	return value
}

// Unary applies abs.
func (Float64) Unary(op algebra.UnaryOp, a float64) float64 {
	switch op {
	case algebra.Abs:
		return math.Abs(a)
	default:
		panic("floatalg: unknown unary operator")
	}
}

// Binary applies add/sub/mul/div/mod. Division and remainder by zero follow
// Go's native float semantics (±Inf, NaN) rather than being trapped here.
func (Float64) Binary(op algebra.BinaryOp, a, b float64) float64 {
	switch op {
	case algebra.Add:
		return a + b
	case algebra.Sub:
		return a - b
	case algebra.Mul:
		return a * b
	case algebra.Div:
		return a / b
	case algebra.Mod:
		return math.Mod(a, b)
	default:
		panic("floatalg: unknown binary operator")
	}
}

// Bottom returns 0, the least-informative starting approximation for a
// recursive variable under plain float arithmetic.
func (Float64) Bottom() float64 {
	return 0
}

// Converged reports whether two successive approximations are within the
// mixed absolute/relative tolerance |cur-prev| <= atol + rtol*|cur|.
func (f Float64) Converged(prev, current float64) bool {
	atol, rtol := f.AbsTol, f.RelTol
	if atol == 0 && rtol == 0 {
		atol, rtol = defaultAbsTol, defaultRelTol
	}

	return math.Abs(current-prev) <= atol+rtol*math.Abs(current)
}

var (
	_ algebra.Interpretation[float64] = Float64{}
	_ algebra.Fixpoint[float64]       = Float64{}
)

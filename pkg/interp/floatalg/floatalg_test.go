package floatalg

import (
	"math"
	"testing"

	"github.com/sigma-ir/sigma/pkg/algebra"
	"github.com/sigma-ir/sigma/pkg/internal/assert"
)

func TestBinaryArithmetic(t *testing.T) {
	f := Float64{}

	assert.True(t, f.Binary(algebra.Add, 2, 3) == 5, "2+3")
	assert.True(t, f.Binary(algebra.Sub, 2, 3) == -1, "2-3")
	assert.True(t, f.Binary(algebra.Mul, 2, 3) == 6, "2*3")
	assert.True(t, f.Binary(algebra.Div, 7, 2) == 3.5, "7/2")
	assert.True(t, f.Binary(algebra.Mod, 7, 2) == 1, "7%2")
}

func TestDivisionByZeroIsInf(t *testing.T) {
	f := Float64{}

	v := f.Binary(algebra.Div, 1, 0)

	assert.True(t, math.IsInf(v, 1), "1/0 must be +Inf, matching native float64 semantics")
}

func TestUnaryAbs(t *testing.T) {
	f := Float64{}

	assert.True(t, f.Unary(algebra.Abs, -3.5) == 3.5, "abs(-3.5)")
	assert.True(t, f.Unary(algebra.Abs, 3.5) == 3.5, "abs(3.5)")
}

func TestBottomIsZero(t *testing.T) {
	assert.True(t, Float64{}.Bottom() == 0, "the zero value is the bottom approximation")
}

func TestConvergedDefaultTolerance(t *testing.T) {
	f := Float64{}

	assert.True(t, f.Converged(1.0, 1.0+1e-12), "values within the default tolerance must have converged")
	assert.False(t, f.Converged(1.0, 2.0), "values far apart must not have converged")
}

func TestConvergedCustomTolerance(t *testing.T) {
	f := Float64{AbsTol: 0.1, RelTol: 0}

	assert.True(t, f.Converged(1.0, 1.05), "0.05 difference is within an 0.1 absolute tolerance")
	assert.False(t, f.Converged(1.0, 1.2), "0.2 difference exceeds an 0.1 absolute tolerance")
}

package intervalalg

import (
	"testing"

	"github.com/sigma-ir/sigma/pkg/algebra"
	"github.com/sigma-ir/sigma/pkg/internal/assert"
)

func TestIntervalInsertIsHull(t *testing.T) {
	a := New(1, 2)
	b := New(5, 6)

	h := a.Insert(b)

	assert.True(t, h.Lo == 1 && h.Hi == 6, "the hull of [1,2] and [5,6] is [1,6]")
}

func TestIntervalWithinIsSubsetOrder(t *testing.T) {
	narrow := New(2, 3)
	wide := New(0, 10)

	assert.True(t, narrow.Within(wide), "[2,3] is within [0,10]")
	assert.False(t, wide.Within(narrow), "[0,10] is not within [2,3]")
	assert.True(t, Empty.Within(narrow), "the empty interval is within everything")
}

func TestIntervalIntersectMeet(t *testing.T) {
	a := New(0, 5)
	b := New(3, 10)

	m := a.Intersect(b)

	assert.True(t, m.Lo == 3 && m.Hi == 5, "the meet of [0,5] and [3,10] is [3,5]")
}

func TestIntervalIntersectDisjointIsEmpty(t *testing.T) {
	a := New(0, 1)
	b := New(5, 6)

	assert.True(t, a.Intersect(b).IsEmpty(), "disjoint intervals meet to the empty interval")
}

func TestAlgebraAddition(t *testing.T) {
	alg := Algebra{}

	sum := alg.Binary(algebra.Add, New(1, 2), New(3, 4))

	assert.True(t, sum.Lo == 4 && sum.Hi == 6, "[1,2]+[3,4] = [4,6]")
}

func TestAlgebraDivisionByIntervalContainingZero(t *testing.T) {
	alg := Algebra{}

	out := alg.Binary(algebra.Div, New(1, 2), New(-1, 1))

	assert.True(t, out.IsEmpty(), "dividing by an interval spanning zero is unsound, so it reports empty")
}

func TestAlgebraBottomIsWide(t *testing.T) {
	alg := Algebra{}

	b := alg.Bottom()

	assert.True(t, b.Contains(0), "bottom must contain every value fixpoint iteration could discover")
}

func TestAlgebraConvergedOnEmpty(t *testing.T) {
	alg := Algebra{}

	assert.True(t, alg.Converged(Empty, Empty), "empty converges with empty")
	assert.False(t, alg.Converged(Empty, New(0, 1)), "empty does not converge with a non-empty interval")
}

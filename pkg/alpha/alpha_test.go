package alpha

import (
	"math"
	"testing"

	"github.com/sigma-ir/sigma/pkg/algebra"
	"github.com/sigma-ir/sigma/pkg/internal/assert"
)

func TestEquivalentIdenticalTerm(t *testing.T) {
	b := algebra.NewBuilder()

	term := b.Add(b.Num(1), b.Num(2))

	assert.True(t, Equivalent(term, term), "a term must be alpha-equivalent to itself")
}

func TestEquivalentRenamedVariables(t *testing.T) {
	b := algebra.NewBuilder()

	x := b.FreshVar()
	_, err := b.Define(x, b.Add(x, b.Num(1)))
	assert.True(t, err == nil, "define x")

	y := b.FreshVar()
	_, err = b.Define(y, b.Add(y, b.Num(1)))
	assert.True(t, err == nil, "define y")

	assert.True(t, Equivalent(x, y), "two variables with isomorphic recursive definitions must be equivalent")
}

func TestNotEquivalentSignedZero(t *testing.T) {
	b := algebra.NewBuilder()

	pos := b.Num(0.0)
	// The constant -0.0 folds to +0 at compile time; Copysign yields a real
	// negative zero at run time.
	neg := b.Num(math.Copysign(0, -1))

	assert.False(t, Equivalent(pos, neg), "+0.0 and -0.0 are distinct interned nodes and must not be equivalent")
}

func TestNotEquivalentDifferentConstant(t *testing.T) {
	b := algebra.NewBuilder()

	a := b.Add(b.Num(1), b.Num(2))
	c := b.Add(b.Num(1), b.Num(3))

	assert.False(t, Equivalent(a, c), "distinct constants must not be equivalent")
}

func TestNotEquivalentDifferentOperator(t *testing.T) {
	b := algebra.NewBuilder()

	a := b.Add(b.Num(1), b.Num(2))
	c := b.Sub(b.Num(1), b.Num(2))

	assert.False(t, Equivalent(a, c), "different operators must not be equivalent")
}

func TestNotEquivalentOperandOrder(t *testing.T) {
	b := algebra.NewBuilder()

	one := b.Num(1)
	two := b.Num(2)

	a := b.Sub(one, two)
	c := b.Sub(two, one)

	assert.False(t, Equivalent(a, c), "alpha-equivalence is not commutative")
}

func TestNotEquivalentFreeVersusBound(t *testing.T) {
	b := algebra.NewBuilder()

	free := b.FreshVar()

	bound := b.FreshVar()
	_, err := b.Define(bound, b.Num(1))
	assert.True(t, err == nil, "define bound")

	assert.False(t, Equivalent(free, bound), "a free and a bound variable must not be equivalent")
}

func TestEquivalentTwoFreeVariables(t *testing.T) {
	b := algebra.NewBuilder()

	a := b.FreshVar()
	c := b.FreshVar()

	assert.True(t, Equivalent(a, c), "two unbound variables are interchangeable placeholders")
}

func TestEquivalentMutualRecursion(t *testing.T) {
	b := algebra.NewBuilder()

	x1, y1 := b.FreshVar(), b.FreshVar()
	_, err := b.Define(x1, b.Add(y1, b.Num(1)))
	assert.True(t, err == nil, "define x1")
	_, err = b.Define(y1, x1)
	assert.True(t, err == nil, "define y1")

	x2, y2 := b.FreshVar(), b.FreshVar()
	_, err = b.Define(x2, b.Add(y2, b.Num(1)))
	assert.True(t, err == nil, "define x2")
	_, err = b.Define(y2, x2)
	assert.True(t, err == nil, "define y2")

	assert.True(t, Equivalent(x1, x2), "isomorphic mutually recursive definitions must be equivalent")
}

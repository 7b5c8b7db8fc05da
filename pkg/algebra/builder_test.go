package algebra

import (
	"math"
	"testing"

	"github.com/sigma-ir/sigma/pkg/internal/assert"
)

func TestNumIsHashConsed(t *testing.T) {
	b := NewBuilder()

	a := b.Num(2.5)
	c := b.Num(2.5)

	assert.True(t, a == c, "equal constants must intern to the same node")
}

func TestNumDistinguishesSignedZero(t *testing.T) {
	b := NewBuilder()

	pos := b.Num(0.0)
	// The constant -0.0 folds to +0 at compile time; Copysign yields a real
	// negative zero at run time.
	neg := b.Num(math.Copysign(0, -1))

	assert.False(t, pos == neg, "+0.0 and -0.0 must be distinct nodes")
}

func TestBinaryIsHashConsed(t *testing.T) {
	b := NewBuilder()

	two := b.Num(2)
	three := b.Num(3)

	a := b.Add(two, three)
	c := b.Add(two, three)

	assert.True(t, a == c, "structurally equal terms must intern to the same node")
}

func TestBinaryOrderMatters(t *testing.T) {
	b := NewBuilder()

	two := b.Num(2)
	three := b.Num(3)

	a := b.Sub(two, three)
	c := b.Sub(three, two)

	assert.False(t, a == c, "operand order distinguishes non-commutative terms")
}

func TestFreshVarAllowsForwardReference(t *testing.T) {
	b := NewBuilder()

	v := b.FreshVar()
	body := b.Add(v, b.Num(1))

	_, err := b.Define(v, body)

	assert.True(t, err == nil, "defining a variable with a body that references itself must succeed")
	assert.True(t, v.Definition() == body, "Definition must return the bound body")
}

func TestDefineRejectsNonVariable(t *testing.T) {
	b := NewBuilder()

	n := b.Num(1)

	_, err := b.Define(n, b.Num(2))

	assert.True(t, err == ErrNotAVariable, "Define on a non-variable must report ErrNotAVariable")
}

func TestFreshVarIndicesAreDistinct(t *testing.T) {
	b := NewBuilder()

	a := b.FreshVar()
	c := b.FreshVar()

	assert.False(t, a == c, "two FreshVar calls must never return the same node")
	assert.False(t, a.Index() == c.Index(), "two FreshVar calls must never share an index")
}

func TestBuilderConvergedIsPointerEquality(t *testing.T) {
	b := NewBuilder()

	n := b.Num(1)
	m := b.Num(2)

	assert.True(t, b.Converged(n, n), "a node must have converged with itself")
	assert.False(t, b.Converged(n, m), "distinct nodes must not report convergence")
}

func TestBuilderSeedVariableIsIdentity(t *testing.T) {
	b := NewBuilder()

	v := b.FreshVar()

	assert.True(t, b.SeedVariable(v) == v, "SeedVariable must seed a variable with itself")
}

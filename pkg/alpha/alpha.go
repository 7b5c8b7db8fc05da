// Package alpha decides α-equivalence of (possibly cyclic) term-DAG nodes:
// whether two terms denote the same rational tree modulo a bijective
// renaming of their recursive variables.
package alpha

import (
	"math"

	"github.com/sigma-ir/sigma/pkg/algebra"
)

type pair struct {
	a, b *algebra.Node
}

// checker holds the scratch state of a single Equivalent call: a memo of
// already-decided pairs, a set of pairs currently being decided (for
// cycle-breaking), and the bijection discovered so far between a's
// variables and b's.
type checker struct {
	memo    map[pair]bool
	pending map[pair]struct{}
	varMap  map[*algebra.Node]*algebra.Node
	revMap  map[*algebra.Node]*algebra.Node
}

// Equivalent reports whether a and b are α-equivalent: the same rational
// tree up to a consistent renaming of recursive variables. It terminates
// on every well-formed term, including cyclic ones.
func Equivalent(a, b *algebra.Node) bool {
	c := &checker{
		memo:    make(map[pair]bool),
		pending: make(map[pair]struct{}),
		varMap:  make(map[*algebra.Node]*algebra.Node),
		revMap:  make(map[*algebra.Node]*algebra.Node),
	}

	return c.equiv(a, b)
}

func (c *checker) equiv(a, b *algebra.Node) bool {
	if a == b {
		// Shared NodeRef: trivially equivalent (hash-consing respected).
		return true
	}

	p := pair{a, b}

	if v, ok := c.memo[p]; ok {
		return v
	}

	if _, ok := c.pending[p]; ok {
		// Back-edge to a pair already being decided: assume equal and let
		// the recursion that opened it confirm or refute the guess.
		return true
	}

	if a.Shape() != b.Shape() {
		c.memo[p] = false

		return false
	}

	c.pending[p] = struct{}{}
	result := c.equivBody(a, b)
	delete(c.pending, p)
	c.memo[p] = result

	return result
}

func (c *checker) equivBody(a, b *algebra.Node) bool {
	switch a.Shape() {
	case algebra.ShapeNum:
		// Bit-equal, not ==: hash-consing keeps +0.0/-0.0 and distinct NaN
		// payloads as distinct nodes (node.go's keyOf), so equivalence must
		// agree with that rather than with float equality's +0.0 == -0.0.
		return math.Float64bits(a.Value()) == math.Float64bits(b.Value())

	case algebra.ShapeUnary:
		return a.UnaryOp() == b.UnaryOp() && c.equiv(a.Operand(), b.Operand())

	case algebra.ShapeBinary:
		return a.BinaryOp() == b.BinaryOp() &&
			c.equiv(a.Left(), b.Left()) &&
			c.equiv(a.Right(), b.Right())

	case algebra.ShapeVar:
		return c.equivVar(a, b)

	default:
		return false
	}
}

// equivVar extends the bijection with (a, b) if neither side is already
// committed to a different partner, then compares definitions. Two
// variables with no definition (both free) are equivalent; one free and
// one bound are not.
func (c *checker) equivVar(a, b *algebra.Node) bool {
	if mapped, ok := c.varMap[a]; ok {
		return mapped == b
	}

	if _, ok := c.revMap[b]; ok {
		// b is already the image of a different a-variable: the renaming
		// would not be a bijection.
		return false
	}

	c.varMap[a] = b
	c.revMap[b] = a

	da, db := a.Definition(), b.Definition()
	if da == nil || db == nil {
		return da == nil && db == nil
	}

	return c.equiv(da, db)
}

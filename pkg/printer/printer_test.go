package printer

import (
	"testing"

	"github.com/sigma-ir/sigma/pkg/algebra"
	"github.com/sigma-ir/sigma/pkg/internal/assert"
)

func TestPrintNoParensForHigherPrecedenceChild(t *testing.T) {
	b := algebra.NewBuilder()

	// 2 + 3 * 4
	term := b.Add(b.Num(2), b.Mul(b.Num(3), b.Num(4)))

	assert.Equal(t, "2 + 3 * 4", Print(term))
}

func TestPrintParensForNonAssociativeRightOperand(t *testing.T) {
	b := algebra.NewBuilder()

	// 10 - (5 - 2)
	term := b.Sub(b.Num(10), b.Sub(b.Num(5), b.Num(2)))

	assert.Equal(t, "10 - (5 - 2)", Print(term))
}

func TestPrintNoParensForLeftAssociativeChain(t *testing.T) {
	b := algebra.NewBuilder()

	// (10 - 5) - 2 prints without parens: left operand at equal precedence
	// associates without ambiguity.
	term := b.Sub(b.Sub(b.Num(10), b.Num(5)), b.Num(2))

	assert.Equal(t, "10 - 5 - 2", Print(term))
}

func TestPrintUnary(t *testing.T) {
	b := algebra.NewBuilder()

	term := b.Abs(b.Sub(b.Num(1), b.Num(5)))

	assert.Equal(t, "abs(1 - 5)", Print(term))
}

func TestPrintUnboundVariable(t *testing.T) {
	b := algebra.NewBuilder()

	v := b.FreshVar()

	assert.Equal(t, "x1", Print(v))
}

func TestPrintUnfoldsDefinitionOnce(t *testing.T) {
	b := algebra.NewBuilder()

	v := b.FreshVar()
	_, err := b.Define(v, b.Add(v, b.Num(1)))
	assert.True(t, err == nil, "define must succeed")

	assert.Equal(t, "x1 + 1", Print(v))
}

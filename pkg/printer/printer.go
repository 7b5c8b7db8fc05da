// Package printer renders a term DAG node as infix notation with the
// minimum parenthesisation needed to preserve its parse, and without
// unfolding a cyclic variable definition more than once.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sigma-ir/sigma/pkg/algebra"
)

// precedence classes, highest binds tightest. Grounded on
// StringAlgebra.hh's priority-tagged string pairs.
type precedence int

const (
	precSum     precedence = 10
	precProduct precedence = 50
	precAtom    precedence = 100
)

// Print renders root as an infix expression.
func Print(root *algebra.Node) string {
	p := &printer{visiting: make(map[*algebra.Node]struct{})}
	var sb strings.Builder

	p.write(&sb, root, precSum-1)

	return sb.String()
}

type printer struct {
	// visiting holds the variables currently being unfolded, so a cycle
	// prints as a bare reference to itself on the second visit instead of
	// recursing forever.
	visiting map[*algebra.Node]struct{}
}

func (p *printer) write(sb *strings.Builder, n *algebra.Node, parentPrec precedence) {
	prec, needsParens := p.precedence(n, parentPrec)

	if needsParens {
		sb.WriteByte('(')
	}

	p.writeBody(sb, n, prec)

	if needsParens {
		sb.WriteByte(')')
	}
}

// precedence returns n's own precedence class and whether, sitting in a
// parent context of parentPrec, it needs parenthesising. Children of
// precSum parented at precSum need no parens on the left, but a right
// operand of a non-associative operator (Sub, Div, Mod) needs parens even
// at equal precedence; callers signal that by passing parentPrec one notch
// higher than the operator's own class for that operand.
func (p *printer) precedence(n *algebra.Node, parentPrec precedence) (precedence, bool) {
	prec := nodePrecedence(n)

	return prec, prec < parentPrec
}

func nodePrecedence(n *algebra.Node) precedence {
	switch n.Shape() {
	case algebra.ShapeNum, algebra.ShapeVar:
		return precAtom
	case algebra.ShapeUnary:
		return precAtom
	case algebra.ShapeBinary:
		switch n.BinaryOp() {
		case algebra.Mul, algebra.Div, algebra.Mod:
			return precProduct
		default:
			return precSum
		}
	default:
		return precAtom
	}
}

func (p *printer) writeBody(sb *strings.Builder, n *algebra.Node, prec precedence) {
	switch n.Shape() {
	case algebra.ShapeNum:
		sb.WriteString(formatFloat(n.Value()))

	case algebra.ShapeUnary:
		sb.WriteString(n.UnaryOp().String())
		sb.WriteByte('(')
		p.write(sb, n.Operand(), precSum-1)
		sb.WriteByte(')')

	case algebra.ShapeBinary:
		p.writeBinary(sb, n, prec)

	case algebra.ShapeVar:
		p.writeVar(sb, n)

	default:
		panic("printer: unknown node shape")
	}
}

func (p *printer) writeBinary(sb *strings.Builder, n *algebra.Node, prec precedence) {
	op := n.BinaryOp()

	rightPrec := prec
	if !commutative(op) {
		// A non-associative right operand needs parens even at equal
		// precedence, so it is checked against one notch higher.
		rightPrec = prec + 1
	}

	p.write(sb, n.Left(), prec)
	sb.WriteByte(' ')
	sb.WriteString(symbol(op))
	sb.WriteByte(' ')
	p.write(sb, n.Right(), rightPrec)
}

func (p *printer) writeVar(sb *strings.Builder, v *algebra.Node) {
	name := "x" + strconv.FormatUint(uint64(v.Index()), 10)

	def := v.Definition()
	if def == nil {
		sb.WriteString(name)
		return
	}

	if _, revisiting := p.visiting[v]; revisiting {
		sb.WriteString(name)
		return
	}

	p.visiting[v] = struct{}{}
	p.write(sb, def, precSum-1)
	delete(p.visiting, v)
}

func commutative(op algebra.BinaryOp) bool {
	return op == algebra.Add || op == algebra.Mul
}

func symbol(op algebra.BinaryOp) string {
	switch op {
	case algebra.Add:
		return "+"
	case algebra.Sub:
		return "-"
	case algebra.Mul:
		return "*"
	case algebra.Div:
		return "/"
	case algebra.Mod:
		return "%"
	default:
		panic(fmt.Sprintf("printer: unknown binary operator %v", op))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

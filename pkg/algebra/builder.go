package algebra

import "errors"

// ErrNotAVariable is returned by Define when its first argument is not a
// ShapeVar node.
var ErrNotAVariable = errors.New("algebra: define called on a non-variable node")

// Builder owns the interning table and the monotonic variable counter for
// one term DAG.  All construction of Node values goes through a Builder;
// nodes remain valid for as long as their Builder is reachable.  A Builder
// is not safe for concurrent use (spec: the engine is single-threaded and
// state-local).
type Builder struct {
	table   map[key]*Node
	nextVar uint
}

// NewBuilder constructs an empty term DAG.
func NewBuilder() *Builder {
	return &Builder{table: make(map[key]*Node)}
}

// intern looks up candidate by its hash-consing key, returning the existing
// node on a hit or inserting and returning candidate on a miss.  Expected
// cost O(1), per the hash-consing contract.
func (b *Builder) intern(candidate *Node) *Node {
	k := keyOf(candidate)
	if existing, ok := b.table[k]; ok {
		return existing
	}

	b.table[k] = candidate

	return candidate
}

// Num returns the interned constant node for value.  Constants are keyed on
// the bit pattern of the float, so +0.0 and -0.0 are distinct nodes and
// every distinct NaN payload is its own node.
func (b *Builder) Num(value float64) *Node {
	return b.intern(&Node{shape: ShapeNum, value: value})
}

// Abs returns the interned node for abs(a).
func (b *Builder) Abs(a *Node) *Node {
	return b.unary(Abs, a)
}

// Add returns the interned node for add(a, b).
func (b *Builder) Add(a, c *Node) *Node {
	return b.binary(Add, a, c)
}

// Sub returns the interned node for sub(a, b).
func (b *Builder) Sub(a, c *Node) *Node {
	return b.binary(Sub, a, c)
}

// Mul returns the interned node for mul(a, b).
func (b *Builder) Mul(a, c *Node) *Node {
	return b.binary(Mul, a, c)
}

// Div returns the interned node for div(a, b).
func (b *Builder) Div(a, c *Node) *Node {
	return b.binary(Div, a, c)
}

// Mod returns the interned node for mod(a, b).
func (b *Builder) Mod(a, c *Node) *Node {
	return b.binary(Mod, a, c)
}

func (b *Builder) unary(op UnaryOp, a *Node) *Node {
	return b.intern(&Node{shape: ShapeUnary, op: uint8(op), left: a})
}

func (b *Builder) binary(op BinaryOp, a, c *Node) *Node {
	return b.intern(&Node{shape: ShapeBinary, op: uint8(op), left: a, right: c})
}

// FreshVar allocates a new variable with a fresh, monotonically increasing
// index.  The variable has no definition until Define is called; it may
// already be referenced from inside the body that will later be bound to
// it, since definitions are a side channel invisible to hashing.
func (b *Builder) FreshVar() *Node {
	b.nextVar++
	v := &Node{shape: ShapeVar, index: b.nextVar}
	// A freshly allocated index can never already be present in the
	// table, so this always inserts rather than hitting.
	return b.intern(v)
}

// Define binds body as the definition of v, and returns v.  v must be a
// ShapeVar node, otherwise ErrNotAVariable is returned.  A second Define on
// the same variable is not rejected; pkg/eval keeps no memoisation across
// Eval/EvalMany calls, so a later evaluation sees the new body.
func (b *Builder) Define(v, body *Node) (*Node, error) {
	if v.shape != ShapeVar {
		return nil, ErrNotAVariable
	}

	v.definition = body

	return v, nil
}

// Unary implements algebra.Interpretation[*Node]: the term DAG is its own
// initial algebra. Unreachable from pkg/eval: pkg/eval special-cases a
// *Builder target to a direct identity before calling into any
// reconstruction at all, precisely because reconstruction cannot
// re-establish a cyclic variable's back-edge. pkg/sexpr's Translator calls
// it directly to build a node from an operator tag.
func (b *Builder) Unary(op UnaryOp, a *Node) *Node { return b.unary(op, a) }

// Binary implements algebra.Interpretation[*Node]. Unreachable from pkg/eval
// for the same reason as Unary; pkg/sexpr's Translator calls it directly.
func (b *Builder) Binary(op BinaryOp, a, c *Node) *Node { return b.binary(op, a, c) }

// Bottom implements algebra.Fixpoint[*Node].  Unreachable: pkg/eval never
// drives Kleene iteration over a *Builder at all, let alone seeds one,
// since evaluating a term under the term DAG is a direct identity. It
// exists only to satisfy the interface.
func (b *Builder) Bottom() *Node {
	panic("algebra: Builder.Bottom should be unreachable; eval treats *Builder as a direct identity")
}

// Converged implements algebra.Fixpoint[*Node] as pointer equality, which is
// sound because of hash-consing (invariant 1). Unreachable for the same
// reason as Bottom.
func (b *Builder) Converged(prev, current *Node) bool {
	return prev == current
}

// SeedVariable implements algebra.VariableSeeder[*Node] as the identity.
// Unreachable for the same reason as Bottom; kept so *Builder satisfies
// VariableSeeder for documentation purposes even though pkg/eval never
// calls it.
func (b *Builder) SeedVariable(v *Node) *Node {
	return v
}

var (
	_ Interpretation[*Node] = (*Builder)(nil)
	_ Fixpoint[*Node]       = (*Builder)(nil)
	_ VariableSeeder[*Node] = (*Builder)(nil)
)

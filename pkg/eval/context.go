package eval

import "github.com/sigma-ir/sigma/pkg/algebra"

// frame represents one hypothesis on the SCC stack: a set of variables
// currently assumed to be mutually recursive, together with a scratch memo
// valid only while this frame is live.  Modelled after the teacher's
// pkg/util/collection/stack.Stack, specialised here because frames must be
// addressable by position (for merging ranges of the stack) rather than
// only pushed/popped from the top.
type frame[V any] struct {
	members map[*algebra.Node]struct{}
	scratch map[*algebra.Node]V
}

func newFrame[V any]() *frame[V] {
	return &frame[V]{
		members: make(map[*algebra.Node]struct{}),
		scratch: make(map[*algebra.Node]V),
	}
}

// context is the per-call scratch state of one top-level Eval/EvalMany
// invocation (C7).  A fresh context is allocated for every call and
// discarded on return; no memoisation survives across calls.
type context[V any] struct {
	// definitive holds values known to be independent of any enclosing
	// SCC: permanent for the lifetime of this context.
	definitive map[*algebra.Node]V
	// sccStack holds the currently open hypotheses, outermost first.
	sccStack []*frame[V]
	// currentValue holds the "current approximation" of every variable
	// presently on the stack.
	currentValue map[*algebra.Node]V
	maxIterations uint
}

func newContext[V any](maxIterations uint) *context[V] {
	return &context[V]{
		definitive:    make(map[*algebra.Node]V),
		currentValue:  make(map[*algebra.Node]V),
		maxIterations: maxIterations,
	}
}

// findFrame searches the SCC stack, top first, for a frame containing v;
// it returns the frame's absolute position and whether one was found.
func (c *context[V]) findFrame(v *algebra.Node) (int, bool) {
	for i := len(c.sccStack) - 1; i >= 0; i-- {
		if _, ok := c.sccStack[i].members[v]; ok {
			return i, true
		}
	}

	return 0, false
}

// mergeDown merges every frame from idx to the top of the stack into a
// single frame occupying position idx, and returns it.  When idx is
// already the top position this is a no-op (the existing frame is
// returned unchanged) — this is what allows a direct self-cycle (x := x +
// 1) to be recognised without disturbing the frame the owning call is
// about to inspect.
func (c *context[V]) mergeDown(idx int) *frame[V] {
	top := len(c.sccStack) - 1
	if idx == top {
		return c.sccStack[idx]
	}

	merged := newFrame[V]()

	for i := idx; i <= top; i++ {
		for m := range c.sccStack[i].members {
			merged.members[m] = struct{}{}
		}

		for k, v := range c.sccStack[i].scratch {
			merged.scratch[k] = v
		}
	}

	c.sccStack = append(c.sccStack[:idx], merged)

	return merged
}

// memoise records a freshly computed value according to its dependency
// set: permanently in definitive when independent of every open SCC,
// otherwise tentatively in the top frame's scratch.
func (c *context[V]) memoise(n *algebra.Node, v V, deps map[*algebra.Node]struct{}) {
	if len(deps) == 0 {
		c.definitive[n] = v
		return
	}

	top := c.sccStack[len(c.sccStack)-1]
	top.scratch[n] = v
}

// seed produces a variable's initial approximation: SeedVariable when the
// interpretation opts in (the initial algebra's identity seeding, see
// algebra.VariableSeeder), otherwise Bottom from a Fixpoint interpretation.
func seed[V any](v *algebra.Node, a algebra.Interpretation[V]) (V, error) {
	if seeder, ok := a.(algebra.VariableSeeder[V]); ok {
		return seeder.SeedVariable(any(v).(V)), nil
	}

	if fp, ok := a.(algebra.Fixpoint[V]); ok {
		return fp.Bottom(), nil
	}

	var zero V

	return zero, ErrNoBottom
}

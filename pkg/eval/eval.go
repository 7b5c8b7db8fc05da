// Package eval implements the generic fixpoint evaluator: interpreting a
// term DAG (pkg/algebra) into any algebra.Interpretation, resolving
// recursive variable definitions by online strongly-connected-component
// discovery and Kleene iteration.
package eval

import (
	log "github.com/sirupsen/logrus"

	"github.com/sigma-ir/sigma/pkg/algebra"
)

// depset is the set of on-stack variables a computed value depends on.  An
// empty depset means the value is independent of every open SCC and may be
// memoised permanently.
type depset = map[*algebra.Node]struct{}

var noDeps depset

// Eval interprets root under a into V, resolving any recursive variable
// definitions reachable from root by Kleene iteration.
func Eval[V any](root *algebra.Node, a algebra.Interpretation[V], opts ...Option) (V, error) {
	results, err := EvalMany([]*algebra.Node{root}, a, opts...)
	if err != nil {
		var zero V

		return zero, err
	}

	return results[0], nil
}

// EvalMany interprets every root under a single shared evaluation context,
// so that a variable reachable from more than one root is only resolved
// once.
func EvalMany[V any](roots []*algebra.Node, a algebra.Interpretation[V], opts ...Option) ([]V, error) {
	if _, ok := any(a).(*algebra.Builder); ok {
		// The term DAG is its own initial algebra: evaluating a term under
		// it is the identity function. This must be a direct identity, not
		// generic reconstruction through Unary/Binary/evalVar — for a
		// cyclic variable, reconstruction has no way to re-establish the
		// back-edge it just unfolded, so it would rebuild an ever-growing
		// acyclic approximation instead of converging to the original node.
		results := make([]V, len(roots))

		for i, root := range roots {
			results[i] = any(root).(V)
		}

		return results, nil
	}

	o := newOptions(opts...)
	c := newContext[V](o.maxIterations)
	results := make([]V, len(roots))

	for i, root := range roots {
		v, _, err := c.evalRec(root, a)
		if err != nil {
			var zero V

			results[i] = zero

			return nil, err
		}

		results[i] = v
	}

	return results, nil
}

// evalRec evaluates n, returning its value and the set of on-stack
// variables that value depends on.
func (c *context[V]) evalRec(n *algebra.Node, a algebra.Interpretation[V]) (V, depset, error) {
	if v, ok := c.definitive[n]; ok {
		return v, noDeps, nil
	}

	if top := len(c.sccStack); top > 0 {
		if v, ok := c.sccStack[top-1].scratch[n]; ok {
			return v, c.sccStack[top-1].members, nil
		}
	}

	switch n.Shape() {
	case algebra.ShapeNum:
		v := a.Num(n.Value())
		c.memoise(n, v, noDeps)

		return v, noDeps, nil

	case algebra.ShapeUnary:
		operand, deps, err := c.evalRec(n.Operand(), a)
		if err != nil {
			var zero V

			return zero, nil, err
		}

		v := a.Unary(n.UnaryOp(), operand)
		c.memoise(n, v, deps)

		return v, deps, nil

	case algebra.ShapeBinary:
		left, leftDeps, err := c.evalRec(n.Left(), a)
		if err != nil {
			var zero V

			return zero, nil, err
		}

		right, rightDeps, err := c.evalRec(n.Right(), a)
		if err != nil {
			var zero V

			return zero, nil, err
		}

		deps := union(leftDeps, rightDeps)
		v := a.Binary(n.BinaryOp(), left, right)
		c.memoise(n, v, deps)

		return v, deps, nil

	case algebra.ShapeVar:
		return c.evalVar(n, a)

	default:
		var zero V

		return zero, nil, ErrUnknownShape
	}
}

// evalVar resolves a variable, discovering and merging strongly connected
// components of mutually recursive variables as back-edges are found, and
// running Kleene iteration once a component's membership is final.
func (c *context[V]) evalVar(v *algebra.Node, a algebra.Interpretation[V]) (V, depset, error) {
	if idx, ok := c.findFrame(v); ok {
		merged := c.mergeDown(idx)

		cur, ok := c.currentValue[v]
		if !ok {
			var err error

			cur, err = seed(v, a)
			if err != nil {
				var zero V

				return zero, nil, err
			}

			c.currentValue[v] = cur
		}

		return cur, merged.members, nil
	}

	body := v.Definition()
	if body == nil {
		return zeroDeps[V](&UnboundError{Index: v.Index()})
	}

	pos := len(c.sccStack)
	c.sccStack = append(c.sccStack, newFrame[V]())
	c.sccStack[pos].members[v] = struct{}{}

	// An interpretation that cannot seed leaves v unseeded here; only a
	// back-edge to v (a genuine cycle) then reports ErrNoBottom, through the
	// lazy seeding above.
	if seeded, err := seed(v, a); err == nil {
		c.currentValue[v] = seeded
	}

	val, deps, err := c.evalRec(body, a)
	if err != nil {
		if len(c.sccStack) > pos {
			c.sccStack = c.sccStack[:pos]
		}

		return zeroDeps[V](err)
	}

	c.currentValue[v] = val

	if len(c.sccStack)-1 != pos {
		// The frame we pushed was absorbed into an earlier one by a
		// back-edge discovered further down the recursion: the
		// enclosing call that owns that earlier frame is responsible
		// for iterating it.
		top := c.sccStack[len(c.sccStack)-1]

		return val, top.members, nil
	}

	if len(deps) == 0 {
		// v's definition never referenced anything in the open SCC:
		// it has a genuinely non-recursive value.
		c.definitive[v] = val
		c.sccStack = c.sccStack[:pos]

		return val, noDeps, nil
	}

	result, resultDeps, aborted, err := c.iterate(pos, a)
	if err != nil {
		return zeroDeps[V](err)
	}

	if aborted {
		return result, resultDeps, nil
	}

	return result, noDeps, nil
}

// iterate runs Kleene iteration on the SCC occupying stack position pos
// until every member's approximation converges, then promotes the
// component's values into definitive and pops it.  If a back-edge
// discovered mid-iteration merges this frame into an earlier one, iterate
// aborts and reports the merge so its caller can propagate it exactly as
// evalVar does for a merge discovered during discovery.
func (c *context[V]) iterate(pos int, a algebra.Interpretation[V]) (V, depset, bool, error) {
	top := c.sccStack[pos]
	members := top.members

	fp, ok := a.(algebra.Fixpoint[V])
	if !ok {
		var zero V

		return zero, nil, false, ErrNoBottom
	}

	var (
		iterations uint
		last       V
	)

	for {
		iterations++
		if iterations > c.maxIterations {
			log.Debugf("eval: scc at %d did not converge after %d iterations", pos, iterations-1)

			var zero V

			return zero, nil, false, &NoConvergenceError{Iterations: iterations - 1}
		}

		// Sub-expressions memoised in scratch during the previous round may
		// depend on a member whose approximation this round is about to
		// change; only entries keyed on a member itself stay valid across
		// rounds, so every other scratch entry must be recomputed.
		for k := range top.scratch {
			if _, ok := members[k]; !ok {
				delete(top.scratch, k)
			}
		}

		previous := make(map[*algebra.Node]V, len(members))
		for m := range members {
			previous[m] = c.currentValue[m]
		}

		for m := range members {
			val, _, err := c.evalRec(m.Definition(), a)
			if err != nil {
				var zero V

				return zero, nil, false, err
			}

			last = val

			if len(c.sccStack)-1 != pos || c.sccStack[pos] != top {
				newTop := c.sccStack[len(c.sccStack)-1]

				return last, newTop.members, true, nil
			}

			c.currentValue[m] = val
		}

		converged := true

		for m := range members {
			if !fp.Converged(previous[m], c.currentValue[m]) {
				converged = false

				break
			}
		}

		if converged {
			break
		}
	}

	log.Debugf("eval: scc at %d converged after %d iterations", pos, iterations)

	for k, v := range top.scratch {
		c.definitive[k] = v
	}

	var representative *algebra.Node

	for m := range members {
		c.definitive[m] = c.currentValue[m]
		representative = m
	}

	c.sccStack = c.sccStack[:pos]

	return c.currentValue[representative], nil, false, nil
}

func zeroDeps[V any](err error) (V, depset, error) {
	var zero V

	return zero, nil, err
}

func union(a, b depset) depset {
	if len(a) == 0 {
		return b
	}

	if len(b) == 0 {
		return a
	}

	out := make(depset, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}

	for k := range b {
		out[k] = struct{}{}
	}

	return out
}

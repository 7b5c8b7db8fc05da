// Package identity names the "initial algebra" reading of a term DAG: a
// *algebra.Builder is itself a Fixpoint[*algebra.Node] interpretation, and
// evaluating a term under it is (α-)identity. pkg/eval special-cases a
// *algebra.Builder target to a direct identity rather than driving it
// through generic reconstruction, since reconstruction cannot re-establish
// a cyclic variable's back-edge. This package exists purely so a call site
// can say that intent without reaching into Builder's other
// responsibilities.
package identity

import "github.com/sigma-ir/sigma/pkg/algebra"

// Of returns b as the term DAG's own interpretation of itself.
func Of(b *algebra.Builder) algebra.Fixpoint[*algebra.Node] {
	return b
}

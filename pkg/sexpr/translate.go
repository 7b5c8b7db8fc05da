package sexpr

import (
	"fmt"
	"strconv"

	"github.com/sigma-ir/sigma/pkg/algebra"
)

// Translator turns parsed SExp into term DAG nodes, naming operators `num`,
// `abs`, `add`, `sub`, `mul`, `div`, `mod`, `var`, `def`:
//
//	(num 2.5)
//	(add (num 2) (mul (num 3) (num 4)))
//	(def x (add (var x) (num 1)))
//
// `var` looks up or lazily creates a named variable; `def` binds a named
// variable's body, creating the variable first if this is its first
// mention. A Translator's variable names are scoped to its own lifetime, so
// reusing one Translator across several calls lets them share variables.
type Translator struct {
	builder *algebra.Builder
	vars    map[string]*algebra.Node
}

// NewTranslator returns a Translator that builds nodes through b.
func NewTranslator(b *algebra.Builder) *Translator {
	return &Translator{builder: b, vars: make(map[string]*algebra.Node)}
}

// Translate converts one parsed SExp into a term DAG node.
func (t *Translator) Translate(s SExp) (*algebra.Node, error) {
	if sym := s.AsSymbol(); sym != nil {
		return nil, fmt.Errorf("sexpr: bare symbol %q is not a term; wrap it in (num ...) or (var ...)", sym.Value)
	}

	list := s.AsList()
	if list == nil || len(list.Elements) == 0 {
		return nil, fmt.Errorf("sexpr: expected a non-empty list")
	}

	head := list.Elements[0].AsSymbol()
	if head == nil {
		return nil, fmt.Errorf("sexpr: expected an operator symbol in head position")
	}

	args := list.Elements[1:]

	switch head.Value {
	case "num":
		return t.translateNum(args)
	case "abs":
		return t.translateUnary(algebra.Abs, args)
	case "add":
		return t.translateBinary(algebra.Add, args)
	case "sub":
		return t.translateBinary(algebra.Sub, args)
	case "mul":
		return t.translateBinary(algebra.Mul, args)
	case "div":
		return t.translateBinary(algebra.Div, args)
	case "mod":
		return t.translateBinary(algebra.Mod, args)
	case "var":
		return t.translateVar(args)
	case "def":
		return t.translateDef(args)
	default:
		return nil, fmt.Errorf("sexpr: unknown operator %q", head.Value)
	}
}

func (t *Translator) translateNum(args []SExp) (*algebra.Node, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sexpr: num takes exactly one argument")
	}

	sym := args[0].AsSymbol()
	if sym == nil {
		return nil, fmt.Errorf("sexpr: num's argument must be a number")
	}

	value, err := strconv.ParseFloat(sym.Value, 64)
	if err != nil {
		return nil, fmt.Errorf("sexpr: %q is not a valid number: %w", sym.Value, err)
	}

	return t.builder.Num(value), nil
}

func (t *Translator) translateUnary(op algebra.UnaryOp, args []SExp) (*algebra.Node, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sexpr: %s takes exactly one argument", op)
	}

	a, err := t.Translate(args[0])
	if err != nil {
		return nil, err
	}

	return t.builder.Unary(op, a), nil
}

func (t *Translator) translateBinary(op algebra.BinaryOp, args []SExp) (*algebra.Node, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("sexpr: %s takes exactly two arguments", op)
	}

	a, err := t.Translate(args[0])
	if err != nil {
		return nil, err
	}

	b, err := t.Translate(args[1])
	if err != nil {
		return nil, err
	}

	return t.builder.Binary(op, a, b), nil
}

func (t *Translator) translateVar(args []SExp) (*algebra.Node, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sexpr: var takes exactly one argument")
	}

	name := args[0].AsSymbol()
	if name == nil {
		return nil, fmt.Errorf("sexpr: var's argument must be a name")
	}

	return t.namedVar(name.Value), nil
}

func (t *Translator) translateDef(args []SExp) (*algebra.Node, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("sexpr: def takes exactly two arguments")
	}

	name := args[0].AsSymbol()
	if name == nil {
		return nil, fmt.Errorf("sexpr: def's first argument must be a name")
	}

	v := t.namedVar(name.Value)

	body, err := t.Translate(args[1])
	if err != nil {
		return nil, err
	}

	return t.builder.Define(v, body)
}

func (t *Translator) namedVar(name string) *algebra.Node {
	if v, ok := t.vars[name]; ok {
		return v
	}

	v := t.builder.FreshVar()
	t.vars[name] = v

	return v
}

package eval

import (
	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
)

// Evaluator holds nothing but behavior; it exists (rather than a bare
// package-level function) so builtins that recurse into evaluation
// (eval, if, fun bodies) share one entry point that future additions
// (tail-call trampolining, step limits) can hook without touching every
// call site.
type Evaluator struct{}

// New returns a ready Evaluator.
func New() *Evaluator { return &Evaluator{} }

// Eval implements §4.4's top-level dispatch: a Sym resolves against e,
// an SExpr evaluates its children and applies the head, and every other
// kind (Number, Bool, Str, Err, QExpr, Function) is self-evaluating.
func (ev *Evaluator) Eval(e *env.Env, v lispy.Value) lispy.Value {
	switch val := v.(type) {
	case lispy.Sym:
		return e.Get(val)
	case lispy.SExpr:
		return ev.EvalSExpr(e, val)
	default:
		return v
	}
}

// EvalSExpr implements §4.4's two-phase algorithm: every child evaluates
// (left to right), unconditionally; only then is the result scanned for
// the first Err, which short-circuits the whole expression. This matters
// because a later sibling may still have side effects (e.g. `print`)
// even when an earlier one reduces to an Err — original_source/src/eval.c's
// `lval_eval_sexpr` runs the same two separate loops rather than bailing
// out of the first one early. An empty SExpr evaluates to itself; a
// single-element SExpr unwraps to that element, except that a Builtin
// accepting zero arguments (`true`, `false`, `env`, ...) is called with
// none; otherwise the head is applied to the evaluated tail.
func (ev *Evaluator) EvalSExpr(e *env.Env, s lispy.SExpr) lispy.Value {
	evaluated := make([]lispy.Value, len(s))
	for i, child := range s {
		evaluated[i] = ev.Eval(e, child)
	}
	for _, r := range evaluated {
		if lispy.IsErr(r) {
			return r
		}
	}

	switch len(evaluated) {
	case 0:
		return lispy.SExpr{}
	case 1:
		if b, ok := evaluated[0].(*Builtin); ok && b.MinArgs <= 0 {
			return b.Call(ev, e, nil)
		}
		return evaluated[0]
	}

	head := evaluated[0]
	fn, ok := head.(Function)
	if !ok {
		return lispy.NewErr("S-Expression starts with incorrect type. Got " + head.Kind().String() + ", Expected " + lispy.KindFunction.String() + ".")
	}
	return fn.Call(ev, e, evaluated[1:])
}

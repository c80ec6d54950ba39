// Package eval implements the evaluator (§4.4), function application
// (§4.6), and the two function value kinds, Builtin and Lambda, that
// satisfy lispy.Value.
package eval

import (
	"fmt"

	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
)

// Function is the evaluator's view of anything callable: a Builtin or
// a Lambda. Both are lispy.Value as well, so they can live inside
// SExpr/QExpr and environments like any other value (§3).
type Function interface {
	lispy.Value
	// Call applies the function to fully-evaluated args in the context
	// of env (used by Builtins that need environment access, e.g. eval
	// and the assignment forms). It returns either a fully-evaluated
	// result or a partially-applied Function (§4.6).
	Call(ev *Evaluator, callEnv *env.Env, args []lispy.Value) lispy.Value
}

// BuiltinFn is a native Go implementation of a built-in operator.
type BuiltinFn func(ev *Evaluator, callEnv *env.Env, args []lispy.Value) lispy.Value

// Builtin wraps a Go function as a callable Function value (§4.6,
// "Builtin: a Go function registered under a name").
type Builtin struct {
	Name    string
	MinArgs int // -1 means no minimum beyond 0
	MaxArgs int // -1 means unbounded (variadic-by-convention builtins)
	Fn      BuiltinFn
}

// Kind implements lispy.Value.
func (*Builtin) Kind() lispy.Kind { return lispy.KindFunction }

// String implements lispy.Value. The printer prefers ReverseLookup by
// environment symbol (§4.2); this is the fallback when no binding is
// found, matching the bracketed style other interpreters in the pack
// use for unnamed natives.
func (b *Builtin) String() string { return fmt.Sprintf("<builtin:%s>", b.Name) }

// Equal implements lispy.Value: builtins are compared by identity.
func (b *Builtin) Equal(other lispy.Value) bool {
	o, ok := other.(*Builtin)
	return ok && b == o
}

// Call implements Function. Arity is checked here so every builtin
// shares one error shape (§4.7, §7).
func (b *Builtin) Call(ev *Evaluator, callEnv *env.Env, args []lispy.Value) lispy.Value {
	if len(args) < b.MinArgs || (b.MaxArgs >= 0 && len(args) > b.MaxArgs) {
		return lispy.NewErr(fmt.Sprintf("%s: expected %s, got %d", b.Name, arityDesc(b.MinArgs, b.MaxArgs), len(args)))
	}
	return b.Fn(ev, callEnv, args)
}

func arityDesc(min, max int) string {
	switch {
	case max < 0:
		return fmt.Sprintf("at least %d argument(s)", min)
	case min == max:
		return fmt.Sprintf("%d argument(s)", min)
	default:
		return fmt.Sprintf("between %d and %d arguments", min, max)
	}
}

// Lambda is a user-defined function: the formals not yet bound, the
// body, and an accumulated closure environment holding whatever
// formals partial application has already bound (§4.5, §4.6).
//
// Env starts out fresh and parentless at `\` time. It gains a parent —
// the *calling* environment of whichever application finally supplies
// the last argument — only once Formals is fully consumed; until then
// each partial application works against its own copy (Env.Clone),
// never mutating an earlier step's result.
type Lambda struct {
	Formals []lispy.Sym // remaining formals; SymAmpersand marks the variadic tail
	Body    lispy.QExpr
	Env     *env.Env
}

// Kind implements lispy.Value.
func (*Lambda) Kind() lispy.Kind { return lispy.KindFunction }

// String implements lispy.Value, printed as `(\ <formals> <body>)` per
// §4.2. A partially-applied Lambda prints only its *remaining* formals
// (§4.6's "copy of the lambda with formals now reduced"), e.g.
// `((\ {x y} {+ x y}) 10)` prints as `(\ {y} {+ x y})`.
func (l *Lambda) String() string {
	formals := make(lispy.QExpr, len(l.Formals))
	for i, f := range l.Formals {
		formals[i] = f
	}
	return fmt.Sprintf("(\\ %s %s)", formals.String(), l.Body.String())
}

// Equal implements lispy.Value: lambdas compare by structural equality
// of their remaining formals and body (§3), not identity — two
// independently-derived partial applications with the same residual
// shape are equal.
func (l *Lambda) Equal(other lispy.Value) bool {
	o, ok := other.(*Lambda)
	if !ok {
		return false
	}
	if len(l.Formals) != len(o.Formals) || !l.Body.Equal(o.Body) {
		return false
	}
	for i := range l.Formals {
		if l.Formals[i] != o.Formals[i] {
			return false
		}
	}
	return true
}

// Call implements Function: the binding loop of §4.6. args is consumed
// left to right against a working copy of Formals; a bare `&` consumes
// the rest of args (even zero of them) as one QExpr and stops; running
// out of formals before args do is an arity Err. Once every formal is
// satisfied, the accumulated environment's parent becomes callEnv and
// the body evaluates there; otherwise a new, still call-less Lambda is
// returned, carrying the bindings made so far.
func (l *Lambda) Call(ev *Evaluator, callEnv *env.Env, args []lispy.Value) lispy.Value {
	given := len(args)
	formals := append([]lispy.Sym{}, l.Formals...)
	fenv := l.Env.Clone()

	for len(args) > 0 {
		if len(formals) == 0 {
			return lispy.NewErr(fmt.Sprintf("too many arguments — Got %d, Expected %d", given, len(l.Formals)))
		}
		sym := formals[0]
		formals = formals[1:]

		if sym == lispy.SymAmpersand {
			if len(formals) != 1 {
				return lispy.NewErr("Symbol '&' not followed by a single symbol")
			}
			rest := formals[0]
			formals = nil
			bound := make(lispy.QExpr, len(args))
			copy(bound, args)
			fenv.Put(rest, bound)
			args = nil
			break
		}

		fenv.Put(sym, args[0])
		args = args[1:]
	}

	if len(formals) == 2 && formals[0] == lispy.SymAmpersand {
		fenv.Put(formals[1], lispy.QExpr{})
		formals = nil
	}

	if len(formals) == 0 {
		fenv.SetParent(callEnv)
		return ev.Eval(fenv, l.Body.AsSExpr())
	}
	return &Lambda{Formals: formals, Body: l.Body, Env: fenv}
}

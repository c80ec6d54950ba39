package builtins

import (
	"fmt"

	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
	"github.com/lispy-lang/lispy/eval"
)

// ifOp implements §4.5: cond must be Bool; then/else are QExprs, one of
// which is retyped to SExpr and evaluated, the other discarded
// unevaluated (so a division-by-zero hiding in the dead branch is
// never observed, per §7's propagation policy).
func ifOp(ev *eval.Evaluator, e *env.Env, args []lispy.Value) lispy.Value {
	cond, err := getBool("if", 0, args[0])
	if err != nil {
		return err
	}
	thenQ, err := getQExpr("if", 1, args[1])
	if err != nil {
		return err
	}
	elseQ, err := getQExpr("if", 2, args[2])
	if err != nil {
		return err
	}
	if cond {
		return ev.Eval(e, thenQ.AsSExpr())
	}
	return ev.Eval(e, elseQ.AsSExpr())
}

// bindAll implements the shared shape of `def` and `=` (§4.5): the
// first argument is a QExpr of Syms, the rest are the values to bind
// to them one-for-one; arity must match. target is the frame the
// binding actually lands in (root for `def`, e itself for `=`) and is
// consulted only to reject writes once frozen (§4.3).
func bindAll(fn string, target *env.Env, args []lispy.Value, bind func(lispy.Sym, lispy.Value)) lispy.Value {
	syms, err := getQExpr(fn, 0, args[0])
	if err != nil {
		return err
	}
	vals := args[1:]
	if len(syms) != len(vals) {
		return lispy.NewErr(fmt.Sprintf("%s: cannot define %d symbol(s) with %d value(s)", fn, len(syms), len(vals)))
	}
	names := make([]lispy.Sym, len(syms))
	for i, s := range syms {
		sym, ok := lispy.GetSym(s)
		if !ok {
			return typeErr(fn, 0, lispy.KindSymbol, s)
		}
		names[i] = sym
	}
	if target.Frozen() {
		return lispy.NewErr(fmt.Sprintf("%s: environment is frozen, cannot bind %v", fn, names))
	}
	for i, n := range names {
		bind(n, vals[i])
	}
	return emptySExpr()
}

func defOp(_ *eval.Evaluator, e *env.Env, args []lispy.Value) lispy.Value {
	return bindAll("def", e.Root(), args, e.Root().Def)
}

func putOp(_ *eval.Evaluator, e *env.Env, args []lispy.Value) lispy.Value {
	return bindAll("=", e, args, e.Put)
}

// lambdaOp implements `\ {formals} {body}` (§4.5).
func lambdaOp(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	formals, err := getQExpr("\\", 0, args[0])
	if err != nil {
		return err
	}
	body, err := getQExpr("\\", 1, args[1])
	if err != nil {
		return err
	}
	return eval.NewLambda(formals, body)
}

// funOp implements `fun {name p1 p2 …} {body}` as sugar for
// `def {name} (\ {p1 p2 …} {body})` (§4.5).
func funOp(ev *eval.Evaluator, e *env.Env, args []lispy.Value) lispy.Value {
	spec, err := getQExpr("fun", 0, args[0])
	if err != nil {
		return err
	}
	body, err := getQExpr("fun", 1, args[1])
	if err != nil {
		return err
	}
	if len(spec) == 0 {
		return lispy.NewErr("fun: argument 1 is {}, but expected {name formal...}")
	}
	name, ok := lispy.GetSym(spec[0])
	if !ok {
		return typeErr("fun", 0, lispy.KindSymbol, spec[0])
	}
	formals := make(lispy.QExpr, len(spec)-1)
	copy(formals, spec[1:])

	lam := eval.NewLambda(formals, body)
	if lispy.IsErr(lam) {
		return lam
	}
	if e.Root().Frozen() {
		return lispy.NewErr(fmt.Sprintf("fun: environment is frozen, cannot bind %v", []lispy.Sym{name}))
	}
	e.Def(name, lam)
	return emptySExpr()
}

package builtins

import (
	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
	"github.com/lispy-lang/lispy/eval"
)

func list(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	q := make(lispy.QExpr, len(args))
	copy(q, args)
	return q
}

func head(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	q, err := getQExpr("head", 0, args[0])
	if err != nil {
		return err
	}
	if len(q) == 0 {
		return lispy.NewErr("head: argument 1 is {}, but expected a non-empty qexpr")
	}
	return lispy.QExpr{q[0]}
}

func tail(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	q, err := getQExpr("tail", 0, args[0])
	if err != nil {
		return err
	}
	if len(q) == 0 {
		return lispy.NewErr("tail: argument 1 is {}, but expected a non-empty qexpr")
	}
	out := make(lispy.QExpr, len(q)-1)
	copy(out, q[1:])
	return out
}

func initOp(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	q, err := getQExpr("init", 0, args[0])
	if err != nil {
		return err
	}
	if len(q) == 0 {
		return lispy.NewErr("init: argument 1 is {}, but expected a non-empty qexpr")
	}
	out := make(lispy.QExpr, len(q)-1)
	copy(out, q[:len(q)-1])
	return out
}

func length(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	q, err := getQExpr("len", 0, args[0])
	if err != nil {
		return err
	}
	return lispy.Number(len(q))
}

func cons(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	q, err := getQExpr("cons", 1, args[1])
	if err != nil {
		return err
	}
	out := make(lispy.QExpr, 0, len(q)+1)
	out = append(out, args[0])
	out = append(out, q...)
	return out
}

func join(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	var out lispy.QExpr
	for i, a := range args {
		q, err := getQExpr("join", i, a)
		if err != nil {
			return err
		}
		out = append(out, q...)
	}
	return out
}

func evalBuiltin(ev *eval.Evaluator, callEnv *env.Env, args []lispy.Value) lispy.Value {
	q, err := getQExpr("eval", 0, args[0])
	if err != nil {
		return err
	}
	return ev.Eval(callEnv, q.AsSExpr())
}

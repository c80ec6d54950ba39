package builtins

import (
	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
	"github.com/lispy-lang/lispy/eval"
)

func ordering(fn string, args []lispy.Value, ok func(a, b lispy.Number) bool) lispy.Value {
	a, err := getNumber(fn, 0, args[0])
	if err != nil {
		return err
	}
	b, err := getNumber(fn, 1, args[1])
	if err != nil {
		return err
	}
	return lispy.Bool(ok(a, b))
}

func lt(ev *eval.Evaluator, e *env.Env, args []lispy.Value) lispy.Value {
	return ordering("<", args, func(a, b lispy.Number) bool { return a < b })
}

func gt(ev *eval.Evaluator, e *env.Env, args []lispy.Value) lispy.Value {
	return ordering(">", args, func(a, b lispy.Number) bool { return a > b })
}

func le(ev *eval.Evaluator, e *env.Env, args []lispy.Value) lispy.Value {
	return ordering("<=", args, func(a, b lispy.Number) bool { return a <= b })
}

func ge(ev *eval.Evaluator, e *env.Env, args []lispy.Value) lispy.Value {
	return ordering(">=", args, func(a, b lispy.Number) bool { return a >= b })
}

func eq(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	return lispy.Bool(args[0].Equal(args[1]))
}

func neq(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	return lispy.Bool(!args[0].Equal(args[1]))
}

func and(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	a, err := getBool("&&", 0, args[0])
	if err != nil {
		return err
	}
	b, err := getBool("&&", 1, args[1])
	if err != nil {
		return err
	}
	return a && b
}

func or(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	a, err := getBool("||", 0, args[0])
	if err != nil {
		return err
	}
	b, err := getBool("||", 1, args[1])
	if err != nil {
		return err
	}
	return a || b
}

func not(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	a, err := getBool("!", 0, args[0])
	if err != nil {
		return err
	}
	return !a
}

func trueOp(_ *eval.Evaluator, _ *env.Env, _ []lispy.Value) lispy.Value  { return lispy.True }
func falseOp(_ *eval.Evaluator, _ *env.Env, _ []lispy.Value) lispy.Value { return lispy.False }

package builtins

import (
	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
	"github.com/lispy-lang/lispy/eval"
)

// numbers validates that every argument of a variadic arithmetic
// builtin is a Number, returning them unwrapped or the first type Err.
func numbers(fn string, args []lispy.Value) ([]lispy.Number, *lispy.Err) {
	out := make([]lispy.Number, len(args))
	for i, a := range args {
		n, err := getNumber(fn, i, a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func add(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	ns, err := numbers("+", args)
	if err != nil {
		return err
	}
	var sum lispy.Number
	for _, n := range ns {
		sum += n
	}
	return sum
}

// sub implements unary negation when given one argument, subtraction
// otherwise (§4.7).
func sub(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	ns, err := numbers("-", args)
	if err != nil {
		return err
	}
	if len(ns) == 1 {
		return -ns[0]
	}
	out := ns[0]
	for _, n := range ns[1:] {
		out -= n
	}
	return out
}

func mul(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	ns, err := numbers("*", args)
	if err != nil {
		return err
	}
	out := lispy.Number(1)
	for _, n := range ns {
		out *= n
	}
	return out
}

// div truncates toward zero, matching Go's native integer division
// (the same truncating behavior as the original C implementation).
func div(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	ns, err := numbers("/", args)
	if err != nil {
		return err
	}
	out := ns[0]
	for _, n := range ns[1:] {
		if n == 0 {
			return lispy.NewErr("Division by Zero")
		}
		out /= n
	}
	return out
}

// mod follows Go's integer remainder sign convention: the result takes
// the sign of the dividend (truncating division), documented here per
// the Open Question in §9.
func mod(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	ns, err := numbers("%", args)
	if err != nil {
		return err
	}
	out := ns[0]
	for _, n := range ns[1:] {
		if n == 0 {
			return lispy.NewErr("Division by Zero")
		}
		out %= n
	}
	return out
}

func pow(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	ns, err := numbers("pow", args)
	if err != nil {
		return err
	}
	out := ns[0]
	for _, n := range ns[1:] {
		if n < 0 {
			return lispy.NewErr("Negative Exponent")
		}
		result := lispy.Number(1)
		for i := lispy.Number(0); i < n; i++ {
			result *= out
		}
		out = result
	}
	return out
}

func minOp(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	ns, err := numbers("min", args)
	if err != nil {
		return err
	}
	out := ns[0]
	for _, n := range ns[1:] {
		if n < out {
			out = n
		}
	}
	return out
}

func maxOp(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	ns, err := numbers("max", args)
	if err != nil {
		return err
	}
	out := ns[0]
	for _, n := range ns[1:] {
		if n > out {
			out = n
		}
	}
	return out
}

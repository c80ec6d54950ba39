package builtins

import (
	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
	"github.com/lispy-lang/lispy/eval"
	"github.com/lispy-lang/lispy/parser"
	"github.com/lispy-lang/lispy/reader"
)

// exiter is called by the `exit` builtin. Install wires it to whatever
// the embedder wants a session-ending request to do (the CLI driver
// exits the process; a test harness can record the call instead).
type exiter struct {
	fn func(code int)
}

func (x *exiter) exit(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	code := 0
	if len(args) == 1 {
		n, err := getNumber("exit", 0, args[0])
		if err != nil {
			return err
		}
		code = int(n)
	}
	if x.fn != nil {
		x.fn(code)
	}
	return emptySExpr()
}

// envBuiltin lists the symbols visible from the calling environment,
// outermost last, as a QExpr of Syms (SPEC_FULL.md §4.7).
func envBuiltin(_ *eval.Evaluator, e *env.Env, _ []lispy.Value) lispy.Value {
	names := e.AllNames()
	out := make(lispy.QExpr, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

// readBuiltin parses a Str as source text and returns the values it
// contains as a QExpr, without evaluating them (SPEC_FULL.md §4.7) —
// the in-language complement to the printer, letting Lispy code build
// and later `eval` data it assembled as text.
func readBuiltin(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	s, err := getStr("read", 0, args[0])
	if err != nil {
		return err
	}
	root, perr := parser.Parse("read", string(s))
	if perr != nil {
		return lispy.NewErr("read: " + perr.Error())
	}
	return lispy.QExpr(reader.ReadAll(root))
}

// typeBuiltin reports a value's Kind as a Str (SPEC_FULL.md §4.7), so
// Lispy code can branch on argument shape without a family of is-a
// predicates.
func typeBuiltin(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	return lispy.Str(args[0].Kind().String())
}

package builtins

import (
	"io"

	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
	"github.com/lispy-lang/lispy/eval"
)

// Options configures the handful of builtins that need something
// beyond (env, args): where `print`/`load` write, and what `exit`
// does. Zero-valued Options are usable in tests: exit becomes a no-op
// and print/load output is discarded.
type Options struct {
	Out  io.Writer
	Exit func(code int)
}

// Install binds every built-in operator of §4.7 plus the supplemental
// operators of SPEC_FULL.md §4.7 into root, the global environment.
func Install(root *env.Env, opts Options) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	iob := &ioBuiltins{out: out}
	ex := &exiter{fn: opts.Exit}

	table := []*eval.Builtin{
		{Name: "list", MinArgs: 0, MaxArgs: -1, Fn: list},
		{Name: "head", MinArgs: 1, MaxArgs: 1, Fn: head},
		{Name: "tail", MinArgs: 1, MaxArgs: 1, Fn: tail},
		{Name: "init", MinArgs: 1, MaxArgs: 1, Fn: initOp},
		{Name: "len", MinArgs: 1, MaxArgs: 1, Fn: length},
		{Name: "cons", MinArgs: 2, MaxArgs: 2, Fn: cons},
		{Name: "join", MinArgs: 0, MaxArgs: -1, Fn: join},
		{Name: "eval", MinArgs: 1, MaxArgs: 1, Fn: evalBuiltin},

		{Name: "+", MinArgs: 1, MaxArgs: -1, Fn: add},
		{Name: "-", MinArgs: 1, MaxArgs: -1, Fn: sub},
		{Name: "*", MinArgs: 1, MaxArgs: -1, Fn: mul},
		{Name: "/", MinArgs: 1, MaxArgs: -1, Fn: div},
		{Name: "%", MinArgs: 1, MaxArgs: -1, Fn: mod},
		{Name: "pow", MinArgs: 1, MaxArgs: -1, Fn: pow},
		{Name: "min", MinArgs: 1, MaxArgs: -1, Fn: minOp},
		{Name: "max", MinArgs: 1, MaxArgs: -1, Fn: maxOp},

		{Name: "<", MinArgs: 2, MaxArgs: 2, Fn: lt},
		{Name: ">", MinArgs: 2, MaxArgs: 2, Fn: gt},
		{Name: "<=", MinArgs: 2, MaxArgs: 2, Fn: le},
		{Name: ">=", MinArgs: 2, MaxArgs: 2, Fn: ge},
		{Name: "==", MinArgs: 2, MaxArgs: 2, Fn: eq},
		{Name: "!=", MinArgs: 2, MaxArgs: 2, Fn: neq},
		{Name: "&&", MinArgs: 2, MaxArgs: 2, Fn: and},
		{Name: "||", MinArgs: 2, MaxArgs: 2, Fn: or},
		{Name: "!", MinArgs: 1, MaxArgs: 1, Fn: not},
		{Name: "true", MinArgs: 0, MaxArgs: 0, Fn: trueOp},
		{Name: "false", MinArgs: 0, MaxArgs: 0, Fn: falseOp},

		{Name: "if", MinArgs: 3, MaxArgs: 3, Fn: ifOp},
		{Name: "def", MinArgs: 1, MaxArgs: -1, Fn: defOp},
		{Name: "=", MinArgs: 1, MaxArgs: -1, Fn: putOp},
		{Name: "\\", MinArgs: 2, MaxArgs: 2, Fn: lambdaOp},
		{Name: "fun", MinArgs: 2, MaxArgs: 2, Fn: funOp},

		{Name: "print", MinArgs: 0, MaxArgs: -1, Fn: iob.print},
		{Name: "error", MinArgs: 1, MaxArgs: 1, Fn: errorBuiltin},
		{Name: "load", MinArgs: 1, MaxArgs: 1, Fn: iob.load},

		{Name: "exit", MinArgs: 0, MaxArgs: 1, Fn: ex.exit},
		{Name: "env", MinArgs: 0, MaxArgs: 0, Fn: envBuiltin},
		{Name: "read", MinArgs: 1, MaxArgs: 1, Fn: readBuiltin},
		{Name: "type", MinArgs: 1, MaxArgs: 1, Fn: typeBuiltin},
	}

	for _, b := range table {
		root.Def(lispy.Sym(b.Name), b)
	}
}

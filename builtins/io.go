package builtins

import (
	"fmt"
	"io"
	"strings"

	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
	"github.com/lispy-lang/lispy/eval"
	"github.com/lispy-lang/lispy/parser"
	"github.com/lispy-lang/lispy/printer"
	"github.com/lispy-lang/lispy/reader"
)

// ioBuiltins closes over the interpreter's output sink, following §9's
// design note to thread handles like this through an explicit object
// rather than a process-global.
type ioBuiltins struct {
	out io.Writer
}

func (b *ioBuiltins) print(_ *eval.Evaluator, e *env.Env, args []lispy.Value) lispy.Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = printer.Print(e, a)
	}
	fmt.Fprintln(b.out, strings.Join(parts, " "))
	return emptySExpr()
}

func errorBuiltin(_ *eval.Evaluator, _ *env.Env, args []lispy.Value) lispy.Value {
	s, err := getStr("error", 0, args[0])
	if err != nil {
		return err
	}
	return lispy.NewErr(string(s))
}

// load implements §4.7: parse the named file, evaluate each top-level
// form, print any Err it reduces to, and keep going (§7's file-driver
// propagation policy also governs `load` itself).
func (b *ioBuiltins) load(ev *eval.Evaluator, e *env.Env, args []lispy.Value) lispy.Value {
	s, err := getStr("load", 0, args[0])
	if err != nil {
		return err
	}
	root, perr := parser.ParseFile(string(s))
	if perr != nil {
		return lispy.NewErr("Could not load library " + perr.Error())
	}
	for _, form := range reader.ReadAll(root) {
		result := ev.Eval(e, form)
		if lispy.IsErr(result) {
			b.print(ev, e, []lispy.Value{result})
		}
	}
	return emptySExpr()
}

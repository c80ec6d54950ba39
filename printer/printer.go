// Package printer converts lispy.Value back into source-compatible
// text (§4.2), including the one rule that needs more than the value
// itself: naming a Builtin by reverse-lookup in the environment it is
// printed from.
package printer

import (
	"strings"

	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
	"github.com/lispy-lang/lispy/eval"
)

// Print renders v as it would be re-read, using e to name builtins by
// their bound symbol (§4.2, §4.3's reverse_lookup).
func Print(e *env.Env, v lispy.Value) string {
	switch val := v.(type) {
	case lispy.Str:
		return val.Quote()
	case lispy.SExpr:
		return printSeq(e, "(", ")", val)
	case lispy.QExpr:
		return printSeq(e, "{", "}", val)
	case *eval.Builtin:
		if sym, ok := e.ReverseLookup(val); ok {
			return sym.String()
		}
		return val.String() // placeholder form, §4.2
	case *eval.Lambda:
		return printLambda(e, val)
	default:
		return val.String()
	}
}

func printSeq(e *env.Env, open, close string, vs []lispy.Value) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, child := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(Print(e, child))
	}
	sb.WriteString(close)
	return sb.String()
}

func printLambda(e *env.Env, l *eval.Lambda) string {
	formals := make(lispy.QExpr, len(l.Formals))
	for i, f := range l.Formals {
		formals[i] = f
	}
	return "(\\ " + printSeq(e, "{", "}", formals) + " " + printSeq(e, "{", "}", l.Body) + ")"
}

package eval

import (
	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
	"t73f.de/r/zero/set"
)

// NewLambda builds a Lambda from a formals QExpr and a body QExpr,
// enforcing §4.6's formal-list shape: every element a Sym, at most one
// `&` sentinel, and that sentinel always immediately followed by exactly
// one more Sym naming the rest-parameter.
//
// Duplicate formal names are rejected the way the teacher's let-binding
// parser rejects duplicate binding names (sxbuiltins/let.go), using
// t73f.de/r/zero/set to count distinct symbols in one pass.
func NewLambda(formals, body lispy.QExpr) lispy.Value {
	syms := make([]lispy.Sym, len(formals))
	for i, f := range formals {
		sym, ok := lispy.GetSym(f)
		if !ok {
			return lispy.NewErr("Cannot define non-symbol. Got " + f.Kind().String() + ", Expected " + lispy.KindSymbol.String() + ".")
		}
		syms[i] = sym
	}

	if set.New(syms...).Length() != len(syms) {
		return lispy.NewErr("Formal list contains a duplicate symbol")
	}

	for i, s := range syms {
		if s == lispy.SymAmpersand && i != len(syms)-2 {
			return lispy.NewErr("Formal list must have exactly one symbol following '&'")
		}
	}

	return &Lambda{Formals: syms, Body: body, Env: env.New(nil)}
}

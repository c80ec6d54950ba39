// Package builtins implements §4.7's operator library: the host
// routines that give the language its observable behavior (arithmetic,
// comparison, boolean logic, list manipulation, control flow,
// definition, and the source-loading primitive), plus the
// supplemental operators introduced for a complete embeddable runtime
// (exit, env, read, type).
package builtins

import (
	"fmt"

	lispy "github.com/lispy-lang/lispy"
)

// typeErr builds the Err shape every built-in uses on a type mismatch:
// function name, 1-based argument index, expected kind, actual kind
// (§4.7, §7 "Type error").
func typeErr(fn string, pos int, want lispy.Kind, got lispy.Value) *lispy.Err {
	return lispy.NewErr(fmt.Sprintf("%s: argument %d is not a %s, but %s", fn, pos+1, want, got.Kind()))
}

func getNumber(fn string, pos int, v lispy.Value) (lispy.Number, *lispy.Err) {
	n, ok := lispy.GetNumber(v)
	if !ok {
		return 0, typeErr(fn, pos, lispy.KindNumber, v)
	}
	return n, nil
}

func getBool(fn string, pos int, v lispy.Value) (lispy.Bool, *lispy.Err) {
	b, ok := lispy.GetBool(v)
	if !ok {
		return false, typeErr(fn, pos, lispy.KindBool, v)
	}
	return b, nil
}

func getStr(fn string, pos int, v lispy.Value) (lispy.Str, *lispy.Err) {
	s, ok := lispy.GetStr(v)
	if !ok {
		return "", typeErr(fn, pos, lispy.KindString, v)
	}
	return s, nil
}

func getQExpr(fn string, pos int, v lispy.Value) (lispy.QExpr, *lispy.Err) {
	q, ok := v.(lispy.QExpr)
	if !ok {
		return nil, typeErr(fn, pos, lispy.KindQExpr, v)
	}
	return q, nil
}

func emptySExpr() lispy.Value { return lispy.SExpr{} }

package lispy

import "strings"

// SExpr is an ordered, evaluable list: the head is applied to the tail.
type SExpr []Value

// Kind implements Value.
func (SExpr) Kind() Kind { return KindSExpr }

// String implements Value.
func (s SExpr) String() string { return joinValues("(", ")", s) }

// Equal implements Value.
func (s SExpr) Equal(other Value) bool {
	o, ok := other.(SExpr)
	return ok && equalSeq(s, o)
}

func joinValues(open, close string, vs []Value) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.String())
	}
	sb.WriteString(close)
	return sb.String()
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

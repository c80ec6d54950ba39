package lispy

import "strconv"

// Number is a 64-bit signed integer value. Lispy has no floating-point
// type; see spec.md Non-goals.
type Number int64

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// String implements Value.
func (n Number) String() string { return strconv.FormatInt(int64(n), 10) }

// Equal implements Value.
func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && n == o
}

// GetNumber returns v as a Number, if possible.
func GetNumber(v Value) (Number, bool) {
	n, ok := v.(Number)
	return n, ok
}

package lispy

// Err is an in-band error value (§7): the language models every runtime
// failure as a value rather than a host-level exception.
type Err struct{ Message string }

// NewErr builds an Err from a formatted message.
func NewErr(message string) *Err { return &Err{Message: message} }

// Kind implements Value.
func (*Err) Kind() Kind { return KindError }

// String implements Value, matching the printer's "Error: <msg>" form
// (§4.2) so that fmt.Stringer callers and the dedicated printer agree.
func (e *Err) String() string { return "Error: " + e.Message }

// Equal implements Value.
func (e *Err) Equal(other Value) bool {
	o, ok := other.(*Err)
	return ok && e.Message == o.Message
}

// Error implements the built-in error interface, so an *Err can also be
// returned as a host-level error where that is convenient.
func (e *Err) Error() string { return e.Message }

// GetErr returns v as an *Err, if possible.
func GetErr(v Value) (*Err, bool) {
	e, ok := v.(*Err)
	return e, ok
}

// IsErr reports whether v is an Err value.
func IsErr(v Value) bool {
	_, ok := v.(*Err)
	return ok
}

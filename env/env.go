// Package env implements the environment model: a symbol-to-value
// mapping with a parent link, forming the lexical scope chain described
// in §3 and §4.3 of the spec.
package env

import lispy "github.com/lispy-lang/lispy"

// Env is a single binding frame with an optional parent. The parent
// chain forms a tree rooted at the global environment (§3).
//
// Bindings are stored in insertion order so that Names and the `env`
// builtin (SPEC_FULL.md §4.7) report symbols in a stable, predictable
// sequence, matching the teacher's own insistence (sxeval/binding.go)
// that a binding know its own local names without consulting its parent.
type Env struct {
	vars   map[lispy.Sym]lispy.Value
	names  []lispy.Sym
	parent *Env
	frozen bool
}

// New creates a fresh environment with the given parent. A nil parent
// marks the global (root) environment.
func New(parent *Env) *Env {
	return &Env{vars: make(map[lispy.Sym]lispy.Value), parent: parent}
}

// Parent returns the enclosing environment, or nil at the root.
func (e *Env) Parent() *Env { return e.parent }

// IsRoot reports whether e is the global environment.
func (e *Env) IsRoot() bool { return e.parent == nil }

// Root walks to the global environment.
func (e *Env) Root() *Env {
	cur := e
	for !cur.IsRoot() {
		cur = cur.parent
	}
	return cur
}

// Get resolves sym by searching the current frame, then its ancestors.
// It returns an Err value (not a Go error) on miss, per §3: "ultimate
// miss yields Err(\"Undefined Symbol …\")".
func (e *Env) Get(sym lispy.Sym) lispy.Value {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[sym]; ok {
			return v
		}
	}
	return lispy.NewErr("Undefined Symbol '" + string(sym) + "'")
}

// Lookup is like Get but reports whether sym was found, without
// constructing an Err value on miss. Builtins that need to distinguish
// "unbound" from "bound to an error value" use this.
func (e *Env) Lookup(sym lispy.Sym) (lispy.Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[sym]; ok {
			return v, true
		}
	}
	return nil, false
}

// Put installs sym in the current frame only, replacing any existing
// local entry (§4.3, the `=` operation). The value is copied so the
// caller retains ownership of its argument (§3, §4.3).
func (e *Env) Put(sym lispy.Sym, v lispy.Value) {
	if _, exists := e.vars[sym]; !exists {
		e.names = append(e.names, sym)
	}
	e.vars[sym] = lispy.Copy(v)
}

// Def installs sym in the root frame (§4.3, the `def` operation).
func (e *Env) Def(sym lispy.Sym, v lispy.Value) {
	e.Root().Put(sym, v)
}

// Clone returns a new, parentless Env holding a shallow copy of e's own
// bindings (not its ancestors'). Used when building up a Lambda's
// captured environment across a chain of partial applications (§4.6):
// each step works against its own copy so an earlier partial result is
// never mutated by a later one.
func (e *Env) Clone() *Env {
	out := New(nil)
	for _, n := range e.names {
		out.names = append(out.names, n)
		out.vars[n] = e.vars[n]
	}
	return out
}

// SetParent links e to parent. Used once, when a Lambda's accumulated
// closure becomes fully bound and is about to evaluate its body (§4.6).
func (e *Env) SetParent(parent *Env) { e.parent = parent }

// Freeze marks e as read-only: later Put/Def calls targeting it fail
// (checked by the `def`/`=`/`fun` builtins, not here, so that internal binding
// — formal-parameter binding at call time, for instance — is never
// affected). Grounded on the teacher's sxeval/binding.go
// ErrConstBinding/Freeze idiom (§4.3); used by the CLI's
// --freeze-globals flag after stdlib bootstrap.
func (e *Env) Freeze() { e.frozen = true }

// Frozen reports whether e was frozen.
func (e *Env) Frozen() bool { return e.frozen }

// Names returns the symbols bound directly in this frame, in insertion
// order.
func (e *Env) Names() []lispy.Sym {
	out := make([]lispy.Sym, len(e.names))
	copy(out, e.names)
	return out
}

// AllNames returns the symbols visible from e: this frame's names first,
// then each ancestor's, outermost last. Used by the `env` builtin
// (SPEC_FULL.md §4.7) and the REPL's `symbols` command (spec.md §6).
func (e *Env) AllNames() []lispy.Sym {
	var out []lispy.Sym
	seen := make(map[lispy.Sym]bool)
	for cur := e; cur != nil; cur = cur.parent {
		for _, n := range cur.names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

// ReverseLookup returns the first symbol name bound (in any frame,
// walking from e to the root) to a value identical to v, used only by
// the printer to name built-in functions (§4.3). Identity is used for
// functions (builtins compare by identity per §3); for everything else
// Equal is used.
func (e *Env) ReverseLookup(v lispy.Value) (lispy.Sym, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		for _, name := range cur.names {
			if bound := cur.vars[name]; sameFunction(bound, v) || (bound != nil && bound.Equal(v)) {
				return name, true
			}
		}
	}
	return "", false
}

// sameFunction reports identity equality for comparable function values,
// without panicking on uncomparable dynamic types (e.g. slice-backed
// SExpr/QExpr).
func sameFunction(a, b lispy.Value) bool {
	defer func() { recover() }() //nolint:errcheck // best-effort identity check
	return a == b
}

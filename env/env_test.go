package env

import (
	"testing"

	lispy "github.com/lispy-lang/lispy"
)

func TestPutLocalNotVisibleToParent(t *testing.T) {
	root := New(nil)
	child := New(root)

	child.Put("x", lispy.Number(1))

	if _, ok := root.Lookup("x"); ok {
		t.Fatalf("x leaked into parent frame")
	}
	if v, ok := child.Lookup("x"); !ok || !v.Equal(lispy.Number(1)) {
		t.Fatalf("child lookup = %v, %v", v, ok)
	}
}

func TestDefBindsRoot(t *testing.T) {
	root := New(nil)
	child := New(New(root))

	child.Def("y", lispy.Number(2))

	if v, ok := root.Lookup("y"); !ok || !v.Equal(lispy.Number(2)) {
		t.Fatalf("def did not reach root: %v, %v", v, ok)
	}
}

func TestGetWalksParentChain(t *testing.T) {
	root := New(nil)
	root.Put("z", lispy.Number(3))
	child := New(root)

	got := child.Get("z")
	if !got.Equal(lispy.Number(3)) {
		t.Fatalf("Get across parent chain = %v", got)
	}
}

func TestGetMissReturnsErr(t *testing.T) {
	e := New(nil)
	got := e.Get("nope")
	if !lispy.IsErr(got) {
		t.Fatalf("expected Err, got %v", got)
	}
}

func TestShadowing(t *testing.T) {
	root := New(nil)
	root.Put("x", lispy.Number(1))
	child := New(root)
	child.Put("x", lispy.Number(2))

	if got := child.Get("x"); !got.Equal(lispy.Number(2)) {
		t.Fatalf("child shadow = %v, want 2", got)
	}
	if got := root.Get("x"); !got.Equal(lispy.Number(1)) {
		t.Fatalf("root value mutated by shadow: %v", got)
	}
}

func TestPutCopiesValue(t *testing.T) {
	e := New(nil)
	orig := lispy.QExpr{lispy.Number(1)}
	e.Put("q", orig)

	orig[0] = lispy.Number(99)

	got, _ := e.Lookup("q")
	if !got.Equal(lispy.QExpr{lispy.Number(1)}) {
		t.Fatalf("stored value aliased caller's slice: %v", got)
	}
}

func TestReverseLookup(t *testing.T) {
	root := New(nil)
	root.Put("one", lispy.Number(1))
	child := New(root)

	sym, ok := child.ReverseLookup(lispy.Number(1))
	if !ok || sym != "one" {
		t.Fatalf("ReverseLookup = %v, %v", sym, ok)
	}

	if _, ok := child.ReverseLookup(lispy.Number(42)); ok {
		t.Fatalf("ReverseLookup found nonexistent value")
	}
}

func TestAllNamesDedupesOuterShadow(t *testing.T) {
	root := New(nil)
	root.Put("a", lispy.Number(1))
	child := New(root)
	child.Put("a", lispy.Number(2))
	child.Put("b", lispy.Number(3))

	names := child.AllNames()
	count := 0
	for _, n := range names {
		if n == "a" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("AllNames listed shadowed symbol %d times", count)
	}
}

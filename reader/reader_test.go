package reader

import (
	"testing"

	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/parser"
)

func mustParse(t *testing.T, src string) *parser.Node {
	t.Helper()
	n, err := parser.Parse("test", src)
	if err != nil {
		t.Fatalf("parse(%q) failed: %v", src, err)
	}
	return n
}

func TestReadAtoms(t *testing.T) {
	root := mustParse(t, `42 -7 foo "hi\n"`)
	got := ReadAll(root)
	want := []lispy.Value{lispy.Number(42), lispy.Number(-7), lispy.Sym("foo"), lispy.Str("hi\n")}
	if len(got) != len(want) {
		t.Fatalf("ReadAll len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadSExprAndQExpr(t *testing.T) {
	root := mustParse(t, `(+ 1 2) {3 4}`)
	got := ReadAll(root)
	if len(got) != 2 {
		t.Fatalf("ReadAll len = %d", len(got))
	}
	wantS := lispy.SExpr{lispy.Sym("+"), lispy.Number(1), lispy.Number(2)}
	if !got[0].Equal(wantS) {
		t.Fatalf("sexpr = %v, want %v", got[0], wantS)
	}
	wantQ := lispy.QExpr{lispy.Number(3), lispy.Number(4)}
	if !got[1].Equal(wantQ) {
		t.Fatalf("qexpr = %v, want %v", got[1], wantQ)
	}
}

func TestReadIgnoresComments(t *testing.T) {
	root := mustParse(t, "1 ; a comment\n2")
	got := ReadAll(root)
	want := []lispy.Value{lispy.Number(1), lispy.Number(2)}
	if len(got) != len(want) {
		t.Fatalf("ReadAll len = %d, want %d", len(got), len(want))
	}
}

func TestReadNested(t *testing.T) {
	root := mustParse(t, `(fun {sum & xs} {eval (cons + xs)})`)
	got := ReadAll(root)
	if len(got) != 1 {
		t.Fatalf("ReadAll len = %d", len(got))
	}
	top, ok := got[0].(lispy.SExpr)
	if !ok || len(top) != 3 {
		t.Fatalf("expected a 3-element SExpr, got %#v", got[0])
	}
}

package builtins

import (
	"bytes"
	"testing"

	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
	"github.com/lispy-lang/lispy/eval"
)

func newTestRoot() (*env.Env, *eval.Evaluator, *bytes.Buffer) {
	root := env.New(nil)
	var out bytes.Buffer
	Install(root, Options{Out: &out})
	return root, eval.New(), &out
}

func run(ev *eval.Evaluator, e *env.Env, v lispy.Value) lispy.Value {
	return ev.Eval(e, v)
}

func sym(s string) lispy.Sym { return lispy.Sym(s) }

func TestArithmetic(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("+"), lispy.Number(1), lispy.Number(2), lispy.Number(3)})
	if !got.Equal(lispy.Number(6)) {
		t.Fatalf("(+ 1 2 3) = %v", got)
	}
}

func TestUnaryMinus(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("-"), lispy.Number(5)})
	if !got.Equal(lispy.Number(-5)) {
		t.Fatalf("(- 5) = %v, want -5", got)
	}
}

func TestDivisionByZero(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("/"), lispy.Number(7), lispy.Number(0)})
	e, ok := lispy.GetErr(got)
	if !ok || e.Message != "Division by Zero" {
		t.Fatalf("(/ 7 0) = %v, want Error: Division by Zero", got)
	}
}

func TestModZero(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("%"), lispy.Number(7), lispy.Number(0)})
	if !lispy.IsErr(got) {
		t.Fatalf("(%% 7 0) = %v, want Err", got)
	}
}

func TestNegativeExponent(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("pow"), lispy.Number(2), lispy.Number(-1)})
	e, ok := lispy.GetErr(got)
	if !ok || e.Message != "Negative Exponent" {
		t.Fatalf("(pow 2 -1) = %v, want Error: Negative Exponent", got)
	}
}

func TestArithmeticIdentities(t *testing.T) {
	root, ev, _ := newTestRoot()
	a, b := lispy.Number(17), lispy.Number(5)

	if got := run(ev, root, lispy.SExpr{sym("+"), a, lispy.Number(0)}); !got.Equal(a) {
		t.Errorf("a+0 = %v", got)
	}
	if got := run(ev, root, lispy.SExpr{sym("*"), a, lispy.Number(1)}); !got.Equal(a) {
		t.Errorf("a*1 = %v", got)
	}
	if got := run(ev, root, lispy.SExpr{sym("-"), a, a}); !got.Equal(lispy.Number(0)) {
		t.Errorf("a-a = %v", got)
	}
	prod := run(ev, root, lispy.SExpr{sym("*"), a, b})
	if got := run(ev, root, lispy.SExpr{sym("/"), prod, b}); !got.Equal(a) {
		t.Errorf("(a*b)/b = %v, want %v", got, a)
	}
}

func TestListOps(t *testing.T) {
	root, ev, _ := newTestRoot()

	got := run(ev, root, lispy.SExpr{sym("cons"), lispy.Number(1), lispy.QExpr{lispy.Number(2), lispy.Number(3)}})
	if !got.Equal(lispy.QExpr{lispy.Number(1), lispy.Number(2), lispy.Number(3)}) {
		t.Fatalf("cons = %v", got)
	}

	got = run(ev, root, lispy.SExpr{sym("head"), lispy.QExpr{lispy.Number(1), lispy.Number(2)}})
	if !got.Equal(lispy.QExpr{lispy.Number(1)}) {
		t.Fatalf("head = %v", got)
	}

	got = run(ev, root, lispy.SExpr{sym("tail"), lispy.QExpr{lispy.Number(1), lispy.Number(2)}})
	if !got.Equal(lispy.QExpr{lispy.Number(2)}) {
		t.Fatalf("tail = %v", got)
	}

	got = run(ev, root, lispy.SExpr{sym("join"), lispy.QExpr{lispy.Number(1)}, lispy.QExpr{lispy.Number(2)}})
	if !got.Equal(lispy.QExpr{lispy.Number(1), lispy.Number(2)}) {
		t.Fatalf("join = %v", got)
	}
}

func TestHeadOfEmptyIsErr(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("head"), lispy.QExpr{}})
	if !lispy.IsErr(got) {
		t.Fatalf("head {} = %v, want Err", got)
	}
}

func TestEvalBuiltin(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("eval"), lispy.QExpr{sym("+"), lispy.Number(1), lispy.Number(2)}})
	if !got.Equal(lispy.Number(3)) {
		t.Fatalf("(eval {+ 1 2}) = %v", got)
	}
}

func TestDefAndAssign(t *testing.T) {
	root, ev, _ := newTestRoot()
	run(ev, root, lispy.SExpr{sym("def"), lispy.QExpr{sym("x")}, lispy.Number(100)})
	run(ev, root, lispy.SExpr{sym("="), lispy.QExpr{sym("x")}, lispy.Number(5)})
	got := run(ev, root, sym("x"))
	if !got.Equal(lispy.Number(5)) {
		t.Fatalf("x = %v, want 5 (both def and = write the global frame at top level)", got)
	}
}

func TestIfDoesNotEvaluateDeadBranch(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{
		sym("if"), lispy.True,
		lispy.QExpr{sym("+"), lispy.Number(1), lispy.Number(1)},
		lispy.QExpr{sym("/"), lispy.Number(1), lispy.Number(0)},
	})
	if !got.Equal(lispy.Number(2)) {
		t.Fatalf("if = %v, want 2", got)
	}
}

func TestFunSugar(t *testing.T) {
	root, ev, _ := newTestRoot()
	run(ev, root, lispy.SExpr{
		sym("fun"),
		lispy.QExpr{sym("sum"), sym("&"), sym("xs")},
		lispy.QExpr{lispy.SExpr{sym("eval"), lispy.SExpr{sym("cons"), sym("+"), sym("xs")}}},
	})
	got := run(ev, root, lispy.SExpr{sym("sum"), lispy.Number(1), lispy.Number(2), lispy.Number(3), lispy.Number(4)})
	if !got.Equal(lispy.Number(10)) {
		t.Fatalf("(sum 1 2 3 4) = %v, want 10", got)
	}
}

func TestErrorShortCircuit(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("+"), lispy.Number(1), sym("undefined"), lispy.Number(2)})
	if !lispy.IsErr(got) {
		t.Fatalf("expected Err, got %v", got)
	}
}

func TestEqualityIsStructural(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("=="), lispy.QExpr{lispy.Number(1), lispy.Number(2)}, lispy.QExpr{lispy.Number(1), lispy.Number(2)}})
	if !got.Equal(lispy.True) {
		t.Fatalf("== on equal QExprs = %v, want true", got)
	}
}

func TestPrintWritesAndReturnsEmpty(t *testing.T) {
	root, ev, out := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("print"), lispy.Number(1), lispy.Str("hi")})
	if !got.Equal(lispy.SExpr{}) {
		t.Fatalf("print return = %v", got)
	}
	if out.String() != `1 "hi"`+"\n" {
		t.Fatalf("print output = %q", out.String())
	}
}

func TestEnvBuiltinListsGlobals(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("env")})
	q, ok := got.(lispy.QExpr)
	if !ok || len(q) == 0 {
		t.Fatalf("env = %v, want non-empty QExpr", got)
	}
}

func TestTypeBuiltin(t *testing.T) {
	root, ev, _ := newTestRoot()
	got := run(ev, root, lispy.SExpr{sym("type"), lispy.Number(1)})
	if !got.Equal(lispy.Str("number")) {
		t.Fatalf("type 1 = %v, want number", got)
	}
}

func TestExitInvokesCallback(t *testing.T) {
	root := env.New(nil)
	var code int
	called := false
	Install(root, Options{Exit: func(c int) { called = true; code = c }})
	ev := eval.New()
	run(ev, root, lispy.SExpr{sym("exit"), lispy.Number(2)})
	if !called || code != 2 {
		t.Fatalf("exit callback called=%v code=%d", called, code)
	}
}

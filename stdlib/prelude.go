// Package stdlib bootstraps the standard library spec.md §1 calls
// "deliberately out of scope" for the core: a small functional prelude
// written in Lispy itself and loaded as source at startup, grounded on
// the teacher's sxbuiltins/prelude.go (`//go:embed` + a Load function
// that reads and evaluates each top-level form against the root
// environment).
package stdlib

import (
	_ "embed"
	"fmt"

	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/env"
	"github.com/lispy-lang/lispy/eval"
	"github.com/lispy-lang/lispy/parser"
	"github.com/lispy-lang/lispy/reader"
)

//go:embed prelude.lspy
var prelude string

// Load parses and evaluates the embedded prelude against root, stopping
// at (and returning) the first form that reduces to an Err — a failure
// here means the prelude itself is broken, not user input, so it is
// surfaced as a host-level error rather than folded into the language's
// own Err value (§7: "the core never mixes these").
func Load(root *env.Env, ev *eval.Evaluator) error {
	node, perr := parser.Parse("prelude", prelude)
	if perr != nil {
		return fmt.Errorf("stdlib: parsing embedded prelude: %w", perr)
	}
	for _, form := range reader.ReadAll(node) {
		result := ev.Eval(root, form)
		if e, ok := lispy.GetErr(result); ok {
			return fmt.Errorf("stdlib: evaluating embedded prelude: %s", e.Message)
		}
	}
	return nil
}

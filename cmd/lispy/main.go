// Command lispy is the interactive REPL and file-driver entry point for
// the Lispy interpreter (spec.md §6): deliberately outside the core's
// semantic surface, it only wires the core's packages together behind a
// command-line interface, following the teacher's own split between
// `cmd/main.go` (the REPL loop) and the library packages it drives.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	lispy "github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/builtins"
	"github.com/lispy-lang/lispy/env"
	"github.com/lispy-lang/lispy/eval"
	"github.com/lispy-lang/lispy/parser"
	"github.com/lispy-lang/lispy/printer"
	"github.com/lispy-lang/lispy/reader"
	"github.com/lispy-lang/lispy/stdlib"
)

func main() {
	app := &cli.App{
		Name:      "lispy",
		Usage:     "an interactive, embeddable Lisp-family interpreter",
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "freeze-globals",
				Usage: "freeze the global environment once the standard prelude has loaded (§4.3)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn, or error",
				Value: "warn",
			},
		},
		ArgsUsage: "[script...]",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(c.String("log-level"))}))
	sessionID := uuid.New().String()
	logger = logger.With("session", sessionID)

	root := env.New(nil)
	builtins.Install(root, builtins.Options{
		Out:  c.App.Writer,
		Exit: os.Exit,
	})

	ev := eval.New()
	if err := stdlib.Load(root, ev); err != nil {
		return fmt.Errorf("lispy: %w", err)
	}

	if c.Bool("freeze-globals") {
		root.Freeze()
		logger.Debug("global environment frozen")
	}

	if c.Args().Len() > 0 {
		return runFiles(c, ev, root, logger)
	}
	return runREPL(c, ev, root, logger)
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// runFiles loads each positional argument in order by invoking the
// `load` builtin itself (spec.md §6: "treat each as a file path and
// invoke `load` on it in order; then exit"), rather than re-implementing
// its parse-and-evaluate logic here. `load` already never aborts on a
// bad file — a parse failure becomes an Err it returns, and a failing
// top-level form inside an otherwise-good file is printed and skipped —
// so the loop below always proceeds to the next path regardless of the
// outcome (§7: the file driver "proceeds to the next file regardless").
func runFiles(c *cli.Context, ev *eval.Evaluator, root *env.Env, logger *slog.Logger) error {
	for _, path := range c.Args().Slice() {
		result := ev.Eval(root, lispy.SExpr{lispy.Sym("load"), lispy.Str(path)})
		if e, ok := lispy.GetErr(result); ok {
			logger.Warn("load failure", "file", path, "error", e.Message)
			fmt.Fprintln(c.App.ErrWriter, e)
		}
	}
	return nil
}

// runREPL implements spec.md §6's read-eval-print loop: `exit` and
// `symbols` are recognized as pseudo-commands before parsing, never
// reaching the evaluator.
func runREPL(c *cli.Context, ev *eval.Evaluator, root *env.Env, logger *slog.Logger) error {
	out := c.App.Writer
	scanner := bufio.NewScanner(c.App.Reader)

	fmt.Fprintln(out, "Lispy — type `exit` to quit, `symbols` to list bindings.")
	for {
		fmt.Fprint(out, "lispy> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()

		switch line {
		case "":
			continue
		case "exit":
			return nil
		case "symbols":
			for _, s := range root.AllNames() {
				fmt.Fprintln(out, s)
			}
			continue
		}

		node, perr := parser.Parse("repl", line)
		if perr != nil {
			fmt.Fprintln(out, perr)
			continue
		}
		for _, form := range reader.ReadAll(node) {
			result := ev.Eval(root, form)
			if e, ok := lispy.GetErr(result); ok {
				logger.Debug("evaluation produced an error value", "form", printer.Print(root, form), "error", e.Message)
			}
			fmt.Fprintln(out, printer.Print(root, result))
		}
	}
}

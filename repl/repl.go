// Package repl is the line-reading front end of calc.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"go.creack.net/calc/evaluator"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
)

// DefaultPrompt is shown before reading from a terminal.
const DefaultPrompt = "Enter expression > "

// Options controls how lines are read and results rendered.
type Options struct {
	Prompt string // Printed before each read when not empty.
	Loop   bool   // Read every line until EOF instead of a single one.
	Dump   bool   // Print the parenthesized tree before the result.
	Tokens bool   // Print the significant tokens before the result.
	Color  bool   // Print errors in red.

	// Logger receives debug traces. Use zerolog.Nop() to disable.
	Logger zerolog.Logger
}

// Run reads expressions from in, writes results to out and errors to errOut.
// The returned exit code is 1 if any expression failed to compile.
// Canceling ctx interrupts a pending read.
func Run(ctx context.Context, in io.Reader, out, errOut io.Writer, opts Options) (int, error) {
	reader := bufio.NewReader(in)
	exitCode := 0
	for {
		if err := ctx.Err(); err != nil {
			return exitCode, err
		}
		if opts.Prompt != "" {
			fmt.Fprint(out, opts.Prompt)
		}

		line, ok, err := readLine(ctx, reader)
		if err != nil {
			if ctx.Err() != nil {
				return exitCode, err
			}
			return 1, err
		}
		if !ok {
			if opts.Prompt != "" {
				fmt.Fprintln(out)
			}
			if opts.Loop {
				return exitCode, nil
			}
			// A single read on an empty stream behaves like an empty line.
		}

		if opts.Loop && line == "" {
			continue
		}
		if err := evalLine(line, out, errOut, opts); err != nil {
			exitCode = 1
		}
		if !opts.Loop {
			return exitCode, nil
		}
	}
}

// Eval compiles and evaluates expr as a whole, newlines included.
// It returns 1 if expr failed to compile, 0 otherwise.
func Eval(expr string, out, errOut io.Writer, opts Options) int {
	if err := evalLine(strings.TrimSpace(expr), out, errOut, opts); err != nil {
		return 1
	}
	return 0
}

type readResult struct {
	line string
	ok   bool
	err  error
}

// readLine reads one line in the background so that canceling ctx does not
// wait for the reader. An abandoned read keeps its goroutine until in returns.
func readLine(ctx context.Context, reader *bufio.Reader) (string, bool, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, ok, err := scanLine(reader)
		ch <- readResult{line: line, ok: ok, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case res := <-ch:
		return res.line, res.ok, res.err
	}
}

func scanLine(reader *bufio.Reader) (string, bool, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
	}
	return strings.TrimSpace(line), true, nil
}

func evalLine(line string, out, errOut io.Writer, opts Options) error {
	opts.Logger.Debug().Str("line", line).Msg("compile")

	if opts.Tokens {
		for _, tok := range lexer.Tokens(line) {
			if tok.Type.IsOneOf(lexer.TokWhitespace, lexer.TokEOF) {
				continue
			}
			fmt.Fprintln(out, tok)
		}
	}

	tree, err := parser.Compile(line)
	if err != nil {
		opts.Logger.Debug().Err(err).Str("kind", Describe(err)).Msg("compile failed")
		printError(errOut, err, opts.Color)
		return err
	}
	if opts.Dump {
		fmt.Fprintln(out, tree.Dump())
	}

	result := evaluator.Evaluate(tree)
	opts.Logger.Debug().Float64("result", result).Msg("evaluated")
	fmt.Fprintln(out, FormatResult(result))
	return nil
}

func printError(w io.Writer, err error, colored bool) {
	c := color.New(color.FgRed)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	_, _ = c.Fprintf(w, "error: %s\n", err)
}

// FormatResult renders a value with the shortest exact representation.
// Infinities and NaN render as "+Inf", "-Inf" and "NaN".
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Describe names the kind of a compile error.
func Describe(err error) string {
	switch {
	case errors.Is(err, parser.ErrInvalidToken):
		return "invalid token"
	case errors.Is(err, parser.ErrIncompleteOperand):
		return "incomplete operand"
	case errors.Is(err, parser.ErrEmptyInput):
		return "empty input"
	case err == nil:
		return ""
	default:
		return "unknown error"
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.creack.net/calc/repl"
)

var (
	flLoop     bool
	flDump     bool
	flTokens   bool
	flNoColor  bool
	flPrompt   string
	flLogLevel string
)

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "calc [expression...]",
	Short: "Evaluate arithmetic expressions",
	Long: `calc evaluates expressions made of numbers and the binary operators + - * /.
'*' and '/' bind tighter than '+' and '-', all operators are left-associative.

Without arguments, one line is read from stdin (every line with --loop).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	// Stop at the first expression word so "8 -3" is not read as a flag.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().BoolVarP(&flLoop, "loop", "l", false, "Read and evaluate every line until EOF")
	rootCmd.Flags().BoolVar(&flDump, "dump", false, "Print the parsed tree before the result")
	rootCmd.Flags().BoolVar(&flTokens, "tokens", false, "Print the tokens before the result")
	rootCmd.Flags().BoolVar(&flNoColor, "no-color", false, "Disable colored errors")
	rootCmd.Flags().StringVar(&flPrompt, "prompt", repl.DefaultPrompt, "Prompt shown before reading (default only when stdin is a terminal)")
	rootCmd.Flags().StringVar(&flLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

func newLogger(levelName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("service", "calc").Logger().
		Level(level)
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(flLogLevel)

	opts := repl.Options{
		Loop:   flLoop,
		Dump:   flDump,
		Tokens: flTokens,
		Color:  !flNoColor && term.IsTerminal(int(os.Stderr.Fd())),
		Logger: logger,
	}

	if len(args) > 0 {
		expr := strings.Join(args, " ")
		logger.Debug().Str("expression", expr).Msg("evaluating arguments")
		exitCode = repl.Eval(expr, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		return nil
	}
	if cmd.Flags().Changed("prompt") || term.IsTerminal(int(os.Stdin.Fd())) {
		opts.Prompt = flPrompt
	}

	logger.Debug().Bool("loop", opts.Loop).Bool("prompt", opts.Prompt != "").Msg("starting")
	code, err := repl.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	if errors.Is(err, context.Canceled) {
		logger.Debug().Msg("interrupted")
		exitCode = 130
		return nil
	}
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	exitCode = code
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fail: %s.\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

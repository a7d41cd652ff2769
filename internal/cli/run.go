package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/solvers"
	"github.com/rs/zerolog"
)

// Result is the outcome of Execute.
type Result struct {
	ExitCode int
	Answer   int64
}

// IO groups the streams a run reads from and writes to.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Execute runs the invocation: it either lists problems or solves one and
// prints the answer on its own line. Errors are returned for the caller to
// report; the logger only adds debug detail.
func Execute(ctx context.Context, inv Invocation, streams IO) (Result, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: streams.Stderr, NoColor: true}).
		Level(inv.LogLevel).
		With().Timestamp().Logger()

	if inv.List {
		fmt.Fprintln(streams.Stdout, "Available problems:")
		for _, k := range solvers.Keys() {
			fmt.Fprintln(streams.Stdout, k)
		}
		return Result{ExitCode: ExitSuccess}, nil
	}

	solve, ok := solvers.Lookup(inv.Key)
	if !ok {
		err := invalidInvocationf("problem %q is not found", inv.Key)
		logger.Debug().Str("key", inv.Key).Msg("unknown problem")
		return Result{ExitCode: ExitInvalidInvocation}, err
	}

	in := streams.Stdin
	if inv.InputPath != "" {
		f, err := os.Open(inv.InputPath)
		if err != nil {
			logger.Debug().Err(err).Str("path", inv.InputPath).Msg("open input")
			return Result{ExitCode: ExitInvalidInvocation}, err
		}
		defer f.Close()
		in = f
	}
	if err := ctx.Err(); err != nil {
		return Result{ExitCode: ExitInternalError}, err
	}

	start := time.Now()
	answer, err := solve(in)
	if err != nil {
		code := exitCodeFor(err)
		logger.Debug().Err(err).Str("key", inv.Key).Int("exit", code).Msg("solve failed")
		return Result{ExitCode: code}, err
	}
	logger.Debug().Str("key", inv.Key).Int64("answer", answer).Dur("took", time.Since(start)).Msg("solved")

	fmt.Fprintln(streams.Stdout, answer)
	return Result{ExitCode: ExitSuccess, Answer: answer}, nil
}

// exitCodeFor maps the kernel error taxonomy onto exit codes.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, puzzle.ErrNoSolution):
		return ExitNoSolution
	case errors.Is(err, puzzle.ErrFormat), errors.Is(err, puzzle.ErrSize), errors.Is(err, puzzle.ErrEmptyInput):
		return ExitBadInput
	}
	return ExitInternalError
}

// Run parses args and executes them against the process streams.
func Run(ctx context.Context, args []string) (Result, error) {
	inv, err := ParseInvocation(args)
	if err != nil {
		return Result{ExitCode: ExitCode(err)}, err
	}
	return Execute(ctx, inv, IO{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr})
}

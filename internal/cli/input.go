package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Process exit codes. Each puzzle error class maps to one code so scripts
// can tell bad input from an input that has no answer.
const (
	// ExitSuccess: an answer or the problem listing was printed.
	ExitSuccess = 0
	// ExitBadInput: the puzzle input was malformed, mis-sized or empty.
	ExitBadInput = 1
	// ExitInvalidInvocation: bad flags, an unknown key or an unreadable -input file.
	ExitInvalidInvocation = 2
	// ExitNoSolution: well-formed input without an answer, including overflow.
	ExitNoSolution = 3
	// ExitInternalError: any other failure.
	ExitInternalError = 4
)

// Invocation is the parsed command line of one run.
type Invocation struct {
	Key       string
	List      bool
	InputPath string
	LogLevel  zerolog.Level
}

// InvocationError rejects a command line before any puzzle runs. ExitCode is
// the code the process should exit with; Message is printed as is.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses flags and the optional problem key.
//
// With no key (or -list) the run lists the registered problems. No
// environment variables are read.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var (
		list      bool
		inputPath string
		level     string
	)
	fs.BoolVar(&list, "list", false, "List available problems.")
	fs.StringVar(&inputPath, "input", "", "Read puzzle input from this file instead of stdin.")
	fs.StringVar(&level, "log-level", "warn", "Log level: debug|info|warn|error|disabled.")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() > 1 {
		return Invocation{}, invalidInvocationf("expected one problem key, got %q", strings.Join(fs.Args(), " "))
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return Invocation{}, invalidInvocationf("invalid -log-level %q", level)
	}

	inv := Invocation{
		List:      list,
		InputPath: strings.TrimSpace(inputPath),
		LogLevel:  lvl,
	}
	if fs.NArg() == 1 {
		inv.Key = strings.TrimSpace(fs.Arg(0))
	}
	if inv.Key == "" {
		inv.List = true
	}

	return inv, nil
}

// ExitCode returns the exit code carried by an InvocationError in err's
// chain, ExitInvalidInvocation when it carries none, and ExitInternalError
// for anything else.
func ExitCode(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	return ExitInternalError
}

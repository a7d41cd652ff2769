package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat indicates malformed syntax in a line or token.
	ErrFormat = errors.New("puzzle: malformed input")

	// ErrSize indicates a dimension mismatch between records.
	ErrSize = errors.New("puzzle: dimension mismatch")

	// ErrNoSolution indicates well-formed input that admits no answer.
	ErrNoSolution = errors.New("puzzle: no solution")

	// ErrEmptyInput indicates that no records were supplied.
	ErrEmptyInput = errors.New("puzzle: empty input")
)

// InputError describes a rejected piece of input.
// Line is 1-based; zero means the error is not tied to a single line.
type InputError struct {
	Line int
	Text string
	Want string
	Err  error
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Err.Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Want != "" {
		return fmt.Sprintf("%s: %q (want %s)", msg, e.Text, e.Want)
	}

	return fmt.Sprintf("%s: %q", msg, e.Text)
}

func (e *InputError) Unwrap() error { return e.Err }

// Errorf builds an InputError for text that failed against want.
func Errorf(err error, text, want string) error {
	return &InputError{Text: text, Want: want, Err: err}
}

// AtLine attaches a 1-based line number to err if it is an InputError
// without one; other errors are wrapped as an InputError for that line.
func AtLine(err error, line int, text string) error {
	if err == nil {
		return nil
	}
	var ie *InputError
	if errors.As(err, &ie) {
		if ie.Line == 0 {
			cp := *ie
			cp.Line = line
			return &cp
		}
		return err
	}

	return &InputError{Line: line, Text: text, Err: err}
}

package lanternfish

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/puzzle"
)

var (
	// ErrBadTimer indicates a negative timer in the input.
	ErrBadTimer = fmt.Errorf("lanternfish: timer must be >= 0: %w", puzzle.ErrFormat)

	// ErrBadDays indicates a negative number of days.
	ErrBadDays = fmt.Errorf("lanternfish: days must be >= 0: %w", puzzle.ErrFormat)

	// ErrBadOptions indicates negative timers or an unknown strategy in Options.
	ErrBadOptions = fmt.Errorf("lanternfish: invalid options: %w", puzzle.ErrFormat)

	// ErrOverflow indicates a population that does not fit in uint64.
	ErrOverflow = fmt.Errorf("lanternfish: population overflows uint64: %w", puzzle.ErrNoSolution)
)

package diagnostic

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/puzzle"
)

var (
	// ErrBadBit indicates a character other than '0' or '1'.
	ErrBadBit = fmt.Errorf("diagnostic: invalid bit: %w", puzzle.ErrFormat)

	// ErrWidthMismatch indicates rows of differing widths.
	ErrWidthMismatch = fmt.Errorf("diagnostic: width mismatch: %w", puzzle.ErrSize)

	// ErrTooWide indicates rows wider than 64 bits.
	ErrTooWide = fmt.Errorf("diagnostic: wider than 64 bits: %w", puzzle.ErrSize)

	// ErrOverflow indicates a product of two readings that does not fit in uint64.
	ErrOverflow = fmt.Errorf("diagnostic: product overflows uint64: %w", puzzle.ErrNoSolution)
)

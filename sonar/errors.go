package sonar

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrNegativeDepth indicates a depth reading below zero.
var ErrNegativeDepth = fmt.Errorf("sonar: depth must be >= 0: %w", puzzle.ErrFormat)

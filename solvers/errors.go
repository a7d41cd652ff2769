package solvers

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrAnswerRange indicates an answer too large for int64.
var ErrAnswerRange = fmt.Errorf("solvers: answer exceeds int64: %w", puzzle.ErrNoSolution)

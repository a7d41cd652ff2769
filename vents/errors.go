package vents

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/puzzle"
)

var (
	// ErrBadPoint indicates text that is not "x,y".
	ErrBadPoint = fmt.Errorf("vents: invalid point: %w", puzzle.ErrFormat)

	// ErrBadLine indicates text that is not "x1,y1 -> x2,y2".
	ErrBadLine = fmt.Errorf("vents: invalid line: %w", puzzle.ErrFormat)
)

package bingo

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/puzzle"
)

var (
	// ErrBoardSize indicates a board that is not Size×Size.
	ErrBoardSize = fmt.Errorf("bingo: board must be %dx%d: %w", Size, Size, puzzle.ErrSize)

	// ErrDuplicateNumber indicates a number repeated on one board.
	ErrDuplicateNumber = fmt.Errorf("bingo: duplicate number on board: %w", puzzle.ErrFormat)

	// ErrNoWinner indicates the draws were exhausted before the requested win.
	ErrNoWinner = fmt.Errorf("bingo: draws exhausted without a winner: %w", puzzle.ErrNoSolution)
)

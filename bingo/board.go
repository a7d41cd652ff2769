package bingo

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

// Size is the side length of a board.
const Size = 5

// full is the mask of a complete row or column.
const full = 1<<Size - 1

// Board is a Size×Size grid of distinct numbers with marking state.
// Cells are stored row-major: cells[row*Size+col].
type Board struct {
	cells [Size * Size]int
	rows  [Size]uint8
	cols  [Size]uint8
}

// NewBoard builds a board from a row-major grid.
func NewBoard(grid [Size][Size]int) (*Board, error) {
	b := &Board{}
	seen := make(map[int]bool, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			n := grid[row][col]
			if seen[n] {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateNumber, n)
			}
			seen[n] = true
			b.cells[index(row, col)] = n
		}
	}

	return b, nil
}

// ParseBoard parses Size lines of Size whitespace-separated integers.
// Blank lines are ignored.
func ParseBoard(s string) (*Board, error) {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, strings.TrimSuffix(l, "\r"))
		}
	}
	if len(lines) != Size {
		return nil, puzzle.Errorf(
			fmt.Errorf("%w: board has height %d", ErrBoardSize, len(lines)), s, fmt.Sprintf("%d rows", Size))
	}

	var grid [Size][Size]int
	for row, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != Size {
			return nil, puzzle.Errorf(
				fmt.Errorf("%w: row %d has width %d", ErrBoardSize, row+1, len(fields)),
				line, fmt.Sprintf("%d numbers", Size))
		}
		for col, f := range fields {
			n, err := puzzle.ParseInt(f)
			if err != nil {
				return nil, err
			}
			grid[row][col] = n
		}
	}

	return NewBoard(grid)
}

// Mark marks n if it is on the board and reports whether it was found.
func (b *Board) Mark(n int) bool {
	for i, v := range b.cells {
		if v == n {
			row, col := coordinate(i)
			b.rows[row] |= 1 << col
			b.cols[col] |= 1 << row
			return true
		}
	}

	return false
}

// Won reports whether any row or column is completely marked.
func (b *Board) Won() bool {
	for i := 0; i < Size; i++ {
		if b.rows[i] == full || b.cols[i] == full {
			return true
		}
	}

	return false
}

// Marked reports whether the cell at (row, col) is marked. Cells outside
// the grid are never marked.
func (b *Board) Marked(row, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	return b.rows[row]&(1<<col) != 0
}

// UnmarkedSum returns the sum of all unmarked numbers.
func (b *Board) UnmarkedSum() int {
	sum := 0
	for i, v := range b.cells {
		if row, col := coordinate(i); !b.Marked(row, col) {
			sum += v
		}
	}

	return sum
}

// At returns the number at (row, col); ok is false outside the grid.
func (b *Board) At(row, col int) (n int, ok bool) {
	if !inBounds(row, col) {
		return 0, false
	}
	return b.cells[index(row, col)], true
}

// Clone returns an independent copy of b, marks included.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// String renders the numbers in the input layout, two columns per number.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%2d", b.cells[index(row, col)])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (row, col) to a row-major offset.
func index(row, col int) int {
	return row*Size + col
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// coordinate converts a row-major offset back to (row, col).
func coordinate(i int) (row, col int) {
	return i / Size, i % Size
}

package bingo

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

// Game is a draw sequence and the boards playing it.
type Game struct {
	Draws  []int
	Boards []*Board
}

// Result describes a winning board.
type Result struct {
	Board       int // index into Game.Boards
	Turn        int // index into Game.Draws
	Draw        int
	UnmarkedSum int
}

// Score returns UnmarkedSum × Draw.
func (r Result) Score() int {
	return r.UnmarkedSum * r.Draw
}

// ParseDraws parses the comma-separated draw sequence. Empty tokens are skipped.
func ParseDraws(s string) ([]int, error) {
	return puzzle.ParseInts(s, ",")
}

// ParseGame parses a draw line followed by blank-line-separated boards.
func ParseGame(text string) (*Game, error) {
	lines := puzzle.Lines(text)

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) {
		return nil, fmt.Errorf("bingo: no draw line: %w", puzzle.ErrEmptyInput)
	}
	draws, err := ParseDraws(lines[i])
	if err != nil {
		return nil, puzzle.AtLine(err, i+1, lines[i])
	}

	g := &Game{Draws: draws}
	var (
		block []string
		start int
	)
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		b, err := ParseBoard(strings.Join(block, "\n"))
		if err != nil {
			return fmt.Errorf("board %d at line %d: %w", len(g.Boards)+1, start, err)
		}
		g.Boards = append(g.Boards, b)
		block = block[:0]
		return nil
	}
	for n := i + 1; n < len(lines); n++ {
		if strings.TrimSpace(lines[n]) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if len(block) == 0 {
			start = n + 1
		}
		block = append(block, lines[n])
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return g, nil
}

// boards returns fresh copies of the game's boards for one play.
func (g *Game) boards() []*Board {
	out := make([]*Board, len(g.Boards))
	for i, b := range g.Boards {
		out[i] = b.Clone()
	}
	return out
}

// Play returns the first board to complete a row or column.
func (g *Game) Play() (Result, error) {
	boards := g.boards()
	for turn, n := range g.Draws {
		for _, b := range boards {
			b.Mark(n)
		}
		for i, b := range boards {
			if b.Won() {
				return Result{Board: i, Turn: turn, Draw: n, UnmarkedSum: b.UnmarkedSum()}, nil
			}
		}
	}

	return Result{}, ErrNoWinner
}

// PlayLast returns the board that completes last.
func (g *Game) PlayLast() (Result, error) {
	boards := g.boards()
	playing := make([]int, len(boards))
	for i := range playing {
		playing[i] = i
	}

	remain := make([]int, 0, len(boards))
	for turn, n := range g.Draws {
		if len(playing) == 0 {
			break
		}
		remain = remain[:0]
		last := -1
		for _, i := range playing {
			b := boards[i]
			b.Mark(n)
			if b.Won() {
				last = i
			} else {
				remain = append(remain, i)
			}
		}
		if len(remain) == 0 && last >= 0 {
			return Result{Board: last, Turn: turn, Draw: n, UnmarkedSum: boards[last].UnmarkedSum()}, nil
		}
		playing, remain = remain, playing
	}

	return Result{}, ErrNoWinner
}

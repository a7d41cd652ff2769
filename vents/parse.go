package vents

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

// ParsePoint parses "x,y"; whitespace around either coordinate is allowed.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, puzzle.Errorf(ErrBadPoint, s, `"x,y"`)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, puzzle.Errorf(fmt.Errorf("%w: cannot parse x", ErrBadPoint), s, `"x,y"`)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, puzzle.Errorf(fmt.Errorf("%w: cannot parse y", ErrBadPoint), s, `"x,y"`)
	}

	return Point{X: x, Y: y}, nil
}

// ParseLine parses "x1,y1 -> x2,y2".
func ParseLine(s string) (Line, error) {
	a, b, ok := strings.Cut(s, "->")
	if !ok {
		return Line{}, puzzle.Errorf(ErrBadLine, s, `"x1,y1 -> x2,y2"`)
	}
	start, err := ParsePoint(a)
	if err != nil {
		return Line{}, err
	}
	end, err := ParsePoint(b)
	if err != nil {
		return Line{}, err
	}

	return Line{Start: start, End: end}, nil
}

// ParseLines parses one segment per line.
func ParseLines(text string) ([]Line, error) {
	var lines []Line
	for i, s := range puzzle.Lines(text) {
		l, err := ParseLine(s)
		if err != nil {
			return nil, puzzle.AtLine(err, i+1, s)
		}
		lines = append(lines, l)
	}

	return lines, nil
}

// ParseField parses segments into a field that does or does not consider
// diagonals.
func ParseField(text string, diagonals bool) (*Field, error) {
	lines, err := ParseLines(text)
	if err != nil {
		return nil, err
	}
	if diagonals {
		return NewDiagonalField(lines), nil
	}

	return NewBasicField(lines), nil
}

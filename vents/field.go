package vents

import (
	"cmp"
	"iter"
	"slices"
)

// Points yields the grid points covered by l from Start to End inclusive.
// Diagonal segments are covered only when diagonals is true.
func (l Line) Points(diagonals bool) iter.Seq[Point] {
	delta := l.End.Sub(l.Start)
	steps := -1
	switch {
	case delta.X == 0 && delta.Y == 0:
		// zero-length: nothing
	case delta.X == 0:
		steps = abs(delta.Y)
	case delta.Y == 0:
		steps = abs(delta.X)
	case diagonals && abs(delta.X) == abs(delta.Y):
		steps = abs(delta.X)
	}
	unit := delta.Unit()

	return func(yield func(Point) bool) {
		p := l.Start
		for i := 0; i <= steps; i++ {
			if !yield(p) {
				return
			}
			p = p.Add(unit)
		}
	}
}

// Field is a set of vent lines and whether diagonal lines are rasterized.
type Field struct {
	Lines     []Line
	Diagonals bool
}

// NewBasicField returns a field that rasterizes horizontal and vertical lines only.
func NewBasicField(lines []Line) *Field {
	return &Field{Lines: lines}
}

// NewDiagonalField returns a field that also rasterizes 45° lines.
func NewDiagonalField(lines []Line) *Field {
	return &Field{Lines: lines, Diagonals: true}
}

// Histogram counts how many lines cover each point.
func (f *Field) Histogram() map[Point]int {
	hist := make(map[Point]int)
	for _, l := range f.Lines {
		for p := range l.Points(f.Diagonals) {
			hist[p]++
		}
	}

	return hist
}

// DangerousPoints returns the points covered at least twice, ordered by Y
// then X.
func (f *Field) DangerousPoints() []Point {
	var out []Point
	for p, n := range f.Histogram() {
		if n >= 2 {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})

	return out
}

// Overlaps returns the number of dangerous points.
func (f *Field) Overlaps() int {
	n := 0
	for _, c := range f.Histogram() {
		if c >= 2 {
			n++
		}
	}

	return n
}

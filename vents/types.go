package vents

import "fmt"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Unit returns the sign of each coordinate.
func (p Point) Unit() Point { return Point{sign(p.X), sign(p.Y)} }

// String renders p as "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Line is a segment between two points.
type Line struct {
	Start, End Point
}

// String renders l as "x1,y1 -> x2,y2".
func (l Line) String() string { return l.Start.String() + " -> " + l.End.String() }

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package dive

import (
	"fmt"
	"strconv"
)

// Direction tags a Command.
type Direction int

const (
	// Forward moves the submarine horizontally.
	Forward Direction = iota
	// Up decreases depth (or aim).
	Up
	// Down increases depth (or aim).
	Down
)

var directionNames = [...]string{Forward: "forward", Up: "up", Down: "down"}

func (d Direction) String() string {
	if d < Forward || d > Down {
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
	return directionNames[d]
}

// Command is one navigation step.
type Command struct {
	Dir    Direction
	Amount int
}

// String renders c in the input syntax, e.g. "forward 5".
func (c Command) String() string {
	return fmt.Sprintf("%s %d", c.Dir, c.Amount)
}

// Position is the state after a sequence of commands.
type Position struct {
	Horizontal int64
	Depth      int64
	Aim        int64
}

// Product returns Depth × Horizontal, the puzzle answer.
func (p Position) Product() int64 {
	return p.Depth * p.Horizontal
}

package dive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrBadCommand indicates a line that is not "<direction> <magnitude>".
var ErrBadCommand = fmt.Errorf("dive: invalid command: %w", puzzle.ErrFormat)

const commandShape = `"forward|up|down <non-negative integer>"`

// ParseCommand parses a single command line.
func ParseCommand(s string) (Command, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return Command{}, puzzle.Errorf(ErrBadCommand, s, commandShape)
	}

	var cmd Command
	switch strings.ToLower(parts[0]) {
	case "forward":
		cmd.Dir = Forward
	case "up":
		cmd.Dir = Up
	case "down":
		cmd.Dir = Down
	default:
		return Command{}, puzzle.Errorf(ErrBadCommand, s, commandShape)
	}

	// ParseUint rejects signs, so "-1" and "+1" both fail here.
	n, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Command{}, puzzle.Errorf(ErrBadCommand, s, commandShape)
	}
	cmd.Amount = int(n)

	return cmd, nil
}

// ParseCommands parses one command per line. Trailing blank lines are ignored;
// any other blank line is a format error.
func ParseCommands(text string) ([]Command, error) {
	lines := puzzle.Lines(text)
	cmds := make([]Command, 0, len(lines))
	for i, line := range lines {
		cmd, err := ParseCommand(line)
		if err != nil {
			return nil, puzzle.AtLine(err, i+1, line)
		}
		cmds = append(cmds, cmd)
	}

	return cmds, nil
}

// Navigate applies cmds with up/down acting on depth directly.
func Navigate(cmds []Command) Position {
	var p Position
	for _, c := range cmds {
		x := int64(c.Amount)
		switch c.Dir {
		case Forward:
			p.Horizontal += x
		case Up:
			p.Depth -= x
		case Down:
			p.Depth += x
		}
	}

	return p
}

// NavigateWithAim applies cmds with up/down steering aim, and forward diving
// by aim × magnitude.
func NavigateWithAim(cmds []Command) Position {
	var p Position
	for _, c := range cmds {
		x := int64(c.Amount)
		switch c.Dir {
		case Forward:
			p.Horizontal += x
			p.Depth += p.Aim * x
		case Up:
			p.Aim -= x
		case Down:
			p.Aim += x
		}
	}

	return p
}

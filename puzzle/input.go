package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits text into lines, dropping a trailing carriage return from each
// and any blank lines at the end of the input.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// ParseInt parses a base-10 integer surrounded by optional whitespace.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Errorf(fmt.Errorf("%w: not an integer", ErrFormat), s, "integer")
	}

	return n, nil
}

// ParseInts parses a sep-separated list of integers. Tokens are trimmed;
// empty tokens are skipped so "1,,2, " yields [1 2].
func ParseInts(s, sep string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(s, sep) {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		n, err := ParseInt(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

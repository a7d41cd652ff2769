package diagnostic

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/aoc2021/puzzle"
)

const maxWidth = 64

// ParseBits parses a non-empty string of '0' and '1'.
func ParseBits(s string) (Bits, error) {
	if s == "" {
		return nil, puzzle.Errorf(ErrBadBit, s, "one or more of '0','1'")
	}
	b := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			b[i] = 0
		case '1':
			b[i] = 1
		default:
			return nil, puzzle.Errorf(
				fmt.Errorf("%w %q at column %d", ErrBadBit, s[i], i+1), s, "only '0' and '1'")
		}
	}

	return b, nil
}

// ParseReport parses one binary number per line.
func ParseReport(text string) (Report, error) {
	var r Report
	for i, line := range puzzle.Lines(text) {
		b, err := ParseBits(line)
		if err != nil {
			return Report{}, puzzle.AtLine(err, i+1, line)
		}
		if len(b) > maxWidth {
			return Report{}, puzzle.AtLine(puzzle.Errorf(ErrTooWide, line, "at most 64 bits"), i+1, line)
		}
		if i == 0 {
			r.Width = len(b)
		} else if len(b) != r.Width {
			return Report{}, puzzle.AtLine(
				puzzle.Errorf(ErrWidthMismatch, line, fmt.Sprintf("%d bits", r.Width)), i+1, line)
		}
		r.Rows = append(r.Rows, b)
	}

	return r, nil
}

// Gamma returns the most common bit per position; a tie counts as 0.
func (r Report) Gamma() uint64 {
	counts := make([]int, r.Width)
	for _, row := range r.Rows {
		for i, bit := range row {
			if bit == 1 {
				counts[i]++
			} else {
				counts[i]--
			}
		}
	}
	var gamma uint64
	for _, c := range counts {
		gamma <<= 1
		if c > 0 {
			gamma |= 1
		}
	}

	return gamma
}

// Epsilon returns the complement of Gamma within the report width.
func (r Report) Epsilon() uint64 {
	return ^r.Gamma() & r.mask()
}

// PowerConsumption returns Gamma × Epsilon, or ErrOverflow when the product
// needs more than 64 bits.
func (r Report) PowerConsumption() (uint64, error) {
	return mul(r.Gamma(), r.Epsilon())
}

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d × %d", ErrOverflow, a, b)
	}
	return lo, nil
}

func (r Report) mask() uint64 {
	if r.Width >= maxWidth {
		return ^uint64(0)
	}
	return 1<<uint(r.Width) - 1
}

package diagnostic

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/puzzle"
)

// RatingFinder narrows a report down to one rating by bit criteria.
type RatingFinder struct {
	Kind RatingKind
}

// Find returns the row selected by f's criterion.
// An empty report yields puzzle.ErrEmptyInput.
func (f RatingFinder) Find(r Report) (Bits, error) {
	if len(r.Rows) == 0 {
		return nil, fmt.Errorf("diagnostic: %s rating: %w", f.Kind, puzzle.ErrEmptyInput)
	}

	candidates := r.Rows
	ones := make([]Bits, 0, len(candidates))
	zeros := make([]Bits, 0, len(candidates))
	for pos := 0; pos < r.Width && len(candidates) > 1; pos++ {
		ones, zeros = ones[:0], zeros[:0]
		for _, c := range candidates {
			if c[pos] == 1 {
				ones = append(ones, c)
			} else {
				zeros = append(zeros, c)
			}
		}
		if len(ones) == 0 || len(zeros) == 0 {
			continue
		}
		keep := f.pick(ones, zeros)
		// candidates may alias ones or zeros from the previous round
		candidates = append(make([]Bits, 0, len(keep)), keep...)
	}

	// Leftover duplicates are identical, so the first one stands for all.
	return candidates[0], nil
}

func (f RatingFinder) pick(ones, zeros []Bits) []Bits {
	onesMajor := len(ones) >= len(zeros)
	if f.Kind == OxygenGenerator {
		if onesMajor {
			return ones
		}
		return zeros
	}
	if onesMajor {
		return zeros
	}

	return ones
}

// LifeSupportRating returns the oxygen generator rating times the CO2
// scrubber rating.
func LifeSupportRating(r Report) (uint64, error) {
	oxygen, err := RatingFinder{Kind: OxygenGenerator}.Find(r)
	if err != nil {
		return 0, err
	}
	co2, err := RatingFinder{Kind: CO2Scrubber}.Find(r)
	if err != nil {
		return 0, err
	}

	return mul(oxygen.Uint64(), co2.Uint64())
}

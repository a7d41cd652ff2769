package sonar

import (
	"iter"

	"github.com/katalvlaran/aoc2021/puzzle"
	"golang.org/x/exp/constraints"
)

// DefaultWindow is the window size used by the part 2 puzzle.
const DefaultWindow = 3

// Number is any value that can be compared and summed.
type Number interface {
	constraints.Integer | constraints.Float
}

// CountIncreases returns how many values in seq are strictly greater than
// the value before them.
func CountIncreases[T Number](seq iter.Seq[T]) int {
	var (
		count int
		prev  T
		seen  bool
	)
	for v := range seq {
		if seen && prev < v {
			count++
		}
		prev, seen = v, true
	}

	return count
}

// Windowed yields the sum of every n consecutive values of seq. The first sum
// is produced once n values have been read. A circular buffer of n slots holds
// the live window; n < 1 yields nothing.
func Windowed[T Number](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n < 1 {
			return
		}
		buf := make([]T, n)
		var (
			i   int
			sum T
		)
		for v := range seq {
			slot := i % n
			sum += v - buf[slot]
			buf[slot] = v
			i++
			if i < n {
				continue
			}
			if !yield(sum) {
				return
			}
		}
	}
}

// CountWindowedIncreases counts increases between successive n-wide sums.
func CountWindowedIncreases[T Number](seq iter.Seq[T], n int) int {
	return CountIncreases(Windowed(seq, n))
}

// ParseDepths reads one non-negative reading per line. Blank lines are skipped.
func ParseDepths(text string) ([]int, error) {
	var depths []int
	for i, line := range puzzle.Lines(text) {
		if line == "" {
			continue
		}
		d, err := puzzle.ParseInt(line)
		if err != nil {
			return nil, puzzle.AtLine(err, i+1, line)
		}
		if d < 0 {
			return nil, puzzle.AtLine(puzzle.Errorf(ErrNegativeDepth, line, "non-negative integer"), i+1, line)
		}
		depths = append(depths, d)
	}

	return depths, nil
}

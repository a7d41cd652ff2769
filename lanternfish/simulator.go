package lanternfish

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/aoc2021/puzzle"
)

// Simulator holds an initial population.
type Simulator struct {
	Timers []int
	opts   Options
}

// NewSimulator validates timers and opts.
func NewSimulator(timers []int, opts Options) (*Simulator, error) {
	if opts.ResetTimer < 0 || opts.SpawnTimer < 0 {
		return nil, fmt.Errorf("%w: reset=%d spawn=%d", ErrBadOptions, opts.ResetTimer, opts.SpawnTimer)
	}
	if opts.Strategy != Memoized && opts.Strategy != Buckets {
		return nil, fmt.Errorf("%w: strategy %d", ErrBadOptions, opts.Strategy)
	}
	for i, t := range timers {
		if t < 0 {
			return nil, fmt.Errorf("%w: fish %d has timer %d", ErrBadTimer, i+1, t)
		}
	}

	return &Simulator{Timers: timers, opts: opts}, nil
}

// ParseSimulator parses a comma-separated list of timers with default options.
func ParseSimulator(text string) (*Simulator, error) {
	timers, err := puzzle.ParseInts(text, ",")
	if err != nil {
		return nil, err
	}
	if len(timers) == 0 {
		return nil, fmt.Errorf("lanternfish: no fish: %w", puzzle.ErrEmptyInput)
	}

	return NewSimulator(timers, DefaultOptions())
}

// Population returns the number of fish after days. It fails with
// ErrOverflow once the count no longer fits in uint64.
func (s *Simulator) Population(days int) (uint64, error) {
	if days < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadDays, days)
	}
	var (
		total uint64
		ok    bool
	)
	if s.opts.Strategy == Buckets {
		total, ok = s.buckets(days)
	} else {
		memo := make(map[memoKey]uint64)
		ok = true
		for _, t := range s.Timers {
			n, fits := s.count(t, days, memo)
			if total, fits = add(total, n, fits); !fits {
				ok = false
				break
			}
		}
	}
	if !ok {
		return 0, fmt.Errorf("%w: %d fish after %d days", ErrOverflow, len(s.Timers), days)
	}

	return total, nil
}

// count returns the number of fish a single fish with timer t becomes
// after days, itself included. ok is false once the count overflows;
// overflowed entries are not memoized.
func (s *Simulator) count(t, days int, memo map[memoKey]uint64) (n uint64, ok bool) {
	if days == 0 {
		return 1, true
	}
	key := memoKey{t, days}
	if n, ok := memo[key]; ok {
		return n, true
	}
	if t == 0 {
		a, okA := s.count(s.opts.ResetTimer, days-1, memo)
		if !okA {
			return 0, false
		}
		b, okB := s.count(s.opts.SpawnTimer, days-1, memo)
		if n, ok = add(a, b, okB); !ok {
			return 0, false
		}
	} else if n, ok = s.count(t-1, days-1, memo); !ok {
		return 0, false
	}
	memo[key] = n

	return n, true
}

func (s *Simulator) buckets(days int) (uint64, bool) {
	size := max(s.opts.ResetTimer, s.opts.SpawnTimer) + 1
	for _, t := range s.Timers {
		size = max(size, t+1)
	}
	counts := make([]uint64, size)
	for _, t := range s.Timers {
		counts[t]++
	}
	ok := true
	for d := 0; d < days && ok; d++ {
		zeros := counts[0]
		copy(counts, counts[1:])
		counts[size-1] = 0
		counts[s.opts.ResetTimer], ok = add(counts[s.opts.ResetTimer], zeros, ok)
		counts[s.opts.SpawnTimer], ok = add(counts[s.opts.SpawnTimer], zeros, ok)
	}

	var total uint64
	for _, c := range counts {
		total, ok = add(total, c, ok)
	}

	return total, ok
}

// add returns a+b, or ok == false when the sum carries out of 64 bits or
// a previous step already overflowed.
func add(a, b uint64, prev bool) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, prev && carry == 0
}

// Count returns the descendants of one fish with the given timer after days,
// itself included, under the default timers. Negative arguments count 0.
func Count(timer, days int) (uint64, error) {
	if timer < 0 || days < 0 {
		return 0, nil
	}
	s := &Simulator{opts: DefaultOptions()}
	n, ok := s.count(timer, days, make(map[memoKey]uint64))
	if !ok {
		return 0, fmt.Errorf("%w: timer %d after %d days", ErrOverflow, timer, days)
	}

	return n, nil
}

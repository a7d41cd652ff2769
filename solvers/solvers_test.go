package solvers_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2021/bingo"
	"github.com/katalvlaran/aoc2021/diagnostic"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/solvers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	depths   = "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"
	commands = "forward 5\ndown 5\nforward 8\nup 3\ndown 8\nforward 2\n"
	report   = "00100\n11110\n10110\n10111\n10101\n01111\n00111\n11100\n10000\n11001\n00010\n01010\n"
	game     = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`
	segments = "0,9 -> 5,9\n8,0 -> 0,8\n9,4 -> 3,4\n2,2 -> 2,1\n7,0 -> 7,4\n6,4 -> 2,0\n0,9 -> 2,9\n3,4 -> 1,4\n0,0 -> 8,8\n5,5 -> 8,2\n"
	fish     = "3,4,3,1,2\n"
	crabPos  = "16,1,2,0,4,2,7,1,2,14\n"
)

// TestSolvers_Examples verifies every registered key against its published answer.
func TestSolvers_Examples(t *testing.T) {
	cases := []struct {
		key   string
		input string
		want  int64
	}{
		{"y2021/day01", depths, 7},
		{"y2021/day01_2", depths, 5},
		{"y2021/day02", commands, 150},
		{"y2021/day02_2", commands, 900},
		{"y2021/day03", report, 198},
		{"y2021/day03_2", report, 230},
		{"y2021/day04", game, 4512},
		{"y2021/day04_2", game, 1924},
		{"y2021/day05", segments, 5},
		{"y2021/day05_2", segments, 12},
		{"y2021/day06", fish, 5934},
		{"y2021/day06_2", fish, 26984457539},
		{"y2021/day07", crabPos, 37},
		{"y2021/day07_2", crabPos, 168},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			solve, ok := solvers.Lookup(tc.key)
			require.True(t, ok, "key must be registered")
			got, err := solve(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "answer for %s", tc.key)

			// identical input, identical answer
			again, err := solve(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, got, again, "repeat run must agree")
		})
	}
}

// TestKeys verifies that listing is complete and sorted.
func TestKeys(t *testing.T) {
	keys := solvers.Keys()
	assert.Len(t, keys, 14)
	assert.Equal(t, "y2021/day01", keys[0])
	assert.Equal(t, "y2021/day07_2", keys[len(keys)-1])
	assert.IsIncreasing(t, keys)
}

// TestLookup_Unknown verifies that an unregistered key is not found.
func TestLookup_Unknown(t *testing.T) {
	_, ok := solvers.Lookup("y2021/day99")
	assert.False(t, ok)
}

// TestSolvers_Errors verifies that kernel failures keep their taxonomy class.
func TestSolvers_Errors(t *testing.T) {
	cases := []struct {
		key   string
		input string
		err   error
	}{
		{"y2021/day01", "1\nx\n", puzzle.ErrFormat},
		{"y2021/day02", "sideways 1\n", puzzle.ErrFormat},
		{"y2021/day03", "01\n011\n", puzzle.ErrSize},
		{"y2021/day03_2", "", puzzle.ErrEmptyInput},
		{"y2021/day04", "1,2\n\n1 2 3\n", puzzle.ErrSize},
		{"y2021/day04_2", "99\n\n1 2 3 4 5\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25\n", bingo.ErrNoWinner},
		{"y2021/day05", "0,0 => 1,1\n", puzzle.ErrFormat},
		{"y2021/day06", "", puzzle.ErrEmptyInput},
		{"y2021/day07", "", puzzle.ErrEmptyInput},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			solve, ok := solvers.Lookup(tc.key)
			require.True(t, ok)
			_, err := solve(strings.NewReader(tc.input))
			assert.True(t, errors.Is(err, tc.err), "got %v, want %v", err, tc.err)
		})
	}
}

// TestSolvers_LargeAnswers verifies that unsigned results past int64 fail
// instead of wrapping to a negative answer.
func TestSolvers_LargeAnswers(t *testing.T) {
	report := func(width int) string {
		return "1" + strings.Repeat("0", width-1) + "\n" + "0" + strings.Repeat("1", width-1) + "\n"
	}
	solve, ok := solvers.Lookup("y2021/day03_2")
	require.True(t, ok)

	// 2^31 × (2^31-1) fits in int64.
	got, err := solve(strings.NewReader(report(32)))
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<31*(int64(1)<<31-1), got, "32-bit ratings")

	// 2^32 × (2^32-1) fits in uint64 but not in int64.
	_, err = solve(strings.NewReader(report(33)))
	assert.ErrorIs(t, err, solvers.ErrAnswerRange, "33-bit ratings")
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)

	// 2^33 × (2^33-1) overflows inside the kernel.
	_, err = solve(strings.NewReader(report(34)))
	assert.ErrorIs(t, err, diagnostic.ErrOverflow, "34-bit ratings")
}

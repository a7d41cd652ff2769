package solvers

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc2021/bingo"
	"github.com/katalvlaran/aoc2021/crabs"
	"github.com/katalvlaran/aoc2021/diagnostic"
	"github.com/katalvlaran/aoc2021/dive"
	"github.com/katalvlaran/aoc2021/lanternfish"
	"github.com/katalvlaran/aoc2021/sonar"
	"github.com/katalvlaran/aoc2021/vents"
)

// Solver computes a puzzle answer from raw input.
type Solver func(r io.Reader) (int64, error)

// textSolver is a Solver over the whole input as a string.
type textSolver func(text string) (int64, error)

var registry = map[string]textSolver{
	"y2021/day01":   depthIncreases(1),
	"y2021/day01_2": depthIncreases(sonar.DefaultWindow),
	"y2021/day02":   navigate(dive.Navigate),
	"y2021/day02_2": navigate(dive.NavigateWithAim),
	"y2021/day03":   powerConsumption,
	"y2021/day03_2": lifeSupport,
	"y2021/day04":   playBingo((*bingo.Game).Play),
	"y2021/day04_2": playBingo((*bingo.Game).PlayLast),
	"y2021/day05":   overlaps(false),
	"y2021/day05_2": overlaps(true),
	"y2021/day06":   population(80),
	"y2021/day06_2": population(256),
	"y2021/day07":   alignCrabs(crabs.NewLinear()),
	"y2021/day07_2": alignCrabs(crabs.NewTriangular()),
}

// Lookup returns the solver registered under key.
func Lookup(key string) (Solver, bool) {
	s, ok := registry[strings.TrimSpace(key)]
	if !ok {
		return nil, false
	}
	return func(r io.Reader) (int64, error) {
		raw, err := io.ReadAll(r)
		if err != nil {
			return 0, err
		}
		return s(string(raw))
	}, true
}

// Keys returns all registered keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func depthIncreases(window int) textSolver {
	return func(text string) (int64, error) {
		depths, err := sonar.ParseDepths(text)
		if err != nil {
			return 0, err
		}
		return int64(sonar.CountWindowedIncreases(slices.Values(depths), window)), nil
	}
}

func navigate(fold func([]dive.Command) dive.Position) textSolver {
	return func(text string) (int64, error) {
		cmds, err := dive.ParseCommands(text)
		if err != nil {
			return 0, err
		}
		return fold(cmds).Product(), nil
	}
}

func powerConsumption(text string) (int64, error) {
	r, err := diagnostic.ParseReport(text)
	if err != nil {
		return 0, err
	}
	return answer(r.PowerConsumption())
}

func lifeSupport(text string) (int64, error) {
	r, err := diagnostic.ParseReport(text)
	if err != nil {
		return 0, err
	}
	return answer(diagnostic.LifeSupportRating(r))
}

func playBingo(play func(*bingo.Game) (bingo.Result, error)) textSolver {
	return func(text string) (int64, error) {
		g, err := bingo.ParseGame(text)
		if err != nil {
			return 0, err
		}
		res, err := play(g)
		if err != nil {
			return 0, err
		}
		return int64(res.Score()), nil
	}
}

func overlaps(diagonals bool) textSolver {
	return func(text string) (int64, error) {
		f, err := vents.ParseField(text, diagonals)
		if err != nil {
			return 0, err
		}
		return int64(f.Overlaps()), nil
	}
}

func population(days int) textSolver {
	return func(text string) (int64, error) {
		s, err := lanternfish.ParseSimulator(text)
		if err != nil {
			return 0, err
		}
		return answer(s.Population(days))
	}
}

func alignCrabs(calc crabs.CostCalculator) textSolver {
	return func(text string) (int64, error) {
		data, err := crabs.ParsePositions(text)
		if err != nil {
			return 0, err
		}
		_, cost, err := calc.Optimal(data)
		return int64(cost), err
	}
}

// answer narrows an unsigned kernel result to the int64 answer type.
func answer(n uint64, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d", ErrAnswerRange, n)
	}
	return int64(n), nil
}

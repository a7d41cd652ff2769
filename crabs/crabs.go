package crabs

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/aoc2021/puzzle"
)

var (
	// ErrNoCrabs indicates an empty data set.
	ErrNoCrabs = fmt.Errorf("crabs: no positions: %w", puzzle.ErrEmptyInput)

	// ErrBadPosition indicates a negative position in the input.
	ErrBadPosition = fmt.Errorf("crabs: position must be >= 0: %w", puzzle.ErrFormat)
)

// CostFunc returns the fuel needed to move a crab from value to target.
type CostFunc func(value, target int) int

// LinearCost charges one unit per step.
func LinearCost(value, target int) int {
	return abs(value - target)
}

// TriangularCost charges n units for the n-th step.
func TriangularCost(value, target int) int {
	d := abs(value - target)
	return d * (d + 1) / 2
}

// CostCalculator applies a CostFunc across a data set.
type CostCalculator struct {
	Cost CostFunc
}

// NewLinear returns a calculator using LinearCost.
func NewLinear() CostCalculator { return CostCalculator{Cost: LinearCost} }

// NewTriangular returns a calculator using TriangularCost.
func NewTriangular() CostCalculator { return CostCalculator{Cost: TriangularCost} }

// TotalCost returns the fuel to move every crab in data to target.
func (c CostCalculator) TotalCost(data []int, target int) int {
	total := 0
	for _, v := range data {
		total += c.Cost(v, target)
	}

	return total
}

// Optimal returns the cheapest target position and its total cost.
func (c CostCalculator) Optimal(data []int) (position, cost int, err error) {
	if len(data) == 0 {
		return 0, 0, ErrNoCrabs
	}
	lo, hi := slices.Min(data), slices.Max(data)

	position, cost = lo, math.MaxInt
	for target := lo; target <= hi; target++ {
		if total := c.TotalCost(data, target); total < cost {
			position, cost = target, total
		}
	}

	return position, cost, nil
}

// ParsePositions parses a comma-separated list of non-negative positions.
func ParsePositions(text string) ([]int, error) {
	data, err := puzzle.ParseInts(text, ",")
	if err != nil {
		return nil, err
	}
	for i, v := range data {
		if v < 0 {
			return nil, fmt.Errorf("%w: crab %d at %d", ErrBadPosition, i+1, v)
		}
	}

	return data, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

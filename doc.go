// Package aoc2021 collects small, independent puzzle kernels. Each reads a
// line-oriented text format and computes one number; none shares state with
// another.
//
// Under the hood, everything is organized into one package per puzzle:
//
//	sonar/        day 1: counting increases, sliding-window sums
//	dive/         day 2: navigation commands, with and without aim
//	diagnostic/   day 3: bit frequencies, rating bisection
//	bingo/        day 4: 5×5 boards, first and last winner
//	vents/        day 5: line rasterization, overlap histogram
//	lanternfish/  day 6: memoized exponential growth
//	crabs/        day 7: brute-force alignment cost
//	puzzle/       shared error taxonomy and input helpers
//	solvers/      problem keys ("y2021/day04_2") mapped to kernels
//
// The cmd/aoc binary selects a kernel by key, feeds it stdin and prints the
// answer:
//
//	go run ./cmd/aoc y2021/day05_2 < input.txt
package aoc2021

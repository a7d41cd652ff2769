package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/aoc2021/internal/cli"
)

// main reads puzzle input from stdin (or -input) and prints one answer.
//
//	aoc y2021/day04_2 < input.txt
//	aoc -list
func main() {
	result, err := cli.Run(context.Background(), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(result.ExitCode)
}

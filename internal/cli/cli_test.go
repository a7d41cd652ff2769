package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2021/bingo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvocation(t *testing.T) {
	inv, err := ParseInvocation([]string{"-log-level", "debug", "y2021/day01"})
	require.NoError(t, err)
	assert.Equal(t, Invocation{Key: "y2021/day01", LogLevel: zerolog.DebugLevel}, inv)

	inv, err = ParseInvocation(nil)
	require.NoError(t, err)
	assert.True(t, inv.List, "no key lists problems")
	assert.Equal(t, zerolog.WarnLevel, inv.LogLevel)

	inv, err = ParseInvocation([]string{"-input", "in.txt", "y2021/day06_2"})
	require.NoError(t, err)
	assert.Equal(t, "in.txt", inv.InputPath)
	assert.False(t, inv.List)
}

func TestParseInvocation_Errors(t *testing.T) {
	cases := [][]string{
		{"-nope"},
		{"a", "b"},
		{"-log-level", "loud", "y2021/day01"},
		{"-log-level", "", "y2021/day01"},
	}
	for _, args := range cases {
		_, err := ParseInvocation(args)
		require.Error(t, err, args)
		assert.Equal(t, ExitInvalidInvocation, ExitCode(err), args)
	}
	assert.Equal(t, ExitInternalError, ExitCode(assert.AnError))
}

func run(t *testing.T, inv Invocation, stdin string) (Result, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	res, err := Execute(context.Background(), inv, IO{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &errOut,
	})
	return res, out.String(), err
}

func TestExecute_List(t *testing.T) {
	res, out, err := run(t, Invocation{List: true, LogLevel: zerolog.WarnLevel}, "")
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, res.ExitCode)
	assert.True(t, strings.HasPrefix(out, "Available problems:\ny2021/day01\n"))
	assert.Contains(t, out, "y2021/day07_2\n")
}

func TestExecute_Solve(t *testing.T) {
	res, out, err := run(t, Invocation{Key: "y2021/day06", LogLevel: zerolog.DebugLevel}, "3,4,3,1,2\n")
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, res.ExitCode)
	assert.EqualValues(t, 5934, res.Answer)
	assert.Equal(t, "5934\n", out)
}

func TestExecute_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("16,1,2,0,4,2,7,1,2,14\n"), 0o644))

	res, out, err := run(t, Invocation{Key: "y2021/day07_2", InputPath: path, LogLevel: zerolog.Disabled}, "ignored")
	require.NoError(t, err)
	assert.EqualValues(t, 168, res.Answer)
	assert.Equal(t, "168\n", out)

	res, _, err = run(t, Invocation{Key: "y2021/day07", InputPath: path + ".missing", LogLevel: zerolog.Disabled}, "")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInvocation, res.ExitCode)
}

func TestExecute_Failures(t *testing.T) {
	res, out, err := run(t, Invocation{Key: "y2021/day42", LogLevel: zerolog.Disabled}, "")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInvocation, res.ExitCode)
	assert.Empty(t, out)

	res, _, err = run(t, Invocation{Key: "y2021/day02", LogLevel: zerolog.Disabled}, "backwards 1\n")
	require.Error(t, err)
	assert.Equal(t, ExitBadInput, res.ExitCode)

	res, _, err = run(t, Invocation{Key: "y2021/day04", LogLevel: zerolog.Disabled},
		"99\n\n1 2 3 4 5\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25\n")
	assert.ErrorIs(t, err, bingo.ErrNoWinner)
	assert.Equal(t, ExitNoSolution, res.ExitCode)

	wide := "1" + strings.Repeat("0", 33) + "\n0" + strings.Repeat("1", 33) + "\n"
	res, _, err = run(t, Invocation{Key: "y2021/day03_2", LogLevel: zerolog.Disabled}, wide)
	require.Error(t, err)
	assert.Equal(t, ExitNoSolution, res.ExitCode, "overflowing answer has no solution")
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Execute(ctx, Invocation{Key: "y2021/day01", LogLevel: zerolog.Disabled}, IO{
		Stdin:  strings.NewReader("1\n2\n"),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitInternalError, res.ExitCode)
}

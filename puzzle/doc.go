// Package puzzle holds the pieces every puzzle kernel shares: the error
// taxonomy and a few helpers for splitting line-oriented input.
//
// Errors:
//
//   - ErrFormat: malformed line syntax (bad command, non-binary digit, non-numeric token).
//   - ErrSize: dimension mismatch (bingo board not 5x5, ragged bit report).
//   - ErrNoSolution: the input is well formed but admits no answer.
//   - ErrEmptyInput: a kernel that needs at least one record received none.
//
// Kernel packages define their own sentinels on top of these, so a caller may
// branch on either the specific error or its class:
//
//	if errors.Is(err, puzzle.ErrFormat) { /* reject input */ }
//
// InputError adds the offending text, its line number and the expected shape.
package puzzle

// Package dive parses submarine navigation commands and folds them into a
// final position.
//
// A command line has the form "<direction> <magnitude>", where direction is
// forward, up or down (any letter case) and magnitude is a non-negative
// base-10 integer. Tokens are separated by exactly one space; leading or
// trailing spaces, extra tokens, signs and non-digits are rejected with
// ErrBadCommand.
//
// Two accumulators are provided:
//
//   - Navigate: up/down move depth directly, forward moves horizontally.
//   - NavigateWithAim: up/down adjust aim; forward moves horizontally and
//     dives by aim × magnitude.
//
// Depth and aim are signed and may become negative; nothing underflows.
package dive

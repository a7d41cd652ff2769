// Package solvers registers every puzzle kernel under a problem key such as
// "y2021/day04_2" and adapts it to a common Solver signature: raw input in,
// one integer answer out.
//
// Lookup finds a solver; Keys lists them in sorted order.
package solvers

// Package crabs finds the alignment position that minimizes total fuel cost.
//
// For every candidate target between the smallest and the largest position
// (inclusive), the cost of moving every crab there is summed using a CostFunc;
// the cheapest target wins. Ties keep the smallest target.
//
// Cost functions:
//
//   - LinearCost: |value - target|.
//   - TriangularCost: 1 + 2 + … + d with d = |value - target|, i.e. d(d+1)/2.
//
// Complexity: O(N·R) time for N crabs spread over a range of R positions,
// O(1) extra memory.
package crabs

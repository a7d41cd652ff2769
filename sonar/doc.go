// Package sonar counts how often a sequence of depth readings increases,
// either reading by reading or over a sliding window of sums.
//
// What:
//
//   - CountIncreases: number of adjacent pairs (prev, next) with prev < next.
//   - Windowed: lazily turns a sequence into sums of each n consecutive values.
//   - CountWindowedIncreases: CountIncreases over Windowed(seq, n).
//
// Sequences are iter.Seq values and are consumed once per call; nothing beyond
// the window is retained, so inputs need not be materialized.
//
// Edge cases:
//
//   - Fewer than 2 readings count 0 increases.
//   - Fewer than n+1 readings count 0 windowed increases.
//
// Complexity: O(N) time, O(n) memory for a window of size n.
package sonar

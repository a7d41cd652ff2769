// Package lanternfish counts an exponentially growing population of fish.
//
// Model:
//
//	Every fish carries a reproduction timer. Each day a fish at 0 resets to
//	ResetTimer (6) and spawns a new fish at SpawnTimer (8); every other timer
//	decreases by 1.
//
// Naive simulation doubles the population roughly every week, so the count is
// computed from the recurrence
//
//	count(t, 0) = 1
//	count(0, d) = count(ResetTimer, d-1) + count(SpawnTimer, d-1)
//	count(t, d) = count(t-1, d-1)            for t > 0
//
// memoized on (t, d). The table lives for one Population call only.
//
// Strategies:
//
//   - Memoized: the recurrence above. Memory: O(T·D).
//   - Buckets: one counter per timer value, rotated daily. Memory: O(T).
//
// Both give identical results. 256 days fit comfortably in uint64; a count
// that would not fit fails with ErrOverflow instead of wrapping.
package lanternfish

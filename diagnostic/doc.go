// Package diagnostic analyzes a report of equal-width binary numbers.
//
// Power consumption:
//
//	One signed counter per bit position is incremented for every 1 and
//	decremented for every 0. Gamma takes 1 where the counter is positive and
//	0 otherwise; epsilon is gamma's complement within the report width.
//	PowerConsumption = gamma × epsilon.
//
// Life support rating:
//
//	RatingFinder repeatedly partitions the remaining candidates by their bit
//	at the current position (most significant first) and keeps one side:
//
//	  - OxygenGenerator keeps the more common bit, ties keep 1.
//	  - CO2Scrubber keeps the less common bit, ties keep 0.
//
//	A position where every candidate agrees does not discriminate and is
//	skipped. The search stops at a single candidate (or at identical
//	duplicates once the width is exhausted).
//	LifeSupportRating = oxygen × CO2.
//
// Errors:
//
//   - ErrBadBit: a character other than '0' or '1'.
//   - ErrWidthMismatch: vectors of differing widths in one report.
//   - ErrTooWide: vectors wider than 64 bits cannot be read as uint64.
//   - ErrOverflow: a product of two readings needs more than 64 bits, which
//     only reports wider than 32 bits can reach.
//
// Complexity: power O(N·W); ratings O(N·W) time, O(N) memory.
package diagnostic

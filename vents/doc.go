// Package vents rasterizes hydrothermal vent lines onto an integer grid and
// counts the points where lines overlap.
//
// Input: one segment per line, "x1,y1 -> x2,y2".
//
// Rasterization (Line.Points):
//
//   - Horizontal and vertical segments yield every point from start to end
//     inclusive, stepping one unit at a time.
//   - Exact 45° segments (|dx| == |dy|) are rasterized only when diagonals are
//     considered.
//   - Any other slope yields no points.
//   - A zero-length segment (start == end) yields no points, not one.
//
// Field:
//
//	NewBasicField ignores diagonals; NewDiagonalField includes them. Histogram
//	counts how often each point is covered; DangerousPoints are those covered
//	at least twice.
//
// Complexity: O(Σ segment length) time and memory.
package vents

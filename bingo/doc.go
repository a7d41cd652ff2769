// Package bingo simulates a game of bingo between 5×5 boards.
//
// Input format:
//
//	7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1
//
//	22 13 17 11  0
//	 8  2 23  4 24
//	21  9 14 16  7
//	 6 10  3 18  5
//	 1 12 20 15 19
//
//	 3 15  0  2 22
//	 ...
//
// The first non-empty line is the comma-separated draw sequence; every
// following block of non-blank lines is one board of space-separated integers.
//
// Marking:
//
//	Each board keeps one 5-bit mask per row and per column. Marking a drawn
//	number sets bit col in rows[row] and bit row in cols[col]; a row or column
//	is complete when its mask equals 0b11111. Marks are never removed.
//
// Play:
//
//   - Play: after every draw, mark all boards, then return the first board
//     (in input order) with a complete line.
//   - PlayLast: boards leave the game as they win; return the board that wins
//     when no other board remains. When several boards finish together on that
//     draw, the last of them in input order is reported.
//
// Both report score = (sum of unmarked numbers) × (winning draw). Playing does
// not change the Game, so repeated plays give identical results.
//
// Errors:
//
//   - ErrBoardSize: a board is not exactly 5×5 (also matches puzzle.ErrSize).
//   - ErrDuplicateNumber: a number appears twice on one board.
//   - ErrNoWinner: draws ran out before the requested win (puzzle.ErrNoSolution).
package bingo

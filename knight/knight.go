// Package knight generates legal knight moves on the board.
package knight

import (
	"github.com/katalvlaran/knightpath/board"
)

// offsets holds the eight knight displacement vectors as {row,col} pairs.
// The enumeration order is fixed and load-bearing: neighbor expansion,
// and therefore path discovery order, follows it exactly.
var offsets = [8][2]int{
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
}

// Offsets returns the eight displacement vectors in their fixed
// enumeration order. The array is returned by value, so callers cannot
// mutate the shared table.
// Complexity: O(1).
func Offsets() [8][2]int {
	return offsets
}

// MovesFrom returns every in-bounds square reachable from c in a single
// knight move, in offset enumeration order. An off-board c yields nil.
// Every valid square has between 2 (corners) and 8 (center) moves.
// Complexity: O(1), at most eight candidates.
func MovesFrom(c board.Coordinate) []board.Coordinate {
	if !c.InBounds() {
		return nil
	}
	moves := make([]board.Coordinate, 0, len(offsets))
	for _, d := range offsets {
		n := board.Coordinate{Row: c.Row + d[0], Col: c.Col + d[1]}
		if n.InBounds() {
			moves = append(moves, n)
		}
	}

	return moves
}

// CanReach reports whether to lies exactly one knight move from from,
// with both squares on the board.
// Complexity: O(1).
func CanReach(from, to board.Coordinate) bool {
	if !from.InBounds() || !to.InBounds() {
		return false
	}
	for _, d := range offsets {
		if from.Row+d[0] == to.Row && from.Col+d[1] == to.Col {
			return true
		}
	}

	return false
}

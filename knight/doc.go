// Package knight enumerates the legal moves of a chess knight on the
// 8×8 board.
//
// What:
//
//   - Offsets: the eight L-shaped displacement vectors in a fixed order.
//   - MovesFrom: in-bounds neighbor squares of a coordinate, in offset order.
//   - CanReach: single-move adjacency test between two squares.
//
// Why:
//
//   - The knight's move relation is the edge set of the implicit graph
//     that path enumeration walks; keeping it a pure function means no
//     graph structure ever needs to be built or stored.
//   - The fixed offset order makes every traversal reproducible: callers
//     that expand neighbors in MovesFrom order inherit a deterministic
//     visit sequence for free.
//
// Determinism:
//
//	MovesFrom applies the offsets strictly in declaration order
//	(+1,+2), (+1,−2), (−1,+2), (−1,−2), (+2,+1), (+2,−1), (−2,+1), (−2,−1)
//	and filters by board.InBounds, so its output is a pure function of
//	the input square.
//
// Complexity:
//
//   - All operations are O(1): the candidate set has at most eight entries.
package knight

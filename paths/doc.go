// Package paths enumerates every minimum-length knight walk between two
// squares of the 8×8 board, using breadth-first expansion of partial paths.
//
// What
//
//   - AllShortest(start, end) returns a PathSet: every Path of globally
//     minimum move count from start to end, in discovery order.
//   - Between("A1", "H8") does the same from algebraic notation.
//   - A Path is the ordered list of visited squares; a start equal to the
//     end yields one degenerate zero-move Path.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (a partial path joins the frontier)
//   - OnMatch   (a finished minimum-length path is recorded)
//
// Why
//
//   - Knight distance alone is easy; the interesting artifact is the full
//     set of optimal routes, which feeds rendering, graph export, and the
//     interactive explorer.
//   - The board is a fixed 64-square state space, so the whole answer is
//     cheap to materialize in one call: no streaming, no cancellation,
//     no partial results.
//
// Determinism
//
//	Neighbors are expanded strictly in knight.Offsets order and the
//	frontier is FIFO, so the same query always yields the same PathSet,
//	including the order of paths within it.
//
// Completeness
//
//	Every intermediate square is claimed by the first partial path that
//	reaches it (first-owner semantics); alternative same-length routes
//	through an already-claimed square are dropped. The goal square is
//	exempt from claiming, so the set is complete with respect to the end
//	square: each optimal last hop into it from a surviving owner is kept.
//	All returned paths share the true knight distance as their length.
//
// Complexity (V = 64 squares, d = 8 moves, L = path length)
//
//   - Time:   O(V·d) square expansions
//   - Memory: O(V·L) for the frontier and recorded paths
//
// Usage
//
//	ps, err := paths.Between("A1", "D4")
//	if err != nil {
//	    // handle wrapped board.ErrInvalidNotation / board.ErrOutOfRange
//	}
//	fmt.Println(ps.Moves(), ps.Notations())
//
//	// With observation hooks:
//	ps, err = paths.AllShortest(
//	    start, end,
//	    paths.WithOnEnqueue(func(p paths.Path) { /* ... */ }),
//	    paths.WithOnMatch(func(p paths.Path) { /* ... */ }),
//	)
//
// Options
//
//   - DefaultOptions(): no-op hooks.
//   - WithOnEnqueue(fn): observe partial paths entering the frontier,
//     in strict layer order.
//   - WithOnMatch(fn):   observe finished paths, in discovery order.
//
// Errors
//
//   - board.ErrInvalidNotation  (Between) malformed notation, tagged with
//     the failing side ("start:" / "end:").
//   - board.ErrOutOfRange       (AllShortest) endpoint off the board.
//
// Both are detected eagerly, before any search state exists; a
// successfully validated query cannot fail.
package paths

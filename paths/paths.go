// Package paths enumerates every minimum-length knight walk between two
// board squares via breadth-first expansion of partial paths.
package paths

import (
	"fmt"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/knight"
)

// walker encapsulates mutable search state for a single query.
type walker struct {
	end     board.Coordinate
	opts    Options
	queue   []Path
	visited map[board.Coordinate]struct{}
	goalLen int // squares in a finished path; 0 until the goal layer is known
	res     *PathSet
}

// AllShortest returns every minimum-length knight path from start to
// end, in discovery order. Endpoints are validated eagerly: an
// off-board coordinate yields a wrapped board.ErrOutOfRange before any
// search state is allocated. A start equal to end yields exactly one
// zero-move path. The result is never nil on success, and its paths all
// share the true knight distance as their length.
// Complexity: O(V·d) expansions and O(V·L) memory, for V = Size², d = 8
// moves per square, L = path length.
func AllShortest(start, end board.Coordinate, opts ...Option) (*PathSet, error) {
	if !start.InBounds() {
		return nil, fmt.Errorf("%w: start %s", board.ErrOutOfRange, start)
	}
	if !end.InBounds() {
		return nil, fmt.Errorf("%w: end %s", board.ErrOutOfRange, end)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := board.Size * board.Size
	w := &walker{
		end:     end,
		opts:    o,
		queue:   make([]Path, 0, n),
		visited: make(map[board.Coordinate]struct{}, n),
		res:     &PathSet{Start: start, End: end},
	}

	// Seed the frontier with the zero-move walk.
	w.visited[start] = struct{}{}
	w.enqueue(Path{start})
	w.loop()

	return w.res, nil
}

// Between parses two algebraic notations and enumerates the
// minimum-length paths between the named squares. Parse failures yield
// a wrapped board.ErrInvalidNotation tagged with the failing side.
// See AllShortest for the search semantics.
func Between(start, end string, opts ...Option) (*PathSet, error) {
	s, err := board.Parse(start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	e, err := board.Parse(end)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return AllShortest(s, e, opts...)
}

// enqueue fires OnEnqueue and appends a partial path to the frontier.
func (w *walker) enqueue(p Path) {
	w.opts.OnEnqueue(p)
	w.queue = append(w.queue, p)
}

// dequeue pops the oldest frontier path.
func (w *walker) dequeue() Path {
	p := w.queue[0]
	w.queue = w.queue[1:]

	return p
}

// loop processes the frontier until exhausted. FIFO order guarantees
// that every k-move path is handled before any (k+1)-move path, so the
// first completed path fixes the minimum length for the whole set.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		p := w.dequeue()
		if p.End() == w.end {
			w.match(p)
			continue
		}
		// Paths already as long as a finished one cannot reach the goal
		// at minimum length; stop expanding them.
		if w.goalLen != 0 && len(p) >= w.goalLen {
			continue
		}
		w.extend(p)
	}
}

// match records a finished minimum-length path and fires OnMatch.
func (w *walker) match(p Path) {
	if w.goalLen == 0 {
		w.goalLen = len(p)
	}
	w.opts.OnMatch(p)
	w.res.Paths = append(w.res.Paths, p)
}

// extend grows p by every legal knight move from its last square.
// Ordinary squares follow first-owner semantics: claimed in the visited
// set at enqueue time, never re-entered. The goal square is exempt, so
// each surviving partial path reaching it in the minimum layer yields
// its own finished path.
func (w *walker) extend(p Path) {
	for _, next := range knight.MovesFrom(p.End()) {
		if next == w.end {
			if w.goalLen == 0 {
				w.goalLen = len(p) + 1
			}
			if len(p)+1 == w.goalLen {
				w.enqueue(p.grow(next))
			}
			continue
		}
		if _, seen := w.visited[next]; seen {
			continue
		}
		w.visited[next] = struct{}{}
		w.enqueue(p.grow(next))
	}
}

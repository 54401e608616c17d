// Package paths provides result types and tunable options for the
// knight shortest-path enumeration.
package paths

import (
	"encoding/json"
	"strings"

	"github.com/katalvlaran/knightpath/board"
)

// Path is one knight walk: the ordered squares it visits, starting
// square first. Consecutive elements are exactly one knight move apart;
// a single-element Path is the degenerate zero-move walk.
// The enumerator never mutates a Path after handing it out, so values
// may be shared freely; treat them as read-only.
type Path []board.Coordinate

// Moves returns the number of moves in the walk (squares minus one).
func (p Path) Moves() int { return len(p) - 1 }

// Start returns the first square of the walk.
func (p Path) Start() board.Coordinate { return p[0] }

// End returns the last square of the walk.
func (p Path) End() board.Coordinate { return p[len(p)-1] }

// Notations renders the walk in algebraic notation, preserving order.
func (p Path) Notations() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Notation()
	}

	return out
}

// String renders the walk as space-separated notation, e.g. "A1 C2 D4".
func (p Path) String() string {
	return strings.Join(p.Notations(), " ")
}

// grow returns a copy of p with next appended. The copy owns its backing
// array, so sibling extensions of the same prefix never alias.
func (p Path) grow(next board.Coordinate) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = next

	return out
}

// PathSet is the complete answer to one query: every minimum-length
// Path from Start to End, in discovery order. It is immutable once
// returned; all paths share the same length.
type PathSet struct {
	Start board.Coordinate
	End   board.Coordinate
	Paths []Path
}

// Len returns the number of minimum-length paths found.
func (s *PathSet) Len() int { return len(s.Paths) }

// Moves returns the move count shared by every path in the set:
// 0 for a degenerate start==end query, -1 for an empty set.
func (s *PathSet) Moves() int {
	if len(s.Paths) == 0 {
		return -1
	}

	return s.Paths[0].Moves()
}

// Notations converts the whole set to algebraic notation, preserving
// both the set order and the square order inside each path.
func (s *PathSet) Notations() [][]string {
	out := make([][]string, len(s.Paths))
	for i, p := range s.Paths {
		out[i] = p.Notations()
	}

	return out
}

// MarshalJSON encodes the set in a stable wire shape: endpoint
// notations, the common move count, and each path as a notation list.
func (s *PathSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start string     `json:"start"`
		End   string     `json:"end"`
		Moves int        `json:"moves"`
		Paths [][]string `json:"paths"`
	}{
		Start: s.Start.Notation(),
		End:   s.End.Notation(),
		Moves: s.Moves(),
		Paths: s.Notations(),
	})
}

// Option configures the enumeration via functional arguments.
type Option func(*Options)

// Options holds observation hooks for the search. Hooks run
// synchronously on the calling goroutine and receive live paths;
// they must not modify them.
type Options struct {
	// OnEnqueue is called when a partial path joins the frontier.
	// Paths are observed in strict layer order: never a longer path
	// before a shorter one has been enqueued.
	OnEnqueue func(p Path)

	// OnMatch is called each time a finished minimum-length path is
	// recorded, in discovery order.
	OnMatch func(p Path)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(Path) {},
		OnMatch:   func(Path) {},
	}
}

// WithOnEnqueue registers a callback to run when a partial path joins
// the frontier.
func WithOnEnqueue(fn func(p Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnMatch registers a callback to run when a finished path is recorded.
func WithOnMatch(fn func(p Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMatch = fn
		}
	}
}

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/paths"
)

// DOT renders the path set as a Graphviz digraph: one blue edge per
// consecutive square pair, then the graph attributes (a "Shortest path
// from X to Y" label, fontsize 14, size "8, 8"). Edges shared by
// several paths are emitted once, in first-encounter order, so the
// drawing never doubles an arrow. Output is deterministic for a given
// set; a degenerate single-square walk produces a graph with no edges.
func DOT(ps *paths.PathSet) string {
	var b strings.Builder
	b.WriteString("digraph {\n")

	type edge struct{ from, to board.Coordinate }
	seen := make(map[edge]struct{})
	for _, p := range ps.Paths {
		for i := 0; i+1 < len(p); i++ {
			e := edge{from: p[i], to: p[i+1]}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			fmt.Fprintf(&b, "  %s -> %s [color=blue]\n", e.from.Notation(), e.to.Notation())
		}
	}

	fmt.Fprintf(&b, "  label=%q\n", fmt.Sprintf("Shortest path from %s to %s", ps.Start.Notation(), ps.End.Notation()))
	b.WriteString("  fontsize=14\n")
	b.WriteString("  size=\"8, 8\"\n")
	b.WriteString("}\n")

	return b.String()
}

// WriteDOT writes the Graphviz document for ps to w.
// Rendering itself cannot fail; the only error source is the writer.
func WriteDOT(w io.Writer, ps *paths.PathSet) error {
	if _, err := io.WriteString(w, DOT(ps)); err != nil {
		return fmt.Errorf("render: write dot: %w", err)
	}

	return nil
}

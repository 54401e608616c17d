// Package render draws knight walks as terminal checkerboards and
// Graphviz documents.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/paths"
)

// Board renders the walk p on a Size×Size checkerboard. Rank 8 sits on
// top and rank 1 at the bottom, with file letters underneath, matching
// the usual lower-left-origin diagram. Squares on the walk carry their
// step index; the walk's last square carries the knight glyph. Step
// indices stay single-digit because the knight diameter of the board is
// six moves.
// A nil st falls back to DefaultStyles. The result is pure text, no I/O.
func Board(p paths.Path, st *Styles) string {
	if st == nil {
		st = DefaultStyles()
	}
	steps := make(map[board.Coordinate]int, len(p))
	for i, c := range p {
		steps[c] = i
	}

	var b strings.Builder
	for row := board.Size - 1; row >= 0; row-- {
		b.WriteString(st.Label.Render(fmt.Sprintf("%d", row+1)))
		b.WriteByte(' ')
		for col := 0; col < board.Size; col++ {
			b.WriteString(cell(board.Coordinate{Row: row, Col: col}, p, steps, st))
		}
		b.WriteByte('\n')
	}
	b.WriteString("  ")
	for col := 0; col < board.Size; col++ {
		b.WriteString(st.Label.Render(fmt.Sprintf(" %c ", 'A'+col)))
	}
	b.WriteByte('\n')

	return b.String()
}

// cell renders one three-character square.
func cell(c board.Coordinate, p paths.Path, steps map[board.Coordinate]int, st *Styles) string {
	if i, ok := steps[c]; ok {
		if len(p) > 0 && c == p.End() {
			return st.Knight.Render(" " + st.KnightGlyph + " ")
		}

		return st.Path.Render(fmt.Sprintf(" %d ", i))
	}
	// A1 is a dark square; parity decides the rest.
	if (c.Row+c.Col)%2 == 0 {
		return st.Dark.Render(" . ")
	}

	return st.Light.Render("   ")
}

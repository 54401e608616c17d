// Package board models squares of the 8×8 chessboard and converts them
// between zero-based coordinates and algebraic notation.
package board

import (
	"fmt"
)

// New constructs a Coordinate from zero-based row and column indices.
// Returns ErrOutOfRange (wrapped, with the offending pair) when either
// index lies outside [0, Size).
// Complexity: O(1).
func New(row, col int) (Coordinate, error) {
	c := Coordinate{Row: row, Col: col}
	if !c.InBounds() {
		return Coordinate{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}

	return c, nil
}

// Parse converts algebraic notation into a Coordinate.
// The notation must be exactly one file letter (A–H, either case)
// followed by one rank digit (1–8); anything else is rejected with
// ErrInvalidNotation. Parsing never guesses: "A10", " A1" and "" all fail.
// Complexity: O(1).
func Parse(notation string) (Coordinate, error) {
	if len(notation) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}
	file, rank := notation[0], notation[1]
	if 'a' <= file && file <= 'h' {
		file -= 'a' - 'A'
	}
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}

	return Coordinate{Row: int(rank - '1'), Col: int(file - 'A')}, nil
}

// InBounds reports whether the coordinate lies on the board.
// Complexity: O(1).
func (c Coordinate) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Notation renders the canonical upper-case algebraic form, e.g. "A1".
// It is the exact inverse of Parse over in-bounds coordinates; callers
// holding unvalidated values should prefer String.
// Complexity: O(1).
func (c Coordinate) Notation() string {
	return string([]byte{byte('A' + c.Col), byte('1' + c.Row)})
}

// String implements fmt.Stringer: algebraic notation for in-bounds
// coordinates, a "(row,col)" debug form otherwise.
func (c Coordinate) String() string {
	if c.InBounds() {
		return c.Notation()
	}

	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Package board defines the coordinate type and sentinel errors
// for the board subpackage of github.com/katalvlaran/knightpath.
package board

import (
	"errors"
)

// Size is the number of files and ranks on the standard board.
const Size = 8

// Sentinel errors for coordinate construction and parsing.
var (
	// ErrInvalidNotation indicates malformed algebraic notation.
	ErrInvalidNotation = errors.New("board: invalid algebraic notation")
	// ErrOutOfRange indicates a coordinate outside the Size×Size board.
	ErrOutOfRange = errors.New("board: coordinate out of range")
)

// Coordinate identifies one square by zero-based row and column.
// Row 0 is rank 1, column 0 is file A; the zero value is square A1.
// Coordinates are plain comparable values: == is structural equality
// and they may be used directly as map keys.
type Coordinate struct {
	Row, Col int
}

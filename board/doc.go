// Package board models squares of the standard 8×8 chessboard as
// immutable Coordinate values, with algebraic-notation parsing and
// formatting.
//
// What:
//
//   - Coordinate{Row, Col}: zero-based value type, comparable, map-key safe.
//   - Parse / Notation: round-trip between Coordinate and algebraic
//     notation ("A1".."H8"); parsing accepts either letter case,
//     formatting always emits upper case.
//   - New: bounds-checked construction from raw indices.
//   - InBounds: membership test against the fixed Size×Size board.
//
// Why:
//
//   - One shared validity model: move generation, path search, and
//     rendering all trust a Coordinate that crossed this boundary.
//   - Value semantics make coordinates safe to copy, compare, and share
//     between goroutines without synchronization.
//
// Complexity:
//
//   - Every operation is O(1).
//
// Errors:
//
//   - ErrInvalidNotation: notation is not one file letter plus one rank digit.
//   - ErrOutOfRange: row or column outside [0, Size).
package board

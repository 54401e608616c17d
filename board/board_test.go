package board_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightpath/board"
)

// TestRoundTrip_AllSquares walks the whole board in both directions:
// indices → notation → indices, and notation → coordinate → notation.
func TestRoundTrip_AllSquares(t *testing.T) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c, err := board.New(row, col)
			require.NoError(t, err, "New(%d,%d)", row, col)

			n := c.Notation()
			back, err := board.Parse(n)
			require.NoError(t, err, "Parse(%q)", n)
			assert.Equal(t, c, back, "round trip through %q", n)
			assert.Equal(t, n, back.Notation(), "notation stable for %q", n)
		}
	}
}

// TestParse_KnownSquares pins the coordinate mapping: letter → column,
// digit → row, both zero-based.
func TestParse_KnownSquares(t *testing.T) {
	cases := []struct {
		in       string
		row, col int
	}{
		{"A1", 0, 0},
		{"A8", 7, 0},
		{"H1", 0, 7},
		{"H8", 7, 7},
		{"D4", 3, 3},
		{"G1", 0, 6},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			c, err := board.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.row, c.Row, "row of %q", tc.in)
			assert.Equal(t, tc.col, c.Col, "col of %q", tc.in)
		})
	}
}

// TestParse_CaseInsensitive accepts lower-case files and normalizes
// them to the canonical upper-case form.
func TestParse_CaseInsensitive(t *testing.T) {
	for _, in := range []string{"a1", "h8", "e4", "b7"} {
		c, err := board.Parse(in)
		require.NoError(t, err, "Parse(%q)", in)

		up, err := board.Parse(c.Notation())
		require.NoError(t, err)
		assert.Equal(t, c, up, "case-normalized %q", in)
	}
}

// TestParse_Invalid rejects every malformed notation with ErrInvalidNotation.
func TestParse_Invalid(t *testing.T) {
	cases := []string{"Z9", "A0", "A9", "I1", "A", "a", "", "A10", "1A", "AA", "11", " A1", "A1 "}
	for _, in := range cases {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			_, err := board.Parse(in)
			assert.ErrorIs(t, err, board.ErrInvalidNotation, "Parse(%q)", in)
		})
	}
}

// TestNew_OutOfRange rejects indices beyond either board edge.
func TestNew_OutOfRange(t *testing.T) {
	cases := [][2]int{
		{-1, 3}, {8, 5}, {2, 9}, {10, -3},
		{0, 8}, {7, -1}, {-1, -1}, {8, 8},
	}
	for _, rc := range cases {
		_, err := board.New(rc[0], rc[1])
		assert.ErrorIs(t, err, board.ErrOutOfRange, "New(%d,%d)", rc[0], rc[1])
	}
}

// TestInBounds checks membership for corners, edges, and the invalid table.
func TestInBounds(t *testing.T) {
	for _, rc := range [][2]int{{0, 0}, {0, 7}, {7, 0}, {7, 7}, {3, 4}} {
		c := board.Coordinate{Row: rc[0], Col: rc[1]}
		assert.True(t, c.InBounds(), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 3}, {8, 5}, {2, 9}, {10, -3}, {0, 8}, {7, -1}, {-1, -1}, {8, 8}} {
		c := board.Coordinate{Row: rc[0], Col: rc[1]}
		assert.False(t, c.InBounds(), "InBounds(%d,%d)", rc[0], rc[1])
	}
}

// TestString renders notation on the board and a debug pair off it.
func TestString(t *testing.T) {
	assert.Equal(t, "A1", board.Coordinate{}.String())
	assert.Equal(t, "H8", board.Coordinate{Row: 7, Col: 7}.String())
	assert.Equal(t, "(8,8)", board.Coordinate{Row: 8, Col: 8}.String())
	assert.Equal(t, "(-1,3)", board.Coordinate{Row: -1, Col: 3}.String())
}

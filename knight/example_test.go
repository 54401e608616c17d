package knight_test

import (
	"fmt"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/knight"
)

// ExampleMovesFrom lists the two moves available from the A1 corner.
// The order follows the fixed offset enumeration.
func ExampleMovesFrom() {
	corner, err := board.Parse("A1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, m := range knight.MovesFrom(corner) {
		fmt.Println(m)
	}
	// Output:
	// C2
	// B3
}

// ExampleCanReach tests single-move adjacency between two squares.
func ExampleCanReach() {
	g1, _ := board.Parse("G1")
	f3, _ := board.Parse("F3")
	e5, _ := board.Parse("E5")

	fmt.Println(knight.CanReach(g1, f3))
	fmt.Println(knight.CanReach(g1, e5))
	// Output:
	// true
	// false
}

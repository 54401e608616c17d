package render_test

import (
	"fmt"

	"github.com/katalvlaran/knightpath/paths"
	"github.com/katalvlaran/knightpath/render"
)

// ExampleDOT emits the Graphviz document for the two optimal A1→D4 routes.
func ExampleDOT() {
	ps, err := paths.Between("A1", "D4")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(render.DOT(ps))
	// Output:
	// digraph {
	//   A1 -> C2 [color=blue]
	//   C2 -> D4 [color=blue]
	//   A1 -> B3 [color=blue]
	//   B3 -> D4 [color=blue]
	//   label="Shortest path from A1 to D4"
	//   fontsize=14
	//   size="8, 8"
	// }
}

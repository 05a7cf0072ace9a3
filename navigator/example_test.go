package navigator_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/micromouse/mazetext"
	"github.com/katalvlaran/micromouse/navigator"
)

// ExampleNavigator_Run explores a maze whose shortest-looking route ends
// in a pocket under the goal row; the navigator backs out once the walls
// are seen.
func ExampleNavigator_Run() {
	diagram := strings.Join([]string{
		"+---+---+---+",
		"|         G |",
		"+   +---+---+",
		"|           |",
		"+   +   +   +",
		"| S |       |",
		"+---+---+---+",
	}, "\n")
	doc, err := mazetext.Parse(strings.NewReader(diagram))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nav, err := navigator.New(doc.Maze, doc.Goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := nav.Run(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, mv := range res.Moves {
		fmt.Println(mv.Direction, mv.To)
	}
	fmt.Println("reached:", res.Reached)
	// Output:
	// North (1,0)
	// East (1,1)
	// East (1,2)
	// West (1,1)
	// West (1,0)
	// North (0,0)
	// East (0,1)
	// East (0,2)
	// reached: true
}

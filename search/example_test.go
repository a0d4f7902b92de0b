package search_test

import (
	"fmt"

	"github.com/katalvlaran/pathery/grid"
	"github.com/katalvlaran/pathery/search"
)

// ExampleSearch finds the canonical shortest path on a 3×3 board with a wall
// in the middle. Two 4-step routes exist; Right is preferred over Down.
func ExampleSearch() {
	g, err := grid.FromRows([][]int32{
		{grid.CodeStart, grid.CodeEmpty, grid.CodeEmpty},
		{grid.CodeEmpty, grid.CodeWall, grid.CodeEmpty},
		{grid.CodeEmpty, grid.CodeEmpty, grid.CodeGoal},
	}, 0, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := search.Search(g, g.Starts(), grid.GoalCell())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(path), path)
	// Output:
	// 4 [(0,1) (0,2) (1,2) (2,2)]
}

// ExampleSearch_ice shows a slide over ice that cannot turn mid-run.
func ExampleSearch_ice() {
	g, _ := grid.FromRows([][]int32{
		{grid.CodeStart, grid.CodeIce, grid.CodeIce, grid.CodeGoal},
		{grid.CodeEmpty, grid.CodeWall, grid.CodeEmpty, grid.CodeEmpty},
	}, 0, 0)
	path, _ := search.Search(g, g.Starts(), grid.GoalCell())
	fmt.Println(path)
	// Output:
	// [(0,1) (0,2) (0,3)]
}

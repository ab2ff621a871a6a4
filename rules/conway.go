package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell with exactly 3 living neighbors is born, a living cell with 2 or 3
survives, every other cell is (or stays) dead: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Changes reports whether a cell in the given state flips under the rules
func Changes(neighbors int, alive bool) bool {
	return ApplyConwayRules(neighbors, alive) != alive
}

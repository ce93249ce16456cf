package rules

// Rule decides whether a cell is alive in the next generation given its
// current state and the number of alive cells in its Moore neighborhood.
type Rule func(alive bool, neighbors int) bool

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

An alive cell survives with exactly 2 or 3 neighbors, a dead cell is born with exactly 3.
*/
func ApplyConwayRules(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Conway is the canonical B3/S23 rule.
var Conway Rule = ApplyConwayRules

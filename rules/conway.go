package rules

/*
NextState applies Conway's Game of Life rules to a single cell.

	live cell, fewer than 2 live neighbours: dies (underpopulation)
	live cell, more than 3 live neighbours:  dies (overcrowding)
	live cell, 2 or 3 live neighbours:       lives on
	dead cell, exactly 3 live neighbours:    becomes alive (birth)
*/
func NextState(alive bool, liveNeighbours int) bool {
	switch {
	case liveNeighbours == 3:
		return true
	case alive && liveNeighbours == 2:
		return true
	default:
		return false
	}
}

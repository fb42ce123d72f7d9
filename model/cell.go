package model

// Cell is the state of a single board position, stored as its text form
type Cell byte

const (
	Alive Cell = '*'
	Dead  Cell = '.'
)

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

func (c Cell) String() string {
	return string(c)
}

// cellFromBool maps a rule result back to a cell
func cellFromBool(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

func parseCell(r rune) (Cell, bool) {
	switch r {
	case rune(Alive), rune(Dead):
		return Cell(r), true
	}
	return 0, false
}

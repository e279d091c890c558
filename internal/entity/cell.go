package entity

// Cell is the content of one board slot. Once set to CellO or CellX it never changes.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellO
	CellX
)

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

// Player returns the owner of the mark, PlayerNone for an empty cell.
func (that Cell) Player() Player {
	switch that {
	case CellO:
		return PlayerO
	case CellX:
		return PlayerX
	default:
		return PlayerNone
	}
}

func (that Cell) String() string {
	switch that {
	case CellO:
		return "O"
	case CellX:
		return "X"
	default:
		return " "
	}
}

package entity

// Player is the mark a participant writes into a cell.
type Player uint8

const (
	PlayerNone Player = iota
	PlayerO
	PlayerX
)

// Valid reports whether the player is O or X.
func (that Player) Valid() bool {
	return that == PlayerO || that == PlayerX
}

// Cell returns the cell value written by the player.
func (that Player) Cell() Cell {
	switch that {
	case PlayerO:
		return CellO
	case PlayerX:
		return CellX
	default:
		return CellEmpty
	}
}

func (that Player) String() string {
	switch that {
	case PlayerO:
		return "O"
	case PlayerX:
		return "X"
	default:
		return ""
	}
}

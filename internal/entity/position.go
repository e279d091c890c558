package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize

	columns = "abc"
	rows    = "012"
)

// Position addresses a cell by column (a-c) and row (0-2). Values only come from
// ParsePosition and AllPositions, so every Position is on the board.
type Position struct {
	col int
	row int
}

// ParsePosition accepts exactly one of the labels a0..c2.
func ParsePosition(label string) (Position, error) {
	if len(label) != 2 {
		return Position{}, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, label)
	}

	col := indexOf(columns, label[0])
	row := indexOf(rows, label[1])
	if col < 0 || row < 0 {
		return Position{}, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, label)
	}

	return Position{col: col, row: row}, nil
}

// AllPositions lists every position in row-major order.
func AllPositions() []Position {
	positions := make([]Position, 0, CellCount)
	for row := range BoardSize {
		for col := range BoardSize {
			positions = append(positions, Position{col: col, row: row})
		}
	}

	return positions
}

// Index is the row-major offset of the position on the board.
func (that Position) Index() int {
	return that.row*BoardSize + that.col
}

func (that Position) Col() int {
	return that.col
}

func (that Position) Row() int {
	return that.row
}

func (that Position) String() string {
	return string([]byte{columns[that.col], rows[that.row]})
}

func indexOf(alphabet string, c byte) int {
	for i := range len(alphabet) {
		if alphabet[i] == c {
			return i
		}
	}

	return -1
}

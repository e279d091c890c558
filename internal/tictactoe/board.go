package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const header = "  A B C"

// winLines lists the winning lines in the order TerminalMark checks them:
// rows, columns, then the a0-c2 and a2-c0 diagonals.
var winLines = [...][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{6, 4, 2},
}

// Board holds the nine cells of a game, indexed row-major.
type Board struct {
	cells [entity.CellCount]entity.Cell
}

func NewBoard() *Board {
	return &Board{}
}

// ApplyMove writes the player's mark at position. It is the only way to change the board
// and leaves it untouched on any error.
func (that *Board) ApplyMove(player entity.Player, position string) error {
	if !player.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, player)
	}

	pos, err := entity.ParsePosition(position)
	if err != nil {
		return err
	}

	if !that.cells[pos.Index()].IsEmpty() {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	that.cells[pos.Index()] = player.Cell()

	return nil
}

func (that *Board) Cell(pos entity.Position) entity.Cell {
	return that.cells[pos.Index()]
}

// TerminalMark returns the owner of the first completed line, PlayerNone if there is none.
func (that *Board) TerminalMark() entity.Player {
	for _, combo := range winLines {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return a.Player()
		}
	}

	return entity.PlayerNone
}

func (that *Board) Render() string {
	return that.RenderWith(entity.Cell.String)
}

// RenderWith draws the grid with column headers and row labels, formatting each cell with style.
func (that *Board) RenderWith(style func(entity.Cell) string) string {
	var sb strings.Builder

	sb.WriteString(header)
	sb.WriteByte('\n')

	for _, pos := range entity.AllPositions() {
		if pos.Col() == 0 {
			fmt.Fprintf(&sb, "%d", pos.Row())
		}

		sb.WriteByte(' ')
		sb.WriteString(style(that.Cell(pos)))

		if pos.Col() == entity.BoardSize-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

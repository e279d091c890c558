package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MoveSource supplies candidate positions for the active player. It returns io.EOF once
// no more input is available.
type MoveSource interface {
	NextMove(ctx context.Context, player entity.Player) (string, error)
}

// RejectHook is notified of every move the board refused.
type RejectHook func(player entity.Player, position string, err error)

type Option func(*Game)

// WithMaxAttempts bounds the number of refused moves a single PlayTurn accepts. Zero means no bound.
func WithMaxAttempts(n int) Option {
	return func(game *Game) {
		game.maxAttempts = n
	}
}

func WithRejectHook(hook RejectHook) Option {
	return func(game *Game) {
		game.onReject = hook
	}
}

// Game drives one match on its own board. Turns are counted from 1 and advance only on
// accepted moves.
type Game struct {
	board *Board
	turn  int
	state entity.GameState

	maxAttempts int
	onReject    RejectHook
}

func NewGame(opts ...Option) *Game {
	game := &Game{
		board: NewBoard(),
		turn:  1,
		state: entity.StateInProgress,
	}

	for _, opt := range opts {
		opt(game)
	}

	return game
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) Turn() int {
	return that.turn
}

func (that *Game) State() entity.GameState {
	return that.state
}

// ActivePlayer is X on odd turns and O on even turns.
func (that *Game) ActivePlayer() entity.Player {
	if that.turn%2 == 1 {
		return entity.PlayerX
	}

	return entity.PlayerO
}

// PlayTurn asks source for positions until the board accepts one, then advances the turn and
// recomputes the state. Refused moves change nothing.
func (that *Game) PlayTurn(ctx context.Context, source MoveSource) error {
	if that.state.IsTerminal() {
		return apperror.ErrGameFinished
	}

	player := that.ActivePlayer()

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("turn %d canceled: %w", that.turn, err)
		}

		position, err := source.NextMove(ctx, player)
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("turn %d: %w", that.turn, apperror.ErrInputExhausted)
		}
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		err = that.board.ApplyMove(player, position)
		if err == nil {
			break
		}

		if that.onReject != nil {
			that.onReject(player, position, err)
		}

		if that.maxAttempts > 0 && attempt >= that.maxAttempts {
			return fmt.Errorf("%w: %d attempts on turn %d", apperror.ErrTooManyAttempts, attempt, that.turn)
		}
	}

	that.turn++
	that.updateState()

	return nil
}

// updateState checks for a completed line before the move ceiling, so a win on the last
// free cell is a victory.
func (that *Game) updateState() {
	if winner := that.board.TerminalMark(); winner != entity.PlayerNone {
		that.state = entity.VictoryFor(winner)
		return
	}

	if that.turn > entity.CellCount {
		that.state = entity.StateStalemate
	}
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// Presenter is the output side of a session.
type Presenter interface {
	ShowBoard(board *tictactoe.Board) error
	AnnounceTurn(turn int, player entity.Player) error
	Rejected(player entity.Player, position string, err error)
	ShowOutcome(state entity.GameState) error
}

// GameManager runs one game from the first move to a terminal state.
type GameManager struct {
	logger *slog.Logger

	source tictactoe.MoveSource
	view   Presenter
	opts   []tictactoe.Option
}

func NewGameManager(logger *slog.Logger, source tictactoe.MoveSource, view Presenter, opts ...tictactoe.Option) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),
		source: source,
		view:   view,
		opts:   opts,
	}
}

// Play calls PlayTurn while the game is in progress and then reports the outcome.
// On error the returned state is the one reached before the failing turn.
func (that *GameManager) Play(ctx context.Context) (entity.GameState, error) {
	log := that.logger.With("method", "Play", "game_id", uuid.NewString())

	opts := append([]tictactoe.Option{tictactoe.WithRejectHook(that.rejected(log))}, that.opts...)
	game := tictactoe.NewGame(opts...)

	log.Info("game started")

	for game.State() == entity.StateInProgress {
		if err := that.view.ShowBoard(game.Board()); err != nil {
			return game.State(), fmt.Errorf("failed to show board: %w", err)
		}

		if err := that.view.AnnounceTurn(game.Turn(), game.ActivePlayer()); err != nil {
			return game.State(), fmt.Errorf("failed to announce turn: %w", err)
		}

		player := game.ActivePlayer()
		if err := game.PlayTurn(ctx, that.source); err != nil {
			log.Warn("game interrupted", "turn", game.Turn(), "error", err)
			return game.State(), fmt.Errorf("failed to play turn: %w", err)
		}

		log.Debug("move accepted", "player", player.String(), "turn", game.Turn()-1, "state", game.State().String())
	}

	if err := that.view.ShowBoard(game.Board()); err != nil {
		return game.State(), fmt.Errorf("failed to show board: %w", err)
	}

	if err := that.view.ShowOutcome(game.State()); err != nil {
		return game.State(), fmt.Errorf("failed to show outcome: %w", err)
	}

	log.Info("game finished", "state", game.State().String(), "moves", game.Turn()-1)

	return game.State(), nil
}

func (that *GameManager) rejected(log *slog.Logger) tictactoe.RejectHook {
	return func(player entity.Player, position string, err error) {
		log.Warn("move rejected", "player", player.String(), "position", position, "error", err)
		that.view.Rejected(player, position, err)
	}
}

package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - plays one game on in/out and returns once it is decided, the input ends,
// or the process is interrupted.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// after the first signal a second one terminates the process as usual
	go func() {
		<-ctx.Done()
		stop()
	}()

	term := console.New(in, out, console.WithColor(!conf.Console.NoColor))
	manager := usecase.NewGameManager(logger, term, term, tictactoe.WithMaxAttempts(conf.Console.MaxAttempts))

	state, err := manager.Play(ctx)
	switch {
	case errors.Is(err, apperror.ErrInputExhausted):
		log.Info("input closed before the game ended", "state", state.String())
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("game interrupted, shutting down")
		return nil
	case err != nil:
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("game over", "state", state.String())

	return nil
}

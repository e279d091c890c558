package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New returns a context bounded by maxWaitDuration and a suite with a debug logger.
// Set TEST_LOG=1 to see the logs.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var out io.Writer = io.Discard
	if os.Getenv("TEST_LOG") != "" {
		out = os.Stdout
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// ScriptedMoves replays a fixed list of positions and then reports io.EOF.
type ScriptedMoves struct {
	moves []string
	next  int

	// Asked records the player every position was requested for.
	Asked []entity.Player
}

func (that *Suite) Script(moves ...string) *ScriptedMoves {
	return Script(moves...)
}

func Script(moves ...string) *ScriptedMoves {
	return &ScriptedMoves{moves: moves}
}

func (that *ScriptedMoves) NextMove(_ context.Context, player entity.Player) (string, error) {
	that.Asked = append(that.Asked, player)

	if that.next >= len(that.moves) {
		return "", io.EOF
	}

	move := that.moves[that.next]
	that.next++

	return move, nil
}

// Remaining is the number of positions not yet consumed.
func (that *ScriptedMoves) Remaining() int {
	return len(that.moves) - that.next
}

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	colorX = "9"  // bright red
	colorO = "12" // bright blue
)

type Option func(*Console)

// WithColor toggles coloured marks on the board.
func WithColor(enabled bool) Option {
	return func(console *Console) {
		console.color = enabled
	}
}

// WithProfile forces a termenv colour profile instead of detecting it from the output.
func WithProfile(profile termenv.Profile) Option {
	return func(console *Console) {
		console.profile = &profile
	}
}

type line struct {
	text string
	err  error
}

// Console reads moves line by line from in and writes everything the players see to out.
// Lines are read by a single goroutine started on the first NextMove, so a blocked read
// never holds up cancellation.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer

	lines      chan line
	readerOnce sync.Once

	output  *termenv.Output
	profile *termenv.Profile
	color   bool
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	console := &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		lines:   make(chan line),
		color:   true,
	}

	for _, opt := range opts {
		opt(console)
	}

	var outputOpts []termenv.OutputOption
	if console.profile != nil {
		outputOpts = append(outputOpts, termenv.WithProfile(*console.profile))
	}
	console.output = termenv.NewOutput(out, outputOpts...)

	return console
}

// NextMove prompts the player and returns the next input line, trimmed and lowercased.
// It returns io.EOF when the input is closed.
func (that *Console) NextMove(ctx context.Context, player entity.Player) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprintf(that.out, "player %s, enter your move (a0-c2): ", player); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	that.readerOnce.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		if next.err != nil {
			return "", fmt.Errorf("failed to read move: %w", next.err)
		}

		return strings.ToLower(strings.TrimSpace(next.text)), nil
	}
}

// readLines feeds lines until the input ends, then closes the channel.
func (that *Console) readLines() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- line{text: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.lines <- line{err: err}
	}
}

func (that *Console) ShowBoard(board *tictactoe.Board) error {
	style := entity.Cell.String
	if that.color {
		style = that.styleCell
	}

	if _, err := fmt.Fprint(that.out, "\n"+board.RenderWith(style)); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Console) AnnounceTurn(turn int, player entity.Player) error {
	if _, err := fmt.Fprintf(that.out, "turn %d: player %s\n", turn, player); err != nil {
		return fmt.Errorf("failed to write turn: %w", err)
	}

	return nil
}

// Rejected tells the player why a move was refused so they can try again.
func (that *Console) Rejected(_ entity.Player, position string, err error) {
	_, _ = fmt.Fprintf(that.out, "invalid move %q: %s, try again\n", position, reason(err))
}

func (that *Console) ShowOutcome(state entity.GameState) error {
	if _, err := fmt.Fprintf(that.out, "game over: %s\n", state); err != nil {
		return fmt.Errorf("failed to write outcome: %w", err)
	}

	return nil
}

func (that *Console) styleCell(cell entity.Cell) string {
	switch cell {
	case entity.CellX:
		return that.output.String(cell.String()).Foreground(that.output.Color(colorX)).Bold().String()
	case entity.CellO:
		return that.output.String(cell.String()).Foreground(that.output.Color(colorO)).Bold().String()
	default:
		return cell.String()
	}
}

func reason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return apperror.ErrCellOccupied.Error()
	case errors.Is(err, apperror.ErrInvalidPosition):
		return apperror.ErrInvalidPosition.Error()
	case errors.Is(err, apperror.ErrInvalidPlayer):
		return apperror.ErrInvalidPlayer.Error()
	default:
		return err.Error()
	}
}

package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var errQuit = errors.New("quit")

type gameManager interface {
	Game() *entity.Game
	StartGame(ctx context.Context, mode string) (*entity.Game, error)
	MakeTurn(ctx context.Context, cell int) (*entity.Game, error)
	ComputerTurn(ctx context.Context) (*entity.Game, error)
	Reset(ctx context.Context) (*entity.Game, error)
	Back(ctx context.Context) *entity.Game
}

// Session - a line oriented front-end for one player at a terminal.
type Session struct {
	logger  *slog.Logger
	manager gameManager
	input   io.Reader
	output  *termenv.Output

	modeHandlers map[string]func(ctx context.Context) error
	gameHandlers map[string]func(ctx context.Context) error
}

// New - creates a session reading commands from input. Colors follow the
// terminal behind output unless noColor is set.
func New(logger *slog.Logger, manager gameManager, input io.Reader, output io.Writer, noColor bool) *Session {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	session := &Session{
		logger:  logger.With("component", "terminal"),
		manager: manager,
		input:   input,
		output:  termenv.NewOutput(output, opts...),
	}

	session.modeHandlers = map[string]func(context.Context) error{
		"1": session.handleStart(entity.SinglePlayerMode),
		"2": session.handleStart(entity.TwoPlayerMode),
		"q": session.handleQuit,
	}

	session.gameHandlers = map[string]func(context.Context) error{
		"r": session.handleReset,
		"b": session.handleBack,
		"q": session.handleQuit,
	}

	return session
}

// Run - processes commands until quit, end of input or ctx is done.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	lines := that.readLines(ctx)

	that.printModeMenu()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			line string
			ok   bool
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
			if !ok {
				log.DebugContext(ctx, "input closed")
				return nil
			}
		}

		err := that.handleCommand(ctx, strings.TrimSpace(line))
		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			that.println("Bye!")
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			log.ErrorContext(ctx, "error processing command", "command", line, "error", err)
			return err
		}
	}
}

func (that *Session) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.ErrorContext(ctx, "failed to read input", "error", err)
		}
	}()

	return lines
}

func (that *Session) handleCommand(ctx context.Context, command string) error {
	if command == "" {
		return nil
	}

	game := that.manager.Game()

	if game.IsModeSelection() {
		handler, ok := that.modeHandlers[command]
		if !ok {
			that.println("Unknown command, choose 1, 2 or q")
			return nil
		}

		return handler(ctx)
	}

	if handler, ok := that.gameHandlers[command]; ok {
		return handler(ctx)
	}

	cell, err := strconv.Atoi(command)
	if err != nil {
		that.println("Unknown command, choose a cell 1-9, r, b or q")
		return nil
	}

	return that.handleCell(ctx, cell-1)
}

func (that *Session) handleStart(mode string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		game, err := that.manager.StartGame(ctx, mode)
		if err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}

		return that.afterAction(ctx, game)
	}
}

func (that *Session) handleCell(ctx context.Context, cell int) error {
	game, err := that.manager.MakeTurn(ctx, cell)
	if err != nil {
		if message, ok := turnErrorMessage(err); ok {
			that.println(message)
			return nil
		}

		return err
	}

	return that.afterAction(ctx, game)
}

func (that *Session) handleReset(ctx context.Context) error {
	game, err := that.manager.Reset(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	return that.afterAction(ctx, game)
}

func (that *Session) handleBack(ctx context.Context) error {
	that.manager.Back(ctx)
	that.printModeMenu()

	return nil
}

func (that *Session) handleQuit(_ context.Context) error {
	return errQuit
}

// afterAction - renders the game and lets the computer reply while it is to move.
func (that *Session) afterAction(ctx context.Context, game *entity.Game) error {
	that.render(game)

	for game.IsComputerTurn() {
		that.println("Computer is thinking...")

		var err error
		if game, err = that.manager.ComputerTurn(ctx); err != nil {
			return err
		}

		that.render(game)
	}

	return nil
}

// turnErrorMessage - maps rejected moves to a line for the player.
func turnErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell):
		return "Choose a cell from 1 to 9", true
	case errors.Is(err, apperror.ErrCellOccupied):
		return "Cell is already occupied", true
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Wait for your turn", true
	case errors.Is(err, apperror.ErrGameFinished):
		return "Round is over, press r to play again or b to go back", true
	default:
		return "", false
	}
}

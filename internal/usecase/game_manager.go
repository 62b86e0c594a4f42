package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

// GameManager - drives one local session: mode selection, human turns and the computer's replies.
// It is not safe for concurrent use.
type GameManager struct {
	logger *slog.Logger
	bot    botService

	computer entity.Mark
	delay    time.Duration

	game *entity.Game
}

func NewGameManager(logger *slog.Logger, bot botService, computer entity.Mark, delay time.Duration) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,

		computer: computer,
		delay:    delay,

		game: entity.NewGame(""),
	}
}

// Game - returns a copy of the current state.
func (that *GameManager) Game() *entity.Game {
	snapshot := *that.game
	return &snapshot
}

func (that *GameManager) StartGame(ctx context.Context, mode string) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return that.Game(), fmt.Errorf("error generating game ID: %w", err)
	}

	if err = tictactoe.StartGame(that.game, mode, that.computer); err != nil {
		return that.Game(), fmt.Errorf("failed start game: %w", err)
	}

	that.game.ID = gameID
	that.logger.InfoContext(ctx, "game started", "gameID", gameID, "mode", mode, "computer", string(that.game.Computer))

	return that.Game(), nil
}

// MakeTurn - applies the human move for the mark whose turn it is.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", that.game.ID)

	if that.game.IsComputerTurn() {
		return that.Game(), apperror.ErrNotYourTurn
	}

	mark := that.game.Turn
	if err := tictactoe.MakeTurn(that.game, mark, cell); err != nil {
		return that.Game(), fmt.Errorf("failed make turn: %w", err)
	}

	log.DebugContext(ctx, "player made a turn", "mark", string(mark), "cell", cell)
	that.logRoundOver(ctx)

	return that.Game(), nil
}

// ComputerTurn - waits the configured delay, then lets the bot play.
func (that *GameManager) ComputerTurn(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "ComputerTurn", "gameID", that.game.ID)

	if !that.game.IsComputerTurn() {
		return that.Game(), apperror.ErrNotComputerTurn
	}

	if err := sleep(ctx, that.delay); err != nil {
		return that.Game(), fmt.Errorf("computer turn interrupted: %w", err)
	}

	if err := that.bot.MakeTurn(ctx, that.game); err != nil {
		log.ErrorContext(ctx, "bot failed to make turn", "error", err)
		return that.Game(), fmt.Errorf("failed computer turn: %w", err)
	}

	that.logRoundOver(ctx)

	return that.Game(), nil
}

// Reset - starts a new round in the current mode.
func (that *GameManager) Reset(ctx context.Context) (*entity.Game, error) {
	if err := tictactoe.Reset(that.game); err != nil {
		return that.Game(), fmt.Errorf("failed reset game: %w", err)
	}

	that.logger.DebugContext(ctx, "round reset", "gameID", that.game.ID)

	return that.Game(), nil
}

// Back - returns to mode selection.
func (that *GameManager) Back(ctx context.Context) *entity.Game {
	that.logger.DebugContext(ctx, "back to mode selection", "gameID", that.game.ID)
	tictactoe.Back(that.game)

	return that.Game()
}

func (that *GameManager) logRoundOver(ctx context.Context) {
	if !that.game.IsRoundOver() {
		return
	}

	that.logger.InfoContext(ctx, "round over",
		"gameID", that.game.ID,
		"outcome", that.game.Outcome.String(),
		"board", that.game.Board.String(),
	)
}

func sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

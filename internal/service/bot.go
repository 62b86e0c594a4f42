package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type BotService interface {
	NextMove(ctx context.Context, game *entity.Game) (int, error)
	MakeTurn(ctx context.Context, game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// NextMove - asks the search engine for the computer's cell without touching the game.
func (that *botService) NextMove(ctx context.Context, game *entity.Game) (int, error) {
	if err := game.ConfirmInProgress(); err != nil {
		return minimax.NoMove, err
	}

	if !game.Computer.IsPlayer() {
		return minimax.NoMove, fmt.Errorf("%w: computer %q", apperror.ErrInvalidMark, string(game.Computer))
	}

	if !game.IsComputerTurn() {
		return minimax.NoMove, apperror.ErrNotComputerTurn
	}

	if err := game.Board.Validate(); err != nil {
		return minimax.NoMove, fmt.Errorf("bot refused board: %w", err)
	}

	board := game.Board
	result := minimax.Search(&board, game.Computer, game.Computer.Opponent())

	that.logger.DebugContext(ctx, "search finished",
		"gameID", game.ID,
		"board", game.Board.String(),
		"cell", result.Cell,
		"score", result.Score,
		"nodes", result.Nodes,
		"maxDepth", result.MaxDepth,
	)

	if result.Cell == minimax.NoMove {
		return minimax.NoMove, apperror.ErrNoAvailableMoves
	}

	return result.Cell, nil
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) error {
	cell, err := that.NextMove(ctx, game)
	if err != nil {
		return fmt.Errorf("bot failed to choose cell: %w", err)
	}

	if err = tictactoe.MakeTurn(game, game.Computer, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// Package arena plays many computer games concurrently and tallies the results.
package arena

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type Stats struct {
	computerWins atomic.Uint32
	opponentWins atomic.Uint32
	draws        atomic.Uint32
}

func (that *Stats) ComputerWins() int {
	return int(that.computerWins.Load())
}

func (that *Stats) OpponentWins() int {
	return int(that.opponentWins.Load())
}

func (that *Stats) Draws() int {
	return int(that.draws.Load())
}

func (that *Stats) Total() int {
	return that.ComputerWins() + that.OpponentWins() + that.Draws()
}

func (that *Stats) record(outcome entity.Outcome, computer entity.Mark) {
	switch outcome.Winner() {
	case computer:
		that.computerWins.Add(1)
	case entity.EmptyCell:
		that.draws.Add(1)
	default:
		that.opponentWins.Add(1)
	}
}

type Arena struct {
	logger   *slog.Logger
	computer Player
	opponent func(game int) Player

	games   int
	workers int
}

func New(logger *slog.Logger, opponent func(game int) Player, games, workers int) *Arena {
	return &Arena{
		logger:   logger.With("component", "arena"),
		computer: MinimaxPlayer{},
		opponent: opponent,

		games:   games,
		workers: workers,
	}
}

// Run - plays all games, at most workers at a time. The computer opens as X in
// even games and answers as O in odd ones.
func (that *Arena) Run(ctx context.Context) (*Stats, error) {
	log := that.logger.With("method", "Run")
	stats := &Stats{}

	errg, gameCtx := errgroup.WithContext(ctx)
	errg.SetLimit(that.workers)

	for game := range that.games {
		if gameCtx.Err() != nil {
			break
		}

		errg.Go(func() error {
			computer := entity.PlayerX
			if game%2 == 1 {
				computer = entity.PlayerO
			}

			outcome, err := that.playGame(gameCtx, computer, that.opponent(game))
			if err != nil {
				return fmt.Errorf("game %d: %w", game, err)
			}

			stats.record(outcome, computer)
			log.DebugContext(gameCtx, "game finished", "game", game, "computer", string(computer), "outcome", outcome.String())

			return nil
		})
	}

	if err := errg.Wait(); err != nil {
		return stats, err
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	log.InfoContext(ctx, "arena finished",
		"games", stats.Total(),
		"computerWins", stats.ComputerWins(),
		"opponentWins", stats.OpponentWins(),
		"draws", stats.Draws(),
	)

	return stats, nil
}

func (that *Arena) playGame(ctx context.Context, computer entity.Mark, opponent Player) (entity.Outcome, error) {
	game := entity.NewGame("")
	if err := tictactoe.StartGame(game, entity.TwoPlayerMode, entity.EmptyCell); err != nil {
		return entity.OutcomeOngoing, err
	}

	for game.IsInProgress() {
		player := opponent
		if game.Turn == computer {
			player = that.computer
		}

		cell, err := player.Play(ctx, game.Board, game.Turn)
		if err != nil {
			return entity.OutcomeOngoing, fmt.Errorf("player %s failed: %w", game.Turn, err)
		}

		if err = tictactoe.MakeTurn(game, game.Turn, cell); err != nil {
			return entity.OutcomeOngoing, err
		}
	}

	return game.Outcome, nil
}

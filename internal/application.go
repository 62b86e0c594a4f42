package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/arena"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

// RunApp - runs the interactive terminal session, or the arena when it is enabled.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errg, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	errg.Go(func() error {
		defer close(done)

		if conf.Arena.Enabled {
			log.Info("Starting arena", "games", conf.Arena.Games, "workers", conf.Arena.Workers, "opponent", conf.Arena.Opponent)
			return runArena(ctx, logger, conf.Arena)
		}

		botService := service.NewBotService(logger)
		gameManager := usecase.NewGameManager(logger, botService, entity.Mark(conf.AI.Mark), conf.AI.Delay)
		session := terminal.New(logger, gameManager, os.Stdin, os.Stdout, conf.Terminal.NoColor)

		log.Info("Starting terminal session", "computer", conf.AI.Mark, "delay", conf.AI.Delay)

		return session.Run(ctx)
	})

	errg.Go(func() error {
		select {
		case <-ctx.Done():
			log.Info("Received signal, shutting down")
		case <-done:
		}

		return nil
	})

	if err := errg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func runArena(ctx context.Context, logger *slog.Logger, conf config.Arena) error {
	opponent, err := arena.NewOpponent(conf.Opponent, conf.Seed)
	if err != nil {
		return fmt.Errorf("failed to create opponent: %w", err)
	}

	stats, err := arena.New(logger, opponent, conf.Games, conf.Workers).Run(ctx)
	if err != nil {
		return fmt.Errorf("arena run failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "games: %d  computer wins: %d  opponent wins: %d  draws: %d\n",
		stats.Total(), stats.ComputerWins(), stats.OpponentWins(), stats.Draws())

	return nil
}

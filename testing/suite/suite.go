package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

const maxWaitDuration = 120 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Config *config.Config
}

// New - returns a context bounded by maxWaitDuration and a suite with a quiet
// logger and a config that never delays the computer.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))

	conf := &config.Config{
		LogLevel: "info",
		AI: config.AI{
			Mark:  "O",
			Delay: 0,
		},
		Terminal: config.Terminal{
			NoColor: true,
		},
		Arena: config.Arena{
			Games:    20,
			Workers:  4,
			Seed:     1,
			Opponent: "random",
		},
	}

	if err := conf.Validate(); err != nil {
		t.Fatalf("invalid suite config: %v", err)
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Config: conf,
	}
}

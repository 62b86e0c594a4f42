package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	app "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

var (
	configPath = "./config.yml"
	arenaGames = 0
	opponent   = ""
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "path to the config file")
	pflag.IntVarP(&arenaGames, "arena", "a", arenaGames, "play N arena games instead of the interactive session")
	pflag.StringVarP(&opponent, "opponent", "o", opponent, "arena opponent: random or minimax")
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	pflag.Parse()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config, flags override the file.
func initConfig() *config.Config {
	conf := config.MustLoad(configPath)

	if arenaGames > 0 {
		conf.Arena.Enabled = true
		conf.Arena.Games = arenaGames
	}

	if opponent != "" {
		conf.Arena.Opponent = opponent
	}

	if err := conf.Validate(); err != nil {
		panic(err)
	}

	return conf
}

// initialize logger, stdout belongs to the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

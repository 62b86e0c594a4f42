package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	AI       AI       `yaml:"ai"`
	Terminal Terminal `yaml:"terminal"`
	Arena    Arena    `yaml:"arena"`
}

type AI struct {
	// Mark - the computer's mark in single player mode. X always opens.
	Mark string `yaml:"mark" env:"AI_MARK" env-default:"O" validate:"oneof=X O"`
	// Delay - pause before the computer's move is applied, zero when unset.
	Delay time.Duration `yaml:"delay" env:"AI_DELAY" validate:"gte=0"`
}

type Terminal struct {
	NoColor bool `yaml:"no-color" env:"NO_COLOR"`
}

type Arena struct {
	Enabled  bool   `yaml:"enabled" env:"ARENA_ENABLED"`
	Games    int    `yaml:"games" env:"ARENA_GAMES" env-default:"100" validate:"min=1"`
	Workers  int    `yaml:"workers" env:"ARENA_WORKERS" env-default:"4" validate:"min=1"`
	Seed     uint64 `yaml:"seed" env:"ARENA_SEED" env-default:"1"`
	Opponent string `yaml:"opponent" env:"ARENA_OPPONENT" env-default:"random" validate:"oneof=random minimax"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load - reads the config file at path, or env and defaults only when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime settings of the game. Everything has a
// sensible default so the binary runs without any config file; a
// config.yml next to the binary or TTT_* environment variables
// override the defaults.
type Config struct {
	LogLevel string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Mute     bool   `yaml:"mute" env:"TTT_MUTE" env-default:"false"`
	// Seed for the move-selection RNG. 0 means seed from the current time.
	Seed int64 `yaml:"seed" env:"TTT_SEED" env-default:"0"`
	// NormalOptimalChance is the probability that the Normal difficulty
	// plays the optimal move instead of a random one.
	NormalOptimalChance float64 `yaml:"normal-optimal-chance" env:"TTT_NORMAL_OPTIMAL_CHANCE" env-default:"0.7"`
	// ComputerDelayMS is the pause before the computer replies, so the
	// move is visible as a distinct event rather than instantaneous.
	ComputerDelayMS int `yaml:"computer-delay-ms" env:"TTT_COMPUTER_DELAY_MS" env-default:"300"`
}

// LoadConfig reads the config file at path when it exists, otherwise
// falls back to environment variables and defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	}
	if cfg.NormalOptimalChance < 0 || cfg.NormalOptimalChance > 1 {
		return nil, fmt.Errorf("normal-optimal-chance must be in [0,1], got %v", cfg.NormalOptimalChance)
	}
	if cfg.ComputerDelayMS < 0 {
		return nil, fmt.Errorf("computer-delay-ms must not be negative, got %d", cfg.ComputerDelayMS)
	}
	return cfg, nil
}

// newLogger builds the application logger from the configured level.
// Unknown levels fall back to info.
func newLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

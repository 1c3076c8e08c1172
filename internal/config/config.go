// Package config loads application configuration from an optional YAML
// file, an optional .env file and environment variables, in that
// precedence order (env wins).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rudram/trivl/internal/opentdb"
)

const (
	// MaxAmount is the largest batch the question bank serves per request.
	MaxAmount = 50

	defaultAmount     = 10
	defaultCategory   = 9 // General Knowledge
	defaultDifficulty = "easy"
)

// Config holds the full application configuration.
type Config struct {
	API  API  `mapstructure:"api"`
	Quiz Quiz `mapstructure:"quiz"`
	Log  Log  `mapstructure:"log"`
}

// API configures the question bank endpoint.
type API struct {
	BaseURL string        `mapstructure:"base_url"` // question bank endpoint
	Timeout time.Duration `mapstructure:"timeout"`  // per-request timeout
}

// Quiz configures the default batch parameters.
type Quiz struct {
	Amount     int    `mapstructure:"amount"`     // questions per session
	Category   int    `mapstructure:"category"`   // question bank category id
	Difficulty string `mapstructure:"difficulty"` // easy, medium or hard
}

// Log configures the file logger.
type Log struct {
	Path  string `mapstructure:"path"`  // log file path; empty selects the XDG state dir
	Level string `mapstructure:"level"` // zap level name
}

// ParsedDifficulty returns the configured difficulty as a validated enum value.
func (q Quiz) ParsedDifficulty() (opentdb.Difficulty, error) {
	return opentdb.ParseDifficulty(q.Difficulty)
}

// Load reads configuration and validates it.
func Load() (*Config, error) {
	// A local .env is convenient during development; missing is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("trivl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/trivl")

	v.SetDefault("api.base_url", "https://opentdb.com/api.php")
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("quiz.amount", defaultAmount)
	v.SetDefault("quiz.category", defaultCategory)
	v.SetDefault("quiz.difficulty", defaultDifficulty)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("TRIVL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enums.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}
	if c.Quiz.Amount < 1 || c.Quiz.Amount > MaxAmount {
		return fmt.Errorf("quiz.amount must be in [1, %d], got %d", MaxAmount, c.Quiz.Amount)
	}
	if c.Quiz.Category < 0 {
		return fmt.Errorf("quiz.category must not be negative, got %d", c.Quiz.Category)
	}
	if _, err := opentdb.ParseDifficulty(c.Quiz.Difficulty); err != nil {
		return fmt.Errorf("quiz.difficulty: %w", err)
	}
	return nil
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudram/trivl/internal/opentdb"
)

func validConfig() *Config {
	return &Config{
		API:  API{BaseURL: "https://opentdb.com/api.php", Timeout: 15 * time.Second},
		Quiz: Quiz{Amount: 10, Category: 9, Difficulty: "easy"},
		Log:  Log{Level: "info"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no config file present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://opentdb.com/api.php", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 10, cfg.Quiz.Amount)
	assert.Equal(t, 9, cfg.Quiz.Category)
	assert.Equal(t, "easy", cfg.Quiz.Difficulty)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TRIVL_QUIZ_AMOUNT", "25")
	t.Setenv("TRIVL_QUIZ_DIFFICULTY", "hard")
	t.Setenv("TRIVL_API_BASE_URL", "http://localhost:8080/api.php")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Quiz.Amount)
	assert.Equal(t, "hard", cfg.Quiz.Difficulty)
	assert.Equal(t, "http://localhost:8080/api.php", cfg.API.BaseURL)
}

func TestLoad_RejectsInvalidEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TRIVL_QUIZ_DIFFICULTY", "nightmare")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, true},
		{"amount too small", func(c *Config) { c.Quiz.Amount = 0 }, true},
		{"amount too large", func(c *Config) { c.Quiz.Amount = MaxAmount + 1 }, true},
		{"negative category", func(c *Config) { c.Quiz.Category = -1 }, true},
		{"bad difficulty", func(c *Config) { c.Quiz.Difficulty = "brutal" }, true},
		{"medium difficulty", func(c *Config) { c.Quiz.Difficulty = "medium" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParsedDifficulty(t *testing.T) {
	q := Quiz{Difficulty: "medium"}
	d, err := q.ParsedDifficulty()
	require.NoError(t, err)
	assert.Equal(t, opentdb.DifficultyMedium, d)
}

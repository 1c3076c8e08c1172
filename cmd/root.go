package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rudram/trivl/internal/app"
	"github.com/rudram/trivl/internal/config"
	"github.com/rudram/trivl/internal/logging"
	"github.com/rudram/trivl/internal/opentdb"
)

var rootCmd = &cobra.Command{
	Use:   "trivl",
	Short: "Terminal trivia quiz",
	Long:  "Trivl — a terminal trivia quiz that pulls multiple-choice questions from the Open Trivia Database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Int("amount", 0, "Questions per round (overrides config)")
	rootCmd.PersistentFlags().Int("category", -1, "Category ID (overrides config, 0 for any)")
	rootCmd.PersistentFlags().String("difficulty", "", "easy, medium or hard (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	req, err := buildRequest(cmd, cfg)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = log.Sync() }()

	client := opentdb.NewClient(cfg.API.BaseURL,
		opentdb.WithTimeout(cfg.API.Timeout),
		opentdb.WithLogger(log),
	)

	return app.Run(app.Options{
		Client:  client,
		Request: req,
		Logger:  log,
	})
}

// buildRequest merges config values with any flag overrides.
func buildRequest(cmd *cobra.Command, cfg *config.Config) (opentdb.BatchRequest, error) {
	difficulty, err := cfg.Quiz.ParsedDifficulty()
	if err != nil {
		return opentdb.BatchRequest{}, err
	}
	req := opentdb.BatchRequest{
		Amount:     cfg.Quiz.Amount,
		Category:   cfg.Quiz.Category,
		Difficulty: difficulty,
	}

	if v, _ := cmd.Flags().GetInt("amount"); v > 0 {
		if v > config.MaxAmount {
			return req, fmt.Errorf("amount must be at most %d, got %d", config.MaxAmount, v)
		}
		req.Amount = v
	}
	if v, _ := cmd.Flags().GetInt("category"); v >= 0 {
		req.Category = v
	}
	if v, _ := cmd.Flags().GetString("difficulty"); v != "" {
		d, err := opentdb.ParseDifficulty(v)
		if err != nil {
			return req, err
		}
		req.Difficulty = d
	}

	return req, nil
}

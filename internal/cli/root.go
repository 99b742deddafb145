// Package cli defines the cobra command tree for the review analyzer server.
package cli

import (
	"fmt"

	"github.com/review-analyzer-api/internal/config"
	"github.com/review-analyzer-api/internal/database"
	"github.com/review-analyzer-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Running it without a subcommand
// starts the HTTP server.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "review-analyzer",
		Short:         "Serve customer reviews ranked by sentiment",
		Long:          "An HTTP API over customer reviews: submit new reviews and query existing ones by location and date, ranked by VADER sentiment.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
	)

	return root
}

// loadEnvironment reads configuration and builds the process logger
func loadEnvironment() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Format), nil
}

// openDatabase connects using the DB_* settings regardless of REVIEWS_SOURCE
func openDatabase(cfg *config.Config, log zerolog.Logger) (*database.DB, error) {
	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

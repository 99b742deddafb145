package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/review-analyzer-api/internal/models"
	"github.com/review-analyzer-api/internal/repository"
	"github.com/review-analyzer-api/internal/service"
	"github.com/review-analyzer-api/internal/store"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var csvPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy reviews from a CSV file into the Postgres reviews table",
		Long:  "Validate every row of a reviews CSV and COPY the valid rows into Postgres, for deployments that load reviews with REVIEWS_SOURCE=postgres.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), cmd.OutOrStdout(), csvPath, asJSON)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file to import (default: REVIEWS_CSV_PATH)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the import report as JSON")

	return cmd
}

func runSeed(ctx context.Context, out io.Writer, csvPath string, asJSON bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, err := loadEnvironment()
	if err != nil {
		return err
	}
	if csvPath == "" {
		csvPath = cfg.Source.CSVPath
	}

	db, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// The store and scorer are unused by seeding
	services := service.NewServices(repository.New(db), store.New(), nil, cfg, log)

	report, err := services.Import.SeedDatabase(ctx, csvPath)
	if err != nil {
		return err
	}
	return printReport(out, report, asJSON)
}

func printReport(out io.Writer, report *models.ImportReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	_, err := fmt.Fprintf(out, "Imported %d of %d reviews from %s (%d rejected, %dms)\n",
		report.SuccessfulCount, report.TotalRecords, report.Location, report.FailedCount, report.DurationMs)
	if err != nil {
		return err
	}
	for _, e := range report.Errors {
		if _, err := fmt.Fprintf(out, "  line %d: %s: %s\n", e.Line, e.Field, e.Message); err != nil {
			return err
		}
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/review-analyzer-api/internal/api"
	"github.com/review-analyzer-api/internal/config"
	"github.com/review-analyzer-api/internal/models"
	"github.com/review-analyzer-api/internal/repository"
	"github.com/review-analyzer-api/internal/sentiment"
	"github.com/review-analyzer-api/internal/service"
	"github.com/review-analyzer-api/internal/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load reviews and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, log, err := loadEnvironment()
	if err != nil {
		return err
	}
	log.Info().Msg("Starting Review Analyzer API server...")

	var repos *repository.Repositories
	if cfg.Source.Kind == models.ImportSourcePostgres {
		db, err := openDatabase(cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		repos = repository.New(db)
	}

	reviewStore := store.New()
	scorer := sentiment.NewVaderScorer()
	services := service.NewServices(repos, reviewStore, scorer, cfg, log)

	// Bulk load before serving
	reviews, err := loadInitialReviews(context.Background(), cfg, services.Import, log)
	if err != nil {
		return err
	}
	reviewStore.LoadInitial(reviews)
	log.Info().Int("reviews", len(reviews)).Msg("Review store initialized")

	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server exited gracefully")
	return nil
}

// loadInitialReviews reads the configured startup source. A missing CSV
// file yields an empty store unless REVIEWS_CSV_REQUIRED is set.
func loadInitialReviews(ctx context.Context, cfg *config.Config, importer service.ImportService, log zerolog.Logger) ([]models.Review, error) {
	switch cfg.Source.Kind {
	case models.ImportSourceCSV:
		reviews, _, err := importer.LoadCSV(ctx, cfg.Source.CSVPath)
		if errors.Is(err, fs.ErrNotExist) && !cfg.Source.CSVRequired {
			log.Warn().Str("path", cfg.Source.CSVPath).Msg("Review file not found, starting with an empty store")
			return []models.Review{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load reviews from %s: %w", cfg.Source.CSVPath, err)
		}
		return reviews, nil

	case models.ImportSourcePostgres:
		reviews, _, err := importer.LoadDatabase(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load reviews from database: %w", err)
		}
		return reviews, nil

	default:
		log.Info().Msg("No review source configured, starting with an empty store")
		return []models.Review{}, nil
	}
}

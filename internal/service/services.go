package service

import (
	"context"
	"time"

	"github.com/review-analyzer-api/internal/config"
	"github.com/review-analyzer-api/internal/models"
	"github.com/review-analyzer-api/internal/repository"
	"github.com/review-analyzer-api/internal/sentiment"
	"github.com/review-analyzer-api/internal/store"
	"github.com/rs/zerolog"
)

// ReviewService defines the interface for the read and write paths
type ReviewService interface {
	Query(ctx context.Context, filter ReviewFilter) ([]models.AnnotatedReview, error)
	Submit(ctx context.Context, fields map[string]interface{}) (*models.Review, error)
	Count(ctx context.Context) (int, error)
}

// ImportService defines the interface for bulk loading reviews
type ImportService interface {
	LoadCSV(ctx context.Context, path string) ([]models.Review, *models.ImportReport, error)
	LoadDatabase(ctx context.Context) ([]models.Review, *models.ImportReport, error)
	SeedDatabase(ctx context.Context, path string) (*models.ImportReport, error)
}

// Services holds all service interfaces
type Services struct {
	Review ReviewService
	Import ImportService
}

// NewServices creates all services. repos may be nil when the process runs
// without a database.
func NewServices(repos *repository.Repositories, st *store.ReviewStore, scorer sentiment.Scorer, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Review: NewReviewService(st, scorer, time.Now, log),
		Import: newImportService(repos, cfg, log),
	}
}

package repository

import (
	"context"

	"github.com/review-analyzer-api/internal/database"
	"github.com/review-analyzer-api/internal/models"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	BatchInsert(ctx context.Context, reviews []*models.Review) (int, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Review) error) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Review ReviewRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Review: NewReviewRepo(db),
	}
}

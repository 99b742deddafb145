package repository

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/review-analyzer-api/internal/database"
	"github.com/review-analyzer-api/internal/models"
)

// reviewRepo is the concrete implementation of ReviewRepository
type reviewRepo struct {
	db *database.DB
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(db *database.DB) ReviewRepository {
	return &reviewRepo{db: db}
}

// BatchInsert inserts multiple reviews using PostgreSQL COPY
func (r *reviewRepo) BatchInsert(ctx context.Context, reviews []*models.Review) (int, error) {
	if len(reviews) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("reviews",
		"review_id", "review_body", "location", "created_at",
	))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, review := range reviews {
		_, err := stmt.ExecContext(ctx,
			review.ID, review.Body, review.Location, review.Timestamp.Time,
		)
		if err != nil {
			return 0, err
		}
	}

	// Execute the COPY
	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(reviews), nil
}

// Count returns the total number of reviews
func (r *reviewRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reviews").Scan(&count)
	return count, err
}

// StreamAll streams all reviews in insertion order
func (r *reviewRepo) StreamAll(ctx context.Context, callback func(*models.Review) error) error {
	query := `SELECT review_id, review_body, location, created_at FROM reviews ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var review models.Review
		var createdAt time.Time
		if err := rows.Scan(&review.ID, &review.Body, &review.Location, &createdAt); err != nil {
			return err
		}
		review.Timestamp = models.NewTimestamp(createdAt)

		if err := callback(&review); err != nil {
			return err
		}
	}

	return rows.Err()
}

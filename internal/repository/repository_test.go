package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/review-analyzer-api/internal/mocks"
	"github.com/review-analyzer-api/internal/models"
)

func newReview(i int) *models.Review {
	return &models.Review{
		ID:        fmt.Sprintf("review-%d", i),
		Body:      fmt.Sprintf("Review number %d", i),
		Location:  "Denver, Colorado",
		Timestamp: models.NewTimestamp(time.Date(2021, 1, i, 12, 0, 0, 0, time.UTC)),
	}
}

func TestMockReviewRepository_BatchInsert(t *testing.T) {
	repo := mocks.NewMockReviewRepository()
	ctx := context.Background()

	batch := []*models.Review{newReview(1), newReview(2), newReview(3)}
	inserted, err := repo.BatchInsert(ctx, batch)
	if err != nil {
		t.Fatalf("BatchInsert failed: %v", err)
	}
	if inserted != 3 {
		t.Errorf("Expected 3 inserted, got %d", inserted)
	}

	// Reusing the batch slice must not alter stored rows
	batch[0].Body = "changed"
	if repo.Reviews[0].Body != "Review number 1" {
		t.Errorf("Stored review aliased caller data: %q", repo.Reviews[0].Body)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected count 3, got %d", count)
	}
}

func TestMockReviewRepository_InsertError(t *testing.T) {
	repo := mocks.NewMockReviewRepository()
	repo.InsertError = errors.New("duplicate key value")

	if _, err := repo.BatchInsert(context.Background(), []*models.Review{newReview(1)}); err == nil {
		t.Error("Expected insert error")
	}
	if len(repo.Reviews) != 0 {
		t.Errorf("Expected nothing stored, got %d", len(repo.Reviews))
	}
	if repo.BatchInsertCalls != 1 {
		t.Errorf("Expected 1 call, got %d", repo.BatchInsertCalls)
	}
}

func TestMockReviewRepository_StreamAll(t *testing.T) {
	repo := mocks.NewMockReviewRepository()
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		repo.BatchInsert(ctx, []*models.Review{newReview(i)})
	}

	var seen []string
	err := repo.StreamAll(ctx, func(r *models.Review) error {
		seen = append(seen, r.ID)
		return nil
	})
	if err != nil {
		t.Fatalf("StreamAll failed: %v", err)
	}
	if len(seen) != 5 || seen[0] != "review-1" || seen[4] != "review-5" {
		t.Errorf("Expected insertion order, got %v", seen)
	}

	stop := errors.New("stop")
	calls := 0
	err = repo.StreamAll(ctx, func(r *models.Review) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Expected callback error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected streaming to stop after 2 rows, got %d", calls)
	}
}

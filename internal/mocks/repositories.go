package mocks

import (
	"context"

	"github.com/review-analyzer-api/internal/models"
	"github.com/review-analyzer-api/internal/repository"
)

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	Reviews          []models.Review
	InsertError      error
	StreamError      error
	BatchInsertCalls int
}

// Verify interface compliance
var _ repository.ReviewRepository = (*MockReviewRepository)(nil)

func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		Reviews: make([]models.Review, 0),
	}
}

func (m *MockReviewRepository) BatchInsert(ctx context.Context, reviews []*models.Review) (int, error) {
	m.BatchInsertCalls++
	if m.InsertError != nil {
		return 0, m.InsertError
	}
	// Copy values; callers reuse their batch slices
	for _, r := range reviews {
		m.Reviews = append(m.Reviews, *r)
	}
	return len(reviews), nil
}

func (m *MockReviewRepository) Count(ctx context.Context) (int, error) {
	return len(m.Reviews), nil
}

func (m *MockReviewRepository) StreamAll(ctx context.Context, callback func(*models.Review) error) error {
	if m.StreamError != nil {
		return m.StreamError
	}
	for i := range m.Reviews {
		review := m.Reviews[i]
		if err := callback(&review); err != nil {
			return err
		}
	}
	return nil
}

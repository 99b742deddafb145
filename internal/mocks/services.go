package mocks

import (
	"context"

	"github.com/review-analyzer-api/internal/models"
	"github.com/review-analyzer-api/internal/service"
)

// MockReviewService is a mock implementation of ReviewService
type MockReviewService struct {
	QueryFunc  func(ctx context.Context, filter service.ReviewFilter) ([]models.AnnotatedReview, error)
	SubmitFunc func(ctx context.Context, fields map[string]interface{}) (*models.Review, error)
	CountValue int
	CountError error
	Filters    []service.ReviewFilter
	Submitted  []map[string]interface{}
}

// Verify interface compliance
var _ service.ReviewService = (*MockReviewService)(nil)

func NewMockReviewService() *MockReviewService {
	return &MockReviewService{
		Filters:   make([]service.ReviewFilter, 0),
		Submitted: make([]map[string]interface{}, 0),
	}
}

func (m *MockReviewService) Query(ctx context.Context, filter service.ReviewFilter) ([]models.AnnotatedReview, error) {
	m.Filters = append(m.Filters, filter)
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, filter)
	}
	return []models.AnnotatedReview{}, nil
}

func (m *MockReviewService) Submit(ctx context.Context, fields map[string]interface{}) (*models.Review, error) {
	m.Submitted = append(m.Submitted, fields)
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, fields)
	}
	return &models.Review{ID: "test-review-id"}, nil
}

func (m *MockReviewService) Count(ctx context.Context) (int, error) {
	return m.CountValue, m.CountError
}

// MockImportService is a mock implementation of ImportService
type MockImportService struct {
	Reviews   []models.Review
	Report    *models.ImportReport
	Err       error
	Seeded    []string
	LoadCalls int
}

// Verify interface compliance
var _ service.ImportService = (*MockImportService)(nil)

func NewMockImportService() *MockImportService {
	return &MockImportService{
		Reviews: make([]models.Review, 0),
		Report:  &models.ImportReport{},
	}
}

func (m *MockImportService) LoadCSV(ctx context.Context, path string) ([]models.Review, *models.ImportReport, error) {
	m.LoadCalls++
	if m.Err != nil {
		return nil, nil, m.Err
	}
	return m.Reviews, m.Report, nil
}

func (m *MockImportService) LoadDatabase(ctx context.Context) ([]models.Review, *models.ImportReport, error) {
	m.LoadCalls++
	if m.Err != nil {
		return nil, nil, m.Err
	}
	return m.Reviews, m.Report, nil
}

func (m *MockImportService) SeedDatabase(ctx context.Context, path string) (*models.ImportReport, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Seeded = append(m.Seeded, path)
	return m.Report, nil
}

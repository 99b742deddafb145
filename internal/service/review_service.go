package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/review-analyzer-api/internal/models"
	"github.com/review-analyzer-api/internal/sentiment"
	"github.com/review-analyzer-api/internal/store"
	"github.com/review-analyzer-api/internal/validation"
	"github.com/rs/zerolog"
)

// InvalidInputError is returned by Submit when the payload fails validation
type InvalidInputError struct {
	Errors []validation.ValidationError
}

func (e *InvalidInputError) Error() string {
	if len(e.Errors) == 0 {
		return "invalid input"
	}
	return fmt.Sprintf("invalid input: %s", e.Errors[0].Message)
}

// reviewService is the concrete implementation of ReviewService
type reviewService struct {
	store  *store.ReviewStore
	scorer sentiment.Scorer
	now    func() time.Time
	log    zerolog.Logger
}

// NewReviewService creates a ReviewService over st. now supplies creation
// timestamps; nil means time.Now.
func NewReviewService(st *store.ReviewStore, scorer sentiment.Scorer, now func() time.Time, log zerolog.Logger) ReviewService {
	if now == nil {
		now = time.Now
	}
	return &reviewService{
		store:  st,
		scorer: scorer,
		now:    now,
		log:    log.With().Str("service", "review").Logger(),
	}
}

// Query filters a snapshot of the store and ranks the matches by sentiment
func (s *reviewService) Query(ctx context.Context, filter ReviewFilter) ([]models.AnnotatedReview, error) {
	snapshot := s.store.Snapshot()
	filtered := FilterReviews(snapshot, filter)

	ranked, err := RankBySentiment(ctx, s.scorer, filtered)
	if err != nil {
		return nil, fmt.Errorf("failed to rank reviews: %w", err)
	}

	s.log.Debug().
		Str("location", filter.Location).
		Int("scanned", len(snapshot)).
		Int("matched", len(ranked)).
		Msg("Reviews queried")

	return ranked, nil
}

// Submit validates fields and appends the resulting review
func (s *reviewService) Submit(ctx context.Context, fields map[string]interface{}) (*models.Review, error) {
	submission, errs := validation.ValidateSubmission(fields)
	if len(errs) > 0 {
		return nil, &InvalidInputError{Errors: errs}
	}

	review := models.Review{
		ID:        uuid.New().String(),
		Body:      submission.Body,
		Location:  submission.Location,
		Timestamp: models.NewTimestamp(s.now()),
	}
	s.store.Append(review)

	s.log.Info().
		Str("review_id", review.ID).
		Str("location", review.Location).
		Msg("Review created")

	return &review, nil
}

// Count returns the number of stored reviews
func (s *reviewService) Count(ctx context.Context) (int, error) {
	return s.store.Len(), nil
}

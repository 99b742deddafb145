package service

import (
	"fmt"
	"time"

	"github.com/review-analyzer-api/internal/models"
)

// ReviewFilter holds the optional read-path predicates. Zero values mean
// "no constraint".
type ReviewFilter struct {
	Location  string
	StartDate *time.Time
	EndDate   *time.Time
}

// DateParseError reports a malformed start_date or end_date
type DateParseError struct {
	Param string
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid %s %q, expected format YYYY-MM-DD", e.Param, e.Value)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// ParseFilter builds a ReviewFilter from raw query values. Empty values are
// treated as absent.
func ParseFilter(location, startDate, endDate string) (ReviewFilter, error) {
	filter := ReviewFilter{Location: location}

	if startDate != "" {
		t, err := time.Parse(models.DateLayout, startDate)
		if err != nil {
			return ReviewFilter{}, &DateParseError{Param: "start_date", Value: startDate, Err: err}
		}
		filter.StartDate = &t
	}

	if endDate != "" {
		t, err := time.Parse(models.DateLayout, endDate)
		if err != nil {
			return ReviewFilter{}, &DateParseError{Param: "end_date", Value: endDate, Err: err}
		}
		filter.EndDate = &t
	}

	return filter, nil
}

// FilterReviews returns the reviews matching every predicate in f, in their
// original order. Date bounds are midnight of the given day and inclusive.
func FilterReviews(reviews []models.Review, f ReviewFilter) []models.Review {
	filtered := make([]models.Review, 0, len(reviews))
	for _, review := range reviews {
		if f.Location != "" && review.Location != f.Location {
			continue
		}
		if f.StartDate != nil && review.Timestamp.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && review.Timestamp.After(*f.EndDate) {
			continue
		}
		filtered = append(filtered, review)
	}
	return filtered
}

package service

import (
	"context"
	"sort"

	"github.com/review-analyzer-api/internal/models"
	"github.com/review-analyzer-api/internal/sentiment"
)

// cancellation is checked every rankCheckInterval scored reviews
const rankCheckInterval = 500

// RankBySentiment scores each review and orders the result by descending
// compound score. Reviews with equal scores keep their input order.
func RankBySentiment(ctx context.Context, scorer sentiment.Scorer, reviews []models.Review) ([]models.AnnotatedReview, error) {
	annotated := make([]models.AnnotatedReview, 0, len(reviews))
	for i, review := range reviews {
		if i%rankCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		annotated = append(annotated, models.AnnotatedReview{
			Review:    review,
			Sentiment: scorer.Score(review.Body),
		})
	}

	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].Sentiment.Compound > annotated[j].Sentiment.Compound
	})

	return annotated, nil
}

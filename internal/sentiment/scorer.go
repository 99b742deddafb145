// Package sentiment scores review text.
package sentiment

import (
	"github.com/jonreiter/govader"
	"github.com/review-analyzer-api/internal/models"
)

// Scorer maps text to polarity scores. Implementations must be safe for
// concurrent use and deterministic for identical input.
type Scorer interface {
	Score(text string) models.Sentiment
}

// VaderScorer scores text with the VADER lexicon
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the VADER lexicon. Loading is relatively slow, so
// build one scorer per process and share it.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements Scorer
func (s *VaderScorer) Score(text string) models.Sentiment {
	scores := s.analyzer.PolarityScores(text)
	return models.Sentiment{
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
		Positive: scores.Positive,
		Compound: scores.Compound,
	}
}

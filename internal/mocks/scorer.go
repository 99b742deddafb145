package mocks

import (
	"sync"

	"github.com/review-analyzer-api/internal/models"
	"github.com/review-analyzer-api/internal/sentiment"
)

// MockScorer returns fixed compound scores per text. Unknown texts score 0.
type MockScorer struct {
	mu     sync.Mutex
	Scores map[string]float64
	Calls  []string
}

// Verify interface compliance
var _ sentiment.Scorer = (*MockScorer)(nil)

func NewMockScorer(scores map[string]float64) *MockScorer {
	if scores == nil {
		scores = make(map[string]float64)
	}
	return &MockScorer{Scores: scores}
}

func (m *MockScorer) Score(text string) models.Sentiment {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, text)

	compound := m.Scores[text]
	s := models.Sentiment{Neutral: 1, Compound: compound}
	switch {
	case compound > 0:
		s.Positive = compound
		s.Neutral = 1 - compound
	case compound < 0:
		s.Negative = -compound
		s.Neutral = 1 + compound
	}
	return s
}

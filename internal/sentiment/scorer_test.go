package sentiment

import (
	"math"
	"sync"
	"testing"
)

func TestVaderScorer_Score(t *testing.T) {
	scorer := NewVaderScorer()

	tests := []struct {
		name         string
		text         string
		wantCompound float64
		wantPositive float64
	}{
		{"positive sentence", "VADER is smart, handsome, and funny.", 0.8316, 0.746},
		{"emphasis raises intensity", "VADER is VERY SMART, handsome, and FUNNY.", 0.9227, 0.754},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.text)
			if math.Abs(got.Compound-tt.wantCompound) > 1e-3 {
				t.Errorf("compound = %v, want %v", got.Compound, tt.wantCompound)
			}
			if math.Abs(got.Positive-tt.wantPositive) > 1e-3 {
				t.Errorf("pos = %v, want %v", got.Positive, tt.wantPositive)
			}
		})
	}
}

func TestVaderScorer_Ranges(t *testing.T) {
	scorer := NewVaderScorer()

	texts := []string{
		"Great service",
		"The food was terrible and the staff was rude.",
		"It was a restaurant.",
		"ok",
	}

	for _, text := range texts {
		got := scorer.Score(text)
		if got.Compound < -1 || got.Compound > 1 {
			t.Errorf("%q: compound %v outside [-1, 1]", text, got.Compound)
		}
		sum := got.Negative + got.Neutral + got.Positive
		if math.Abs(sum-1) > 0.01 {
			t.Errorf("%q: neg+neu+pos = %v, want 1", text, sum)
		}
	}

	if neg := scorer.Score("The food was terrible and the staff was rude."); neg.Compound >= 0 {
		t.Errorf("expected negative compound, got %v", neg.Compound)
	}
}

func TestVaderScorer_Deterministic(t *testing.T) {
	scorer := NewVaderScorer()
	want := scorer.Score("Great service, friendly staff")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := scorer.Score("Great service, friendly staff"); got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		}()
	}
	wg.Wait()
}

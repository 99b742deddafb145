package models

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the canonical wire and storage format for review timestamps
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the format of the start_date / end_date query parameters
const DateLayout = "2006-01-02"

// Timestamp is a wall-clock time with second precision that serializes
// in TimestampLayout
type Timestamp struct {
	time.Time
}

// NewTimestamp keeps the wall-clock fields of t and drops the zone and
// sub-second part, so a formatted and re-parsed value compares equal.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

// ParseTimestamp parses s in TimestampLayout
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{t}, nil
}

// String returns the canonical form
func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// MarshalJSON implements json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Review represents a single customer review
type Review struct {
	ID        string    `json:"ReviewId,omitempty" db:"review_id"`
	Body      string    `json:"ReviewBody" db:"review_body"`
	Location  string    `json:"Location" db:"location"`
	Timestamp Timestamp `json:"Timestamp" db:"created_at"`
}

// Sentiment holds VADER-style polarity scores for a piece of text
type Sentiment struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// AnnotatedReview is a review paired with the sentiment computed for one
// read request. It is never stored.
type AnnotatedReview struct {
	Review
	Sentiment Sentiment `json:"sentiment"`
}

// ReviewCSV represents a review row from the bulk source before validation
type ReviewCSV struct {
	ID        string `csv:"ReviewId"`
	Body      string `csv:"ReviewBody"`
	Location  string `csv:"Location"`
	Timestamp string `csv:"Timestamp"`
}

// ValidLocations is the closed set of locations accepted on submission
var ValidLocations = map[string]bool{
	"Albuquerque, New Mexico":    true,
	"Carlsbad, California":       true,
	"Chula Vista, California":    true,
	"Colorado Springs, Colorado": true,
	"Denver, Colorado":           true,
	"El Cajon, California":       true,
	"El Paso, Texas":             true,
	"Escondido, California":      true,
	"Fresno, California":         true,
	"La Mesa, California":        true,
	"Las Vegas, Nevada":          true,
	"Los Angeles, California":    true,
	"Oceanside, California":      true,
	"Phoenix, Arizona":           true,
	"Sacramento, California":     true,
	"Salt Lake City, Utah":       true,
	"San Diego, California":      true,
	"Tucson, Arizona":            true,
}

// Payload field names shared by JSON and form-encoded submissions
const (
	FieldReviewBody = "ReviewBody"
	FieldLocation   = "Location"
)

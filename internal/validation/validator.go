package validation

import (
	"fmt"
	"strings"

	"github.com/review-analyzer-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Submission is a payload that passed validation
type Submission struct {
	Body     string
	Location string
}

// ValidateSubmission checks a decoded POST payload. Required fields are
// checked first; the location enumeration only once a location is present.
func ValidateSubmission(fields map[string]interface{}) (*Submission, []ValidationError) {
	var errors []ValidationError

	body, ok := stringField(fields, models.FieldReviewBody)
	if !ok {
		errors = append(errors, ValidationError{Field: models.FieldReviewBody, Message: "ReviewBody is required", Value: fields[models.FieldReviewBody]})
	}

	location, ok := stringField(fields, models.FieldLocation)
	if !ok {
		errors = append(errors, ValidationError{Field: models.FieldLocation, Message: "Location is required", Value: fields[models.FieldLocation]})
	}
	if len(errors) > 0 {
		return nil, errors
	}

	if !models.ValidLocations[location] {
		return nil, []ValidationError{{
			Field:   models.FieldLocation,
			Message: "Location is not a supported location",
			Value:   location,
		}}
	}

	return &Submission{Body: body, Location: location}, nil
}

// stringField returns a non-empty string value for key. Values of any other
// JSON type count as missing.
func stringField(fields map[string]interface{}, key string) (string, bool) {
	s, ok := fields[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Validator validates bulk-loaded rows and tracks ids seen in the current load
type Validator struct {
	reviewIDCache map[string]bool
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		reviewIDCache: make(map[string]bool),
	}
}

// AddReviewID adds an id to the uniqueness cache
func (v *Validator) AddReviewID(id string) {
	if id != "" {
		v.reviewIDCache[id] = true
	}
}

// ValidateImported validates a row from the bulk source. Locations are
// trusted as-is; only the store invariants (body, timestamp) and id
// uniqueness are enforced.
func (v *Validator) ValidateImported(row *models.ReviewCSV, lineNum int) []ValidationError {
	var errors []ValidationError

	if row.ID != "" && v.reviewIDCache[row.ID] {
		errors = append(errors, ValidationError{Field: "ReviewId", Message: "duplicate ReviewId", Value: row.ID})
	}

	if strings.TrimSpace(row.Body) == "" {
		errors = append(errors, ValidationError{Field: "ReviewBody", Message: "ReviewBody is required"})
	}

	if row.Timestamp == "" {
		errors = append(errors, ValidationError{Field: "Timestamp", Message: "Timestamp is required"})
	} else if _, err := models.ParseTimestamp(row.Timestamp); err != nil {
		errors = append(errors, ValidationError{
			Field:   "Timestamp",
			Message: fmt.Sprintf("invalid timestamp format, expected %s", models.TimestampLayout),
			Value:   row.Timestamp,
		})
	}

	return errors
}

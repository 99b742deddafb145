package models

import (
	"time"
)

// ImportSource identifies where the startup records are read from
type ImportSource string

const (
	ImportSourceCSV      ImportSource = "csv"
	ImportSourcePostgres ImportSource = "postgres"
	ImportSourceNone     ImportSource = "none"
)

// ValidImportSources defines the accepted REVIEWS_SOURCE values
var ValidImportSources = map[ImportSource]bool{
	ImportSourceCSV:      true,
	ImportSourcePostgres: true,
	ImportSourceNone:     true,
}

// ValidationError represents a single rejected field in a bulk row
type ValidationError struct {
	Line    int         `json:"line"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ImportReport summarizes one bulk load
type ImportReport struct {
	Source          ImportSource      `json:"source"`
	Location        string            `json:"location,omitempty"` // file path or table name
	TotalRecords    int               `json:"total_records"`
	SuccessfulCount int               `json:"successful"`
	FailedCount     int               `json:"failed"`
	DurationMs      int64             `json:"duration_ms"`
	RowsPerSec      float64           `json:"rows_per_sec,omitempty"`
	Errors          []ValidationError `json:"errors,omitempty"`
	StartedAt       time.Time         `json:"started_at"`
	CompletedAt     time.Time         `json:"completed_at"`
}

// Finish stamps completion time and throughput
func (r *ImportReport) Finish() {
	r.CompletedAt = time.Now()
	duration := r.CompletedAt.Sub(r.StartedAt)
	r.DurationMs = duration.Milliseconds()
	if r.TotalRecords > 0 && duration.Seconds() > 0 {
		r.RowsPerSec = float64(r.TotalRecords) / duration.Seconds()
	}
}

// ErrorRate returns the failed share of rows as a percentage
func (r *ImportReport) ErrorRate() float64 {
	if r.TotalRecords == 0 {
		return 0
	}
	return float64(r.FailedCount) / float64(r.TotalRecords) * 100
}

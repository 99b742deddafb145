package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/review-analyzer-api/internal/config"
	"github.com/review-analyzer-api/internal/models"
	"github.com/review-analyzer-api/internal/repository"
	"github.com/review-analyzer-api/internal/validation"
	"github.com/rs/zerolog"
)

// ErrNoRepository is returned by database-backed operations when the
// service was built without a database connection
var ErrNoRepository = errors.New("no review repository configured")

// Cap on row errors kept in a report; counts stay exact past it
const maxReportErrors = 1000

// CSV column names, matched case-insensitively
const (
	colReviewID   = "reviewid"
	colReviewBody = "reviewbody"
	colLocation   = "location"
	colTimestamp  = "timestamp"
)

// importService is the concrete implementation of ImportService
type importService struct {
	repos *repository.Repositories
	cfg   *config.Config
	log   zerolog.Logger
}

// newImportService creates a new ImportService. repos may be nil when no
// database is configured.
func newImportService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *importService {
	return &importService{
		repos: repos,
		cfg:   cfg,
		log:   log.With().Str("service", "import").Logger(),
	}
}

// LoadCSV reads and validates every row of the CSV file at path. Rejected
// rows are counted in the report and left out of the result.
func (s *importService) LoadCSV(ctx context.Context, path string) ([]models.Review, *models.ImportReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open review file: %w", err)
	}
	defer file.Close()

	report := &models.ImportReport{
		Source:    models.ImportSourceCSV,
		Location:  path,
		StartedAt: time.Now(),
	}

	reviews, err := s.readCSV(ctx, file, report)
	if err != nil {
		return nil, nil, err
	}

	report.Finish()
	s.logReport(report)
	return reviews, report, nil
}

func (s *importService) readCSV(ctx context.Context, r io.Reader, report *models.ImportReport) ([]models.Review, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	validator := validation.NewValidator()

	// Read header
	header, err := reader.Read()
	if err == io.EOF {
		return []models.Review{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	headerMap := make(map[string]int)
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		headerMap[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colReviewBody, colTimestamp} {
		if _, ok := headerMap[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing required column %q", required)
		}
	}

	reviews := make([]models.Review, 0)
	lineNum := 1 // header

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		report.TotalRecords++

		// Respect context cancellation for large files
		if lineNum%10000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		if err != nil {
			report.FailedCount++
			addReportError(report, models.ValidationError{Line: lineNum, Field: "row", Message: err.Error()})
			continue
		}

		row := &models.ReviewCSV{
			ID:        getField(record, headerMap, colReviewID),
			Body:      getField(record, headerMap, colReviewBody),
			Location:  getField(record, headerMap, colLocation),
			Timestamp: getField(record, headerMap, colTimestamp),
		}

		if review, ok := s.admit(validator, row, lineNum, report); ok {
			reviews = append(reviews, review)
		}
	}

	return reviews, nil
}

// LoadDatabase streams every row of the reviews table through the same
// validation as CSV rows
func (s *importService) LoadDatabase(ctx context.Context) ([]models.Review, *models.ImportReport, error) {
	if s.repos == nil || s.repos.Review == nil {
		return nil, nil, ErrNoRepository
	}

	report := &models.ImportReport{
		Source:    models.ImportSourcePostgres,
		Location:  "reviews",
		StartedAt: time.Now(),
	}
	validator := validation.NewValidator()
	reviews := make([]models.Review, 0)
	lineNum := 0

	err := s.repos.Review.StreamAll(ctx, func(stored *models.Review) error {
		lineNum++
		report.TotalRecords++
		row := &models.ReviewCSV{
			ID:        stored.ID,
			Body:      stored.Body,
			Location:  stored.Location,
			Timestamp: stored.Timestamp.String(),
		}
		if review, ok := s.admit(validator, row, lineNum, report); ok {
			reviews = append(reviews, review)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stream reviews: %w", err)
	}

	report.Finish()
	s.logReport(report)
	return reviews, report, nil
}

// SeedDatabase loads the CSV at path and copies the valid rows into the
// reviews table in batches. Rows without an id are given one.
func (s *importService) SeedDatabase(ctx context.Context, path string) (*models.ImportReport, error) {
	if s.repos == nil || s.repos.Review == nil {
		return nil, ErrNoRepository
	}

	reviews, report, err := s.LoadCSV(ctx, path)
	if err != nil {
		return nil, err
	}

	batchSize := s.cfg.Import.BatchSize
	batch := make([]*models.Review, 0, batchSize)
	inserted := 0

	flush := func() error {
		n, err := s.repos.Review.BatchInsert(ctx, batch)
		if err != nil {
			return fmt.Errorf("failed to insert batch at row %d: %w", inserted, err)
		}
		inserted += n
		batch = batch[:0]
		return nil
	}

	for i := range reviews {
		if reviews[i].ID == "" {
			reviews[i].ID = uuid.New().String()
		}
		batch = append(batch, &reviews[i])
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return report, err
			}
		}
	}
	if len(batch) > 0 {
		if err := flush(); err != nil {
			return report, err
		}
	}

	s.log.Info().
		Str("file", path).
		Int("inserted", inserted).
		Msg("Reviews seeded into database")

	return report, nil
}

// admit validates row and converts it, recording failures in report
func (s *importService) admit(validator *validation.Validator, row *models.ReviewCSV, lineNum int, report *models.ImportReport) (models.Review, bool) {
	errs := validator.ValidateImported(row, lineNum)
	if len(errs) > 0 {
		report.FailedCount++
		for _, e := range errs {
			addReportError(report, models.ValidationError{
				Line:    lineNum,
				Field:   e.Field,
				Message: e.Message,
				Value:   e.Value,
			})
		}
		return models.Review{}, false
	}

	validator.AddReviewID(row.ID)
	report.SuccessfulCount++
	return convertCSVToReview(row), true
}

func (s *importService) logReport(report *models.ImportReport) {
	event := s.log.Info()
	if report.FailedCount > 0 {
		event = s.log.Warn()
	}
	event.
		Str("source", string(report.Source)).
		Str("location", report.Location).
		Int("total", report.TotalRecords).
		Int("successful", report.SuccessfulCount).
		Int("failed", report.FailedCount).
		Float64("error_rate_pct", report.ErrorRate()).
		Int64("duration_ms", report.DurationMs).
		Float64("rows_per_sec", report.RowsPerSec).
		Msg("Review import completed")

	for _, e := range report.Errors {
		s.log.Debug().
			Int("line", e.Line).
			Str("field", e.Field).
			Interface("value", e.Value).
			Msg(e.Message)
	}
}

func addReportError(report *models.ImportReport, e models.ValidationError) {
	if len(report.Errors) < maxReportErrors {
		report.Errors = append(report.Errors, e)
	}
}

func getField(record []string, headerMap map[string]int, field string) string {
	if idx, ok := headerMap[field]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

// convertCSVToReview expects a row that passed ValidateImported
func convertCSVToReview(row *models.ReviewCSV) models.Review {
	ts, _ := models.ParseTimestamp(row.Timestamp)
	return models.Review{
		ID:        row.ID,
		Body:      row.Body,
		Location:  row.Location,
		Timestamp: ts,
	}
}

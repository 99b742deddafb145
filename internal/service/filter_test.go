package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/review-analyzer-api/internal/models"
	"github.com/review-analyzer-api/internal/service"
)

func ts(t *testing.T, s string) models.Timestamp {
	t.Helper()
	parsed, err := models.ParseTimestamp(s)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return parsed
}

func fixtureReviews(t *testing.T) []models.Review {
	return []models.Review{
		{ID: "r1", Body: "one", Location: "Denver, Colorado", Timestamp: ts(t, "2021-01-01 08:00:00")},
		{ID: "r2", Body: "two", Location: "Tucson, Arizona", Timestamp: ts(t, "2021-01-05 00:00:00")},
		{ID: "r3", Body: "three", Location: "Denver, Colorado", Timestamp: ts(t, "2021-01-05 12:30:00")},
		{ID: "r4", Body: "four", Location: "Mars", Timestamp: ts(t, "2021-02-01 23:59:59")},
		{ID: "r5", Body: "five", Location: "denver, colorado", Timestamp: ts(t, "2021-03-01 10:00:00")},
	}
}

func ids(reviews []models.Review) []string {
	out := make([]string, len(reviews))
	for i, r := range reviews {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name      string
		location  string
		start     string
		end       string
		wantStart bool
		wantEnd   bool
		wantParam string
	}{
		{name: "no parameters"},
		{name: "location only", location: "Denver, Colorado"},
		{name: "both dates", start: "2021-01-01", end: "2021-01-31", wantStart: true, wantEnd: true},
		{name: "start only", start: "2021-01-01", wantStart: true},
		{name: "end only", end: "2021-01-31", wantEnd: true},
		{name: "malformed start", start: "01/01/2021", wantParam: "start_date"},
		{name: "malformed end", start: "2021-01-01", end: "2021-13-45", wantParam: "end_date"},
		{name: "datetime is not a date", end: "2021-01-31 10:00:00", wantParam: "end_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := service.ParseFilter(tt.location, tt.start, tt.end)

			if tt.wantParam != "" {
				var dateErr *service.DateParseError
				if !errors.As(err, &dateErr) {
					t.Fatalf("Expected DateParseError, got %v", err)
				}
				if dateErr.Param != tt.wantParam {
					t.Errorf("Expected param %s, got %s", tt.wantParam, dateErr.Param)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if filter.Location != tt.location {
				t.Errorf("Expected location %q, got %q", tt.location, filter.Location)
			}
			if (filter.StartDate != nil) != tt.wantStart {
				t.Errorf("StartDate set = %v, want %v", filter.StartDate != nil, tt.wantStart)
			}
			if (filter.EndDate != nil) != tt.wantEnd {
				t.Errorf("EndDate set = %v, want %v", filter.EndDate != nil, tt.wantEnd)
			}
		})
	}
}

func TestFilterReviews(t *testing.T) {
	reviews := fixtureReviews(t)

	tests := []struct {
		name     string
		location string
		start    string
		end      string
		want     []string
	}{
		{name: "no filter keeps order", want: []string{"r1", "r2", "r3", "r4", "r5"}},
		{name: "exact location match", location: "Denver, Colorado", want: []string{"r1", "r3"}},
		{name: "location is case sensitive", location: "denver, colorado", want: []string{"r5"}},
		{name: "unknown location is empty", location: "Boise, Idaho", want: []string{}},
		{name: "out-of-enumeration bulk location is returned", location: "Mars", want: []string{"r4"}},
		{name: "start bound inclusive at midnight", start: "2021-01-05", want: []string{"r2", "r3", "r4", "r5"}},
		{name: "end bound is midnight of the day", end: "2021-01-05", want: []string{"r1", "r2"}},
		{name: "both bounds", start: "2021-01-02", end: "2021-02-02", want: []string{"r2", "r3", "r4"}},
		{name: "inverted bounds match nothing", start: "2021-02-01", end: "2021-01-01", want: []string{}},
		{name: "location and dates combine", location: "Denver, Colorado", start: "2021-01-02", want: []string{"r3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := service.ParseFilter(tt.location, tt.start, tt.end)
			if err != nil {
				t.Fatalf("ParseFilter: %v", err)
			}
			got := service.FilterReviews(reviews, filter)
			if got == nil {
				t.Fatal("Expected non-nil result")
			}
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, ids(got))
			}
		})
	}
}

func TestFilterReviews_DoesNotMutateInput(t *testing.T) {
	reviews := fixtureReviews(t)
	before := ids(reviews)

	start := time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC)
	service.FilterReviews(reviews, service.ReviewFilter{StartDate: &start})

	if !equalIDs(before, ids(reviews)) {
		t.Errorf("Input reordered: %v", ids(reviews))
	}
}

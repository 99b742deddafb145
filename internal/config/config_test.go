package config

import (
	"strings"
	"testing"
	"time"

	"github.com/review-analyzer-api/internal/models"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "REVIEWS_SOURCE", "REVIEWS_CSV_PATH", "MAX_BODY_BYTES", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Expected default port 8000, got %s", cfg.Server.Port)
	}
	if cfg.Source.Kind != models.ImportSourceCSV {
		t.Errorf("Expected csv source, got %s", cfg.Source.Kind)
	}
	if cfg.Source.CSVPath != "data/reviews.csv" {
		t.Errorf("Expected default CSV path, got %s", cfg.Source.CSVPath)
	}
	if cfg.Server.MaxBodyBytes != 1024*1024 {
		t.Errorf("Expected 1MB body limit, got %d", cfg.Server.MaxBodyBytes)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected info log level, got %s", cfg.Log.Level)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REVIEWS_SOURCE", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("IMPORT_BATCH_SIZE", "250")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Source.Kind != models.ImportSourcePostgres {
		t.Errorf("Expected postgres source, got %s", cfg.Source.Kind)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("Expected 5s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Import.BatchSize != 250 {
		t.Errorf("Expected batch size 250, got %d", cfg.Import.BatchSize)
	}
	if !strings.Contains(cfg.Database.GetDSN(), "host=db.internal") {
		t.Errorf("Expected DSN to contain host, got %s", cfg.Database.GetDSN())
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8000", MaxBodyBytes: 1024},
			Source:   SourceConfig{Kind: models.ImportSourceCSV, CSVPath: "data/reviews.csv"},
			Database: DatabaseConfig{Host: "localhost", Name: "reviews"},
			Import:   ImportConfig{BatchSize: 100},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid csv config", func(c *Config) {}, ""},
		{"unknown source", func(c *Config) { c.Source.Kind = "s3" }, "REVIEWS_SOURCE must be one of"},
		{"csv without path", func(c *Config) { c.Source.CSVPath = "" }, "REVIEWS_CSV_PATH is required"},
		{"postgres without host", func(c *Config) {
			c.Source.Kind = models.ImportSourcePostgres
			c.Database.Host = ""
		}, "DB_HOST is required"},
		{"none ignores database", func(c *Config) {
			c.Source.Kind = models.ImportSourceNone
			c.Database.Host = ""
		}, ""},
		{"zero body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "MAX_BODY_BYTES"},
		{"zero batch size", func(c *Config) { c.Import.BatchSize = 0 }, "IMPORT_BATCH_SIZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

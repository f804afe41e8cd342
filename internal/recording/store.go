// Package recording persists raw Podcast Index API responses so
// schema validation can replay them offline, without touching the
// live API.
package recording

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Response is one recorded API exchange. RunID groups the responses
// captured during a single validation run.
type Response struct {
	ID         uint   `gorm:"primarykey"`
	RunID      string `gorm:"index;not null"`
	Endpoint   string `gorm:"index;not null"`
	Query      string
	StatusCode int
	Body       []byte
	CreatedAt  time.Time
}

// Store wraps the recordings database.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) a recordings database at dbPath and
// migrates the schema.
func Open(dbPath string, verbose bool) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create recordings directory: %w", err)
		}
	}

	logLevel := logger.Error
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open recordings database: %w", err)
	}

	if err := db.AutoMigrate(&Response{}); err != nil {
		return nil, fmt.Errorf("migrating recordings schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working.
func (s *Store) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("recordings database ping failed: %w", err)
	}
	return nil
}

// Save persists one recorded response.
func (s *Store) Save(resp *Response) error {
	if err := s.db.Create(resp).Error; err != nil {
		return fmt.Errorf("saving recorded response: %w", err)
	}
	return nil
}

// ListByRun returns every response recorded under a run ID, oldest
// first.
func (s *Store) ListByRun(runID string) ([]Response, error) {
	var responses []Response
	err := s.db.Where("run_id = ?", runID).Order("created_at asc, id asc").Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("listing recorded responses: %w", err)
	}
	return responses, nil
}

// Runs returns the distinct run IDs present in the store, most recent
// first.
func (s *Store) Runs() ([]string, error) {
	var runs []string
	err := s.db.Model(&Response{}).
		Select("run_id").
		Group("run_id").
		Order("MAX(created_at) DESC").
		Pluck("run_id", &runs).Error
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

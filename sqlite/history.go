package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/docbuzz/docbuzz"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docbuzz.CrawlHistory = (*HistoryService)(nil)

// HistoryService implements docbuzz.CrawlHistory using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// RecordRun persists a completed crawl run, assigning it a fresh ID.
func (s *HistoryService) RecordRun(ctx context.Context, run *docbuzz.CrawlRun) error {
	run.ID = uuid.New().String()
	if err := run.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawls (id, seed_url, scraped_at, total_pages, duration_ms)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.SeedURL, run.ScrapedAt.UTC().Format(time.RFC3339),
		run.TotalPages, run.Duration.Milliseconds())

	return err
}

// ListRuns returns all recorded runs, most recent first.
func (s *HistoryService) ListRuns(ctx context.Context) ([]*docbuzz.CrawlRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seed_url, scraped_at, total_pages, duration_ms
		FROM crawls
		ORDER BY scraped_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*docbuzz.CrawlRun
	for rows.Next() {
		var run docbuzz.CrawlRun
		var scrapedAt string
		var durationMS int64

		if err := rows.Scan(&run.ID, &run.SeedURL, &scrapedAt, &run.TotalPages, &durationMS); err != nil {
			return nil, err
		}

		run.ScrapedAt, err = time.Parse(time.RFC3339, scrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scraped_at: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

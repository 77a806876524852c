package docbuzz

import (
	"context"
	"time"
)

// CrawlRun records one completed crawl for history purposes.
type CrawlRun struct {
	ID         string        `json:"id"`
	SeedURL    string        `json:"seedUrl"`
	ScrapedAt  time.Time     `json:"scrapedAt"`
	TotalPages int           `json:"totalPages"`
	Duration   time.Duration `json:"duration"`
}

// Validate returns an error if the run contains invalid fields.
func (r *CrawlRun) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "crawl run ID required")
	}
	if r.SeedURL == "" {
		return Errorf(EINVALID, "crawl run seed URL required")
	}
	return nil
}

// CrawlHistory stores completed crawl runs.
type CrawlHistory interface {
	// RecordRun persists a completed run.
	RecordRun(ctx context.Context, run *CrawlRun) error

	// ListRuns returns all recorded runs, most recent first.
	ListRuns(ctx context.Context) ([]*CrawlRun, error)
}

package docbuzz

import (
	"context"
	"time"
)

// MinContentLength is the minimum content length (in bytes) for a page to
// be included in the final dataset. Shorter pages are discarded as noise.
const MinContentLength = 50

// FetchErrorKind classifies per-fetch failures.
type FetchErrorKind string

// Fetch failure kinds.
const (
	FetchNotFound FetchErrorKind = "not_found"
	FetchTimeout  FetchErrorKind = "timeout"
	FetchOther    FetchErrorKind = "other"
)

// FetchError records why a page could not be fetched. Fetch failures are
// data, not control flow: they live on the PageRecord and never abort a
// crawl.
type FetchError struct {
	Kind    FetchErrorKind `json:"kind"`
	Message string         `json:"message,omitempty"`
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Message
}

// PageRecord represents one fetched documentation page.
//
// Invariant: a record with a non-nil Err has empty Content.
type PageRecord struct {
	// URL is the canonical absolute URL, unique within a crawl.
	URL string `json:"url"`

	// Title is the extracted page title; may be empty.
	Title string `json:"title,omitempty"`

	// Content is the cleaned, whitespace-normalized main-content text.
	Content string `json:"content"`

	// Links are same-site absolute URLs discovered in the page, in
	// document order. Duplicates are preserved.
	Links []string `json:"nav_links,omitempty"`

	// ContentHash is a hash of Content, used for change detection
	// between crawls.
	ContentHash string `json:"content_hash,omitempty"`

	// FetchedAt is the time of a successful fetch.
	FetchedAt time.Time `json:"fetched_at,omitempty"`

	// Err is set when the fetch failed; mutually exclusive with Content.
	Err *FetchError `json:"error,omitempty"`

	// ContentHTML is the selected main-content region as HTML. It is kept
	// in memory for markdown export and never persisted.
	ContentHTML string `json:"-"`
}

// Qualifies reports whether the record belongs in the final dataset:
// a successful fetch with at least MinContentLength bytes of content.
func (p *PageRecord) Qualifies() bool {
	return p.Err == nil && len(p.Content) >= MinContentLength
}

// PageFetcher retrieves a single page.
type PageFetcher interface {
	// Fetch retrieves the page at url. It never returns an error: all
	// failure paths produce a valid PageRecord with Err set and empty
	// Content. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) *PageRecord

	// Close releases fetcher resources (browser processes, connections).
	Close() error
}

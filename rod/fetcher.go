package rod

import (
	"context"
	"errors"
	"time"

	"github.com/docbuzz/docbuzz"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultPageTimeout bounds a single render, navigation included.
const DefaultPageTimeout = 30 * time.Second

// Ensure Fetcher implements docbuzz.PageFetcher at compile time.
var _ docbuzz.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation and extracts page content from the result. It reports
// failures on the returned record rather than as errors, matching the
// crawl pipeline's contract.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager   *BrowserManager
	extractor docbuzz.Extractor
	timeout   time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithPageTimeout sets the per-page render timeout.
func WithPageTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher launches a headless Chrome browser and returns a Fetcher
// that renders pages before extracting content with extractor. Close must
// be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(extractor docbuzz.Extractor, opts ...Option) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	f := &Fetcher{
		manager:   manager,
		extractor: extractor,
		timeout:   DefaultPageTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL, waits for the page to render, and extracts
// its content.
func (f *Fetcher) Fetch(ctx context.Context, url string) *docbuzz.PageRecord {
	rec := &docbuzz.PageRecord{URL: url}

	rendered, err := f.render(ctx, url)
	if err != nil {
		rec.Err = classifyErr(err)
		return rec
	}
	f.manager.IncrementPageCount()

	result, err := f.extractor.Extract(rendered, url)
	if err != nil {
		rec.Err = &docbuzz.FetchError{
			Kind:    docbuzz.FetchOther,
			Message: "extracting content: " + err.Error(),
		}
		return rec
	}

	rec.Title = result.Title
	rec.Content = result.Text
	rec.ContentHTML = result.ContentHTML
	rec.Links = result.Links
	rec.FetchedAt = time.Now()
	return rec
}

// render loads the URL in a fresh page and returns the post-load HTML.
func (f *Fetcher) render(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

func classifyErr(err error) *docbuzz.FetchError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &docbuzz.FetchError{
			Kind:    docbuzz.FetchTimeout,
			Message: "request timed out",
		}
	}
	return &docbuzz.FetchError{
		Kind:    docbuzz.FetchOther,
		Message: err.Error(),
	}
}

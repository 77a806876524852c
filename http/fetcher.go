// Package http provides HTTP-based implementations of docbuzz.PageFetcher
// and docbuzz.SitemapSource for static documentation sites.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/docbuzz/docbuzz"
)

// Default timeouts for page fetches.
const (
	// DefaultConnectTimeout bounds connection establishment.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultRequestTimeout bounds the whole request, body included.
	DefaultRequestTimeout = 30 * time.Second
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Ensure Fetcher implements docbuzz.PageFetcher at compile time.
var _ docbuzz.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves documentation pages over HTTP and delegates successful
// responses to a content extractor. It never returns errors past its
// boundary: every failure path yields a PageRecord with Err set.
type Fetcher struct {
	client         *http.Client
	extractor      docbuzz.Extractor
	userAgent      string
	connectTimeout time.Duration
	requestTimeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRequestTimeout sets the total-request timeout.
func WithRequestTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.requestTimeout = d }
}

// WithConnectTimeout sets the connection-establishment timeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.connectTimeout = d }
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// NewFetcher creates a new Fetcher that extracts content with the given
// extractor.
func NewFetcher(extractor docbuzz.Extractor, opts ...Option) *Fetcher {
	f := &Fetcher{
		extractor:      extractor,
		userAgent:      defaultUserAgent,
		connectTimeout: DefaultConnectTimeout,
		requestTimeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: f.connectTimeout}).DialContext,
		},
	}

	return f
}

// Fetch retrieves the page at url and returns a PageRecord. HTTP 404
// short-circuits to a NotFound record; timeouts classify as Timeout; any
// other transport, status, or parse failure classifies as Other.
func (f *Fetcher) Fetch(ctx context.Context, url string) *docbuzz.PageRecord {
	rec := &docbuzz.PageRecord{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		rec.Err = classifyErr(err)
		return rec
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		rec.Err = classifyErr(err)
		return rec
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		rec.Err = &docbuzz.FetchError{Kind: docbuzz.FetchNotFound, Message: "404 Not Found"}
		return rec
	}
	if resp.StatusCode != http.StatusOK {
		rec.Err = &docbuzz.FetchError{
			Kind:    docbuzz.FetchOther,
			Message: fmt.Sprintf("HTTP %d for %s", resp.StatusCode, url),
		}
		return rec
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		rec.Err = classifyErr(err)
		return rec
	}

	extracted, err := f.extractor.Extract(string(body), url)
	if err != nil {
		rec.Err = &docbuzz.FetchError{Kind: docbuzz.FetchOther, Message: err.Error()}
		return rec
	}

	rec.Title = extracted.Title
	rec.Content = extracted.Text
	rec.ContentHTML = extracted.ContentHTML
	rec.Links = extracted.Links
	rec.FetchedAt = time.Now()
	return rec
}

// Close releases resources. A no-op for the HTTP fetcher.
func (f *Fetcher) Close() error {
	return nil
}

// classifyErr maps a transport error onto the fetch error taxonomy.
// Connect and total-request deadline violations both classify as Timeout.
func classifyErr(err error) *docbuzz.FetchError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &docbuzz.FetchError{Kind: docbuzz.FetchTimeout, Message: "request timed out"}
	}
	return &docbuzz.FetchError{Kind: docbuzz.FetchOther, Message: err.Error()}
}

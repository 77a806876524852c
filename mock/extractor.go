package mock

import "github.com/docbuzz/docbuzz"

var _ docbuzz.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docbuzz.Extractor.
type Extractor struct {
	ExtractFn func(html string, baseURL string) (*docbuzz.ExtractResult, error)
}

func (e *Extractor) Extract(html string, baseURL string) (*docbuzz.ExtractResult, error) {
	return e.ExtractFn(html, baseURL)
}

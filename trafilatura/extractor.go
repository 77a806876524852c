// Package trafilatura provides a content extractor backed by the
// go-trafilatura readability engine. Compared to the selector-based
// extractor it needs no knowledge of a site's markup, at the cost of less
// predictable boundaries around code blocks and tables.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/docbuzz/docbuzz"
	docgoquery "github.com/docbuzz/docbuzz/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docbuzz.Extractor at compile time.
var _ docbuzz.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title, main content text
// and HTML, and same-site links resolved against baseURL.
func (e *Extractor) Extract(rawHTML, baseURL string) (*docbuzz.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docbuzz.Errorf(docbuzz.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	// Link mining works on the full document, not the extracted region:
	// navigation links are exactly what discovery needs.
	links, err := docgoquery.ExtractLinks(rawHTML, baseURL)
	if err != nil {
		return nil, err
	}

	return &docbuzz.ExtractResult{
		Title:       result.Metadata.Title,
		Text:        result.ContentText,
		ContentHTML: contentHTML,
		Links:       links,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Package goquery provides a CSS-selector-based implementation of
// docbuzz.Extractor for documentation pages.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/docbuzz/docbuzz"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docbuzz.Extractor at compile time.
var _ docbuzz.Extractor = (*Extractor)(nil)

// contentSelectors is the ordered candidate chain for the main content
// region. Selectors are tried in priority order; the first match wins, and
// the document body is the fallback when none match.
var contentSelectors = []string{
	"main",
	".content",
	".documentation",
	".docs-content",
	"article",
	".markdown-body",
	".prose",
}

// noiseSelector matches structural noise removed from the content region
// before text extraction.
const noiseSelector = "nav, footer, aside, .sidebar, .navigation, script, style"

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Extractor extracts title, main-content text, and same-site links from
// documentation HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the title, cleaned content text,
// content HTML, and outbound same-site links.
func (e *Extractor) Extract(rawHTML string, baseURL string) (*docbuzz.ExtractResult, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docbuzz.Errorf(docbuzz.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docbuzz.Errorf(docbuzz.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	region := selectContentRegion(doc)

	var text, contentHTML string
	if region != nil && region.Length() > 0 {
		region.Find(noiseSelector).Remove()
		text = normalizeText(region)
		contentHTML, _ = goquery.OuterHtml(region)
	}

	return &docbuzz.ExtractResult{
		Title:       title,
		Text:        text,
		ContentHTML: contentHTML,
		Links:       linksFromDoc(doc, base),
	}, nil
}

// selectContentRegion tries each candidate selector in order and returns
// the first match, falling back to the document body.
func selectContentRegion(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return doc.Find("body").First()
}

// normalizeText joins the selection's text nodes with single spaces and
// collapses all whitespace runs.
func normalizeText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(strings.Join(parts, " "), " "))
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// ExtractLinks parses HTML and returns same-site absolute URLs in document
// order. Duplicates are preserved.
func ExtractLinks(rawHTML string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docbuzz.Errorf(docbuzz.EINVALID, "invalid base URL: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docbuzz.Errorf(docbuzz.EINVALID, "failed to parse HTML: %v", err)
	}
	return linksFromDoc(doc, base), nil
}

// linksFromDoc scans every hyperlink and keeps hrefs that are root-relative
// or already mention the site host, are not pure in-page anchors, resolve to
// the site host, and are not PDFs.
func linksFromDoc(doc *goquery.Document, base *url.URL) []string {
	host := base.Host

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if !strings.HasPrefix(href, "/") && !strings.Contains(href, host) {
			return
		}
		if strings.HasPrefix(href, "#") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref).String()

		if !strings.Contains(resolved, host) {
			return
		}
		if strings.HasSuffix(resolved, ".pdf") {
			return
		}

		links = append(links, resolved)
	})

	return links
}

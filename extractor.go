package docbuzz

// ExtractResult holds the content extracted from one HTML page.
type ExtractResult struct {
	// Title is the first <title> element's trimmed text, or empty.
	Title string

	// Text is the cleaned main-content text: structural noise removed,
	// whitespace runs collapsed to single spaces, trimmed.
	Text string

	// ContentHTML is the selected main-content region as HTML, after
	// noise removal. Used for markdown export.
	ContentHTML string

	// Links are same-site absolute URLs in document order. Duplicates
	// are preserved; callers deduplicate.
	Links []string
}

// Extractor extracts the title, main content, and outbound same-site links
// from an HTML page.
type Extractor interface {
	// Extract processes raw HTML. The baseURL resolves relative links and
	// defines the site host for same-site filtering.
	Extract(html string, baseURL string) (*ExtractResult, error)
}

// Converter converts HTML content to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

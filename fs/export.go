package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/docbuzz/docbuzz"
)

// URLToPath converts a documentation URL to a relative file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Root or trailing slash becomes index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

// FormatPage renders a page as Markdown with YAML frontmatter. body is the
// already converted Markdown content.
func FormatPage(rec *docbuzz.PageRecord, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(rec.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(rec.Title)
	b.WriteString("\ncrawled: ")
	b.WriteString(rec.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(body)
	return b.String()
}

// Exporter writes crawled pages as a Markdown file tree mirroring the
// site's URL structure. Page HTML is converted to Markdown on the way out.
type Exporter struct {
	baseDir   string
	converter docbuzz.Converter
}

// NewExporter creates an Exporter writing under baseDir.
func NewExporter(baseDir string, converter docbuzz.Converter) *Exporter {
	return &Exporter{baseDir: baseDir, converter: converter}
}

// ExportSnapshot writes every page in the snapshot. Pages without content
// HTML fall back to their plain text content.
func (e *Exporter) ExportSnapshot(ctx context.Context, snap *docbuzz.Snapshot) error {
	for _, rec := range snap.RawData {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.ExportPage(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// ExportPage writes a single page as Markdown.
func (e *Exporter) ExportPage(ctx context.Context, rec *docbuzz.PageRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(rec.URL)
	if err != nil {
		return docbuzz.Errorf(docbuzz.EINVALID, "invalid page URL %q: %v", rec.URL, err)
	}

	body := rec.Content
	if rec.ContentHTML != "" {
		md, err := e.converter.Convert(rec.ContentHTML)
		if err != nil {
			return err
		}
		body = md
	}

	fullPath := filepath.Join(e.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatPage(rec, body)), 0644)
}

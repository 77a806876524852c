package docbuzz

import (
	"net/url"
	"sort"
	"strings"
)

// SummaryLength is the maximum summary prefix length before the ellipsis
// marker is appended.
const SummaryLength = 400

// TopicEntry is the per-subtopic payload of a TopicIndex.
type TopicEntry struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Summary string `json:"summary"`
}

// TopicIndex maps topic label → subtopic label → entry. It is built once
// per crawl and immutable afterwards.
type TopicIndex map[string]map[string]TopicEntry

// subtopicNames overrides specific raw path segments with curated
// human-readable names.
var subtopicNames = map[string]string{
	"api-key":               "API Key Setup",
	"get-api-key":           "Api Key Setup",
	"openai-compatibility":  "OpenAI Compatibility",
	"start-building":        "Start Building",
	"dedicated-deployments": "Dedicated Deployments",
	"reliability":           "Reliability Checks",
	"dedicated-api":         "Dedicated API",
	"text-classification":   "Text Classification",
	"sentiment-analysis":    "Sentiment Analysis",
	"keyword-extraction":    "Keyword Extraction",
	"image-analysis":        "Image Analysis",
	"llm-evaluation":        "LLM Evaluation",
	"prompt-engineering":    "Prompt Engineering",
	"batch-predictions":     "Batch Predictions",
	"tool-integrations":     "Tool Integrations",
	"uploading-large-files": "Large File Upload",
	"reliability-check":     "Reliability Check",
}

// ClassifyTopics builds a TopicIndex from page records. It is a pure
// function of the URL paths and contents: classifying the same records
// twice yields an identical index. Records with empty content are skipped.
// When two URLs collapse to the same (topic, subtopic) pair, the
// lexicographically later URL wins.
func ClassifyTopics(records map[string]*PageRecord) TopicIndex {
	index := make(TopicIndex)

	// Sort URLs so collision resolution is deterministic.
	urls := make([]string, 0, len(records))
	for u := range records {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	for _, rawURL := range urls {
		rec := records[rawURL]
		if rec == nil || rec.Content == "" {
			continue
		}

		u, err := url.Parse(rawURL)
		if err != nil {
			continue
		}
		parts := pathSegments(u.Path)
		if len(parts) == 0 {
			continue
		}

		topic := topicLabel(u.Path, parts)
		subtopic := subtopicLabel(topic, parts)

		if index[topic] == nil {
			index[topic] = make(map[string]TopicEntry)
		}
		index[topic][subtopic] = TopicEntry{
			URL:     rawURL,
			Title:   rec.Title,
			Content: rec.Content,
			Summary: Summarize(rec.Content),
		}
	}

	return index
}

// Summarize returns a fixed-length prefix of content: at most SummaryLength
// characters plus an ellipsis marker when truncated. Truncation counts
// characters, not bytes, so multi-byte runes are never split.
func Summarize(content string) string {
	runes := []rune(content)
	if len(runes) > SummaryLength {
		return string(runes[:SummaryLength]) + "..."
	}
	return content
}

// pathSegments splits a URL path on "/" and discards empty segments and the
// generic "docs" marker.
func pathSegments(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" && p != "docs" {
			parts = append(parts, p)
		}
	}
	return parts
}

// topicLabel picks the topic by first matching rule against the path.
func topicLabel(path string, parts []string) string {
	switch {
	case strings.Contains(path, "get-started"):
		switch {
		case strings.Contains(path, "verify"):
			return "Verify & Reliability"
		case strings.Contains(path, "fine-tuning"):
			return "Fine-tuning"
		default:
			return "Getting Started"
		}
	case strings.Contains(path, "api-reference"):
		return "API Reference"
	case strings.Contains(path, "tutorials"):
		return "Use Cases & Tutorials"
	default:
		return titleCase(parts[0])
	}
}

// subtopicLabel derives the subtopic from the last path segment. Generic
// trailing markers ("overview", "api") defer to the second-to-last segment.
// Single-segment paths reuse the topic label.
func subtopicLabel(topic string, parts []string) string {
	if len(parts) < 2 {
		return topic
	}
	raw := parts[len(parts)-1]
	if raw == "overview" || raw == "api" {
		raw = parts[len(parts)-2]
	}
	if name, ok := subtopicNames[raw]; ok {
		return name
	}
	return titleCase(raw)
}

// titleCase converts a dash-separated segment to a space-separated label
// with each word capitalized ("fine-tuning" → "Fine Tuning").
func titleCase(segment string) string {
	words := strings.Fields(strings.ReplaceAll(segment, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

package crawl

import "strings"

// DefaultBaseURL is the documentation site crawled when no other base is
// configured.
const DefaultBaseURL = "https://docs.kluster.ai"

// DefaultSeedURL is the discovery entry point for a full crawl.
const DefaultSeedURL = DefaultBaseURL + "/get-started/get-api-key/"

// knownDocPaths is the catalogue of documentation paths always included in
// a full crawl, independent of what discovery finds.
var knownDocPaths = []string{
	"/get-started/get-api-key/",
	"/get-started/models/",
	"/get-started/openai-compatibility/",
	"/get-started/start-building/",
	"/get-started/integrations/",
	"/get-started/dedicated-deployments/",
	"/get-started/fine-tuning/",
	"/get-started/fine-tuning/overview/",
	"/get-started/fine-tuning/api/",
	"/get-started/verify/",
	"/get-started/verify/overview/",
	"/get-started/verify/reliability/",
	"/get-started/verify/reliability/overview/",
	"/get-started/verify/reliability/dedicated-api/",
	"/api-reference/",
	"/tutorials/",
	"/tutorials/text-classification/",
	"/tutorials/sentiment-analysis/",
	"/tutorials/keyword-extraction/",
	"/tutorials/image-analysis/",
	"/tutorials/llm-evaluation/",
	"/tutorials/prompt-engineering/",
	"/tutorials/batch-predictions/",
	"/tutorials/fine-tuning/",
	"/tutorials/tool-integrations/",
	"/tutorials/uploading-large-files/",
	"/tutorials/reliability-check/",
}

// KnownDocURLs returns the known documentation URLs rooted at base.
func KnownDocURLs(base string) []string {
	base = strings.TrimSuffix(base, "/")
	urls := make([]string, len(knownDocPaths))
	for i, p := range knownDocPaths {
		urls[i] = base + p
	}
	return urls
}

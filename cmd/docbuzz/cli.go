package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/docbuzz/docbuzz"
	"github.com/docbuzz/docbuzz/crawl"
	"github.com/docbuzz/docbuzz/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Snapshots docbuzz.SnapshotStore
	Crawler   *crawl.Crawler
	Generator docbuzz.Generator
	History   docbuzz.CrawlHistory
	Sitemaps  docbuzz.SitemapSource
	Exporter  *fs.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl    CrawlCmd    `cmd:"" help:"Crawl the documentation site and refresh the local snapshot"`
	Topics   TopicsCmd   `cmd:"" help:"List topics and subtopics in the snapshot"`
	Show     ShowCmd     `cmd:"" help:"Show the stored content for a subtopic"`
	Generate GenerateCmd `cmd:"" help:"Generate promotional posts for a subtopic"`
	History  HistoryCmd  `cmd:"" help:"List recorded crawl runs"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Seed        string  `arg:"" optional:"" help:"Seed URL for discovery (defaults to the kluster.ai docs)"`
	Concurrency int     `short:"c" default:"15" help:"Concurrent fetch limit"`
	Out         string  `short:"o" help:"Snapshot output path"`
	Render      bool    `help:"Render pages in a headless browser before extraction"`
	Extractor   string  `enum:"goquery,trafilatura" default:"goquery" help:"Content extraction strategy"`
	ExportDir   string  `help:"Also export pages as Markdown under this directory"`
	Sitemap     bool    `help:"Supplement discovery with the site's sitemap"`
	RPS         float64 `name:"rps" help:"Per-domain requests per second (0 disables rate limiting)"`
}

// TopicsCmd is the "topics" subcommand.
type TopicsCmd struct {
	Data string `help:"Snapshot path to read"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Topic    string `arg:"" help:"Topic name"`
	Subtopic string `arg:"" help:"Subtopic name"`
	Full     bool   `help:"Show full content instead of the summary"`
	Data     string `help:"Snapshot path to read"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Topic    string `arg:"" help:"Topic name"`
	Subtopic string `arg:"" help:"Subtopic name"`
	Tone     string `help:"Post tone (presets: ${tones})" default:"${default_tone}"`
	Audience string `help:"Target audience"`
	Mission  string `help:"Campaign mission statement"`
	Model    string `help:"Gemini model to use"`
	Count    int    `default:"1" help:"Number of drafts to generate"`
	File     string `short:"f" help:"Write posts to a file instead of stdout"`
	Data     string `help:"Snapshot path to read"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	DB string `help:"History database path"`
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/docbuzz/docbuzz"
	"github.com/docbuzz/docbuzz/crawl"
	"github.com/docbuzz/docbuzz/fs"
	"github.com/docbuzz/docbuzz/gemini"
	"github.com/docbuzz/docbuzz/goquery"
	"github.com/docbuzz/docbuzz/htmltomarkdown"
	buzzhttp "github.com/docbuzz/docbuzz/http"
	"github.com/docbuzz/docbuzz/rod"
	dslog "github.com/docbuzz/docbuzz/slog"
	"github.com/docbuzz/docbuzz/sqlite"
	"github.com/docbuzz/docbuzz/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Snapshot path. Set before calling Run().
	DataPath string

	// Crawl history database path. Set before calling Run().
	DBPath string

	// SQLite database used for crawl history.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DataPath: defaultDataPath(),
		DBPath:   defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docbuzz"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"tones":        strings.Join(docbuzz.ToneOptions, ", "),
			"default_tone": docbuzz.DefaultTone,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docbuzz --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	switch {
	case cmd == "crawl" && cli.Crawl.Out != "":
		m.DataPath = cli.Crawl.Out
	case cmd == "topics" && cli.Topics.Data != "":
		m.DataPath = cli.Topics.Data
	case cmd == "show" && cli.Show.Data != "":
		m.DataPath = cli.Show.Data
	case cmd == "generate" && cli.Generate.Data != "":
		m.DataPath = cli.Generate.Data
	case cmd == "history" && cli.History.DB != "":
		m.DBPath = cli.History.DB
	}
	deps.Snapshots = fs.NewSnapshotStore(m.DataPath)

	if cmd == "crawl" || cmd == "history" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set DOCBUZZ_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.History = sqlite.NewHistoryService(m.DB)
	}

	if cmd == "crawl" {
		var extractor docbuzz.Extractor
		switch cli.Crawl.Extractor {
		case "trafilatura":
			extractor = trafilatura.NewExtractor()
		default:
			extractor = goquery.NewExtractor()
		}

		var fetcher docbuzz.PageFetcher
		if cli.Crawl.Render {
			browserFetcher, err := rod.NewFetcher(extractor)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browserFetcher
		} else {
			fetcher = buzzhttp.NewFetcher(extractor)
		}
		defer fetcher.Close()

		var limiter *crawl.DomainLimiter
		if cli.Crawl.RPS > 0 {
			limiter = crawl.NewDomainLimiter(cli.Crawl.RPS)
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher:     dslog.NewLoggingFetcher(fetcher, deps.Logger),
			Limiter:     limiter,
			Logger:      deps.Logger,
			Concurrency: cli.Crawl.Concurrency,
		}
		deps.Sitemaps = buzzhttp.NewSitemapSource(nil)

		if cli.Crawl.ExportDir != "" {
			deps.Exporter = fs.NewExporter(cli.Crawl.ExportDir, htmltomarkdown.NewConverter())
		}
	}

	if cmd == "generate" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		generator := gemini.NewGenerator(client, gemini.WithModel(cli.Generate.Model))
		deps.Generator = dslog.NewLoggingGenerator(generator, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func defaultDataPath() string {
	if path := os.Getenv("DOCBUZZ_DATA"); path != "" {
		return path
	}
	return fs.DefaultSnapshotFile
}

func defaultDBPath() string {
	if path := os.Getenv("DOCBUZZ_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docbuzz.db"
	}
	dir := filepath.Join(home, ".docbuzz")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docbuzz.db")
}

package main

import (
	"fmt"
	"time"

	"github.com/docbuzz/docbuzz"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	runs, err := deps.History.ListRuns(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docbuzz.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawls recorded yet. Run 'docbuzz crawl' first.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %4d pages  %8s  %s\n",
			run.ScrapedAt.Local().Format(time.DateTime),
			run.TotalPages,
			run.Duration.Round(time.Millisecond),
			run.SeedURL,
		)
	}

	return nil
}

package main

import (
	"fmt"

	"github.com/docbuzz/docbuzz"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	snap, err := deps.Snapshots.Load(deps.Ctx)
	if err != nil {
		if docbuzz.ErrorCode(err) == docbuzz.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "No documentation data found. Run 'docbuzz crawl' first.")
		}
		return err
	}

	entry, ok := snap.Topics[c.Topic][c.Subtopic]
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: %q / %q not found. Run 'docbuzz topics' to see what is available.\n", c.Topic, c.Subtopic)
		return docbuzz.Errorf(docbuzz.ENOTFOUND, "no entry for %q / %q", c.Topic, c.Subtopic)
	}

	fmt.Fprintf(deps.Stdout, "%s\n%s\n\n", entry.Title, entry.URL)
	if c.Full {
		fmt.Fprintln(deps.Stdout, entry.Content)
	} else {
		fmt.Fprintln(deps.Stdout, entry.Summary)
	}

	return nil
}

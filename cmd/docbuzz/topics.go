package main

import (
	"fmt"
	"sort"

	"github.com/docbuzz/docbuzz"
)

// Run executes the topics command.
func (c *TopicsCmd) Run(deps *Dependencies) error {
	snap, err := deps.Snapshots.Load(deps.Ctx)
	if err != nil {
		if docbuzz.ErrorCode(err) == docbuzz.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "No documentation data found. Run 'docbuzz crawl' first.")
		}
		return err
	}

	topics := make([]string, 0, len(snap.Topics))
	for topic := range snap.Topics {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	for _, topic := range topics {
		fmt.Fprintln(deps.Stdout, topic)

		subtopics := make([]string, 0, len(snap.Topics[topic]))
		for sub := range snap.Topics[topic] {
			subtopics = append(subtopics, sub)
		}
		sort.Strings(subtopics)

		for _, sub := range subtopics {
			fmt.Fprintf(deps.Stdout, "  %s\n", sub)
		}
	}

	return nil
}

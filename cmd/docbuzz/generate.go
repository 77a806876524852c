package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/docbuzz/docbuzz"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	if c.Count < 1 {
		return docbuzz.Errorf(docbuzz.EINVALID, "count must be at least 1")
	}

	snap, err := deps.Snapshots.Load(deps.Ctx)
	if err != nil {
		if docbuzz.ErrorCode(err) == docbuzz.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "No documentation data found. Run 'docbuzz crawl' first.")
		}
		return err
	}

	docContext, _, err := snap.Context(c.Topic, c.Subtopic)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docbuzz.ErrorMessage(err))
		return err
	}

	req := docbuzz.PostRequest{
		Topic:    c.Topic,
		Subtopic: c.Subtopic,
		Context:  docContext,
		Tone:     c.Tone,
		Audience: c.Audience,
		Mission:  c.Mission,
	}

	var posts []string
	for i := 0; i < c.Count; i++ {
		post, err := deps.Generator.Generate(deps.Ctx, req)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docbuzz.ErrorMessage(err))
			return err
		}
		posts = append(posts, post)
	}

	output := strings.Join(posts, "\n\n---\n\n")

	if c.File != "" {
		if err := os.WriteFile(c.File, []byte(output+"\n"), 0644); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d post(s) to %s\n", len(posts), c.File)
		return nil
	}

	fmt.Fprintln(deps.Stdout, output)
	return nil
}

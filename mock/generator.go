package mock

import (
	"context"

	"github.com/docbuzz/docbuzz"
)

var _ docbuzz.Generator = (*Generator)(nil)

// Generator is a mock implementation of docbuzz.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req docbuzz.PostRequest) (string, error)
}

func (g *Generator) Generate(ctx context.Context, req docbuzz.PostRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}

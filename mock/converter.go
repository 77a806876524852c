package mock

import "github.com/docbuzz/docbuzz"

var _ docbuzz.Converter = (*Converter)(nil)

// Converter is a mock implementation of docbuzz.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

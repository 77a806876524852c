// Package gemini generates promotional posts from documentation context
// using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/docbuzz/docbuzz"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements docbuzz.Generator at compile time.
var _ docbuzz.Generator = (*Generator)(nil)

// Generator implements docbuzz.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// Option configures a Generator.
type Option func(*Generator)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(g *Generator) {
		if model != "" {
			g.model = model
		}
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, opts ...Option) *Generator {
	g := &Generator{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces one promotional post for the request.
func (g *Generator) Generate(ctx context.Context, req docbuzz.PostRequest) (string, error) {
	if req.Topic == "" || req.Subtopic == "" {
		return "", docbuzz.Errorf(docbuzz.EINVALID, "topic and subtopic required")
	}
	if req.Context == "" {
		return "", docbuzz.Errorf(docbuzz.EINVALID, "documentation context required")
	}

	prompt := BuildPostPrompt(req)
	config := BuildConfig()

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docbuzz.Errorf(docbuzz.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Temperature is set for creative variety between drafts; the token cap
// keeps responses in post territory.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	maxTokens := int32(150)
	return &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: maxTokens,
	}
}

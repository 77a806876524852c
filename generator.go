package docbuzz

import "context"

// Default framing for generation requests when the caller leaves the
// corresponding fields empty.
const (
	DefaultTone     = "Professional & Trustworthy"
	DefaultAudience = "AI developers and engineering teams"
)

// ToneOptions are the suggested tones for generated posts. Tone is
// free-form; these are presets, not a constraint.
var ToneOptions = []string{
	"Professional & Trustworthy",
	"Technical & Detailed",
	"Problem-Focused & Urgent",
	"Educational & Helpful",
	"Confident & Bold",
}

// PostRequest describes one promotional-post generation request.
type PostRequest struct {
	// Topic and Subtopic identify the documentation area being promoted.
	Topic    string
	Subtopic string

	// Context is the grounding text for the post, typically a subtopic
	// summary from a Snapshot.
	Context string

	// Tone, Audience and Mission steer the voice of the post. Empty
	// values fall back to the defaults above.
	Tone     string
	Audience string
	Mission  string
}

// Generator produces short promotional post text grounded in
// documentation context. The core places no constraints on the output.
type Generator interface {
	Generate(ctx context.Context, req PostRequest) (string, error)
}

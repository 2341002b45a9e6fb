package llm

import "context"

// Client is the minimal text-completion surface the understanding service
// needs from a language model.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Intent is the closed set of labels for a registration-mode turn.
type Intent string

const (
	// IntentFieldValue is the default label: the turn carries a value for
	// the field currently being collected. Ambiguous or empty model output
	// deliberately falls back to this label so the dialogue keeps moving.
	IntentFieldValue Intent = "field"
	IntentQuestion   Intent = "question"
	IntentEditCmd    Intent = "edit"
)

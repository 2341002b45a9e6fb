package registration

import (
	"context"
	"fmt"

	"github.com/GasserElSawaf/UniCloudTest/pkg/logger"
)

// Extractor is the slice of the language service the pipeline needs.
type Extractor interface {
	ExtractValue(ctx context.Context, fieldName, text string) (string, bool, error)
}

// FieldResult is the outcome of running one field through the pipeline.
// When Valid is false, Message explains the failure and the field should
// be re-asked; the user may retry indefinitely.
type FieldResult struct {
	Value   string
	Valid   bool
	Message string
}

// Pipeline composes extraction, normalization, and validation into one
// step for a single field.
type Pipeline struct {
	extractor Extractor
}

func NewPipeline(extractor Extractor) *Pipeline {
	return &Pipeline{extractor: extractor}
}

// Process extracts the field's value from raw text, normalizes it, and
// validates it. A non-nil error means the language service itself failed;
// absence of a value in the text is reported as an invalid result instead.
func (p *Pipeline) Process(ctx context.Context, field FieldDefinition, rawText string) (*FieldResult, error) {
	extracted, found, err := p.extractor.ExtractValue(ctx, field.Name, rawText)
	if err != nil {
		return nil, err
	}
	if !found {
		return &FieldResult{
			Valid:   false,
			Message: fmt.Sprintf("Could not find a value for %s in your message.", field.Name),
		}, nil
	}
	value := Normalize(field.Kind, extracted)
	ok, message := Validate(field.Kind, value)
	if !ok {
		return &FieldResult{Valid: false, Message: message}, nil
	}
	logger.FromContext(ctx).Debug("field processed", "field", field.Name, "value", value)
	return &FieldResult{Value: value, Valid: true}, nil
}

package llmadapter

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// MockLLM is a langchaingo model with predictable responses, used by the
// mock provider for local development and tests.
type MockLLM struct {
	model string
}

func NewMockLLM(model string) *MockLLM {
	return &MockLLM{model: model}
}

// GenerateContent implements llms.Model with a canned echo response.
func (m *MockLLM) GenerateContent(
	_ context.Context,
	messages []llms.MessageContent,
	_ ...llms.CallOption,
) (*llms.ContentResponse, error) {
	var prompt string
	for _, message := range messages {
		for _, part := range message.Parts {
			if textPart, ok := part.(llms.TextContent); ok {
				prompt += textPart.Text
			}
		}
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: fmt.Sprintf("Mock response for: %s", prompt)},
		},
	}, nil
}

// Call implements the legacy single-prompt interface.
func (m *MockLLM) Call(_ context.Context, prompt string, _ ...llms.CallOption) (string, error) {
	return fmt.Sprintf("Mock response for: %s", prompt), nil
}

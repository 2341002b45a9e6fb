package llmadapter

import (
	"context"
	"fmt"

	"github.com/GasserElSawaf/UniCloudTest/engine/core"
	"github.com/tmc/langchaingo/llms"
)

// LangChainAdapter adapts a langchaingo model to the llm.Client interface.
type LangChainAdapter struct {
	model       llms.Model
	temperature float64
}

// NewLangChainAdapter builds an adapter for the configured provider.
func NewLangChainAdapter(config *core.ProviderConfig) (*LangChainAdapter, error) {
	model, err := CreateLLMFactory(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM model: %w", err)
	}
	return &LangChainAdapter{model: model, temperature: config.Temperature}, nil
}

// Complete sends a single prompt and returns the raw completion text.
func (a *LangChainAdapter) Complete(ctx context.Context, prompt string) (string, error) {
	var opts []llms.CallOption
	if a.temperature > 0 {
		opts = append(opts, llms.WithTemperature(a.temperature))
	}
	out, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt, opts...)
	if err != nil {
		return "", fmt.Errorf("langchain completion failed: %w", err)
	}
	return out, nil
}

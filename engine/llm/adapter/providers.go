package llmadapter

import (
	"context"
	"fmt"

	"github.com/GasserElSawaf/UniCloudTest/engine/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// CreateLLMFactory creates an LLM instance based on the provider configuration.
func CreateLLMFactory(provider *core.ProviderConfig) (llms.Model, error) {
	switch provider.Provider {
	case core.ProviderOpenAI:
		return createOpenAILLM(provider)
	case core.ProviderAzure:
		return createAzureLLM(provider)
	case core.ProviderGroq:
		return createGroqLLM(provider)
	case core.ProviderAnthropic:
		return createAnthropicLLM(provider)
	case core.ProviderOllama:
		return createOllamaLLM(provider)
	case core.ProviderGoogle:
		return createGoogleLLM(provider)
	case core.ProviderMock:
		return NewMockLLM(provider.Model), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider.Provider)
	}
}

func createOpenAILLM(p *core.ProviderConfig) (llms.Model, error) {
	opts := []openai.Option{
		openai.WithModel(p.Model),
	}
	if p.APIKey != "" {
		opts = append(opts, openai.WithToken(p.APIKey))
	}
	if p.APIURL != "" {
		opts = append(opts, openai.WithBaseURL(p.APIURL))
	}
	return openai.New(opts...)
}

// createAzureLLM targets an Azure OpenAI deployment. The model name is the
// deployment name and the API version is mandatory on Azure endpoints.
func createAzureLLM(p *core.ProviderConfig) (llms.Model, error) {
	if p.APIURL == "" {
		return nil, fmt.Errorf("azure provider requires an API URL")
	}
	opts := []openai.Option{
		openai.WithAPIType(openai.APITypeAzure),
		openai.WithModel(p.Model),
		openai.WithBaseURL(p.APIURL),
	}
	if p.APIKey != "" {
		opts = append(opts, openai.WithToken(p.APIKey))
	}
	if p.APIVersion != "" {
		opts = append(opts, openai.WithAPIVersion(p.APIVersion))
	}
	return openai.New(opts...)
}

func createGroqLLM(p *core.ProviderConfig) (llms.Model, error) {
	baseURL := "https://api.groq.com/openai/v1"
	if p.APIURL != "" {
		baseURL = p.APIURL
	}
	opts := []openai.Option{
		openai.WithModel(p.Model),
		openai.WithBaseURL(baseURL),
	}
	if p.APIKey != "" {
		opts = append(opts, openai.WithToken(p.APIKey))
	}
	return openai.New(opts...)
}

func createAnthropicLLM(p *core.ProviderConfig) (llms.Model, error) {
	opts := []anthropic.Option{
		anthropic.WithModel(p.Model),
	}
	if p.APIKey != "" {
		opts = append(opts, anthropic.WithToken(p.APIKey))
	}
	return anthropic.New(opts...)
}

func createOllamaLLM(p *core.ProviderConfig) (llms.Model, error) {
	opts := []ollama.Option{
		ollama.WithModel(p.Model),
	}
	if p.APIURL != "" {
		opts = append(opts, ollama.WithServerURL(p.APIURL))
	}
	return ollama.New(opts...)
}

func createGoogleLLM(p *core.ProviderConfig) (llms.Model, error) {
	opts := []googleai.Option{
		googleai.WithDefaultModel(p.Model),
	}
	if p.APIKey != "" {
		opts = append(opts, googleai.WithAPIKey(p.APIKey))
	}
	return googleai.New(context.Background(), opts...)
}

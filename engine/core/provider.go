package core

// ProviderName identifies a language-model provider.
type ProviderName string

const (
	ProviderOpenAI    ProviderName = "openai"
	ProviderAzure     ProviderName = "azure"
	ProviderGroq      ProviderName = "groq"
	ProviderAnthropic ProviderName = "anthropic"
	ProviderOllama    ProviderName = "ollama"
	ProviderGoogle    ProviderName = "google"
	ProviderMock      ProviderName = "mock" // Mock provider for testing
)

// ProviderConfig carries provider-specific connection options.
type ProviderConfig struct {
	Provider    ProviderName `json:"provider"`
	Model       string       `json:"model"`
	APIKey      string       `json:"api_key"`
	APIURL      string       `json:"api_url"`
	APIVersion  string       `json:"api_version"`
	Temperature float64      `json:"temperature"`
}

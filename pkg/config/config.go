package config

// Config is the root configuration for the registration assistant.
type Config struct {
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	LLM       LLMConfig       `koanf:"llm"       validate:"required"`
	Database  DatabaseConfig  `koanf:"database"`
	Knowledge KnowledgeConfig `koanf:"knowledge"`
	Log       LogConfig       `koanf:"log"`
}

type ServerConfig struct {
	Host string `koanf:"host" validate:"required"`
	Port int    `koanf:"port" validate:"required,min=1,max=65535"`
}

type LLMConfig struct {
	Provider string `koanf:"provider" validate:"required,oneof=openai azure groq anthropic ollama google mock"`
	Model    string `koanf:"model"    validate:"required"`
	APIKey   string `koanf:"api_key"`
	APIURL   string `koanf:"api_url"`
	// APIVersion is only consulted by the azure provider.
	APIVersion  string  `koanf:"api_version"`
	Temperature float64 `koanf:"temperature" validate:"min=0,max=2"`
}

type DatabaseConfig struct {
	// URL is a Postgres connection string. When empty the server falls back
	// to the in-memory registration store.
	URL         string `koanf:"url"`
	AutoMigrate bool   `koanf:"auto_migrate"`
}

type KnowledgeConfig struct {
	InformationFile      string `koanf:"information_file"`
	RegistrationInfoFile string `koanf:"registration_info_file"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// Default returns the configuration used when no environment overrides exist.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "gpt-4o",
			APIVersion:  "2023-12-01-preview",
			Temperature: 0,
		},
		Database: DatabaseConfig{
			AutoMigrate: true,
		},
		Knowledge: KnowledgeConfig{
			InformationFile:      "information.txt",
			RegistrationInfoFile: "registration_fields_info.txt",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

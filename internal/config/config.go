package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const placeholderAPIKey = "tu_clave_aqui"

const (
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
)

// Config is built once at startup and passed by value or pointer; nothing
// mutates it afterwards.
type Config struct {
	// Server
	Host        string   `env:"HOST" envDefault:"0.0.0.0"`
	Port        int      `env:"PORT" envDefault:"8000"`
	FrontendDir string   `env:"FRONTEND_DIR" envDefault:"frontend"`
	CORSOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
	AppVersion  string   `env:"APP_VERSION" envDefault:"1.0.0"`

	// Inference
	Provider       string `env:"INFERENCE_PROVIDER" envDefault:"huggingface"`
	HFAPIKey       string `env:"HUGGINGFACE_API_KEY"`
	HFBaseURL      string `env:"HF_BASE_URL" envDefault:"https://router.huggingface.co/v1"`
	Model          string `env:"INFERENCE_MODEL" envDefault:"meta-llama/Llama-3.3-70B-Instruct"`
	InferenceRoute string `env:"INFERENCE_ROUTE" envDefault:"cerebras"`
	GeminiAPIKey   string `env:"GOOGLE_GEMINI_API_KEY"`
	GeminiModel    string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads an optional dotenv file and then the process environment.
// A missing dotenv file is not an error.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderHuggingFace, ProviderGemini:
	default:
		return fmt.Errorf("invalid INFERENCE_PROVIDER %q: must be one of huggingface, gemini", c.Provider)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

// Credential returns the API key of the selected provider, or "" when it is
// unset or still the sample placeholder.
func (c *Config) Credential() string {
	key := c.HFAPIKey
	if c.Provider == ProviderGemini {
		key = c.GeminiAPIKey
	}
	key = strings.TrimSpace(key)
	if key == placeholderAPIKey {
		return ""
	}
	return key
}

// CredentialEnvVar names the variable Credential reads, for log messages.
func (c *Config) CredentialEnvVar() string {
	if c.Provider == ProviderGemini {
		return "GOOGLE_GEMINI_API_KEY"
	}
	return "HUGGINGFACE_API_KEY"
}

func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

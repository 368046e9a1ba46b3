package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"prdgen/pkg/llm"

	"github.com/joho/godotenv"
)

const defaultSettingsFile = ".env"

type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Port        string
	FrontendURL string
	DatabaseURL string
	RedisURL    string
	LogLevel    string
}

// Settings resolves a named setting from the settings file first and the
// process environment second.
type Settings struct {
	file map[string]string
}

// LoadSettings reads the settings file named by PRD_SETTINGS_FILE (default
// .env). A missing file is not an error.
func LoadSettings() (*Settings, error) {
	path := os.Getenv("PRD_SETTINGS_FILE")
	if path == "" {
		path = defaultSettingsFile
	}

	file, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Settings{file: map[string]string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
	}
	return &Settings{file: file}, nil
}

func (s *Settings) Get(key string) string {
	if v := strings.TrimSpace(s.file[key]); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(key))
}

func (s *Settings) GetDefault(key, def string) string {
	if v := s.Get(key); v != "" {
		return v
	}
	return def
}

// Load builds the process configuration. It fails when the selected
// provider has no API key.
func Load(s *Settings) (*Config, error) {
	cfg := &Config{
		Provider:    strings.ToLower(s.GetDefault("LLM_PROVIDER", "openai")),
		Port:        s.GetDefault("PORT", "8080"),
		FrontendURL: s.Get("FRONTEND_URL"),
		DatabaseURL: s.Get("DATABASE_URL"),
		RedisURL:    s.Get("REDIS_URL"),
		LogLevel:    s.GetDefault("LOG_LEVEL", "info"),
	}

	switch cfg.Provider {
	case "openai":
		cfg.APIKey = s.Get("OPENAI_API_KEY")
		cfg.Model = s.GetDefault("OPENAI_MODEL", llm.DefaultOpenAIModel)
		cfg.BaseURL = s.GetDefault("OPENAI_BASE_URL", llm.DefaultOpenAIBaseURL)
		if cfg.APIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is missing")
		}
	case "anthropic":
		cfg.APIKey = s.Get("ANTHROPIC_API_KEY")
		cfg.Model = s.GetDefault("ANTHROPIC_MODEL", llm.DefaultAnthropicModel)
		cfg.BaseURL = s.GetDefault("ANTHROPIC_BASE_URL", llm.DefaultAnthropicBaseURL)
		if cfg.APIKey == "" {
			return nil, errors.New("ANTHROPIC_API_KEY is missing")
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}

	return cfg, nil
}

// NewClient returns the LLM client for the configured provider.
func (c *Config) NewClient() llm.Client {
	if c.Provider == "anthropic" {
		return llm.NewAnthropicClient(c.APIKey, c.Model, c.BaseURL)
	}
	return llm.NewOpenAIClient(c.APIKey, c.Model, c.BaseURL)
}

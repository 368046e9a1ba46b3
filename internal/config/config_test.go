package config

import (
	"os"
	"path/filepath"
	"testing"

	"prdgen/pkg/llm"

	"github.com/go-playground/assert/v2"
)

func writeSettings(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PRD_SETTINGS_FILE", path)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LLM_PROVIDER", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "PORT"} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingKeyFails(t *testing.T) {
	clearEnv(t)
	writeSettings(t, "")

	s, err := LoadSettings()
	assert.Equal(t, nil, err)

	cfg, err := Load(s)
	assert.Equal(t, true, cfg == nil)
	assert.Equal(t, "OPENAI_API_KEY is missing", err.Error())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	writeSettings(t, "")
	t.Setenv("OPENAI_API_KEY", "env-key")

	s, err := LoadSettings()
	assert.Equal(t, nil, err)

	cfg, err := Load(s)
	assert.Equal(t, nil, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, llm.DefaultOpenAIModel, cfg.Model)
	assert.Equal(t, "8080", cfg.Port)
}

func TestSettingsFileTakesPrecedence(t *testing.T) {
	clearEnv(t)
	writeSettings(t, "OPENAI_API_KEY=file-key\nOPENAI_MODEL=gpt-file\n")
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("OPENAI_MODEL", "gpt-env")

	s, err := LoadSettings()
	assert.Equal(t, nil, err)

	cfg, err := Load(s)
	assert.Equal(t, nil, err)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "gpt-file", cfg.Model)
}

func TestMissingSettingsFileFallsBackToEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PRD_SETTINGS_FILE", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "ant-key")

	s, err := LoadSettings()
	assert.Equal(t, nil, err)

	cfg, err := Load(s)
	assert.Equal(t, nil, err)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, llm.DefaultAnthropicModel, cfg.Model)
	assert.Equal(t, "anthropic", cfg.NewClient().Name())
}

func TestUnknownProvider(t *testing.T) {
	clearEnv(t)
	writeSettings(t, "LLM_PROVIDER=gemini\n")

	s, err := LoadSettings()
	assert.Equal(t, nil, err)

	_, err = Load(s)
	assert.Equal(t, `unknown LLM_PROVIDER "gemini"`, err.Error())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "deepseek", cfg.LLM.Provider)
	assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
	assert.Equal(t, float32(0.1), cfg.Extraction.Temperature)
	assert.Equal(t, 4000, cfg.Extraction.MaxTokens)
	assert.Equal(t, 120, cfg.Extraction.TimeoutSeconds)
	assert.Equal(t, "therapy_records.db", cfg.Storage.Path)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[llm]
provider = "mock"

[storage]
path = "/tmp/test.db"

[extraction]
timeout_seconds = 30

[prompts]
general = "custom general prompt %s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.Path)
	assert.Equal(t, 30, cfg.Extraction.TimeoutSeconds)
	assert.Equal(t, "custom general prompt %s", cfg.Prompts.General)
	// Untouched sections keep their defaults.
	assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
	assert.Equal(t, 4000, cfg.Extraction.MaxTokens)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "deepseek", cfg.LLM.Provider)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("STORAGE_PATH", "/tmp/env.db")
	t.Setenv("EXTRACTION_TIMEOUT_SECONDS", "45")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.Path)
	assert.Equal(t, 45, cfg.Extraction.TimeoutSeconds)
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type StorageConfig struct {
	Path string `toml:"path"`
}

type ExtractionConfig struct {
	Temperature    float32 `toml:"temperature"`
	MaxTokens      int     `toml:"max_tokens"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	DiagnosticsDir string  `toml:"diagnostics_dir"`
}

// Prompts holds optional instruction-text overrides for the three
// extraction templates. Empty values keep the built-in defaults.
type Prompts struct {
	General    string `toml:"general"`
	Relational string `toml:"relational"`
	Progress   string `toml:"progress"`
}

type Config struct {
	LLM        LLMConfig        `toml:"llm"`
	Storage    StorageConfig    `toml:"storage"`
	Extraction ExtractionConfig `toml:"extraction"`
	Prompts    Prompts          `toml:"prompts"`
}

// Default returns the stock configuration: DeepSeek chat completions,
// low temperature, a generous output ceiling and a long request
// timeout.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "deepseek",
			Model:    "deepseek-chat",
			BaseURL:  "https://api.deepseek.com/v1",
		},
		Storage: StorageConfig{
			Path: "therapy_records.db",
		},
		Extraction: ExtractionConfig{
			Temperature:    0.1,
			MaxTokens:      4000,
			TimeoutSeconds: 120,
			DiagnosticsDir: ".",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault reads the config file at path if it exists and falls back
// to Default when it does not. A file that exists but fails to parse is
// still an error.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// ApplyEnv overrides file-based settings with environment variables when
// present.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("EXTRACTION_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Extraction.TimeoutSeconds = n
		}
	}
}

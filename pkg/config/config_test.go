package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.InDelta(t, DefaultTemperature, cfg.Temperature, 0.001)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.NotEmpty(t, cfg.Persona)
}

func TestFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("DEEPSEEK_API_URL", "https://ejemplo.dev/v1")
	t.Setenv("DEEPSEEK_MODEL", "deepseek-chat")

	cfg := FromEnv(Default())

	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "https://ejemplo.dev/v1", cfg.BaseURL)
	assert.Equal(t, "deepseek-chat", cfg.Model)
}

func TestFromEnvKeepsFileValuesWhenUnset(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("DEEPSEEK_MODEL", "")

	cfg := Default()
	cfg.Model = "del-archivo"
	cfg = FromEnv(cfg)

	assert.Equal(t, "del-archivo", cfg.Model)
}

func TestLoadFileOverlaysValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excel-agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"model: deepseek-chat\ntemperature: 0.2\nmax_tokens: 256\npersona: Eres un contador.\n",
	), 0o600))

	cfg, err := LoadFile(Default(), path)
	require.NoError(t, err)

	assert.Equal(t, "deepseek-chat", cfg.Model)
	assert.InDelta(t, 0.2, cfg.Temperature, 0.001)
	assert.Equal(t, 256, cfg.MaxTokens)
	assert.Equal(t, "Eres un contador.", cfg.Persona)
}

func TestLoadFileMissingFile(t *testing.T) {
	_, err := LoadFile(Default(), filepath.Join(t.TempDir(), "no.yaml"))
	assert.Error(t, err)
}

func TestNormalizeTrimsCompletionSuffix(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = "https://api.deepseek.com/v1/chat/completions"

	assert.Equal(t, "https://api.deepseek.com/v1", Normalize(cfg).BaseURL)
}

func TestNormalizeAppliesDefaultsToEmptyValues(t *testing.T) {
	cfg := Normalize(Config{MaxTokens: -1})

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.NotEmpty(t, cfg.Persona)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	assert.ErrorIs(t, Validate(Config{}), ErrMissingAPIKey)
	assert.NoError(t, Validate(Config{APIKey: "sk-test"}))
}

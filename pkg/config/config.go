// Package config holds runtime configuration for the excel agent.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults match the DeepSeek chat completion service.
const (
	DefaultBaseURL     = "https://api.deepseek.com/v1"
	DefaultModel       = "deepseek-coder"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 500
)

// defaultPersona is the system message that opens every conversation.
const defaultPersona = "Eres un asistente especializado en manipular archivos Excel. " +
	"Puedes analizar datos, crear gráficos, realizar cálculos y generar informes " +
	"basados en datos de Excel. Responde de manera concisa y enfocada en la tarea solicitada."

// ErrMissingAPIKey marks the fatal startup condition of an absent credential.
var ErrMissingAPIKey = errors.New("no se encontró DEEPSEEK_API_KEY en el entorno")

// Config holds all runtime configuration for the agent.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Persona     string
	Verbose     bool
}

// Default returns a baseline configuration without side effects.
func Default() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		Persona:     defaultPersona,
	}
}

// fileConfig mirrors the optional YAML config file.
type fileConfig struct {
	Model       string   `yaml:"model"`
	Temperature *float64 `yaml:"temperature"`
	MaxTokens   *int     `yaml:"max_tokens"`
	Persona     string   `yaml:"persona"`
}

// LoadFile overlays values from a YAML file onto cfg.
func LoadFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("leer configuración %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("analizar configuración %s: %w", path, err)
	}
	if strings.TrimSpace(fc.Model) != "" {
		cfg.Model = fc.Model
	}
	if fc.Temperature != nil {
		cfg.Temperature = *fc.Temperature
	}
	if fc.MaxTokens != nil {
		cfg.MaxTokens = *fc.MaxTokens
	}
	if strings.TrimSpace(fc.Persona) != "" {
		cfg.Persona = fc.Persona
	}
	return cfg, nil
}

// FromEnv overlays DEEPSEEK_* environment variables onto cfg.
// Environment values win over file values.
func FromEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv("DEEPSEEK_API_KEY")); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("DEEPSEEK_API_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("DEEPSEEK_MODEL")); v != "" {
		cfg.Model = v
	}
	return cfg
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.Persona = strings.TrimSpace(cfg.Persona)

	// A full completion URL is accepted for compatibility with setups that
	// export the endpoint rather than the API base.
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/chat/completions")

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Persona == "" {
		cfg.Persona = defaultPersona
	}
	return cfg
}

// Validate reports the fatal startup errors that must abort before the REPL.
func Validate(cfg Config) error {
	if cfg.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Package config provides configuration loading and validation for the ATS checker.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the checker configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	Port                int     `json:"port,omitempty"`                 // HTTP listen port
	Workers             int     `json:"workers,omitempty"`              // Extraction worker pool size
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty"` // Keyword match threshold (0.0-1.0)
	EmbeddingModel      string  `json:"embedding_model,omitempty"`      // Gemini embedding model name
	APIKey              string  `json:"api_key,omitempty"`              // Gemini API key
}

// Defaults returns the default configuration. The API key has no default;
// it must come from the config file or GEMINI_API_KEY.
func Defaults() Config {
	return Config{
		Port:                8080,
		Workers:             4,
		SimilarityThreshold: 0.8,
		EmbeddingModel:      "text-embedding-004",
	}
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a configuration from environment variables.
func FromEnv() *Config {
	cfg := &Config{
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		EmbeddingModel: os.Getenv("ATS_EMBEDDING_MODEL"),
	}
	if port, err := strconv.Atoi(os.Getenv("ATS_PORT")); err == nil {
		cfg.Port = port
	}
	if workers, err := strconv.Atoi(os.Getenv("ATS_WORKERS")); err == nil {
		cfg.Workers = workers
	}
	if threshold, err := strconv.ParseFloat(os.Getenv("ATS_SIMILARITY_THRESHOLD"), 64); err == nil {
		cfg.SimilarityThreshold = threshold
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("config error: 'similarity_threshold' must be between 0.0 and 1.0")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.SimilarityThreshold == 0 {
		result.SimilarityThreshold = defaults.SimilarityThreshold
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	return result
}

// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or come
// from CLI flags and environment variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Models
	APIKey        string `json:"api_key,omitempty"`        // Gemini API key
	GuidanceModel string `json:"guidance_model,omitempty"` // Generative model for mentor feedback
	EmbedModel    string `json:"embed_model,omitempty"`    // Embedding model for the similarity oracle

	// Analysis
	Threshold float64 `json:"threshold,omitempty"`  // Skill match threshold (0.0-1.0)
	VocabPath string  `json:"vocab_path,omitempty"` // Optional vocabulary override file

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed analysis output
}

// DefaultPort is the HTTP port used when none is configured.
const DefaultPort = 8080

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv returns a Config populated from environment variables. godotenv is
// loaded by the command entry points before this runs.
func FromEnv() *Config {
	cfg := &Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	return cfg
}

// Merge fills empty fields of c from other and returns c.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	if c.Port == 0 {
		c.Port = other.Port
	}
	if c.APIKey == "" {
		c.APIKey = other.APIKey
	}
	if c.GuidanceModel == "" {
		c.GuidanceModel = other.GuidanceModel
	}
	if c.EmbedModel == "" {
		c.EmbedModel = other.EmbedModel
	}
	if c.Threshold == 0 {
		c.Threshold = other.Threshold
	}
	if c.VocabPath == "" {
		c.VocabPath = other.VocabPath
	}
	if !c.Verbose {
		c.Verbose = other.Verbose
	}
	return c
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("config error: 'threshold' must be between 0.0 and 1.0")
	}
	if c.VocabPath != "" {
		if _, err := os.Stat(c.VocabPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabPath)
		}
	}
	return nil
}

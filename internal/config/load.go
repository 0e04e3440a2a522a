package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, overlays secrets from the environment and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to an all-defaults config
// when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = &Config{}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile loads a dotenv file into the process environment. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays secrets and a few deployment knobs from the environment.
func (c *Config) applyEnv() {
	switch c.LLM.Provider {
	case "openai":
		c.LLM.APIKey = getEnvOrDefault("OPENAI_API_KEY", c.LLM.APIKey)
	case "gemini":
	default:
		c.LLM.APIKey = getEnvOrDefault("GROQ_API_KEY", c.LLM.APIKey)
	}

	if keys := splitKeys(os.Getenv("GEMINI_API_KEYS")); len(keys) > 0 {
		c.LLM.GeminiKeys = keys
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" && len(c.LLM.GeminiKeys) == 0 {
		c.LLM.GeminiKeys = []string{key}
	}

	c.Images.GoogleAPIKey = getEnvOrDefault("GOOGLE_API_KEY_1", c.Images.GoogleAPIKey)
	c.Images.GoogleCSEID = getEnvOrDefault("GOOGLE_CSE_ID_1", c.Images.GoogleCSEID)
	c.Images.UnsplashKey = getEnvOrDefault("UNSPLASH_ACCESS_KEY", c.Images.UnsplashKey)

	switch c.Speech.Provider {
	case "openai":
		c.Speech.APIKey = getEnvOrDefault("OPENAI_API_KEY", c.Speech.APIKey)
	case "elevenlabs":
		c.Speech.APIKey = getEnvOrDefault("ELEVENLABS_API_KEY", c.Speech.APIKey)
	default:
		if c.Speech.APIKey == "" && len(c.LLM.GeminiKeys) > 0 {
			c.Speech.APIKey = c.LLM.GeminiKeys[0]
		}
	}

	c.Publish.Bucket = getEnvOrDefault("DECKFLOW_GCS_BUCKET", c.Publish.Bucket)
	c.Logging.Level = getEnvOrDefault("DECKFLOW_LOG_LEVEL", c.Logging.Level)
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Provider names accepted in config.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Provider struct {
		Name            string  `yaml:"name"`
		Model           string  `yaml:"model"`
		Temperature     float32 `yaml:"temperature"`
		MaxOutputTokens int     `yaml:"max_output_tokens"`
		Timeout         string  `yaml:"timeout"`
		// APIKey is read from the environment (GEMINI_API_KEY or
		// OPENAI_API_KEY) at load time so the rest of the code never touches
		// process env. An absent key is not an error: generation degrades to
		// the backup path per request.
		APIKey string `yaml:"-"`
	} `yaml:"provider"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Cache struct {
		TTL string `yaml:"ttl"`
	} `yaml:"cache"`
}

// Load reads YAML config from path. A missing file is fine: the service runs
// on defaults and environment variables alone.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	cfg.applyDefaults()
	cfg.Provider.APIKey = apiKeyFromEnv(cfg.Provider.Name)
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Provider.Name == "" {
		c.Provider.Name = ProviderGemini
	}
	if c.Provider.Model == "" {
		switch c.Provider.Name {
		case ProviderOpenAI:
			c.Provider.Model = "gpt-4o-mini"
		default:
			c.Provider.Model = "gemini-1.5-flash"
		}
	}
	if c.Provider.Temperature == 0 {
		c.Provider.Temperature = 0.7
	}
	if c.Provider.MaxOutputTokens == 0 {
		c.Provider.MaxOutputTokens = 2000
	}
}

func apiKeyFromEnv(provider string) string {
	if provider == ProviderOpenAI {
		return os.Getenv("OPENAI_API_KEY")
	}
	return os.Getenv("GEMINI_API_KEY")
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

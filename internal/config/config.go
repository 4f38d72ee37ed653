package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProvider    = "openai"
	DefaultModel       = "gpt-4.1-mini" // OpenAI's name; other providers carry their own
	DefaultTemperature = 0.1
)

type Config struct {
	Provider    string  `yaml:"provider"`
	APIKey      string  `yaml:"api_key,omitempty"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url,omitempty"`
	Temperature float64 `yaml:"temperature"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console, json
	File   string `yaml:"file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider:    DefaultProvider,
		Temperature: DefaultTemperature,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "clinicon"), nil
}

// ConfigPath honours CLINICON_CONFIG before falling back to the per-user file.
func ConfigPath() (string, error) {
	if p := os.Getenv("CLINICON_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load resolves the configuration once at startup: defaults, then the YAML
// file if present, then .env and process environment. The API key is not
// required here; a missing key surfaces as a service error on first use.
func Load() (*Config, error) {
	// A missing .env is normal; existing environment variables win.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if err := loadFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Provider = envOr("CLINICON_PROVIDER", cfg.Provider)
	cfg.Model = envOr("CLINICON_MODEL", cfg.Model)
	cfg.BaseURL = envOr("CLINICON_BASE_URL", cfg.BaseURL)
	cfg.APIKey = envOr("OPENAI_API_KEY", cfg.APIKey)
	cfg.Log.Level = envOr("CLINICON_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envOr("CLINICON_LOG_FORMAT", cfg.Log.Format)
	cfg.Log.File = envOr("CLINICON_LOG_FILE", cfg.Log.File)
}

func (c *Config) validate() error {
	if GetProvider(c.Provider) == nil {
		return fmt.Errorf("unknown provider: %s", c.Provider)
	}
	if c.Provider == "custom" && c.BaseURL == "" {
		return fmt.Errorf("custom provider requires base_url")
	}
	// The model follows the provider unless set explicitly.
	if c.Model == "" {
		c.Model = GetProvider(c.Provider).DefaultModel
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

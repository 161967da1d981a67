package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "kiminote"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file and applies environment overrides. A missing
// file returns (nil, nil) so first-run setup can kick in; environment
// credentials alone are enough to skip setup.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if cfg := fromEnv(); cfg != nil {
				return cfg, nil
			}
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// fromEnv builds a config purely from environment variables, or nil when
// no credential is present.
func fromEnv() *Config {
	key := envAPIKey()
	if key == "" {
		return nil
	}
	cfg := DefaultConfig()
	cfg.APIKey = key
	return cfg
}

func applyEnv(cfg *Config) {
	if key := envAPIKey(); key != "" {
		cfg.APIKey = key
	}
}

func envAPIKey() string {
	for _, name := range []string{"KIMINOTE_API_KEY", "GEMINI_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

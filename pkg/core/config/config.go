// Package config loads the service configuration (YAML file with environment
// overrides) and owns the shared logger.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the full service configuration. Every field has a working
// default; the engine itself needs none of this.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Database struct {
		// URL is usually supplied via DATABASE_URL instead of the file.
		URL string `yaml:"url"`
	} `yaml:"database"`

	Redis struct {
		Addr       string `yaml:"addr"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"redis"`

	T12 struct {
		// CategoryOverrides points at an optional HJSON override file.
		CategoryOverrides string `yaml:"category_overrides"`
	} `yaml:"t12"`
}

// Load reads the YAML config file if present and applies environment
// overrides. A missing file is not an error; the defaults stand.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		cfg.Redis.Addr = addr
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Redis.TTLMinutes = 45
	return cfg
}

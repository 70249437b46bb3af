package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied after loading.
const (
	DefaultPort      = 8080
	DefaultTimeoutMS = 10000
	DefaultWidth     = 1200
	DefaultCacheSize = 64
)

// Default returns a configuration that works with no config file: sample
// timeline, light theme, port 8080.
func Default() AppConfig {
	cfg := AppConfig{}
	applyDefaults(&cfg)
	return cfg
}

// Load reads and validates the YAML configuration at path. An empty path
// yields the defaults.
func Load(path string) (AppConfig, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("validate config: %w", err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Planner.TimeoutMS == 0 {
		cfg.Planner.TimeoutMS = DefaultTimeoutMS
	}
	if cfg.Render.Width == 0 {
		cfg.Render.Width = DefaultWidth
	}
	if cfg.Render.Theme == "" {
		cfg.Render.Theme = "light"
	}
	if cfg.Render.CacheSize == 0 {
		cfg.Render.CacheSize = DefaultCacheSize
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

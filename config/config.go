// Package config loads tracker configuration from an optional YAML file
// and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ocampo/deskplan/office"
	"github.com/ocampo/deskplan/schedule"
)

// Config defines tracker configuration.
type Config struct {
	DB      DBConfig      `yaml:"db"`
	Window  WindowConfig  `yaml:"window"`
	Log     LogConfig     `yaml:"log"`
	Offices []office.Info `yaml:"offices"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type WindowConfig struct {
	// Span is how many days the past and future views reach.
	Span int `yaml:"span"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. A .env file in the working directory is honored if present.
// With no offices configured, a single default office is assumed.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DB: DBConfig{
			Path: "deskplan.db",
		},
		Window: WindowConfig{
			Span: schedule.DefaultSpan,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("DESKPLAN_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("DESKPLAN_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if spanStr := os.Getenv("DESKPLAN_WINDOW_SPAN"); spanStr != "" {
		span, err := strconv.Atoi(spanStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DESKPLAN_WINDOW_SPAN: %w", err)
		}
		cfg.Window.Span = span
	}
	if level := os.Getenv("DESKPLAN_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

// Registry builds the closed office set from the configuration.
func (c Config) Registry() *office.Registry {
	return office.NewRegistry(c.Offices)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// Package session manages salesdesk configuration and wires a ready-to-use
// sales service for one CLI invocation.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/tutu-network/salesdesk/internal/app/sales"
	"github.com/tutu-network/salesdesk/internal/domain"
)

// Config holds all salesdesk configuration.
type Config struct {
	Repository RepositoryConfig `toml:"repository"`
	Regional   RegionalConfig   `toml:"regional"`
	Validation ValidationConfig `toml:"validation"`
	Demo       DemoConfig       `toml:"demo"`
	Logging    LoggingConfig    `toml:"logging"`
}

// RepositoryConfig selects the backing structure and month limit.
type RepositoryConfig struct {
	Kind     string `toml:"kind"`
	Capacity int    `toml:"capacity"`
}

// RegionalConfig sets the regional matrix shape.
type RegionalConfig struct {
	Regions int `toml:"regions"`
	Months  int `toml:"months"`
}

// ValidationConfig bounds every sale and target value.
type ValidationConfig struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// DemoConfig controls sample data loading on start and reset.
type DemoConfig struct {
	Preload bool `toml:"preload"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// DefaultConfig returns the standard configuration: a doubly linked
// repository of 12 months, a 3×12 regional matrix and demo data.
func DefaultConfig() Config {
	return Config{
		Repository: RepositoryConfig{
			Kind:     string(domain.KindDoublyLinked),
			Capacity: 12,
		},
		Regional: RegionalConfig{
			Regions: 3,
			Months:  12,
		},
		Validation: ValidationConfig{
			Min: domain.MinValue,
			Max: domain.MaxValue,
		},
		Demo: DemoConfig{
			Preload: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Validate rejects configurations the service cannot be built from.
func (c Config) Validate() error {
	if _, err := domain.ParseRepositoryKind(c.Repository.Kind); err != nil {
		return fmt.Errorf("repository.kind: %w", err)
	}
	if c.Repository.Capacity <= 0 {
		return fmt.Errorf("repository.capacity: %w, got %d", domain.ErrInvalidCapacity, c.Repository.Capacity)
	}
	if c.Regional.Regions <= 0 || c.Regional.Months <= 0 {
		return fmt.Errorf("%w: regional shape must be positive, got %dx%d",
			domain.ErrValidation, c.Regional.Regions, c.Regional.Months)
	}
	if c.Validation.Min > c.Validation.Max {
		return fmt.Errorf("%w: validation.min %.2f exceeds validation.max %.2f",
			domain.ErrValidation, c.Validation.Min, c.Validation.Max)
	}
	return nil
}

// ServiceOptions maps the configuration onto sales service options.
func (c Config) ServiceOptions() (sales.Options, error) {
	if err := c.Validate(); err != nil {
		return sales.Options{}, err
	}
	kind, _ := domain.ParseRepositoryKind(c.Repository.Kind)
	return sales.Options{
		Kind:     kind,
		Capacity: c.Repository.Capacity,
		Regions:  c.Regional.Regions,
		Months:   c.Regional.Months,
		Range:    domain.ValueRange{Min: c.Validation.Min, Max: c.Validation.Max},
		Preload:  c.Demo.Preload,
	}, nil
}

// LoadEnv loads a .env file from the working directory if it exists.
// Variables already set in the environment win.
func LoadEnv() {
	_ = godotenv.Load()
}

// LoadConfig reads $SALESDESK_HOME/config.toml, falling back to defaults.
// SALESDESK_LOG_LEVEL overrides the file's logging level.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := ConfigPath()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("stat config: %w", err)
	}

	if lvl := os.Getenv("SALESDESK_LOG_LEVEL"); lvl != "" {
		cfg.Logging.Level = strings.ToLower(lvl)
	}
	return cfg, cfg.Validate()
}

// SaveConfig writes the config to $SALESDESK_HOME/config.toml.
func SaveConfig(cfg Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Home returns the salesdesk data directory.
func Home() string {
	if env := os.Getenv("SALESDESK_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".salesdesk")
}

// ConfigPath returns the location of config.toml.
func ConfigPath() string {
	return filepath.Join(Home(), "config.toml")
}

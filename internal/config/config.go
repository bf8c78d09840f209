package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MOVIESHELF_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: MOVIESHELF_PORT -> port,
	// MOVIESHELF_SEED_MIN_COUNT has no nested mapping so nested keys use
	// double underscores: MOVIESHELF_SEED__MIN_COUNT -> seed.min_count.
	if err := k.Load(env.Provider("MOVIESHELF_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "MOVIESHELF_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if c.Seed.MinCount < 0 {
		return fmt.Errorf("seed.min_count must be non-negative")
	}

	if c.PageSize.Default < 1 {
		return fmt.Errorf("page_size.default must be at least 1")
	}
	if c.PageSize.Max < c.PageSize.Default {
		return fmt.Errorf("page_size.max must be >= page_size.default")
	}

	return nil
}

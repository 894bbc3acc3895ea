package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg, filepath.Dir(path))
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Discover loads the config at path, or the nearest .flashquiz.yml above the
// working directory when path is empty. Without a file it returns Default.
func Discover(path string) (Config, string, error) {
	if path == "" {
		found, err := FindConfigPath("")
		if err != nil {
			return Config{}, "", err
		}
		if found == "" {
			return Default(), "", nil
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfig names a config file when no -config flag is given.
const EnvConfig = "DONKEY_CONFIG"

const fileName = "config.yaml"

// Load loads configuration with priority: defaults < file < flags.
// The file is the -config flag, then $DONKEY_CONFIG, then the first of
// ./donkey.yaml, ./config.yaml and ConfigDir()/config.yaml that exists.
// Explicitly named files must exist.
func Load() (*Config, error) {
	cfg := Default()

	path, explicit := ConfigPath(), true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path, explicit = findConfigFile(), false
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			if !explicit && errors.Is(err, os.ErrNotExist) {
				path = ""
			} else {
				return nil, fmt.Errorf("loading config from %s: %w", path, err)
			}
		}
	}
	cfg.Source = path

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultPath is where Save writes.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), fileName)
}

func findConfigFile() string {
	candidates := []string{
		"donkey.yaml",
		fileName,
		DefaultPath(),
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Donkey")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Donkey")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "donkey")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "donkey")
	}
}

// loadFromFile merges a YAML file over the values already in cfg. Unknown
// keys are rejected so a misspelled setting does not silently fall back to
// its default. An empty file changes nothing.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath returns the first existing candidate among
// $XDG_CONFIG_HOME/giturl/config.yaml and ~/.config/giturl/config.yaml, or
// "" when neither exists.
func DefaultConfigPath(getEnv func(string) string) string {
	var candidates []string
	if xdg := getEnv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "giturl", "config.yaml"))
	}
	if home := getEnv("HOME"); home != "" {
		candidates = append(candidates, filepath.Join(home, ".config", "giturl", "config.yaml"))
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadFromFile reads a YAML configuration file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	cfg := New()
	if err := applyFile(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile decodes path onto cfg. Keys missing from the file keep the
// value cfg already holds.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return &FileError{Path: path, Err: err}
	}
	return nil
}

// isNotExist reports whether err is a missing file error.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

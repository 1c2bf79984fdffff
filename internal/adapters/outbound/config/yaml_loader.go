package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mediacheck/mediacheck/internal/domain"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".mediacheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .mediacheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .mediacheck.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.ScanConfig, error) {
	cfg, err := l.LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads an explicit config file. A missing file is an error.
func (l *YAMLLoader) LoadFile(path string) (domain.ScanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ScanConfig{}, err
	}

	var cfg domain.ScanConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ScanConfig{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	// Validate before defaults are applied so typos in the user's input surface.
	if err := cfg.Validate(); err != nil {
		return domain.ScanConfig{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg.WithDefaults(), nil
}

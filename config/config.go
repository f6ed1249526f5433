// Package config resolves the linter's style configuration.
//
// Configuration is discovered by walking parent directories from the lint
// root until a .jlint.yaml file is found. A found-but-invalid file is a hard
// error; defaults are used only when no file exists at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	tt "github.com/jlint-dev/jlint/internal/types"
)

// FileName is the configuration file searched for in parent directories.
const FileName = ".jlint.yaml"

// IndentStyle selects the indentation character the indent-style rule enforces.
type IndentStyle string

const (
	IndentTabs   IndentStyle = "tabs"
	IndentSpaces IndentStyle = "spaces"
)

// Config holds the style parameters consumed by the lint rules. It is
// resolved once per invocation and never mutated during a lint pass.
type Config struct {
	IndentStyle   IndentStyle              `yaml:"indent_style"`
	IndentWidth   int                      `yaml:"indent_width"`
	MaxLineLength int                      `yaml:"max_line_length"`
	Rules         map[string]tt.ConfigRule `yaml:"rules"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		IndentStyle:   IndentSpaces,
		IndentWidth:   4,
		MaxLineLength: 100,
	}
}

// Load reads and validates the configuration file at path. Fields absent
// from the file keep their default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve returns the configuration for a lint invocation rooted at startDir.
// An explicit path takes precedence over discovery.
func Resolve(startDir, explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}
	if path, ok := Find(startDir); ok {
		return Load(path)
	}
	return Default(), nil
}

// Find walks from startDir up to the filesystem root looking for FileName.
func Find(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (c *Config) validate() error {
	if c.IndentStyle != IndentTabs && c.IndentStyle != IndentSpaces {
		return fmt.Errorf("indent_style must be %q or %q, got %q", IndentTabs, IndentSpaces, c.IndentStyle)
	}
	if c.IndentWidth <= 0 {
		return fmt.Errorf("indent_width must be positive, got %d", c.IndentWidth)
	}
	if c.MaxLineLength <= 0 {
		return fmt.Errorf("max_line_length must be positive, got %d", c.MaxLineLength)
	}
	return nil
}

// Package config loads the optional toolchain configuration.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/st3v3nmw/cfc/internal/registry"
)

// FileName is the configuration file under the cache directory.
const FileName = "config.yaml"

// Language overrides a language's commands. Omitted fields keep the defaults.
type Language struct {
	Scaffold [][]string `yaml:"scaffold"`
	Build    [][]string `yaml:"build"`
	Run      []string   `yaml:"run"`
}

// Config is the user's toolchain configuration.
//
//	workdir: ~/cp
//	languages:
//	  cpp:
//	    build:
//	      - [g++, -std=c++20, -O2, -o, "{stem}", "{file}"]
//	editors:
//	  vscode: codium
type Config struct {
	// WorkDir is where problems are created and run. Defaults to the current directory.
	WorkDir   string              `yaml:"workdir"`
	Languages map[string]Language `yaml:"languages"`
	Editors   map[string]string   `yaml:"editors"`
}

// Load reads the configuration from dir. A missing file yields an empty Config.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)

	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// ResolveWorkDir returns WorkDir with a leading ~ expanded, or "." if unset.
func (c *Config) ResolveWorkDir() (string, error) {
	switch {
	case c.WorkDir == "":
		return ".", nil
	case c.WorkDir == "~" || strings.HasPrefix(c.WorkDir, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand workdir: %w", err)
		}
		return filepath.Join(home, c.WorkDir[1:]), nil
	default:
		return c.WorkDir, nil
	}
}

// Apply installs the configured overrides into reg.
func (c *Config) Apply(reg *registry.Registry) error {
	for _, key := range slices.Sorted(maps.Keys(c.Languages)) {
		language, err := registry.ParseLanguage(key)
		if err != nil {
			return fmt.Errorf("config languages: %w", err)
		}

		override := c.Languages[key]
		err = reg.Override(language, registry.Override{
			Scaffold: override.Scaffold,
			Build:    override.Build,
			Run:      override.Run,
		})
		if err != nil {
			return fmt.Errorf("config languages.%s: %w", key, err)
		}
	}

	for _, key := range slices.Sorted(maps.Keys(c.Editors)) {
		editor, err := registry.ParseEditor(key)
		if err != nil {
			return fmt.Errorf("config editors: %w", err)
		}

		if err := reg.SetExecutable(editor, c.Editors[key]); err != nil {
			return fmt.Errorf("config editors.%s: %w", key, err)
		}
	}

	return nil
}

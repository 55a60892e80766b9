// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Optional TOML configuration for the to-html CLI.
// Usage: Loaded once at startup; CLI flags take priority when merging.

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config mirrors config.toml. Every field is optional; the zero value
// is a valid configuration.
type Config struct {
	Shell  Shell  `toml:"shell"`
	Output Output `toml:"output"`
}

// Shell configures how commands are executed.
type Shell struct {
	// Program is the shell commands run in, e.g. "fish". Empty means
	// auto-detection.
	Program string `toml:"program"`
}

// Output configures the generated HTML.
type Output struct {
	Cwd          bool     `toml:"cwd"`
	FullDocument bool     `toml:"full_document"`
	Highlight    []string `toml:"highlight"`
	CSSPrefix    string   `toml:"css_prefix"`
	Theme        string   `toml:"theme"`
}

// Load reads the config file. A missing file yields the zero Config; a
// malformed one is an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return loadFile(path)
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config file %s has invalid format: %w", path, err)
	}
	return cfg, nil
}

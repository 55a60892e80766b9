// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for to-html configuration.

package config

import (
	"os"
	"path/filepath"
)

const (
	configDirName  = "to-html"
	configFileName = "config.toml"
)

// Path returns the location of the config file: the to-html directory
// under the user's configuration root ($XDG_CONFIG_HOME on Linux,
// Application Support on macOS).
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configDirName, configFileName), nil
}

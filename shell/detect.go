// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/detect.go
// Summary: Figures out which shell invoked us.

package shell

import (
	"os"
	"path/filepath"
)

// knownShells are programs Detect accepts as shells. All of them
// support `-c <command>`.
var knownShells = map[string]bool{
	"bash": true, "zsh": true, "fish": true, "sh": true, "dash": true,
	"ksh": true, "mksh": true, "tcsh": true, "csh": true, "ash": true,
	"elvish": true, "nu": true, "oksh": true, "yash": true,
}

// Detect returns the shell to run commands in when none is configured:
// the nearest shell among our ancestor processes, then $SHELL, then
// bash.
func Detect() string {
	if s := ancestorShell(); s != "" {
		return s
	}
	return fallbackShell()
}

func fallbackShell() string {
	if s := filepath.Base(os.Getenv("SHELL")); knownShells[s] {
		return s
	}
	return "bash"
}

// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/to-html/prompt.go
// Summary: Renders the shell prompt shown before each command.

package main

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/tohtml/render"
)

// cwdWidthBudget is the display width the prompt grants the working
// directory before it is truncated from the left.
const cwdWidthBudget = 40

// writePrompt emits the prompt spans: a plain arrow, or the abbreviated
// working directory followed by a dollar sign when -cwd is set.
func writePrompt(b *strings.Builder, opts options) {
	if !opts.cwd {
		b.WriteString("<span class='")
		b.WriteString(opts.prefix)
		b.WriteString("shell'>&gt; </span>")
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "?"
	}
	b.WriteString("<span class='")
	b.WriteString(opts.prefix)
	b.WriteString("cwd'>")
	b.WriteString(render.EscapeString(abbreviateCwd(cwd, os.Getenv("HOME"))))
	b.WriteString(" </span><span class='")
	b.WriteString(opts.prefix)
	b.WriteString("shell'>$ </span>")
}

// abbreviateCwd replaces the home prefix with ~ and keeps the trailing
// part of over-long paths, measured in display cells.
func abbreviateCwd(cwd, home string) string {
	if home != "" {
		if cwd == home {
			cwd = "~"
		} else if strings.HasPrefix(cwd, home+"/") {
			cwd = "~" + cwd[len(home):]
		}
	}
	if runewidth.StringWidth(cwd) > cwdWidthBudget {
		cwd = runewidth.TruncateLeft(cwd, runewidth.StringWidth(cwd)-cwdWidthBudget, "…")
	}
	return cwd
}

// writeCaret emits the trailing block cursor after the final prompt.
func writeCaret(b *strings.Builder, opts options) {
	b.WriteString("<span class='")
	b.WriteString(opts.prefix)
	b.WriteString("caret'> </span>")
}

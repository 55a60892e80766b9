// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/to-html/opts.go
// Summary: CLI flag parsing and merging with the config file.
// Notes: Flags win over config values; short aliases are registered as
//        second flag names.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/framegrace/tohtml/config"
	"github.com/framegrace/tohtml/render"
	"github.com/framegrace/tohtml/theme"
)

type options struct {
	commands   []string
	shell      string // empty means auto-detect
	highlight  []string
	prefix     string // already escaped, with trailing "-" when set
	noRun      bool
	cwd        bool
	doc        bool
	hidePrompt bool
	theme      theme.Theme
}

// parseArgs parses argv (without the program name) and merges it with
// the config file.
func parseArgs(argv []string, cfg config.Config) (options, error) {
	fs := flag.NewFlagSet("to-html", flag.ContinueOnError)

	var (
		shellFlag     string
		highlightFlag string
		prefixFlag    string
		themeFlag     string
		noRun         bool
		cwd           bool
		doc           bool
		hidePrompt    bool
	)
	fs.StringVar(&shellFlag, "shell", "", "The shell to run the command in")
	fs.StringVar(&shellFlag, "s", "", "Shorthand for -shell")
	fs.StringVar(&highlightFlag, "highlight", "", "Programs with subcommands to highlight, comma-separated (e.g. git,cargo,npm)")
	fs.StringVar(&highlightFlag, "l", "", "Shorthand for -highlight")
	fs.StringVar(&prefixFlag, "prefix", "", "Prefix for CSS classes; with prefix to-html, the arg class becomes to-html-arg")
	fs.StringVar(&prefixFlag, "p", "", "Shorthand for -prefix")
	fs.StringVar(&themeFlag, "theme", "", "Color theme, dark or light")
	fs.BoolVar(&noRun, "no-run", false, "Don't run the commands, just emit the HTML for the command prompt")
	fs.BoolVar(&noRun, "n", false, "Shorthand for -no-run")
	fs.BoolVar(&cwd, "cwd", false, "Print the (abbreviated) working directory in the command prompt")
	fs.BoolVar(&cwd, "c", false, "Shorthand for -cwd")
	fs.BoolVar(&doc, "doc", false, "Output a complete HTML document, not just a <pre>")
	fs.BoolVar(&doc, "d", false, "Shorthand for -doc")
	fs.BoolVar(&hidePrompt, "hide-prompt", false, "Do not show the command prompt")
	fs.BoolVar(&hidePrompt, "H", false, "Shorthand for -hide-prompt")

	// Parse errors are reported by main as a single line; only -h
	// prints the usage text.
	fs.SetOutput(io.Discard)
	if err := fs.Parse(argv); err != nil {
		if err == flag.ErrHelp {
			fs.SetOutput(os.Stderr)
			fs.Usage()
		}
		return options{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts := options{
		commands:   fs.Args(),
		shell:      cfg.Shell.Program,
		highlight:  cfg.Output.Highlight,
		noRun:      noRun,
		cwd:        cwd || cfg.Output.Cwd,
		doc:        doc || cfg.Output.FullDocument,
		hidePrompt: hidePrompt,
	}
	if set["shell"] || set["s"] {
		opts.shell = shellFlag
	}
	if set["highlight"] || set["l"] {
		opts.highlight = splitList(highlightFlag)
	}

	prefix := cfg.Output.CSSPrefix
	if set["prefix"] || set["p"] {
		prefix = prefixFlag
	}
	if prefix != "" {
		opts.prefix = render.EscapeString(prefix) + "-"
	}

	themeName := cfg.Output.Theme
	if set["theme"] {
		themeName = themeFlag
	}
	if themeName != "" && themeName != "dark" && themeName != "light" {
		return options{}, fmt.Errorf("unknown theme %q (expected dark or light)", themeName)
	}
	opts.theme = theme.ByName(themeName)

	if len(opts.commands) == 0 {
		return options{}, fmt.Errorf("missing command (usage: to-html [flags] <command>...)")
	}
	return opts, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

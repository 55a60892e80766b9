// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/to-html/main.go
// Summary: to-html renders the output of shell commands as HTML.
// Usage: to-html [flags] <command>...

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/framegrace/tohtml/config"
	"github.com/framegrace/tohtml/highlight"
	"github.com/framegrace/tohtml/render"
	"github.com/framegrace/tohtml/shell"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts, err := parseArgs(argv, cfg)
	if err != nil {
		return err
	}

	conv := render.New().
		WithPrefix(opts.prefix).
		WithTheme(opts.theme)

	shellProg := opts.shell
	if shellProg == "" && !opts.noRun {
		shellProg = shell.Detect()
	}

	hlOpts := highlight.Options{Prefix: opts.prefix, Highlight: opts.highlight}

	var inner strings.Builder
	var childErr error
	for _, command := range opts.commands {
		if !opts.hidePrompt {
			writePrompt(&inner, opts)
			highlight.Command(&inner, command, hlOpts)
			inner.WriteByte('\n')
		}
		if opts.noRun {
			continue
		}
		out, err := shell.Run(command, shellProg)
		if out != "" {
			inner.WriteString(conv.Convert(out))
			inner.WriteByte('\n')
		}
		if err != nil {
			// Remember the failure but keep rendering: the captured
			// output is often the interesting part.
			if childErr == nil {
				childErr = fmt.Errorf("command %q: %w", command, err)
			}
		}
	}
	if !opts.noRun && !opts.hidePrompt {
		writePrompt(&inner, opts)
		writeCaret(&inner, opts)
		inner.WriteByte('\n')
	}

	html := conv.Pre(inner.String())
	if opts.doc {
		html = conv.Document(html, strings.Join(opts.commands, ", "), docLang())
	}
	fmt.Println(html)

	return childErr
}

// docLang derives the document language from $LANG, e.g. en_US.UTF-8
// becomes en-US.
func docLang() string {
	lang := os.Getenv("LANG")
	if lang == "" || lang == "C" {
		return ""
	}
	lang, _, _ = strings.Cut(lang, ".")
	return strings.ReplaceAll(lang, "_", "-")
}

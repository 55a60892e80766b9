// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/highlight.go
// Summary: Highlights the command line shown in the shell prompt.
// Usage: Consumed by the CLI when rendering prompts.
// Notes: Chroma tokenizes quoting, variables and comments; word runs
//        are classified positionally (command, flag, argument, ...).

package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"

	"github.com/framegrace/tohtml/render"
)

// Options control prompt-line highlighting.
type Options struct {
	// Prefix is prepended to every CSS class.
	Prefix string
	// Highlight lists programs whose first subcommand is emphasized,
	// e.g. "git" makes `git checkout` render checkout with class hl.
	Highlight []string
}

// word-position states, mirroring how a shell reads a line.
type lineState int

const (
	stateStart   lineState = iota // next word is a command
	stateDefault                  // next word is an argument
	statePipe                     // next word belongs to a redirection
)

type writer struct {
	b     *strings.Builder
	opts  Options
	state lineState
	// hlNext marks that the previous word was a program from
	// Options.Highlight, so the next word is its subcommand.
	hlNext bool
}

// Command writes the highlighted command line to b as HTML spans.
func Command(b *strings.Builder, command string, opts Options) {
	lexer := chroma.Coalesce(lexerFor(command))
	tokens, err := chroma.Tokenise(lexer, nil, command)
	if err != nil {
		b.WriteString(render.EscapeString(command))
		return
	}

	w := &writer{b: b, opts: opts, state: stateStart}
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		w.token(tok)
	}
}

func (w *writer) token(tok chroma.Token) {
	switch {
	case tok.Type.InCategory(chroma.Comment):
		w.span("com", tok.Value)
	case tok.Type == chroma.LiteralStringEscape:
		w.span("esc", tok.Value)
		w.state = stateDefault
		w.hlNext = false
	case tok.Type.InSubCategory(chroma.LiteralString):
		w.span("str", tok.Value)
		w.state = stateDefault
		w.hlNext = false
	case tok.Type == chroma.NameVariable || strings.HasPrefix(tok.Value, "$"):
		w.span("var", tok.Value)
		w.state = stateDefault
		w.hlNext = false
	default:
		// Everything else (plain text, keywords, builtins, operators)
		// is classified word by word so that positions survive however
		// chroma decided to split the text.
		w.words(tok.Value)
	}
}

// words splits a chunk into whitespace and word runs and classifies
// each word by position.
func (w *writer) words(chunk string) {
	for chunk != "" {
		if i := strings.IndexFunc(chunk, notSpace); i != 0 {
			if i < 0 {
				w.b.WriteString(chunk)
				return
			}
			w.b.WriteString(chunk[:i])
			chunk = chunk[i:]
		}
		end := strings.IndexFunc(chunk, isSpace)
		if end < 0 {
			end = len(chunk)
		}
		w.word(chunk[:end])
		chunk = chunk[end:]
	}
}

func isSpace(r rune) bool  { return r == ' ' || r == '\t' || r == '\n' }
func notSpace(r rune) bool { return !isSpace(r) }

func (w *writer) word(word string) {
	if class, starts := pipeClass(word); class != "" {
		w.span(class, word)
		w.hlNext = false
		if starts {
			w.state = stateStart
		} else {
			w.state = statePipe
		}
		return
	}

	switch {
	case w.state == stateStart:
		if strings.Contains(word, "=") && !strings.HasPrefix(word, "-") {
			// VAR=value assignment before the command; stay in start.
			w.span("env", word)
			return
		}
		w.span("cmd", word)
		w.state = stateDefault
		for _, h := range w.opts.Highlight {
			if word == h {
				w.hlNext = true
				return
			}
		}
	case w.state == statePipe:
		w.span("pipe", word)
		w.state = stateDefault
	case strings.HasPrefix(word, "-"):
		if flag, arg, ok := strings.Cut(word, "="); ok {
			w.span("flag", flag)
			w.span("arg", "="+arg)
		} else {
			w.span("flag", word)
		}
		w.state = stateDefault
		w.hlNext = false
	case w.hlNext:
		w.span("hl", word)
		w.state = stateDefault
		w.hlNext = false
	default:
		w.span("arg", word)
		w.state = stateDefault
	}
}

// pipeClass classifies shell control words. The second result reports
// whether a new command starts after the word.
func pipeClass(word string) (class string, startsCommand bool) {
	switch word {
	case ";", "&&", "||":
		return "punct", true
	case "|":
		return "pipe", true
	case "<", ">", ">>", "&>", "2>", "2>>", "1>", "0<", "2>&1", "1>&2":
		return "pipe", false
	}
	return "", false
}

func (w *writer) span(class, text string) {
	w.b.WriteString("<span class='")
	w.b.WriteString(w.opts.Prefix)
	w.b.WriteString(class)
	w.b.WriteString("'>")
	w.b.WriteString(render.EscapeString(text))
	w.b.WriteString("</span>")
}

// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/converter.go
// Summary: Converts terminal output with ANSI escapes to styled HTML.
// Usage: render.New().WithTheme(...).Convert(input)

package render

import (
	"strings"

	"github.com/framegrace/tohtml/ansi"
	"github.com/framegrace/tohtml/theme"
)

// Converter turns a string with ANSI escape sequences into HTML.
// A Converter is immutable after construction; the With* methods return
// modified copies, and Convert carries no state across calls, so one
// Converter may be used from any number of goroutines.
type Converter struct {
	skipEscape   bool
	skipOptimize bool
	prefix       string
	theme        theme.Theme
	palette      theme.Palette16
}

// New returns a Converter with default options: HTML escaping and span
// optimization on, empty class prefix, dark theme.
func New() Converter {
	return Converter{theme: theme.Dark, palette: theme.Dark.Palette}
}

// WithSkipEscape disables HTML escaping of text. The caller promises
// the input contains no markup-significant characters.
func (c Converter) WithSkipEscape(skip bool) Converter {
	c.skipEscape = skip
	return c
}

// WithSkipOptimize emits the raw renderer output: one span per styled
// text run, without fusing adjacent runs of identical style.
func (c Converter) WithSkipOptimize(skip bool) Converter {
	c.skipOptimize = skip
	return c
}

// WithPrefix sets the CSS class prefix.
func (c Converter) WithPrefix(prefix string) Converter {
	c.prefix = prefix
	return c
}

// WithTheme selects the theme used for default colors, and its palette
// unless WithFourBitPalette set one that differs from the current
// theme's.
func (c Converter) WithTheme(t theme.Theme) Converter {
	if c.palette == c.theme.Palette {
		c.palette = t.Palette
	}
	c.theme = t
	return c
}

// WithFourBitPalette overrides the values behind the 16 named colors.
// Spans still carry class names; the override feeds Stylesheet only.
func (c Converter) WithFourBitPalette(p theme.Palette16) Converter {
	c.palette = p
	return c
}

// Prefix returns the configured CSS class prefix.
func (c Converter) Prefix() string { return c.prefix }

// Theme returns the configured theme.
func (c Converter) Theme() theme.Theme { return c.theme }

// Palette returns the active 16-color palette.
func (c Converter) Palette() theme.Palette16 { return c.palette }

// Convert renders input as HTML. It never fails: malformed escape
// sequences are dropped and unknown SGR codes ignored.
func (c Converter) Convert(input string) string {
	var b strings.Builder
	if n := len(input); n > 64 {
		b.Grow(n)
	} else {
		b.Grow(64)
	}

	var st styleStack
	open := "" // head of the currently open span, "" if none
	lex := ansi.NewLexer(input)
	for {
		tok, ok := lex.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case ansi.TokenSGR:
			for _, op := range ansi.Ops(tok.Params) {
				st.apply(op)
			}
		case ansi.TokenText:
			head := c.spanHead(&st)
			if c.skipOptimize {
				if head != "" {
					b.WriteString(head)
				}
				c.writeText(&b, tok.Text)
				if head != "" {
					b.WriteString("</span>")
				}
			} else {
				if head != open {
					if open != "" {
						b.WriteString("</span>")
					}
					if head != "" {
						b.WriteString(head)
					}
					open = head
				}
				c.writeText(&b, tok.Text)
			}
		}
	}
	if open != "" {
		b.WriteString("</span>")
	}
	return b.String()
}

func (c Converter) writeText(b *strings.Builder, s string) {
	if c.skipEscape {
		b.WriteString(s)
		return
	}
	escapeTo(b, s)
}

var attrClasses = map[ansi.AttrKind]string{
	ansi.Bold:            "bold",
	ansi.Faint:           "faint",
	ansi.Italic:          "italic",
	ansi.Underline:       "underline",
	ansi.DoubleUnderline: "double-underline",
	ansi.Overline:        "overline",
	ansi.CrossedOut:      "strike",
}

// spanHead renders the opening tag for the current effective style, or
// "" when the style is the default. Non-color attributes become classes
// in stack order; the foreground and background follow. Named colors
// are classes, palette/truecolor values inline styles. When reverse
// video is active, foreground and background swap after theme defaults
// are materialized, matching hardware terminals.
func (c Converter) spanHead(st *styleStack) string {
	if st.empty() {
		return ""
	}

	var classes, styles strings.Builder
	class := func(name string) {
		if classes.Len() > 0 {
			classes.WriteByte(' ')
		}
		classes.WriteString(c.prefix)
		classes.WriteString(name)
	}
	style := func(prop, value string) {
		if styles.Len() > 0 {
			styles.WriteByte(';')
		}
		styles.WriteString(prop)
		styles.WriteByte(':')
		styles.WriteString(value)
	}

	var fg, bg *ansi.Color
	reverse := false
	for i := range st.attrs {
		a := &st.attrs[i]
		switch a.Kind {
		case ansi.Fg:
			fg = &a.Color
		case ansi.Bg:
			bg = &a.Color
		case ansi.Reverse:
			reverse = true
		default:
			class(attrClasses[a.Kind])
		}
	}

	if reverse {
		newFg, newBg := bg, fg
		if newFg == nil {
			def := rgbColor(c.theme.Background)
			newFg = &def
		}
		if newBg == nil {
			def := rgbColor(c.theme.Foreground)
			newBg = &def
		}
		fg, bg = newFg, newBg
	}

	if fg != nil {
		if name := fg.Name(); name != "" {
			class(name)
		} else {
			style("color", fg.Hex())
		}
	}
	if bg != nil {
		if name := bg.Name(); name != "" {
			class("bg-" + name)
		} else {
			style("background", bg.Hex())
		}
	}

	if classes.Len() == 0 && styles.Len() == 0 {
		return ""
	}
	var head strings.Builder
	head.WriteString("<span")
	if classes.Len() > 0 {
		head.WriteString(" class='")
		head.WriteString(classes.String())
		head.WriteString("'")
	}
	if styles.Len() > 0 {
		head.WriteString(" style='")
		head.WriteString(styles.String())
		head.WriteString("'")
	}
	head.WriteString(">")
	return head.String()
}

func rgbColor(c theme.RGB) ansi.Color {
	return ansi.RGB(c.R, c.G, c.B)
}

// Convert renders input with default options. Equivalent to
// New().Convert(input).
func Convert(input string) string {
	return New().Convert(input)
}

// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/style.go
// Summary: Embedded stylesheet for full-document output.
// Usage: render.Document includes the result of Stylesheet.

package render

import (
	"fmt"
	"strings"

	"github.com/framegrace/tohtml/ansi"
)

// promptStyles maps prompt-line classes to their rules. These cover the
// spans emitted by the highlight package and the shell prompt.
var promptStyles = []struct{ class, rules string }{
	{"shell", "color:#32d132;user-select:none;pointer-events:none"},
	{"cwd", "color:#32d1b4"},
	{"cmd", "color:#419df3"},
	{"hl", "color:#00ffff;font-weight:bold"},
	{"arg", "color:inherit"},
	{"env", "color:#8fd14f"},
	{"str", "color:#ffba24"},
	{"pipe", "color:#a2be00"},
	{"punct", "color:#a2be00"},
	{"flag", "color:#ff7167"},
	{"var", "color:#d5aff5"},
	{"esc", "color:#d558f5;font-weight:bold"},
	{"com", "color:#808080"},
	{"caret", "background-color:#ffffff;user-select:none"},
}

// attrStyles maps the text-attribute classes the converter emits.
var attrStyles = []struct{ class, rules string }{
	{"bold", "font-weight:bold"},
	{"faint", "opacity:0.67"},
	{"italic", "font-style:italic"},
	{"underline", "text-decoration:underline"},
	{"double-underline", "text-decoration:underline double"},
	{"overline", "text-decoration:overline"},
	{"strike", "text-decoration:line-through"},
}

// Stylesheet builds the embedded CSS for a document: page colors from
// the converter's theme, terminal block, prompt classes, attribute
// classes, and the 16 named colors from the active palette as both
// foreground and background classes.
func (c Converter) Stylesheet() string {
	var b strings.Builder
	p := c.prefix

	fmt.Fprintf(&b, "body {\n  background-color: %s;\n  color: %s;\n}\n",
		c.theme.Background.Hex(), c.theme.Foreground.Hex())
	fmt.Fprintf(&b, ".%sterminal {\n  overflow: auto;\n  line-height: 120%%;\n}\n", p)

	for _, s := range promptStyles {
		fmt.Fprintf(&b, ".%sterminal .%s%s { %s }\n", p, p, s.class, s.rules)
	}
	for _, s := range attrStyles {
		fmt.Fprintf(&b, ".%sterminal .%s%s { %s }\n", p, p, s.class, s.rules)
	}
	for i, name := range ansi.ColorNames() {
		hex := c.palette[i].Hex()
		fmt.Fprintf(&b, ".%sterminal .%s%s { color: %s }\n", p, p, name, hex)
		fmt.Fprintf(&b, ".%sterminal .%sbg-%s { background-color: %s }\n", p, p, name, hex)
	}
	return b.String()
}

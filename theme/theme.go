// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Built-in themes: default colors and the 16-color palette.
// Usage: Selected on the Converter and by the document stylesheet.

package theme

import "fmt"

// RGB is a concrete color channel triple.
type RGB struct {
	R, G, B uint8
}

// Hex returns the #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette16 maps the 16 named color slots to concrete values.
type Palette16 [16]RGB

// Theme carries the default foreground and background and the values
// behind the 16 named colors. Named colors are still emitted as CSS
// classes; the palette feeds the document stylesheet. Reverse video
// materializes missing colors from Foreground and Background.
type Theme struct {
	Name       string
	Foreground RGB
	Background RGB
	Palette    Palette16
}

var standardPalette = Palette16{
	{0x00, 0x00, 0x00}, {0xaa, 0x00, 0x00}, {0x00, 0xaa, 0x00}, {0xaa, 0x66, 0x00},
	{0x00, 0x00, 0xaa}, {0xaa, 0x00, 0xaa}, {0x00, 0xaa, 0xaa}, {0xaa, 0xaa, 0xaa},
	{0x55, 0x55, 0x55}, {0xff, 0x55, 0x55}, {0x55, 0xff, 0x55}, {0xff, 0xff, 0x55},
	{0x55, 0x55, 0xff}, {0xff, 0x55, 0xff}, {0x55, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// Dark is the default theme: light text on a near-black page.
var Dark = Theme{
	Name:       "dark",
	Foreground: RGB{0xff, 0xff, 0xff},
	Background: RGB{0x14, 0x14, 0x14},
	Palette:    standardPalette,
}

// Light renders dark text on white.
var Light = Theme{
	Name:       "light",
	Foreground: RGB{0x1a, 0x1a, 0x1a},
	Background: RGB{0xff, 0xff, 0xff},
	Palette: Palette16{
		{0x00, 0x00, 0x00}, {0xaa, 0x00, 0x00}, {0x00, 0x88, 0x00}, {0x99, 0x66, 0x00},
		{0x00, 0x00, 0xcc}, {0xaa, 0x00, 0xaa}, {0x00, 0x88, 0x99}, {0x77, 0x77, 0x77},
		{0x55, 0x55, 0x55}, {0xdd, 0x33, 0x33}, {0x22, 0x99, 0x22}, {0xaa, 0x88, 0x00},
		{0x33, 0x55, 0xee}, {0xcc, 0x44, 0xcc}, {0x11, 0x99, 0xaa}, {0x00, 0x00, 0x00},
	},
}

// ByName resolves a theme name; unknown names fall back to Dark.
func ByName(name string) Theme {
	if name == "light" {
		return Light
	}
	return Dark
}

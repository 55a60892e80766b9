// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ansi/color.go
// Summary: Color model for SGR colors: named, 256-palette and RGB.
// Usage: Consumed by the SGR machine and the HTML renderer.

package ansi

import "fmt"

// ColorMode defines the type of color stored.
type ColorMode uint8

const (
	ColorModeNamed ColorMode = iota // one of the 16 standard slots
	ColorMode256                    // 256-color palette, index 16-255
	ColorModeRGB                    // 24-bit "true" color
)

// Color represents a color in potentially different modes.
type Color struct {
	Mode    ColorMode
	Value   uint8 // color slot for Named (0-15) and 256-mode (16-255)
	R, G, B uint8 // channel values for RGB mode
}

// Named returns one of the 16 standard terminal colors.
func Named(idx uint8) Color {
	return Color{Mode: ColorModeNamed, Value: idx & 0x0f}
}

// Palette256 returns an xterm 256-palette color. Indices 0-15 alias the
// named colors and are normalized to ColorModeNamed, so they pick up
// CSS classes and theme palettes exactly like 3/4-bit colors.
func Palette256(idx uint8) Color {
	if idx < 16 {
		return Named(idx)
	}
	return Color{Mode: ColorMode256, Value: idx}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorModeRGB, R: r, G: g, B: b}
}

// colorNames are the CSS class names of the 16 named slots.
var colorNames = [16]string{
	"black", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// ColorNames returns the class names of the 16 named slots in order.
func ColorNames() [16]string { return colorNames }

// Name returns the CSS class name for a named color, or "" for other modes.
func (c Color) Name() string {
	if c.Mode != ColorModeNamed {
		return ""
	}
	return colorNames[c.Value&0x0f]
}

// Hex returns the color as a #rrggbb string. Palette indices 16-231 are
// the 6×6×6 cube, 232-255 the grayscale ramp; named colors use the
// standard VGA values (themes may override those via the stylesheet).
func (c Color) Hex() string {
	switch c.Mode {
	case ColorModeRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	case ColorMode256:
		r, g, b := cube256(c.Value)
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	default:
		r, g, b := vgaPalette[c.Value&0x0f][0], vgaPalette[c.Value&0x0f][1], vgaPalette[c.Value&0x0f][2]
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
}

// cube256 expands an xterm palette index (16-255) to RGB.
func cube256(idx uint8) (r, g, b uint8) {
	if idx >= 232 {
		v := 8 + 10*(idx-232)
		return v, v, v
	}
	i := idx - 16
	levels := [6]uint8{0, 0x5f, 0x87, 0xaf, 0xd7, 0xff}
	return levels[i/36], levels[i/6%6], levels[i%6]
}

// vgaPalette holds the historical values of the 16 named slots, used
// when a concrete value is needed and no theme palette applies.
var vgaPalette = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0xaa, 0x00, 0x00}, {0x00, 0xaa, 0x00}, {0xaa, 0x66, 0x00},
	{0x00, 0x00, 0xaa}, {0xaa, 0x00, 0xaa}, {0x00, 0xaa, 0xaa}, {0xaa, 0xaa, 0xaa},
	{0x55, 0x55, 0x55}, {0xff, 0x55, 0x55}, {0x55, 0xff, 0x55}, {0xff, 0xff, 0x55},
	{0x55, 0x55, 0xff}, {0xff, 0x55, 0xff}, {0x55, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import "testing"

func TestHex(t *testing.T) {
	if got := (RGB{0xa1, 0xb2, 0xc3}).Hex(); got != "#a1b2c3" {
		t.Errorf("Hex = %q", got)
	}
	if got := (RGB{}).Hex(); got != "#000000" {
		t.Errorf("Hex of zero = %q", got)
	}
}

func TestByName(t *testing.T) {
	if ByName("light").Name != "light" {
		t.Error("light theme not resolved")
	}
	if ByName("dark").Name != "dark" {
		t.Error("dark theme not resolved")
	}
	if ByName("no-such").Name != "dark" {
		t.Error("unknown theme should fall back to dark")
	}
}

func TestThemesDiffer(t *testing.T) {
	if Dark.Background == Light.Background {
		t.Error("dark and light backgrounds should differ")
	}
	if Dark.Palette[1] == (RGB{}) {
		t.Error("dark palette red is unset")
	}
}

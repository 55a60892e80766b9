// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ansi

import (
	"reflect"
	"testing"
)

func TestOps(t *testing.T) {
	push := func(a Attribute) Op { return Op{Kind: OpPush, Attr: a} }
	remove := func(c Category) Op { return Op{Kind: OpRemove, Cat: c} }

	tests := []struct {
		name   string
		params []uint8
		want   []Op
	}{
		{
			name:   "reset",
			params: []uint8{0},
			want:   []Op{{Kind: OpReset}},
		},
		{
			name:   "bold red",
			params: []uint8{1, 31},
			want: []Op{
				push(Attribute{Kind: Bold}),
				push(Attribute{Kind: Fg, Color: Named(1)}),
			},
		},
		{
			name:   "styles and their offs",
			params: []uint8{2, 3, 4, 7, 9, 21, 53, 22, 23, 24, 27, 29, 55},
			want: []Op{
				push(Attribute{Kind: Faint}),
				push(Attribute{Kind: Italic}),
				push(Attribute{Kind: Underline}),
				push(Attribute{Kind: Reverse}),
				push(Attribute{Kind: CrossedOut}),
				push(Attribute{Kind: DoubleUnderline}),
				push(Attribute{Kind: Overline}),
				remove(CatIntensity),
				remove(CatItalic),
				remove(CatUnderline),
				remove(CatReverse),
				remove(CatStrike),
				remove(CatOverline),
			},
		},
		{
			name:   "default colors",
			params: []uint8{39, 49},
			want:   []Op{remove(CatForeground), remove(CatBackground)},
		},
		{
			name:   "palette color normalizes to named",
			params: []uint8{38, 5, 9},
			want:   []Op{push(Attribute{Kind: Fg, Color: Named(9)})},
		},
		{
			name:   "palette color above 15 stays indexed",
			params: []uint8{48, 5, 200},
			want:   []Op{push(Attribute{Kind: Bg, Color: Palette256(200)})},
		},
		{
			name:   "truecolor",
			params: []uint8{38, 2, 10, 20, 30},
			want:   []Op{push(Attribute{Kind: Fg, Color: RGB(10, 20, 30)})},
		},
		{
			name:   "bright foreground",
			params: []uint8{90},
			want:   []Op{push(Attribute{Kind: Fg, Color: Named(8)})},
		},
		{
			name:   "bright background",
			params: []uint8{107},
			want:   []Op{push(Attribute{Kind: Bg, Color: Named(15)})},
		},
		{
			name:   "background range",
			params: []uint8{44},
			want:   []Op{push(Attribute{Kind: Bg, Color: Named(4)})},
		},
		{
			name:   "unknown codes are skipped",
			params: []uint8{5, 8, 31, 73},
			want:   []Op{push(Attribute{Kind: Fg, Color: Named(1)})},
		},
		{
			name:   "truncated extension aborts",
			params: []uint8{38},
			want:   []Op{},
		},
		{
			name:   "bad extension selector aborts the rest",
			params: []uint8{31, 38, 7, 3, 32},
			want:   []Op{push(Attribute{Kind: Fg, Color: Named(1)})},
		},
		{
			name:   "truncated truecolor aborts",
			params: []uint8{48, 2, 1, 2},
			want:   []Op{},
		},
		{
			name:   "ops continue after extension",
			params: []uint8{38, 5, 100, 1},
			want: []Op{
				push(Attribute{Kind: Fg, Color: Palette256(100)}),
				push(Attribute{Kind: Bold}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ops(tt.params)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ops(%v) = %+v, want %+v", tt.params, got, tt.want)
			}
		})
	}
}

func TestAttributeCategories(t *testing.T) {
	pairs := []struct {
		attr Attribute
		cat  Category
	}{
		{Attribute{Kind: Bold}, CatIntensity},
		{Attribute{Kind: Faint}, CatIntensity},
		{Attribute{Kind: Italic}, CatItalic},
		{Attribute{Kind: Underline}, CatUnderline},
		{Attribute{Kind: DoubleUnderline}, CatUnderline},
		{Attribute{Kind: Overline}, CatOverline},
		{Attribute{Kind: CrossedOut}, CatStrike},
		{Attribute{Kind: Reverse}, CatReverse},
		{Attribute{Kind: Fg}, CatForeground},
		{Attribute{Kind: Bg}, CatBackground},
	}
	for _, p := range pairs {
		if got := p.attr.Category(); got != p.cat {
			t.Errorf("category of %v = %v, want %v", p.attr.Kind, got, p.cat)
		}
	}
}

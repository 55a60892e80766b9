// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"reflect"
	"testing"

	"github.com/framegrace/tohtml/ansi"
)

func kinds(s *styleStack) []ansi.AttrKind {
	out := make([]ansi.AttrKind, 0, len(s.attrs))
	for _, a := range s.attrs {
		out = append(out, a.Kind)
	}
	return out
}

func TestStackCategoryUniqueness(t *testing.T) {
	var s styleStack
	s.push(ansi.Attribute{Kind: ansi.Bold})
	s.push(ansi.Attribute{Kind: ansi.Faint})
	if got := kinds(&s); !reflect.DeepEqual(got, []ansi.AttrKind{ansi.Faint}) {
		t.Errorf("faint should replace bold, got %v", got)
	}

	s.clear()
	s.push(ansi.Attribute{Kind: ansi.Fg, Color: ansi.Named(1)})
	s.push(ansi.Attribute{Kind: ansi.Fg, Color: ansi.Named(4)})
	if len(s.attrs) != 1 || s.attrs[0].Color != ansi.Named(4) {
		t.Errorf("second foreground should replace the first, got %+v", s.attrs)
	}
}

func TestStackRemovePreservesOrder(t *testing.T) {
	var s styleStack
	s.push(ansi.Attribute{Kind: ansi.Underline})
	s.push(ansi.Attribute{Kind: ansi.Fg, Color: ansi.Named(1)})
	s.push(ansi.Attribute{Kind: ansi.Bg, Color: ansi.Named(4)})
	s.removeCategory(ansi.CatUnderline)

	want := []ansi.AttrKind{ansi.Fg, ansi.Bg}
	if got := kinds(&s); !reflect.DeepEqual(got, want) {
		t.Errorf("survivor order = %v, want %v", got, want)
	}
}

func TestStackReapplyMovesToTop(t *testing.T) {
	var s styleStack
	s.push(ansi.Attribute{Kind: ansi.Bold})
	s.push(ansi.Attribute{Kind: ansi.Fg, Color: ansi.Named(1)})
	s.push(ansi.Attribute{Kind: ansi.Bold})

	want := []ansi.AttrKind{ansi.Fg, ansi.Bold}
	if got := kinds(&s); !reflect.DeepEqual(got, want) {
		t.Errorf("re-applied attribute should move to the top, got %v", got)
	}
}

func TestStackClear(t *testing.T) {
	var s styleStack
	s.push(ansi.Attribute{Kind: ansi.Italic})
	s.push(ansi.Attribute{Kind: ansi.Reverse})
	s.clear()
	if !s.empty() {
		t.Errorf("stack not empty after clear: %+v", s.attrs)
	}
	s.push(ansi.Attribute{Kind: ansi.Bold})
	if got := kinds(&s); !reflect.DeepEqual(got, []ansi.AttrKind{ansi.Bold}) {
		t.Errorf("stack unusable after clear, got %v", got)
	}
}

func TestStackRemoveMissingCategory(t *testing.T) {
	var s styleStack
	s.push(ansi.Attribute{Kind: ansi.Bold})
	s.removeCategory(ansi.CatUnderline)
	if got := kinds(&s); !reflect.DeepEqual(got, []ansi.AttrKind{ansi.Bold}) {
		t.Errorf("removing an absent category must not disturb the stack, got %v", got)
	}
}

// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/stack.go
// Summary: Ordered stack of active text attributes.
// Notes: At most one entry per category. Removal deletes in place so
//        the relative order of survivors is preserved; rebuilding via
//        pop/push would reverse them.

package render

import "github.com/framegrace/tohtml/ansi"

type styleStack struct {
	attrs []ansi.Attribute
}

// apply performs one SGR-derived operation.
func (s *styleStack) apply(op ansi.Op) {
	switch op.Kind {
	case ansi.OpReset:
		s.clear()
	case ansi.OpPush:
		s.push(op.Attr)
	case ansi.OpRemove:
		s.removeCategory(op.Cat)
	}
}

// push adds a to the top. Any existing entry of a's category is removed
// first, even an identical one: re-applying a style moves it to the top.
func (s *styleStack) push(a ansi.Attribute) {
	s.removeCategory(a.Category())
	s.attrs = append(s.attrs, a)
}

// removeCategory deletes the entry of category c, if present, without
// disturbing the order of the remaining entries.
func (s *styleStack) removeCategory(c ansi.Category) {
	for i, a := range s.attrs {
		if a.Category() == c {
			s.attrs = append(s.attrs[:i], s.attrs[i+1:]...)
			return
		}
	}
}

func (s *styleStack) clear() {
	s.attrs = s.attrs[:0]
}

func (s *styleStack) empty() bool {
	return len(s.attrs) == 0
}

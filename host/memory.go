package host

import (
	"strings"

	"github.com/tsawler/textselect/geom"
	"github.com/tsawler/textselect/text"
)

// Range is one contiguous selected span within a single fragment: rune
// offsets Start..End into the fragment's text.
type Range struct {
	Fragment text.Fragment
	Start    int
	End      int
}

// MemorySelection is an in-memory Selection over a fragment list. Fragment
// order in the list is taken as character-stream order, and selection
// endpoints are matched to fragments by comparing Node values.
//
// It is the test double used throughout the engine's own tests and a
// reference implementation for embedders without a native selection
// primitive.
type MemorySelection struct {
	frags []text.Fragment

	active            bool
	anchorIdx, anchor int
	focusIdx, focus   int
}

// NewMemorySelection creates an empty selection over the given fragments.
func NewMemorySelection(fragments []text.Fragment) *MemorySelection {
	return &MemorySelection{frags: fragments}
}

// SetFragments replaces the fragment list, keeping the selection cleared.
// Hosts call this when the text layer repaints.
func (s *MemorySelection) SetFragments(fragments []text.Fragment) {
	s.frags = fragments
	s.active = false
}

// indexOf resolves a node to its fragment index, or -1 if unknown.
func (s *MemorySelection) indexOf(node text.Node) int {
	for i := range s.frags {
		if s.frags[i].Node == node {
			return i
		}
	}
	return -1
}

// SetAnchor collapses the selection to a caret at the given position. An
// unknown node leaves the selection untouched.
func (s *MemorySelection) SetAnchor(node text.Node, offset int) {
	idx := s.indexOf(node)
	if idx < 0 {
		return
	}
	offset = clampOffset(offset, s.frags[idx])
	s.active = true
	s.anchorIdx, s.anchor = idx, offset
	s.focusIdx, s.focus = idx, offset
}

// ExtendTo moves the focus end to the given position. Extending an empty
// selection behaves like SetAnchor.
func (s *MemorySelection) ExtendTo(node text.Node, offset int) {
	if !s.active {
		s.SetAnchor(node, offset)
		return
	}
	idx := s.indexOf(node)
	if idx < 0 {
		return
	}
	s.focusIdx = idx
	s.focus = clampOffset(offset, s.frags[idx])
}

// Clear removes the selection.
func (s *MemorySelection) Clear() {
	s.active = false
}

// IsEmpty reports whether the selection has no active range, collapsed
// carets included as active.
func (s *MemorySelection) IsEmpty() bool {
	return !s.active
}

// IsCollapsed reports whether the selection is a caret: active, but anchor
// and focus coincide.
func (s *MemorySelection) IsCollapsed() bool {
	return s.active && s.anchorIdx == s.focusIdx && s.anchor == s.focus
}

// ordered returns the selection endpoints in stream order.
func (s *MemorySelection) ordered() (si, so, ei, eo int) {
	if s.anchorIdx < s.focusIdx || (s.anchorIdx == s.focusIdx && s.anchor <= s.focus) {
		return s.anchorIdx, s.anchor, s.focusIdx, s.focus
	}
	return s.focusIdx, s.focus, s.anchorIdx, s.anchor
}

// Ranges returns the selected spans in stream order, one per touched
// fragment, endpoints clipped to the selection. A collapsed or inactive
// selection yields nil.
func (s *MemorySelection) Ranges() []Range {
	if !s.active || s.IsCollapsed() {
		return nil
	}
	si, so, ei, eo := s.ordered()

	var out []Range
	for i := si; i <= ei && i < len(s.frags); i++ {
		f := s.frags[i]
		start, end := 0, f.Len()
		if i == si {
			start = so
		}
		if i == ei {
			end = eo
		}
		if start >= end {
			continue
		}
		out = append(out, Range{Fragment: f, Start: start, End: end})
	}
	return out
}

// Boxes returns one bounding box per selected span. Partial spans at the
// endpoints are approximated by linear interpolation across the fragment's
// width; hosts with per-glyph metrics can substitute a finer Selection.
func (s *MemorySelection) Boxes() []geom.Rect {
	ranges := s.Ranges()
	out := make([]geom.Rect, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, rangeBox(r))
	}
	return out
}

// Text returns the selected text. Spans of fragments sharing a visual row
// are joined with a space, row changes with a newline.
func (s *MemorySelection) Text() string {
	ranges := s.Ranges()
	if len(ranges) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range ranges {
		if i > 0 {
			if sameRow(ranges[i-1].Fragment.Box, r.Fragment.Box) {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('\n')
			}
		}
		runes := []rune(r.Fragment.Text)
		sb.WriteString(string(runes[r.Start:r.End]))
	}
	return sb.String()
}

// rangeBox computes the bounding box of a span, interpolating partial
// offsets across the fragment width.
func rangeBox(r Range) geom.Rect {
	box := r.Fragment.Box
	n := r.Fragment.Len()
	if n == 0 {
		return box
	}
	w := box.Width()
	left := box.Left + w*float64(r.Start)/float64(n)
	right := box.Left + w*float64(r.End)/float64(n)
	return geom.Rect{Left: left, Top: box.Top, Right: right, Bottom: box.Bottom}
}

// sameRow reports whether two fragment boxes overlap vertically.
func sameRow(a, b geom.Rect) bool {
	return a.Top <= b.Bottom && b.Top <= a.Bottom
}

func clampOffset(offset int, f text.Fragment) int {
	if offset < 0 {
		return 0
	}
	if n := f.Len(); offset > n {
		return n
	}
	return offset
}

package host

import (
	"github.com/tsawler/textselect/geom"
	"github.com/tsawler/textselect/text"
)

// Selection abstracts the host's text-selection state. Anchor is the fixed
// end of the selection, the focus is the moving end; SetAnchor collapses
// the selection to a caret at the given position and ExtendTo moves only
// the focus.
type Selection interface {
	// Boxes returns the bounding boxes of the current selection's ranges,
	// zero or more disjoint rectangles. An empty slice means no selection.
	Boxes() []geom.Rect

	// IsEmpty reports whether the selection has no active range (neither a
	// caret nor a span).
	IsEmpty() bool

	// SetAnchor collapses the selection to a caret at the given character
	// stream position.
	SetAnchor(node text.Node, offset int)

	// ExtendTo moves the selection's focus end to the given position,
	// keeping the anchor fixed.
	ExtendTo(node text.Node, offset int)

	// Clear removes any active selection.
	Clear()

	// Text returns the selected text in character-stream order, empty for
	// no selection.
	Text() string
}

// CaretLocator is the host's optional high-precision caret-from-point
// primitive. Given a fragment and a coordinate inside its box, it returns
// the rune offset the caret should take within the fragment's text.
type CaretLocator interface {
	// CaretAt returns the caret offset within f at the given coordinate.
	// ok is false when the primitive cannot answer for this fragment, in
	// which case the engine falls back to its midpoint heuristic.
	CaretAt(f text.Fragment, x, y float64) (offset int, ok bool)
}

// Container is one rendered page's text layer: an ordered list of
// fragments plus the container's own bounds, both in pointer-event
// coordinates.
type Container interface {
	// Fragments returns the container's current fragment list. The list is
	// refreshed by the host whenever the page's text layer repaints, so
	// callers must not retain it across pointer events.
	Fragments() []text.Fragment

	// Bounds returns the container's bounding box.
	Bounds() geom.Rect
}

// ContainerLocator finds the fragment-bearing container under a
// coordinate. During a drag the pointer can cross from one page container
// into another; the locator is queried on every move.
type ContainerLocator interface {
	// ContainerAt returns the container under the coordinate, or nil when
	// the coordinate is outside every mounted page.
	ContainerAt(x, y float64) Container
}

// ContainerFunc adapts a function to the ContainerLocator interface.
type ContainerFunc func(x, y float64) Container

// ContainerAt calls the wrapped function.
func (f ContainerFunc) ContainerAt(x, y float64) Container {
	return f(x, y)
}

// StaticContainer is a Container over a fixed fragment list. It suits
// single-page embedders and tests.
type StaticContainer struct {
	frags  []text.Fragment
	bounds geom.Rect
}

// NewStaticContainer creates a container over the given fragments with the
// given bounds.
func NewStaticContainer(fragments []text.Fragment, bounds geom.Rect) *StaticContainer {
	return &StaticContainer{frags: fragments, bounds: bounds}
}

// Fragments returns the container's fragment list.
func (c *StaticContainer) Fragments() []text.Fragment {
	return c.frags
}

// Bounds returns the container's bounding box.
func (c *StaticContainer) Bounds() geom.Rect {
	return c.bounds
}

// SetFragments replaces the container's fragment list, simulating a text
// layer repaint.
func (c *StaticContainer) SetFragments(fragments []text.Fragment) {
	c.frags = fragments
}

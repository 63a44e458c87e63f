// Package geom provides the geometric primitives used throughout the
// selection engine.
//
// All coordinates are in pointer-event space: the origin is the top-left
// corner of the page container, X grows to the right and Y grows downward.
// This matches the coordinate space of the pointer events the engine
// consumes, so no conversion is needed between hit-testing and fragment
// geometry.
//
// # Rectangles
//
// The [Rect] type is an axis-aligned box stored as its four edges:
//
//	r := geom.Rect{Left: 10, Top: 20, Right: 110, Bottom: 36}
//
// Boundary semantics are closed-interval everywhere: a point on an edge is
// inside, and two rectangles that merely touch along an edge intersect. The
// engine relies on this when deciding whether two layout blocks are in
// contact.
//
// # Nil as absence
//
// The package-level functions [Union], [Intersect], and [Contains] operate
// on *Rect so that "no box" has a natural representation. Union treats a nil
// operand as identity, Intersect returns nil when the operands do not touch,
// and Contains is false whenever either operand is nil. This makes it safe
// to fold a union over zero or more boxes without special-casing the empty
// case.
package geom

package geom

import "math"

// Rect represents an axis-aligned rectangle in pointer-event coordinates
// (top-left origin, Y grows downward). All boundary tests are inclusive.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewRect creates a rectangle from its four edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// CenterX returns the X coordinate of the rectangle's center.
func (r Rect) CenterX() float64 {
	return (r.Left + r.Right) / 2
}

// CenterY returns the Y coordinate of the rectangle's center.
func (r Rect) CenterY() float64 {
	return (r.Top + r.Bottom) / 2
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// ContainsPoint checks whether the given coordinate lies inside the
// rectangle. Points on an edge count as inside.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// ContainsY checks whether the given Y coordinate lies within the
// rectangle's vertical span, edges included.
func (r Rect) ContainsY(y float64) bool {
	return y >= r.Top && y <= r.Bottom
}

// Intersects checks whether two rectangles overlap. Zero-width contact
// (touching edges or corners) counts as intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.Left <= other.Right && other.Left <= r.Right &&
		r.Top <= other.Bottom && other.Top <= r.Bottom
}

// Union returns the minimal rectangle containing both operands. A nil
// operand is treated as identity: the other operand is returned unchanged.
// If both operands are nil the result is nil.
func Union(a, b *Rect) *Rect {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &Rect{
		Left:   math.Min(a.Left, b.Left),
		Top:    math.Min(a.Top, b.Top),
		Right:  math.Max(a.Right, b.Right),
		Bottom: math.Max(a.Bottom, b.Bottom),
	}
}

// Intersect returns the overlap of both operands, or nil if they do not
// touch. Contact along a shared edge produces a zero-width or zero-height
// result rather than nil, matching the closed-interval semantics of
// [Rect.Intersects]. A nil operand yields nil.
func Intersect(a, b *Rect) *Rect {
	if a == nil || b == nil {
		return nil
	}
	if !a.Intersects(*b) {
		return nil
	}
	return &Rect{
		Left:   math.Max(a.Left, b.Left),
		Top:    math.Max(a.Top, b.Top),
		Right:  math.Min(a.Right, b.Right),
		Bottom: math.Min(a.Bottom, b.Bottom),
	}
}

// Contains checks whether inner lies entirely within outer, edges included.
// A nil outer or inner is never contained.
func Contains(outer, inner *Rect) bool {
	if outer == nil || inner == nil {
		return false
	}
	return inner.Left >= outer.Left && inner.Right <= outer.Right &&
		inner.Top >= outer.Top && inner.Bottom <= outer.Bottom
}

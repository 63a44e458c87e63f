package resolve

import "strings"

// Direction is a cumulative bitmask of the axes along which a drag's
// displacement has exceeded the movement threshold. Bits are set once and
// never cleared for the lifetime of a gesture.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight

	// DirNone is the empty bitmask, before any threshold is crossed.
	DirNone Direction = 0
)

// Has reports whether all bits of flag are set.
func (d Direction) Has(flag Direction) bool {
	return d&flag == flag
}

// String returns a compact debug form such as "down|right".
func (d Direction) String() string {
	if d == DirNone {
		return "none"
	}
	var parts []string
	if d.Has(DirUp) {
		parts = append(parts, "up")
	}
	if d.Has(DirDown) {
		parts = append(parts, "down")
	}
	if d.Has(DirLeft) {
		parts = append(parts, "left")
	}
	if d.Has(DirRight) {
		parts = append(parts, "right")
	}
	return strings.Join(parts, "|")
}

// FromDisplacement computes the direction bits for a cumulative
// displacement, setting a bit for each axis whose magnitude exceeds the
// threshold.
func FromDisplacement(dx, dy, threshold float64) Direction {
	var d Direction
	if dx > threshold {
		d |= DirRight
	}
	if dx < -threshold {
		d |= DirLeft
	}
	if dy > threshold {
		d |= DirDown
	}
	if dy < -threshold {
		d |= DirUp
	}
	return d
}

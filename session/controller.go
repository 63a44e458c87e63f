package session

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/tsawler/textselect/geom"
	"github.com/tsawler/textselect/host"
	"github.com/tsawler/textselect/layout"
	"github.com/tsawler/textselect/resolve"
	"github.com/tsawler/textselect/text"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is one pointer event in container coordinates.
type PointerEvent struct {
	X, Y float64

	// Button is the pressed button. Only ButtonPrimary drives selection.
	Button Button

	// Clicks is the activation count at pointer-down: 2 or more triggers
	// word selection.
	Clicks int

	// Shift is the "extend existing selection" modifier.
	Shift bool
}

// Config holds the controller's gesture thresholds and collaborators.
type Config struct {
	// DragThreshold is the cumulative displacement in pixels below which
	// pointer movement is still considered a click (default: 4).
	DragThreshold float64

	// DirectionThreshold is the per-axis displacement in pixels above
	// which that axis's direction bit is set (default: 3).
	DirectionThreshold float64

	// Resolver maps coordinates to selection points. Nil gets a default.
	Resolver *resolve.Resolver

	// Builder recomputes layout blocks per move. Nil gets a default.
	Builder *layout.Builder

	// Logger receives gesture diagnostics. Nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns the default gesture thresholds.
func DefaultConfig() Config {
	return Config{
		DragThreshold:      4.0,
		DirectionThreshold: 3.0,
	}
}

// Controller drives one selection gesture at a time against the host
// selection. It is not safe for concurrent use; all calls must come from
// the UI goroutine, matching how hosts deliver pointer events.
type Controller struct {
	config     Config
	logger     *log.Logger
	selection  host.Selection
	containers host.ContainerLocator
	resolver   *resolve.Resolver
	builder    *layout.Builder

	session *dragSession
}

// dragSession is the mutable state of one pointer-down..pointer-up
// gesture. It is created at pointer-down and discarded at pointer-up.
type dragSession struct {
	startX, startY float64
	dir            resolve.Direction
	exceeded       bool // drag threshold crossed at least once
	resolved       bool // some resolution of this gesture succeeded
}

// NewController creates a controller with default thresholds, resolver,
// and builder.
func NewController(selection host.Selection, containers host.ContainerLocator) *Controller {
	return NewControllerWithConfig(selection, containers, DefaultConfig())
}

// NewControllerWithConfig creates a controller with custom configuration.
func NewControllerWithConfig(selection host.Selection, containers host.ContainerLocator, config Config) *Controller {
	if config.DragThreshold <= 0 {
		config.DragThreshold = 4.0
	}
	if config.DirectionThreshold <= 0 {
		config.DirectionThreshold = 3.0
	}
	if config.Resolver == nil {
		config.Resolver = resolve.NewResolver()
	}
	if config.Builder == nil {
		config.Builder = layout.NewBuilder()
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		config:     config,
		logger:     logger.WithPrefix("session"),
		selection:  selection,
		containers: containers,
		resolver:   config.Resolver,
		builder:    config.Builder,
	}
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.session != nil
}

// PointerDown begins a gesture. Double activation expands the anchor to
// word boundaries; a shift press with an existing selection extends it;
// otherwise any previous selection is cleared and a fresh anchor is
// resolved. In every case the controller enters Dragging so the selection
// can still be extended by subsequent movement.
func (c *Controller) PointerDown(ev PointerEvent) {
	if ev.Button != ButtonPrimary {
		return
	}
	// A new press always supersedes any gesture still open.
	s := &dragSession{startX: ev.X, startY: ev.Y}
	c.session = s

	frags, blocks, ok := c.sceneAt(ev.X, ev.Y)
	if !ok {
		c.logger.Debug("pointer down outside any container", "x", ev.X, "y", ev.Y)
		return
	}

	switch {
	case ev.Clicks >= 2:
		p := c.resolver.Resolve(ev.X, ev.Y, frags, blocks, nil, resolve.DirNone, true)
		if p == nil {
			return
		}
		start, end := text.ExpandWord(p.Fragment.Text, p.Offset)
		c.selection.SetAnchor(p.Fragment.Node, start)
		c.selection.ExtendTo(p.Fragment.Node, end)
		s.resolved = true

	case ev.Shift && !c.selection.IsEmpty():
		selBox := unionRects(c.selection.Boxes())
		p := c.resolver.Resolve(ev.X, ev.Y, frags, blocks, selBox, resolve.DirNone, true)
		if p == nil {
			return
		}
		c.selection.ExtendTo(p.Fragment.Node, p.Offset)
		s.resolved = true

	default:
		c.selection.Clear()
		p := c.resolver.Resolve(ev.X, ev.Y, frags, blocks, nil, resolve.DirNone, true)
		if p == nil {
			c.logger.Debug("anchor resolution failed", "x", ev.X, "y", ev.Y)
			return
		}
		c.selection.SetAnchor(p.Fragment.Node, p.Offset)
		s.resolved = true
	}
}

// PointerMove extends the gesture. Movement is ignored until the
// cumulative displacement exceeds the drag threshold; after that the
// direction bits are updated, layout blocks are recomputed for the
// container currently under the pointer (which may differ from the one
// the gesture started in), and the resolved point becomes the selection's
// new focus. A nil resolution leaves the selection untouched.
func (c *Controller) PointerMove(ev PointerEvent) {
	s := c.session
	if s == nil {
		return
	}

	dx, dy := ev.X-s.startX, ev.Y-s.startY
	if !s.exceeded {
		if math.Abs(dx) < c.config.DragThreshold && math.Abs(dy) < c.config.DragThreshold {
			return
		}
		s.exceeded = true
	}
	s.dir |= resolve.FromDisplacement(dx, dy, c.config.DirectionThreshold)

	frags, blocks, ok := c.sceneAt(ev.X, ev.Y)
	if !ok {
		return
	}

	// The initial anchor resolution can fail (press in dead space); retry
	// anchoring at the current point before extending.
	if c.selection.IsEmpty() {
		p := c.resolver.Resolve(ev.X, ev.Y, frags, blocks, nil, s.dir, true)
		if p == nil {
			return
		}
		c.selection.SetAnchor(p.Fragment.Node, p.Offset)
		s.resolved = true
		return
	}

	selBox := unionRects(c.selection.Boxes())
	p := c.resolver.Resolve(ev.X, ev.Y, frags, blocks, selBox, s.dir, !s.resolved)
	if p == nil {
		return
	}
	s.resolved = true
	c.selection.ExtendTo(p.Fragment.Node, p.Offset)
}

// PointerUp ends the gesture. A press that never exceeded the drag
// threshold is a simple click: the selection stays collapsed at the
// anchor (or keeps the word/shift extension applied at pointer-down).
func (c *Controller) PointerUp(ev PointerEvent) {
	if c.session == nil {
		return
	}
	c.logger.Debug("gesture ended",
		"dragged", c.session.exceeded, "dir", c.session.dir)
	c.session = nil
}

// sceneAt locates the container under a coordinate and prepares its
// visible fragments and freshly built layout blocks.
func (c *Controller) sceneAt(x, y float64) ([]text.Fragment, []layout.Block, bool) {
	container := c.containers.ContainerAt(x, y)
	if container == nil {
		return nil, nil, false
	}
	frags := text.Visible(container.Fragments())
	return frags, c.builder.Build(frags), true
}

// unionRects folds a box list into its bounding rectangle, nil for an
// empty list.
func unionRects(boxes []geom.Rect) *geom.Rect {
	var out *geom.Rect
	for i := range boxes {
		out = geom.Union(out, &boxes[i])
	}
	return out
}

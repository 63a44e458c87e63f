// Package textselect provides a fluent API for text selection over an
// invisible text layer, for readers that display pages as raster images
// with positioned text fragments behind them.
//
// Basic usage:
//
//	sel := host.NewMemorySelection(fragments)
//	engine := textselect.New(sel, host.ContainerFunc(pageAt))
//
//	engine.PointerDown(textselect.PointerEvent{X: 120, Y: 56})
//	engine.PointerMove(textselect.PointerEvent{X: 310, Y: 58})
//	engine.PointerUp(textselect.PointerEvent{X: 310, Y: 58})
//
//	boxes := engine.Highlights() // paint these over the page image
//
// With options:
//
//	engine := textselect.New(sel, pages,
//	    textselect.WithCaretLocator(metrics),
//	    textselect.WithHorizontalWeight(0.08),
//	    textselect.WithLogger(logger),
//	)
//
// For advanced use cases, the lower-level resolve, layout, and session
// packages are also available.
package textselect

import (
	"github.com/tsawler/textselect/export"
	"github.com/tsawler/textselect/geom"
	"github.com/tsawler/textselect/host"
	"github.com/tsawler/textselect/layout"
	"github.com/tsawler/textselect/resolve"
	"github.com/tsawler/textselect/session"
)

// PointerEvent is re-exported so hosts driving the engine only need this
// package.
type PointerEvent = session.PointerEvent

// Pointer buttons, re-exported from the session package.
const (
	ButtonPrimary   = session.ButtonPrimary
	ButtonSecondary = session.ButtonSecondary
	ButtonMiddle    = session.ButtonMiddle
)

// Engine wires layout building, point resolution, and gesture handling
// into a single entry point. Hosts feed it pointer events and read the
// resulting selection back as highlight boxes or clipboard payloads.
//
// Like the underlying controller, an Engine is not safe for concurrent
// use; drive it from the UI goroutine.
type Engine struct {
	selection  host.Selection
	controller *session.Controller
}

// New creates an engine over the host's selection and container locator.
//
// Example:
//
//	engine := textselect.New(sel, host.ContainerFunc(pageAt))
func New(selection host.Selection, containers host.ContainerLocator, opts ...Option) *Engine {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	resolverCfg := resolve.DefaultConfig()
	resolverCfg.Caret = cfg.caret
	resolverCfg.Logger = cfg.logger
	if cfg.horizontalWeight > 0 {
		resolverCfg.HorizontalWeight = cfg.horizontalWeight
	}

	sessionCfg := session.DefaultConfig()
	sessionCfg.Resolver = resolve.NewResolverWithConfig(resolverCfg)
	sessionCfg.Builder = layout.NewBuilderWithConfig(cfg.builder)
	sessionCfg.Logger = cfg.logger
	if cfg.dragThreshold > 0 {
		sessionCfg.DragThreshold = cfg.dragThreshold
	}
	if cfg.directionThreshold > 0 {
		sessionCfg.DirectionThreshold = cfg.directionThreshold
	}

	return &Engine{
		selection:  selection,
		controller: session.NewControllerWithConfig(selection, containers, sessionCfg),
	}
}

// PointerDown forwards a pointer press to the gesture controller.
func (e *Engine) PointerDown(ev PointerEvent) {
	e.controller.PointerDown(ev)
}

// PointerMove forwards pointer movement to the gesture controller.
func (e *Engine) PointerMove(ev PointerEvent) {
	e.controller.PointerMove(ev)
}

// PointerUp forwards a pointer release to the gesture controller.
func (e *Engine) PointerUp(ev PointerEvent) {
	e.controller.PointerUp(ev)
}

// Dragging reports whether a selection gesture is in progress.
func (e *Engine) Dragging() bool {
	return e.controller.Dragging()
}

// Highlights returns the selection's bounding boxes, one per selected
// span, ready to paint over the page image.
func (e *Engine) Highlights() []geom.Rect {
	return e.selection.Boxes()
}

// Text returns the selected text, empty for no selection.
func (e *Engine) Text() string {
	return e.selection.Text()
}

// Ranger is implemented by selections that can report their selected
// spans. host.MemorySelection implements it; native selections backed by
// a platform text layer may not.
type Ranger interface {
	Ranges() []host.Range
}

// HTML returns the selection as a rich-text clipboard payload, or an
// empty string when the selection cannot report spans.
func (e *Engine) HTML() (string, error) {
	r, ok := e.selection.(Ranger)
	if !ok {
		return "", nil
	}
	return export.HTML(r.Ranges())
}

// Copy writes the selected text to the system clipboard. Failures wrap
// export.ErrClipboard; an empty selection is a no-op.
func (e *Engine) Copy() error {
	if e.selection.IsEmpty() {
		return nil
	}
	return export.Copy(e.selection.Text())
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Package session owns the stateful selection gesture: pointer-down,
// pointer-move, pointer-up.
//
// The [Controller] is a small state machine (Idle, then Dragging for the
// lifetime of one pressed primary button) that translates discrete
// resolver outputs into a continuously extended text selection. It
// implements click-versus-drag discrimination via a movement threshold,
// cumulative direction tracking per axis, double-click word expansion,
// and shift-click extension of an existing selection.
//
// All methods run synchronously inside the host's pointer-event handlers
// on the UI goroutine; the controller performs no background work and
// holds no memory between gestures beyond the host selection itself. The
// per-gesture drag state is created at pointer-down and discarded at
// pointer-up. Layout blocks are recomputed from the hovered container's
// fragment list on every move, because fragment geometry can shift between
// repaints as pages mount or rescale.
package session

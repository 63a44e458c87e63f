package textselect

import (
	"github.com/charmbracelet/log"

	"github.com/tsawler/textselect/host"
	"github.com/tsawler/textselect/layout"
)

// options holds the engine's configuration, assembled from Option values.
type options struct {
	caret              host.CaretLocator
	logger             *log.Logger
	horizontalWeight   float64
	builder            layout.BuilderConfig
	dragThreshold      float64
	directionThreshold float64
}

// defaultOptions returns the default engine configuration. Zero values for
// the numeric fields mean "use the package defaults".
func defaultOptions() options {
	return options{
		builder: layout.DefaultBuilderConfig(),
	}
}

// Option configures an Engine.
type Option func(*options)

// WithCaretLocator supplies per-glyph hit testing. Without one, a direct
// hit on a fragment snaps to its nearest end by horizontal midpoint.
func WithCaretLocator(caret host.CaretLocator) Option {
	return func(o *options) {
		o.caret = caret
	}
}

// WithLogger routes resolution and gesture diagnostics to the given
// logger. Without one they are discarded.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHorizontalWeight sets the horizontal distance weight used when
// scoring fallback candidates. Values below 1 favor fragments in the same
// column over fragments on the same row.
func WithHorizontalWeight(w float64) Option {
	return func(o *options) {
		o.horizontalWeight = w
	}
}

// WithBuilderConfig replaces the layout builder's grouping thresholds.
func WithBuilderConfig(config layout.BuilderConfig) Option {
	return func(o *options) {
		o.builder = config
	}
}

// WithDragThreshold sets the cumulative displacement in pixels below
// which a press-move-release is still treated as a click.
func WithDragThreshold(px float64) Option {
	return func(o *options) {
		o.dragThreshold = px
	}
}

// WithDirectionThreshold sets the per-axis displacement in pixels above
// which that axis contributes a direction bit to the gesture.
func WithDirectionThreshold(px float64) Option {
	return func(o *options) {
		o.directionThreshold = px
	}
}

package resolve

import (
	"io"
	"math"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/tsawler/textselect/geom"
	"github.com/tsawler/textselect/host"
	"github.com/tsawler/textselect/layout"
	"github.com/tsawler/textselect/text"
)

// Point is a resolved selection position: a fragment and a rune offset into
// its text. AtEnd records whether the offset sits at the end of the
// fragment's run, which later gutter tie-breaking consults. Points are
// transient: they are produced by the resolver and immediately applied to
// the host selection, never stored.
type Point struct {
	Fragment text.Fragment
	Offset   int
	AtEnd    bool
}

// startOf returns the point at the beginning of a fragment's run.
func startOf(f text.Fragment) *Point {
	return &Point{Fragment: f, Offset: 0, AtEnd: false}
}

// endOf returns the point at the end of a fragment's run.
func endOf(f text.Fragment) *Point {
	return &Point{Fragment: f, Offset: f.Len(), AtEnd: true}
}

// Config holds the resolver's tuning knobs and optional capabilities.
type Config struct {
	// HorizontalWeight scales the squared horizontal distance in the
	// nearest-fragment fallback. It is deliberately small so that vertical
	// proximity dominates: misjudging a line is far more jarring than
	// misjudging a column position. Valid values are 0.04 to 0.25
	// (default: 0.04).
	HorizontalWeight float64

	// Caret is the host's precise caret-from-point primitive. Nil is fine;
	// the resolver then uses the horizontal-midpoint heuristic for direct
	// hits.
	Caret host.CaretLocator

	// Logger receives invariant-violation diagnostics. Nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns the default resolver configuration: midpoint
// heuristic only, vertical-dominant distance weighting, discarded logs.
func DefaultConfig() Config {
	return Config{
		HorizontalWeight: 0.04,
	}
}

// Resolver turns pointer coordinates into selection points.
type Resolver struct {
	config Config
	logger *log.Logger
}

// NewResolver creates a resolver with default configuration.
func NewResolver() *Resolver {
	return NewResolverWithConfig(DefaultConfig())
}

// NewResolverWithConfig creates a resolver with custom configuration.
func NewResolverWithConfig(config Config) *Resolver {
	if config.HorizontalWeight <= 0 {
		config.HorizontalWeight = 0.04
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{config: config, logger: logger.WithPrefix("resolve")}
}

// Resolve maps a pointer coordinate to a selection point.
//
// fragments is the visible fragment list of the container under the
// pointer, blocks the layout blocks built from it, and selection the
// unioned bounding box of the current host selection (nil when there is
// none). dir carries the gesture's cumulative direction bits and
// startOfGesture is true only for the very first resolution of a drag,
// which changes the tie-break policy at column gutters.
//
// A nil result is the normal "no confident answer" outcome, not an error;
// the caller must leave the existing selection state untouched.
func (r *Resolver) Resolve(x, y float64, fragments []text.Fragment, blocks []layout.Block, selection *geom.Rect, dir Direction, startOfGesture bool) *Point {
	if len(fragments) == 0 {
		return nil
	}

	if p := r.directHit(x, y, fragments); p != nil {
		return p
	}
	if p := r.resolveRow(x, y, fragments, blocks, dir, startOfGesture); p != nil {
		return p
	}
	return r.nearestFragment(x, y, fragments, blocks, selection, dir)
}

// directHit resolves a coordinate landing inside a fragment's box. The
// host's caret primitive is asked first when available; otherwise the
// offset falls back to a horizontal-midpoint test.
func (r *Resolver) directHit(x, y float64, fragments []text.Fragment) *Point {
	for _, f := range fragments {
		if f.Box.IsEmpty() || !f.Box.ContainsPoint(x, y) {
			continue
		}
		if r.config.Caret != nil {
			if offset, ok := r.config.Caret.CaretAt(f, x, y); ok {
				if offset < 0 {
					offset = 0
				}
				if n := f.Len(); offset > n {
					offset = n
				}
				return &Point{Fragment: f, Offset: offset, AtEnd: offset == f.Len()}
			}
		}
		if x < f.Box.CenterX() {
			return startOf(f)
		}
		return endOf(f)
	}
	return nil
}

// resolveRow handles coordinates that share a vertical span with one or
// more fragments: margin clicks resolve to the row's first or last
// fragment, gutter clicks tie-break between the neighbors. The row test is
// strict containment of y, not a nearest-line heuristic, precisely so a
// margin click cannot bleed into an adjacent line. A nil return falls
// through to the nearest-fragment strategy.
func (r *Resolver) resolveRow(x, y float64, fragments []text.Fragment, blocks []layout.Block, dir Direction, startOfGesture bool) *Point {
	var row []text.Fragment
	for _, f := range fragments {
		if !f.Box.IsEmpty() && f.Box.ContainsY(y) {
			row = append(row, f)
		}
	}
	if len(row) == 0 {
		return nil
	}
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].Box.Left < row[j].Box.Left
	})

	first, last := row[0], row[len(row)-1]

	// Left margin. Guard against the coordinate actually sitting inside a
	// different block's margin, which happens when several columns share
	// the row.
	if x < first.Box.Left {
		if at := layout.At(blocks, x, y); at != nil && at != r.blockFor(blocks, first) {
			return nil
		}
		return startOf(first)
	}

	// Right margin, symmetric.
	if x > last.Box.Right {
		if at := layout.At(blocks, x, y); at != nil && at != r.blockFor(blocks, last) {
			return nil
		}
		return endOf(last)
	}

	// Gutter between two same-row fragments.
	for i := 0; i+1 < len(row); i++ {
		left, right := row[i], row[i+1]
		if x < left.Box.Right || x > right.Box.Left {
			continue
		}
		return r.breakGutterTie(x, left, right, blocks, dir, startOfGesture)
	}
	return nil
}

// breakGutterTie picks a side for a coordinate between two same-row
// fragments. Neighbors within one block compare raw distance to the facing
// fragment edges. Neighbors in different blocks compare distance to the
// block edges instead, which is what stops a selection from reaching
// across a column gutter; on the very first resolution of a downward drag
// the tie goes to the start of the later column, reflecting a selection
// started by dragging down and to the right through the gutter.
func (r *Resolver) breakGutterTie(x float64, left, right text.Fragment, blocks []layout.Block, dir Direction, startOfGesture bool) *Point {
	lb := r.blockFor(blocks, left)
	rb := r.blockFor(blocks, right)

	if lb != nil && rb != nil && lb != rb {
		dl := math.Abs(x - lb.Box.Right)
		dr := math.Abs(rb.Box.Left - x)
		if startOfGesture && dir.Has(DirDown) {
			if dr <= dl {
				return startOf(right)
			}
			return endOf(left)
		}
		if dl <= dr {
			return endOf(left)
		}
		return startOf(right)
	}

	if x-left.Box.Right <= right.Box.Left-x {
		return endOf(left)
	}
	return startOf(right)
}

// nearestFragment is the constrained fallback for coordinates with no row
// match, such as the vertical gap between paragraphs. Candidates are
// restricted, in priority order, to the block under the pointer, then the
// block the active selection intersects (keeping an in-progress selection
// sticky to its own column), then all fragments.
func (r *Resolver) nearestFragment(x, y float64, fragments []text.Fragment, blocks []layout.Block, selection *geom.Rect, dir Direction) *Point {
	candidates := r.candidates(x, y, fragments, blocks, selection)
	if len(candidates) == 0 {
		candidates = fragments
	}

	w := r.config.HorizontalWeight
	best := -1
	bestScore := math.Inf(1)
	for i, f := range candidates {
		if f.Box.IsEmpty() {
			continue
		}
		dx := edgeDistance(x, f.Box.Left, f.Box.Right)
		dy := math.Abs(y - f.Box.CenterY())
		score := dx*dx*w + dy*dy
		if score < bestScore {
			bestScore = score
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	f := candidates[best]
	atEnd := y > f.Box.Bottom || (y >= f.Box.Top && x > f.Box.Right)
	if dir.Has(DirUp) && y < f.Box.Top {
		atEnd = false
	}
	if dir.Has(DirDown) && y > f.Box.Bottom {
		atEnd = true
	}
	if atEnd {
		return endOf(f)
	}
	return startOf(f)
}

// candidates builds the restricted candidate set for the nearest-fragment
// search.
func (r *Resolver) candidates(x, y float64, fragments []text.Fragment, blocks []layout.Block, selection *geom.Rect) []text.Fragment {
	if blk := layout.At(blocks, x, y); blk != nil {
		return fragmentsIn(fragments, blk)
	}
	if selection != nil {
		for i := range blocks {
			if blocks[i].Box.Intersects(*selection) {
				return fragmentsIn(fragments, &blocks[i])
			}
		}
	}
	return nil
}

// fragmentsIn returns the fragments whose boxes touch the given block.
func fragmentsIn(fragments []text.Fragment, blk *layout.Block) []text.Fragment {
	var out []text.Fragment
	for _, f := range fragments {
		if !f.Box.IsEmpty() && blk.Box.Intersects(f.Box) {
			out = append(out, f)
		}
	}
	return out
}

// blockFor locates the block a fragment belongs to. A visible fragment
// outside every block means the block list is malformed; that is logged
// and reported as nil so the caller degrades to fragment-edge tie-breaks.
func (r *Resolver) blockFor(blocks []layout.Block, f text.Fragment) *layout.Block {
	blk := layout.ForBox(blocks, f.Box)
	if blk == nil && len(blocks) > 0 {
		r.logger.Warn("fragment not covered by any layout block",
			"fragment", f.Text, "box", f.Box)
	}
	return blk
}

// edgeDistance returns the horizontal distance from x to the nearest of
// the two edges, or zero when x lies between them.
func edgeDistance(x, left, right float64) float64 {
	switch {
	case x < left:
		return left - x
	case x > right:
		return x - right
	default:
		return 0
	}
}

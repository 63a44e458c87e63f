package layout

import (
	"math"
	"sort"

	"github.com/tsawler/textselect/geom"
	"github.com/tsawler/textselect/text"
)

// Block represents a coarse visual region of the page, approximating one
// column or paragraph. Blocks are derived, non-owning aggregates: they hold
// only a bounding box and carry no identity across builds.
type Block struct {
	// Box is the bounding box covering the fragments merged into the block.
	Box geom.Rect
}

// ContainsPoint returns true if the given coordinate falls within the
// block's bounding box.
func (b Block) ContainsPoint(x, y float64) bool {
	return b.Box.ContainsPoint(x, y)
}

// BuilderConfig holds the merge thresholds for block building. All values
// are absolute pixels in pointer-event space.
type BuilderConfig struct {
	// VerticalGap is the maximum distance between a fragment's top edge and
	// the current block's bottom edge for the fragment to still count as the
	// same visual column continuing downward (default: 6).
	VerticalGap float64

	// EdgeTolerance is the slack allowed when comparing left or right edges
	// for column alignment (default: 2).
	EdgeTolerance float64

	// LineGap is the maximum positive gap between the block's right edge and
	// a fragment's left edge for the fragment to count as a continuation of
	// the same line (default: 12).
	LineGap float64
}

// DefaultBuilderConfig returns sensible default thresholds.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		VerticalGap:   6.0,
		EdgeTolerance: 2.0,
		LineGap:       12.0,
	}
}

// Builder groups fragments into blocks.
type Builder struct {
	config BuilderConfig
}

// NewBuilder creates a block builder with default configuration.
func NewBuilder() *Builder {
	return &Builder{config: DefaultBuilderConfig()}
}

// NewBuilderWithConfig creates a block builder with custom thresholds.
func NewBuilderWithConfig(config BuilderConfig) *Builder {
	return &Builder{config: config}
}

// Build scans fragments in document order and produces the page's block
// list. The result is sorted in reading order (left-to-right first for
// column discrimination, then top-to-bottom) and no two blocks in it
// intersect. Build is pure: the same fragment list always yields the same
// block list.
func (b *Builder) Build(fragments []text.Fragment) []Block {
	var blocks []Block
	var current *geom.Rect

	for i := range fragments {
		r := fragments[i].Box
		if r.IsEmpty() {
			continue
		}
		if current == nil {
			box := r
			current = &box
			continue
		}
		if b.shouldMerge(*current, r) {
			current = geom.Union(current, &r)
			continue
		}
		blocks = b.push(blocks, *current)
		box := r
		current = &box
	}
	if current != nil {
		blocks = b.push(blocks, *current)
	}

	blocks = b.mergeIntersecting(blocks)
	return b.sortReadingOrder(blocks)
}

// shouldMerge decides whether fragment box r continues the current block.
// It must be vertically adjacent (not starting more than VerticalGap below
// the block's bottom edge) and show at least one horizontal alignment or
// overlap signal.
func (b *Builder) shouldMerge(block, r geom.Rect) bool {
	if r.Top > block.Bottom+b.config.VerticalGap {
		return false
	}

	tol := b.config.EdgeTolerance
	switch {
	case math.Abs(r.Left-block.Left) <= tol:
		return true // left edges aligned: column continues
	case math.Abs(r.Right-block.Right) <= tol:
		return true // right edges aligned: justified column continues
	case r.Left >= block.Right && r.Left-block.Right <= b.config.LineGap:
		return true // small positive gap: same line continuing rightward
	case r.Left <= block.Left && r.Right >= block.Right:
		return true // fragment spans the block horizontally
	case block.Left <= r.Left && block.Right >= r.Right:
		return true // block spans the fragment horizontally
	case block.Intersects(r):
		return true
	}
	return false
}

// push closes a block into the output list, coalescing it with the
// immediately preceding pushed block when their boxes intersect.
func (b *Builder) push(blocks []Block, box geom.Rect) []Block {
	if n := len(blocks); n > 0 && blocks[n-1].Box.Intersects(box) {
		blocks[n-1].Box = *geom.Union(&blocks[n-1].Box, &box)
		return blocks
	}
	return append(blocks, Block{Box: box})
}

// sortReadingOrder sorts blocks left-to-right, then top-to-bottom. Left
// edges are quantized to EdgeTolerance-sized buckets before comparing, so
// that blocks of the same column stack vertically rather than interleaving
// on sub-pixel differences and the ordering stays transitive.
func (b *Builder) sortReadingOrder(blocks []Block) []Block {
	sort.SliceStable(blocks, func(i, j int) bool {
		li, lj := b.leftBucket(blocks[i].Box.Left), b.leftBucket(blocks[j].Box.Left)
		if li != lj {
			return li < lj
		}
		return blocks[i].Box.Top < blocks[j].Box.Top
	})
	return blocks
}

// leftBucket quantizes a left edge to EdgeTolerance-sized buckets.
func (b *Builder) leftBucket(left float64) float64 {
	if b.config.EdgeTolerance <= 0 {
		return left
	}
	return math.Round(left / b.config.EdgeTolerance)
}

// mergeIntersecting collapses intersecting blocks and repeats until no two
// blocks in the list intersect. A merge can grow a block enough to reach a
// block anywhere else in the list, so every pair is compared each round;
// the loop terminates because every merge removes a block.
func (b *Builder) mergeIntersecting(blocks []Block) []Block {
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(blocks); i++ {
			for j := i + 1; j < len(blocks); {
				if blocks[i].Box.Intersects(blocks[j].Box) {
					blocks[i].Box = *geom.Union(&blocks[i].Box, &blocks[j].Box)
					blocks = append(blocks[:j], blocks[j+1:]...)
					changed = true
				} else {
					j++
				}
			}
		}
	}
	return blocks
}

// At returns the block whose box contains the given coordinate, or nil if
// the coordinate falls outside every block. Blocks never intersect after
// building, so at most one can match.
func At(blocks []Block, x, y float64) *Block {
	for i := range blocks {
		if blocks[i].ContainsPoint(x, y) {
			return &blocks[i]
		}
	}
	return nil
}

// ForBox returns the block whose box contains or touches the given
// fragment box, or nil if none does. When more than one block claims the
// box the block list is malformed; the caller decides how to degrade.
func ForBox(blocks []Block, box geom.Rect) *Block {
	var found *Block
	for i := range blocks {
		if geom.Contains(&blocks[i].Box, &box) {
			return &blocks[i]
		}
		if found == nil && blocks[i].Box.Intersects(box) {
			found = &blocks[i]
		}
	}
	return found
}

package resolve

import (
	"testing"

	"github.com/tsawler/textselect/geom"
	"github.com/tsawler/textselect/layout"
	"github.com/tsawler/textselect/text"
)

// makeFragment creates a test fragment with a pointer node handle.
func makeFragment(s string, left, top, right, bottom float64) text.Fragment {
	return text.Fragment{
		Box:  geom.Rect{Left: left, Top: top, Right: right, Bottom: bottom},
		Text: s,
		Node: new(int),
	}
}

// buildBlocks runs the block builder over the fragments, the way the
// session controller does before every resolution.
func buildBlocks(fragments []text.Fragment) []layout.Block {
	return layout.NewBuilder().Build(fragments)
}

func TestResolve_NoFragments(t *testing.T) {
	r := NewResolver()
	if p := r.Resolve(10, 10, nil, nil, nil, DirNone, true); p != nil {
		t.Errorf("expected nil for empty fragment list, got %+v", p)
	}
}

func TestResolve_DirectHit(t *testing.T) {
	r := NewResolver()
	frags := []text.Fragment{
		makeFragment("alpha", 0, 0, 100, 12),
		makeFragment("beta", 0, 16, 100, 28),
	}
	blocks := buildBlocks(frags)

	// Any coordinate strictly inside a box resolves to that fragment.
	p := r.Resolve(50, 22, frags, blocks, nil, DirNone, true)
	if p == nil || p.Fragment.Text != "beta" {
		t.Fatalf("expected direct hit on beta, got %+v", p)
	}
}

func TestResolve_DirectHit_MidpointHeuristic(t *testing.T) {
	r := NewResolver()
	frags := []text.Fragment{makeFragment("word", 100, 0, 200, 12)}
	blocks := buildBlocks(frags)

	left := r.Resolve(120, 6, frags, blocks, nil, DirNone, true)
	if left == nil || left.Offset != 0 || left.AtEnd {
		t.Errorf("left of midpoint should resolve before the run, got %+v", left)
	}

	right := r.Resolve(180, 6, frags, blocks, nil, DirNone, true)
	if right == nil || right.Offset != 4 || !right.AtEnd {
		t.Errorf("right of midpoint should resolve at the end, got %+v", right)
	}
}

// caretStub answers caret-from-point queries with a fixed offset.
type caretStub struct {
	offset int
	ok     bool
}

func (c caretStub) CaretAt(f text.Fragment, x, y float64) (int, bool) {
	return c.offset, c.ok
}

func TestResolve_DirectHit_PreciseCaret(t *testing.T) {
	config := DefaultConfig()
	config.Caret = caretStub{offset: 2, ok: true}
	r := NewResolverWithConfig(config)

	frags := []text.Fragment{makeFragment("word", 100, 0, 200, 12)}
	blocks := buildBlocks(frags)

	p := r.Resolve(180, 6, frags, blocks, nil, DirNone, true)
	if p == nil || p.Offset != 2 || p.AtEnd {
		t.Errorf("expected the caret primitive's offset, got %+v", p)
	}
}

func TestResolve_DirectHit_CaretDeclines(t *testing.T) {
	config := DefaultConfig()
	config.Caret = caretStub{ok: false}
	r := NewResolverWithConfig(config)

	frags := []text.Fragment{makeFragment("word", 100, 0, 200, 12)}
	blocks := buildBlocks(frags)

	// The primitive declining is not an error: midpoint heuristic applies.
	p := r.Resolve(120, 6, frags, blocks, nil, DirNone, true)
	if p == nil || p.Offset != 0 {
		t.Errorf("expected midpoint fallback, got %+v", p)
	}
}

func TestResolve_RowMargins(t *testing.T) {
	r := NewResolver()
	frags := []text.Fragment{
		makeFragment("only line", 100, 50, 300, 62),
	}
	blocks := buildBlocks(frags)

	left := r.Resolve(20, 55, frags, blocks, nil, DirNone, true)
	if left == nil || left.Offset != 0 {
		t.Errorf("left margin should resolve to offset 0, got %+v", left)
	}

	right := r.Resolve(500, 55, frags, blocks, nil, DirNone, true)
	if right == nil || !right.AtEnd {
		t.Errorf("right margin should resolve to the end, got %+v", right)
	}
}

func TestResolve_RowMargins_MultiBlockRow(t *testing.T) {
	r := NewResolver()
	// Two columns on the same row: the margin rule must hold regardless of
	// how many blocks the row spans.
	frags := []text.Fragment{
		makeFragment("left col", 100, 50, 300, 62),
		makeFragment("right col", 400, 50, 700, 62),
	}
	blocks := buildBlocks(frags)

	left := r.Resolve(10, 55, frags, blocks, nil, DirNone, true)
	if left == nil || left.Fragment.Text != "left col" || left.Offset != 0 {
		t.Errorf("page-left margin should hit the row's first fragment start, got %+v", left)
	}

	right := r.Resolve(790, 55, frags, blocks, nil, DirNone, true)
	if right == nil || right.Fragment.Text != "right col" || !right.AtEnd {
		t.Errorf("page-right margin should hit the row's last fragment end, got %+v", right)
	}
}

func TestResolve_SameBlockGutter_FlipsAtMidpoint(t *testing.T) {
	r := NewResolver()
	// Two words on one line in one block; the facing edges are 120 and 130,
	// so the tie must flip exactly once, at 125.
	frags := []text.Fragment{
		makeFragment("foo", 50, 50, 120, 62),
		makeFragment("bar", 130, 50, 200, 62),
	}
	blocks := buildBlocks(frags)
	if len(blocks) != 1 {
		t.Fatalf("fixture should form a single block, got %d", len(blocks))
	}

	flips := 0
	prevEnd := false
	for i, x := 0, 120.25; x < 130; i, x = i+1, x+0.25 {
		p := r.Resolve(x, 55, frags, blocks, nil, DirNone, false)
		if p == nil {
			t.Fatalf("nil resolution inside gutter at x=%v", x)
		}
		if i == 0 {
			prevEnd = p.AtEnd
			continue
		}
		if p.AtEnd != prevEnd {
			flips++
			if x <= 125 {
				t.Errorf("flip before the midpoint, at x=%v", x)
			}
			prevEnd = p.AtEnd
		}
	}
	if flips != 1 {
		t.Errorf("expected exactly one flip across the gutter, got %d", flips)
	}
}

func TestResolve_CrossBlockGutter_FlipsAtBlockMidpoint(t *testing.T) {
	r := NewResolver()
	// Fragment edges (280, 405) are closer together than block edges
	// (300, 400): the flip must happen at the block midpoint 350, not the
	// fragment midpoint 342.5.
	frags := []text.Fragment{
		makeFragment("a1", 0, 50, 280, 62),
		makeFragment("a2", 0, 62, 300, 74),
		makeFragment("b1", 405, 50, 700, 62),
		makeFragment("b2", 400, 62, 690, 74),
	}
	blocks := buildBlocks(frags)
	if len(blocks) != 2 {
		t.Fatalf("fixture should form two blocks, got %d", len(blocks))
	}

	before := r.Resolve(345, 55, frags, blocks, nil, DirNone, false)
	if before == nil || before.Fragment.Text != "a1" || !before.AtEnd {
		t.Errorf("x=345 is left of the block midpoint, want end of a1, got %+v", before)
	}

	after := r.Resolve(355, 55, frags, blocks, nil, DirNone, false)
	if after == nil || after.Fragment.Text != "b1" || after.Offset != 0 {
		t.Errorf("x=355 is right of the block midpoint, want start of b1, got %+v", after)
	}
}

func TestResolve_CrossBlockGutter_DownwardStartBias(t *testing.T) {
	r := NewResolver()
	// Spec scenario: columns at [0,300] and [400,700], pointer at x=350 in
	// the gutter, first resolution of a down-and-right drag. The anchor
	// must land on the start of the right column, not the end of the left.
	frags := []text.Fragment{
		makeFragment("left", 0, 50, 300, 62),
		makeFragment("right", 400, 50, 700, 62),
	}
	blocks := buildBlocks(frags)

	p := r.Resolve(350, 55, frags, blocks, nil, DirDown|DirRight, true)
	if p == nil {
		t.Fatal("expected a resolution in the gutter")
	}
	if p.Fragment.Text != "right" || p.Offset != 0 {
		t.Errorf("want start of right column, got %q offset %d atEnd=%v",
			p.Fragment.Text, p.Offset, p.AtEnd)
	}
}

func TestResolve_VerticalGapFallsBackToNearestLine(t *testing.T) {
	r := NewResolver()
	// Two paragraphs in one column with a gap between them; a click in the
	// gap must resolve to the vertically closer line, not to a fragment in
	// a different column that happens to be horizontally nearer.
	frags := []text.Fragment{
		makeFragment("para one", 50, 50, 250, 62),
		makeFragment("para two", 50, 150, 250, 162),
	}
	blocks := buildBlocks(frags)

	upper := r.Resolve(150, 80, frags, blocks, nil, DirNone, false)
	if upper == nil || upper.Fragment.Text != "para one" {
		t.Errorf("y=80 is nearer the first paragraph, got %+v", upper)
	}

	lower := r.Resolve(150, 140, frags, blocks, nil, DirNone, false)
	if lower == nil || lower.Fragment.Text != "para two" {
		t.Errorf("y=140 is nearer the second paragraph, got %+v", lower)
	}
}

func TestResolve_SelectionKeepsColumnSticky(t *testing.T) {
	r := NewResolver()
	// Pointer sits in the gutter's vertical gap (no row, no block under
	// it). An active selection intersecting the left column must constrain
	// the candidates to that column even though the right column has a
	// horizontally closer fragment.
	frags := []text.Fragment{
		makeFragment("left top", 0, 50, 300, 62),
		makeFragment("left bottom", 0, 200, 300, 212),
		makeFragment("right top", 400, 50, 700, 62),
		makeFragment("right bottom", 400, 200, 700, 212),
	}
	blocks := buildBlocks(frags)

	selBox := &geom.Rect{Left: 0, Top: 50, Right: 280, Bottom: 62}
	p := r.Resolve(390, 130, frags, blocks, selBox, DirDown, false)
	if p == nil {
		t.Fatal("expected a resolution")
	}
	if p.Fragment.Text != "left top" && p.Fragment.Text != "left bottom" {
		t.Errorf("selection should stay sticky to the left column, got %q", p.Fragment.Text)
	}
}

func TestResolve_WeightedDistanceFavorsVerticalProximity(t *testing.T) {
	r := NewResolver()
	// The pointer sits in empty space: one candidate is horizontally
	// distant but vertically near, the other is right under the pointer
	// horizontally but far down the page. Vertical proximity must dominate.
	frags := []text.Fragment{
		makeFragment("near line", 500, 100, 600, 112),
		makeFragment("far line", 90, 290, 190, 302),
	}
	blocks := buildBlocks(frags)

	p := r.Resolve(100, 130, frags, blocks, nil, DirNone, false)
	if p == nil || p.Fragment.Text != "near line" {
		t.Errorf("vertical proximity should dominate, got %+v", p)
	}
}

func TestResolve_MalformedBlockListDegrades(t *testing.T) {
	r := NewResolver()
	frags := []text.Fragment{
		makeFragment("stranded", 50, 50, 200, 62),
	}
	// A block list that covers none of the fragments is a caller bug; the
	// resolver must degrade to a sensible answer, not crash.
	blocks := []layout.Block{
		{Box: geom.Rect{Left: 1000, Top: 1000, Right: 1100, Bottom: 1100}},
	}

	p := r.Resolve(20, 55, frags, blocks, nil, DirNone, true)
	if p == nil || p.Fragment.Text != "stranded" {
		t.Errorf("expected degraded resolution to the only fragment, got %+v", p)
	}
}

func TestDirection_FromDisplacement(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   Direction
	}{
		{0, 0, DirNone},
		{10, 0, DirRight},
		{-10, 0, DirLeft},
		{0, 10, DirDown},
		{0, -10, DirUp},
		{10, 10, DirRight | DirDown},
		{-10, -10, DirLeft | DirUp},
		{2, 2, DirNone}, // below threshold
	}

	for _, tt := range tests {
		if got := FromDisplacement(tt.dx, tt.dy, 3); got != tt.want {
			t.Errorf("FromDisplacement(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestDirection_String(t *testing.T) {
	if got := DirNone.String(); got != "none" {
		t.Errorf("String = %q", got)
	}
	if got := (DirDown | DirRight).String(); got != "down|right" {
		t.Errorf("String = %q", got)
	}
}

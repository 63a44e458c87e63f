// Package layout groups text fragments into coarse visual blocks
// approximating the columns and paragraphs of a page.
//
// PDF text layers rarely emit fragments in strict column order, and a
// purely sequential "next fragment" test would either fracture a single
// column into many tiny blocks or bleed across a column gutter. The
// [Builder] instead scans fragments in document order and merges each into
// the current block when it is vertically adjacent and shows at least one
// horizontal alignment signal (matching left or right edges, same-line
// continuation, edge straddling, or outright intersection).
//
// A merge-to-fixpoint pass then guarantees that no two blocks in the
// output intersect, and the result is sorted in reading order,
// left-to-right first so that columns are discriminated, then
// top-to-bottom.
//
// Blocks carry no identity: they are recomputed fresh from the flat
// fragment list whenever a gesture needs them, because fragment geometry
// can shift between repaints. Building is a linear scan plus a sort, cheap
// enough to run on every pointer move.
//
//	builder := layout.NewBuilder()
//	blocks := builder.Build(fragments)
//
// Thresholds can be tuned for unusual page metrics:
//
//	config := layout.DefaultBuilderConfig()
//	config.VerticalGap = 8
//	builder := layout.NewBuilderWithConfig(config)
package layout

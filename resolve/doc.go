// Package resolve implements the position resolver, the central algorithm
// of the selection engine: given a pointer coordinate, a directional hint,
// and the page's layout blocks, it decides which fragment and which rune
// offset the user intends to anchor or extend a selection to.
//
// Resolution runs through an ordered chain of strategies and returns the
// first confident answer:
//
//  1. Direct hit: the coordinate lands inside a fragment's box. The offset
//     comes from the host's precise caret-from-point primitive when one is
//     available, otherwise from a horizontal-midpoint test.
//  2. Same-row resolution: fragments whose vertical span strictly contains
//     the Y coordinate form the row. A coordinate left of the row resolves
//     to the first fragment's start and right of the row to the last
//     fragment's end, unless block geometry shows the coordinate actually
//     lies inside a different block's margin. A coordinate in a gutter
//     between two row fragments tie-breaks on fragment-edge distance within
//     one block and on block-edge distance across blocks, which is what
//     keeps a selection from reaching across a column gutter.
//  3. Constrained nearest fragment: when no row matches (a vertical gap
//     between paragraphs, say), candidates are restricted to the block
//     under the pointer, else the block the active selection intersects,
//     else every fragment, and the winner minimizes a weighted squared
//     distance in which vertical error dominates horizontal error.
//  4. No fragments at all: resolution returns nil and the caller must leave
//     the existing selection untouched.
//
// Resolution is a pure function of its inputs; it never panics on
// well-formed input, and malformed block lists are logged and degraded to
// the unconstrained nearest-fragment search rather than propagated.
package resolve

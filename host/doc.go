// Package host declares the capability interfaces through which the
// selection engine talks to its embedding view layer.
//
// The underlying text cursor and selection is process-wide UI state with no
// natural owner object. Rather than depending on a concrete global, the
// resolver and the session controller depend only on the small interfaces
// here: [Selection] for reading and mutating the active selection,
// [CaretLocator] for the optional precise caret-from-point primitive, and
// [Container]/[ContainerLocator] for finding the fragment-bearing page
// container under a coordinate.
//
// [CaretLocator] is optional. When the embedder provides none, the engine
// degrades to a horizontal-midpoint heuristic; that is not an error.
//
// [MemorySelection] is a complete in-memory implementation of [Selection]
// over a fragment list. It serves as the test double for every component
// that touches selection state, and as a reference implementation for
// embedders whose host environment has no native selection primitive.
package host

// Package text defines the text fragment record consumed by the selection
// engine, along with word-boundary helpers.
//
// A [Fragment] is one contiguous run of characters positioned on the page.
// Fragments are produced externally by the page rendering collaborator, once
// per page paint; the engine never creates, moves, or destroys them, it only
// reads their geometry. The Node field is the stable link back to the host's
// character stream so that a rune offset into the fragment can be turned
// into an actual cursor position.
//
// [Visible] filters out the zero-area and hidden fragments a text layer
// commonly carries (collapsed whitespace runs, fragments clipped to nothing
// by the layout engine) before any geometric reasoning happens.
//
// [ExpandWord] implements double-click word selection: runes are classified
// as word characters (letters, digits, underscore) or non-word, and the
// expansion stops at the first class change in each direction.
package text

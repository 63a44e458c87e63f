package text

import "github.com/tsawler/textselect/geom"

// Node is an opaque handle linking a fragment back to the host's character
// stream. The engine never inspects it; it is handed back to the host when
// setting or extending the selection. Hosts must supply comparable values
// (pointers are typical) so selection endpoints can be matched to fragments.
type Node interface{}

// Fragment represents one positioned run of text on a page. The bounding box
// is in the same coordinate space as pointer events. Fragments are
// immutable for the duration of a frame.
type Fragment struct {
	// Box is the fragment's bounding box in pointer-event coordinates.
	Box geom.Rect

	// Text is the fragment's character content.
	Text string

	// Node links the fragment to the host's underlying character stream.
	Node Node
}

// Len returns the number of runes in the fragment's text. Selection offsets
// are rune offsets, 0..Len inclusive.
func (f Fragment) Len() int {
	return len([]rune(f.Text))
}

// Visible returns the fragments that take part in geometric resolution,
// discarding any with an empty bounding box or no text. The input order is
// preserved; the returned slice is freshly allocated.
func Visible(fragments []Fragment) []Fragment {
	out := make([]Fragment, 0, len(fragments))
	for _, f := range fragments {
		if f.Box.IsEmpty() || f.Text == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

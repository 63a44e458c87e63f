package export

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/textselect/geom"
	"github.com/tsawler/textselect/host"
)

// PlainText assembles the clipboard text for a sequence of selected spans.
// Spans whose fragments share a visual row are joined with a single space,
// row changes with a newline.
func PlainText(ranges []host.Range) string {
	var sb strings.Builder
	for i, r := range ranges {
		if i > 0 {
			if sameRow(ranges[i-1].Fragment.Box, r.Fragment.Box) {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('\n')
			}
		}
		sb.WriteString(spanText(r))
	}
	return sb.String()
}

// HTML assembles a rich-text clipboard payload for the selected spans: a
// div containing one p element per visual row, spans within a row joined
// with a space. Text content is escaped during rendering. No spans yield
// an empty payload, matching PlainText.
func HTML(ranges []host.Range) (string, error) {
	if len(ranges) == 0 {
		return "", nil
	}
	root := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}

	var row *html.Node
	for i, r := range ranges {
		if row == nil || !sameRow(ranges[i-1].Fragment.Box, r.Fragment.Box) {
			row = &html.Node{Type: html.ElementNode, DataAtom: atom.P, Data: "p"}
			root.AppendChild(row)
		} else {
			row.AppendChild(&html.Node{Type: html.TextNode, Data: " "})
		}
		row.AppendChild(&html.Node{Type: html.TextNode, Data: spanText(r)})
	}

	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// spanText extracts the selected rune span from a fragment.
func spanText(r host.Range) string {
	runes := []rune(r.Fragment.Text)
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// sameRow reports whether two fragment boxes overlap vertically.
func sameRow(a, b geom.Rect) bool {
	return a.Top <= b.Bottom && b.Top <= a.Bottom
}

package text

import "unicode"

// IsWordRune reports whether r belongs to a word for double-click selection
// purposes: letters, digits, and underscore.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// ExpandWord expands a rune offset inside s to the boundaries of the run it
// falls in. Runes are classified as word or non-word by [IsWordRune], and
// the expansion stops at the first class change scanning backward and
// forward, so clicking inside "Hello" selects exactly "Hello" and clicking
// on the comma in "Hello, world" selects just the punctuation run.
//
// The returned start and end are rune offsets with start <= offset <= end.
// An offset at the very end of s expands the run ending there; expanding an
// empty string yields (0, 0).
func ExpandWord(s string, offset int) (start, end int) {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0, 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	// Classify by the rune under the caret, or the one before it when the
	// caret sits at the end of the text.
	at := offset
	if at == len(runes) {
		at--
	}
	word := IsWordRune(runes[at])

	start = at
	for start > 0 && IsWordRune(runes[start-1]) == word {
		start--
	}
	end = at + 1
	for end < len(runes) && IsWordRune(runes[end]) == word {
		end++
	}
	return start, end
}

package export

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/tsawler/textselect/host"
)

// ErrClipboard wraps failures from the system clipboard.
var ErrClipboard = errors.New("clipboard write failed")

// Copy writes the payload to the system clipboard.
func Copy(payload string) error {
	if err := clipboard.WriteAll(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return nil
}

// CopyRanges assembles the plain-text payload for the spans and writes it
// to the system clipboard.
func CopyRanges(ranges []host.Range) error {
	return Copy(PlainText(ranges))
}

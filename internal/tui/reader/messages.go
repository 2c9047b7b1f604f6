package reader

import (
	"github.com/alexisbeaulieu97/folio/internal/content"
)

// refreshMsg asks for a redraw after a controller changed state off the
// update loop, such as a copy block resetting.
type refreshMsg struct{}

// copyDoneMsg reports the outcome of a copy started from the reader.
type copyDoneMsg struct {
	Index int
	Err   error
}

// ReloadedMsg carries a freshly loaded document. The reader remounts it,
// so step progress and copy confirmations start over.
type ReloadedMsg struct {
	Document content.Document
	Err      error
}

// clearStatusMsg drops the status line if it still shows the message
// with the given sequence number.
type clearStatusMsg struct {
	Seq int
}

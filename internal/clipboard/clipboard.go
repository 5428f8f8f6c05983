// Package clipboard writes generated passwords to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrNothingToCopy = errors.New("nothing to copy")

// Writer is the host clipboard facility.
type Writer interface {
	WriteAll(text string) error
}

type systemWriter struct{}

func (systemWriter) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// System returns a Writer backed by the operating system clipboard.
func System() Writer {
	return systemWriter{}
}

// Clipboard copies text through a Writer.
type Clipboard struct {
	w Writer
}

// New returns a Clipboard using w, or the system clipboard when w is nil.
func New(w Writer) *Clipboard {
	if w == nil {
		w = System()
	}
	return &Clipboard{w: w}
}

// Copy writes text to the clipboard. A nil error is the success signal.
func (c *Clipboard) Copy(text string) error {
	if text == "" {
		return ErrNothingToCopy
	}
	if err := c.w.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Package clipboard copies generated passwords to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// Copy writes text to the system clipboard.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// Unsupported reports whether no clipboard utility was found at startup.
func Unsupported() bool {
	return clipboard.Unsupported
}

// Memory keeps the last copied text. It stands in for the system clipboard
// on headless hosts and in tests.
type Memory struct {
	Text string
	Err  error
}

// Copy stores text, or returns Err when it is set.
func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}

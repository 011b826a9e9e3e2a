package editor

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned by SystemClipboard when no clipboard
// utility is available on the host.
var ErrClipboardUnsupported = errors.New("system clipboard unsupported")

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; the editor logs and ignores them.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard reads and writes the host clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(s)
}

// MemoryClipboard keeps copied text inside the process.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) ReadText() (string, error) { return c.text, nil }

func (c *MemoryClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

// clipboardRead adapts one Clipboard read to state.Clipboard.
type clipboardRead struct {
	text string
	err  error
}

func readClipboard(c Clipboard) clipboardRead {
	s, err := c.ReadText()
	return clipboardRead{text: s, err: err}
}

func (r clipboardRead) HasText() bool { return r.err != nil || r.text != "" }

func (r clipboardRead) ReadText() (string, error) { return r.text, r.err }

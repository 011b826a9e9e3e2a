package state

// Clipboard is the text source consumed by Paste.
type Clipboard interface {
	HasText() bool
	ReadText() (string, error)
}

// TextClipboard is a fixed in-memory Clipboard.
type TextClipboard string

func (c TextClipboard) HasText() bool { return c != "" }

func (c TextClipboard) ReadText() (string, error) { return string(c), nil }

package editor

import (
	"log"

	"github.com/iw2rmb/lineed/state"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal state.
	Text string

	// Forwarded to state.Options.
	LineSeparator string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4

	// KeyMap defaults to DefaultKeyMap when it has no bindings.
	KeyMap KeyMap

	// Clipboard defaults to an in-process MemoryClipboard.
	Clipboard Clipboard

	ReadOnly bool

	// Logger receives clipboard failures and rejected edits. nil discards.
	Logger *log.Logger

	// OnChange runs after every effective state change.
	OnChange func(state.ChangeEvent)
}

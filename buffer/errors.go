package buffer

import "errors"

var (
	// ErrIndexOutOfRange is returned when a line or column index falls outside
	// the current document.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLineBreak is returned when text written to a single line contains a
	// line break.
	ErrLineBreak = errors.New("line text contains a line break")
)

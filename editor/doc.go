// Package editor provides a Bubble Tea text editor component backed by the
// state package.
//
// The package is the presentation side of lineed: it maps key and mouse
// events to state operations, hit-tests pointer positions into (row, col),
// renders lines with the selection marked, and keeps a per-row render cache
// that change events from the state invalidate.
package editor

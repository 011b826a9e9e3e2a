package state

import (
	"fmt"

	"github.com/iw2rmb/lineed/buffer"
)

type Options struct {
	// Forwarded to buffer.Options.
	LineSeparator string
}

// State is the editor state: one buffer and one selection, mutated together.
type State struct {
	buf *buffer.Buffer
	sel buffer.Selection

	version       uint64
	lastChange    ChangeEvent
	hasLastChange bool

	subs      []subscriber
	nextSubID int
}

// New returns a state holding text with the caret at (0,0).
func New(text string, opt Options) *State {
	return &State{
		buf: buffer.New(text, buffer.Options{LineSeparator: opt.LineSeparator}),
	}
}

// Version increments once per effective change.
func (s *State) Version() uint64 { return s.version }

// Text joins the lines with the configured separator.
func (s *State) Text() string { return s.buf.Text() }

// TextSep joins the lines with sep.
func (s *State) TextSep(sep string) string { return s.buf.TextSep(sep) }

func (s *State) LineSeparator() string { return s.buf.LineSeparator() }

func (s *State) Line(i int) (string, error) { return s.buf.Line(i) }

func (s *State) LineLen(i int) int { return s.buf.LineLen(i) }

func (s *State) LineCount() int { return s.buf.LineCount() }

// Lines returns a copy of every line.
func (s *State) Lines() []string { return s.buf.Lines() }

// Selection returns the selection as given: From is the anchor.
func (s *State) Selection() buffer.Selection { return s.sel }

// NormalizedSelection returns the selection with From <= To.
func (s *State) NormalizedSelection() buffer.Selection { return s.sel.Normalized() }

// Caret returns the live end of the selection.
func (s *State) Caret() buffer.Pos { return s.sel.To }

// SetSelection replaces the selection. Both endpoints must address slots in
// the current buffer.
func (s *State) SetSelection(sel buffer.Selection) error {
	if err := s.checkSelection(sel); err != nil {
		return err
	}
	cb := s.beginChange(OpSelect)
	s.sel = sel
	s.commitChange(cb)
	return nil
}

// ExtendSelection keeps the anchor and moves the live end to p.
func (s *State) ExtendSelection(p buffer.Pos) error {
	return s.SetSelection(buffer.Selection{From: s.sel.From, To: p})
}

// SetText replaces the whole document. The selection is clamped into the new
// content.
func (s *State) SetText(content string) {
	cb := s.beginChange(OpSetText)
	s.buf.SetText(content)
	s.clampSelection()
	cb.shift(0)
	s.commitChange(cb)
}

// ReplaceLine overwrites row i with text.
func (s *State) ReplaceLine(i int, text string) error {
	cb := s.beginChange(OpReplaceLine)
	if err := s.buf.ReplaceLine(i, text); err != nil {
		return err
	}
	s.clampSelection()
	cb.touch(i)
	s.commitChange(cb)
	return nil
}

// InsertLine inserts text as a new row at i; i may equal LineCount.
func (s *State) InsertLine(i int, text string) error {
	cb := s.beginChange(OpInsertLine)
	if err := s.buf.InsertLine(i, text); err != nil {
		return err
	}
	s.clampSelection()
	cb.shift(i)
	s.commitChange(cb)
	return nil
}

// RemoveLines removes rows [start, end).
func (s *State) RemoveLines(start, end int) error {
	cb := s.beginChange(OpRemoveLines)
	if err := s.buf.RemoveLines(start, end); err != nil {
		return err
	}
	if start == end {
		return nil
	}
	s.clampSelection()
	cb.shift(start)
	s.commitChange(cb)
	return nil
}

// RemoveLine removes row i.
func (s *State) RemoveLine(i int) error {
	if _, err := s.buf.Line(i); err != nil {
		return err
	}
	return s.RemoveLines(i, i+1)
}

func (s *State) checkSelection(sel buffer.Selection) error {
	if err := s.buf.CheckPos(sel.From); err != nil {
		return fmt.Errorf("selection start: %w", err)
	}
	if err := s.buf.CheckPos(sel.To); err != nil {
		return fmt.Errorf("selection end: %w", err)
	}
	return nil
}

func (s *State) clampSelection() {
	s.sel = buffer.Selection{
		From: s.buf.ClampPos(s.sel.From),
		To:   s.buf.ClampPos(s.sel.To),
	}
}

func (s *State) line(i int) string {
	text, err := s.buf.Line(i)
	must(err)
	return text
}

// must panics on errors that a consistent buffer/selection pair cannot
// produce.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("lineed/state: inconsistent state: %v", err))
	}
}

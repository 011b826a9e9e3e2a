package state

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/lineed/buffer"
	"github.com/iw2rmb/lineed/internal/grapheme"
)

// ClearSelected deletes the selected text and collapses the selection to a
// caret at its start.
//
// The selected part of the first and last lines is removed and every line
// strictly between them is deleted. The first and last lines are not joined.
// A collapsed selection leaves the buffer untouched.
func (s *State) ClearSelected() {
	cb := s.beginChange(OpClearSelected)
	s.clearSelected(&cb)
	s.commitChange(cb)
}

func (s *State) clearSelected(cb *changeBuilder) {
	sel := s.sel.Normalized()

	first := sel.From.Row
	s.removeSpan(cb, sel, first)

	if !sel.IsSingleLine() {
		s.removeSpan(cb, sel, sel.To.Row)
	}

	if sel.From.Row+1 < sel.To.Row {
		must(s.buf.RemoveLines(sel.From.Row+1, sel.To.Row))
		cb.shift(first + 1)
	}

	s.sel = buffer.Caret(sel.From)
}

func (s *State) removeSpan(cb *changeBuilder, sel buffer.Selection, row int) {
	text := s.line(row)
	span := sel.LineSelection(row, text)
	if span.IsEmpty() {
		return
	}
	must(s.buf.ReplaceLine(row, grapheme.Remove(text, span.Start, span.End)))
	cb.touch(row)
}

// NewLine replaces the selection with a line break: the text after the caret
// moves to a new line and the caret lands at its start.
func (s *State) NewLine() {
	cb := s.beginChange(OpNewLine)
	s.clearSelected(&cb)

	pos := s.sel.From
	before, after := grapheme.Cut(s.line(pos.Row), pos.Col)
	must(s.buf.ReplaceLine(pos.Row, before))
	must(s.buf.InsertLine(pos.Row+1, after))
	cb.shift(pos.Row)

	s.sel = buffer.Caret(buffer.Pos{Row: pos.Row + 1})
	s.commitChange(cb)
}

// Paste replaces the selection with the clipboard text. A clipboard without
// text is a no-op. The caret lands after the pasted text.
func (s *State) Paste(clip Clipboard) error {
	if clip == nil || !clip.HasText() {
		return nil
	}
	text, err := clip.ReadText()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	if text == "" {
		return nil
	}
	s.insertLines(OpPaste, buffer.SplitLines(text))
	return nil
}

func (s *State) insertLines(op Op, lines []string) {
	cb := s.beginChange(op)
	s.clearSelected(&cb)

	pos := s.sel.Normalized().From
	prefix, suffix := grapheme.Cut(s.line(pos.Row), pos.Col)

	merged := append([]string(nil), lines...)
	last := len(merged) - 1
	merged[0] = prefix + merged[0]
	caret := buffer.Pos{Row: pos.Row + last, Col: grapheme.Count(merged[last])}
	merged[last] += suffix

	must(s.buf.ReplaceLine(pos.Row, merged[0]))
	must(s.buf.InsertLines(pos.Row+1, merged[1:]...))
	if len(merged) > 1 {
		cb.shift(pos.Row)
	} else {
		cb.touch(pos.Row)
	}

	s.sel = buffer.Caret(caret)
	s.commitChange(cb)
}

// SelectedText returns the selected text joined with the line separator.
func (s *State) SelectedText() string {
	sel := s.sel.Normalized()
	if sel.IsCaret() {
		return ""
	}

	var sb strings.Builder
	for row := sel.From.Row; row <= sel.To.Row; row++ {
		if row > sel.From.Row {
			sb.WriteString(s.buf.LineSeparator())
		}
		text := s.line(row)
		span := sel.LineSelection(row, text)
		sb.WriteString(grapheme.Slice(text, span.Start, span.End))
	}
	return sb.String()
}

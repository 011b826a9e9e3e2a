package state

import "github.com/iw2rmb/lineed/buffer"

// MoveUp moves the caret to the previous row, keeping the column of the
// selection's From end (clamped). No-op on the first row.
func (s *State) MoveUp() { s.moveFrom(s.sel.From, buffer.DirUp) }

// MoveDown moves the caret to the next row, keeping the column of the
// selection's To end (clamped). No-op on the last row.
//
// MoveUp reads From while MoveDown reads To; the asymmetry is deliberate.
func (s *State) MoveDown() { s.moveFrom(s.sel.To, buffer.DirDown) }

// MoveLeft collapses a selection to its start, or steps the caret one
// grapheme back, wrapping to the end of the previous line.
func (s *State) MoveLeft() {
	if n := s.sel.Normalized(); !n.IsCaret() {
		s.setCaret(n.From)
		return
	}
	s.moveFrom(s.sel.To, buffer.DirLeft)
}

// MoveRight collapses a selection to its end, or steps the caret one
// grapheme forward, wrapping to the start of the next line.
func (s *State) MoveRight() {
	if n := s.sel.Normalized(); !n.IsCaret() {
		s.setCaret(n.To)
		return
	}
	s.moveFrom(s.sel.To, buffer.DirRight)
}

// MoveToStart puts the caret at (0,0).
func (s *State) MoveToStart() { s.moveFrom(s.sel.To, buffer.DirDocStart) }

// MoveToEnd puts the caret after the last character of the last line.
func (s *State) MoveToEnd() { s.moveFrom(s.sel.To, buffer.DirDocEnd) }

func (s *State) moveFrom(p buffer.Pos, dir buffer.MoveDir) {
	next, ok := s.buf.Step(p, dir)
	if !ok {
		return
	}
	s.setCaret(next)
}

func (s *State) setCaret(p buffer.Pos) {
	cb := s.beginChange(OpMove)
	s.sel = buffer.Caret(p)
	s.commitChange(cb)
}

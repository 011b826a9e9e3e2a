package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineed/buffer"
	"github.com/iw2rmb/lineed/internal/grapheme"
	"github.com/iw2rmb/lineed/state"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertText(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.st.MoveLeft()
	case key.Matches(msg, km.Right):
		m.st.MoveRight()
	case key.Matches(msg, km.Up):
		m.st.MoveUp()
	case key.Matches(msg, km.Down):
		m.st.MoveDown()
	case key.Matches(msg, km.DocStart):
		m.st.MoveToStart()
	case key.Matches(msg, km.DocEnd):
		m.st.MoveToEnd()

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.deleteBackward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.st.NewLine()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if msg.Type == tea.KeyTab {
			if !m.cfg.ReadOnly {
				m.insertText("\t")
			}
			return m, nil
		}
		if msg.Type == tea.KeySpace {
			if !m.cfg.ReadOnly {
				m.insertText(" ")
			}
			return m, nil
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.insertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

// insertText replaces the selection with s and leaves the caret after it.
func (m Model) insertText(s string) {
	if s == "" {
		return
	}
	if strings.ContainsAny(s, "\r\n") {
		if err := m.st.Paste(state.TextClipboard(s)); err != nil {
			m.log.Printf("editor: insert text: %v", err)
		}
		return
	}

	m.st.ClearSelected()
	p := m.st.Caret()
	line, err := m.st.Line(p.Row)
	if err != nil {
		m.log.Printf("editor: insert text: %v", err)
		return
	}
	before, after := grapheme.Cut(line, p.Col)
	if err := m.st.ReplaceLine(p.Row, before+s+after); err != nil {
		m.log.Printf("editor: insert text: %v", err)
		return
	}
	caret := buffer.Pos{Row: p.Row, Col: grapheme.Count(before + s)}
	if err := m.st.SetSelection(buffer.Caret(caret)); err != nil {
		m.log.Printf("editor: insert text: %v", err)
	}
}

// deleteBackward removes the selection, or the grapheme before the caret,
// joining with the previous line at column 0.
func (m Model) deleteBackward() {
	if !m.st.Selection().IsCaret() {
		m.st.ClearSelected()
		return
	}

	p := m.st.Caret()
	line, err := m.st.Line(p.Row)
	if err != nil {
		m.log.Printf("editor: delete: %v", err)
		return
	}

	if p.Col > 0 {
		if err := m.st.ReplaceLine(p.Row, grapheme.Remove(line, p.Col-1, p.Col)); err != nil {
			m.log.Printf("editor: delete: %v", err)
			return
		}
		_ = m.st.SetSelection(buffer.Caret(buffer.Pos{Row: p.Row, Col: p.Col - 1}))
		return
	}
	if p.Row == 0 {
		return
	}

	prev, err := m.st.Line(p.Row - 1)
	if err != nil {
		m.log.Printf("editor: delete: %v", err)
		return
	}
	joinCol := grapheme.Count(prev)
	if err := m.st.ReplaceLine(p.Row-1, prev+line); err != nil {
		m.log.Printf("editor: delete: %v", err)
		return
	}
	if err := m.st.RemoveLine(p.Row); err != nil {
		m.log.Printf("editor: delete: %v", err)
		return
	}
	_ = m.st.SetSelection(buffer.Caret(buffer.Pos{Row: p.Row - 1, Col: joinCol}))
}

func (m Model) copySelection() {
	s := m.st.SelectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Printf("editor: copy: %v", err)
	}
}

func (m Model) cutSelection() {
	s := m.st.SelectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Printf("editor: cut: %v", err)
		return
	}
	m.st.ClearSelected()
}

func (m Model) pasteClipboard() {
	if err := m.st.Paste(readClipboard(m.cfg.Clipboard)); err != nil {
		m.log.Printf("editor: paste: %v", err)
	}
}

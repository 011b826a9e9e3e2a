package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineed/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused {
		return m, nil
	}

	// Only left button interactions move the caret or the selection.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		p := m.screenToDocPos(msg.X, msg.Y)
		if msg.Shift {
			_ = m.st.ExtendSelection(p)
		} else {
			_ = m.st.SetSelection(buffer.Caret(p))
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		_ = m.st.ExtendSelection(m.screenToDocPos(x, y))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clamp(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clamp(y, 0, m.viewport.Height-1)
	}
	return x, y
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

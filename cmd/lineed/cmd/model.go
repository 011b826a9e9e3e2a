package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lineed/editor"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// model wraps the editor with a one-line status bar.
type model struct {
	editor editor.Model
}

func newModel(cfg editor.Config) model {
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, editorHeight(msg.Height))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + statusStyle.Render(m.status())
}

func (m model) status() string {
	st := m.editor.State()
	sel := st.Selection()
	if sel.IsCaret() {
		return fmt.Sprintf("Ln %d, Col %d  (%d lines)  ctrl+q quit", sel.To.Row+1, sel.To.Col+1, st.LineCount())
	}
	return fmt.Sprintf("Sel %s  (%d lines)  ctrl+q quit", sel.Normalized(), st.LineCount())
}

func editorHeight(total int) int {
	if total <= 1 {
		return 0
	}
	return total - 1
}

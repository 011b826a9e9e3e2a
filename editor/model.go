package editor

import (
	"io"
	"log"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineed/state"
)

// Model is a Bubble Tea component that renders and edits a state.State.
type Model struct {
	cfg Config
	st  *state.State
	log *log.Logger

	focused bool

	viewport viewport.Model
	cache    *lineCache

	mouseDragging bool
	lastVersion   uint64
}

func New(cfg Config) Model {
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = &MemoryClipboard{}
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	m := Model{
		cfg:      cfg,
		st:       state.New(cfg.Text, state.Options{LineSeparator: cfg.LineSeparator}),
		log:      logger,
		focused:  true,
		viewport: viewport.New(0, 0),
		cache:    newLineCache(),
	}

	cache, onChange := m.cache, cfg.OnChange
	m.st.Subscribe(func(ev state.ChangeEvent) {
		cache.invalidate(ev)
		if onChange != nil {
			onChange(ev)
		}
	})

	m.lastVersion = m.st.Version()
	m.rebuildContent()
	return m
}

// State exposes the edited state. Mutations made through it are picked up on
// the next Update.
func (m Model) State() *state.State { return m.st }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCaret()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.cache.reset()
		m.rebuildContent()
		m.followCaret()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.cache.reset()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	if m.syncFromState() {
		m.followCaret()
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// syncFromState rebuilds the viewport content when the state moved on.
func (m *Model) syncFromState() bool {
	ver := m.st.Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCaret scrolls so the live end of the selection stays visible.
func (m *Model) followCaret() {
	row := m.st.Selection().To.Row
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

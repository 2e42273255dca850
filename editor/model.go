package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rubytype/doc"
	"github.com/iw2rmb/rubytype/engine"
	"github.com/iw2rmb/rubytype/layout"
)

// Model is a Bubble Tea component that renders and edits annotated text.
type Model struct {
	cfg  Config
	sync *engine.Synchronizer

	caret        doc.Anchor
	composeStart int

	focused bool

	viewport viewport.Model
	lay      layout.Document

	lastText   string
	lastOffset int
	lastState  engine.State
}

// TableMsg replaces the code table, typically after the table file
// changed on disk.
type TableMsg struct {
	Table doc.Lookup
}

// New returns a focused editor seeded with cfg.Text.
func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if !cfg.ReadOnly {
		cfg.Placeholder = ""
	}

	m := Model{
		cfg: cfg,
		sync: engine.New(cfg.Table, engine.Options{
			Logger:  cfg.Logger,
			OnCycle: cfg.OnCycle,
		}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.place(m.sync.Seed(cfg.Text))
	m.lastText = m.Text()
	m.lastOffset = m.Offset()
	m.rebuildContent()
	return m
}

// Synchronizer returns the engine behind the editor. Hosts that mutate its
// tree directly should send an input event through it afterwards.
func (m Model) Synchronizer() *engine.Synchronizer { return m.sync }

// Text returns the logical text.
func (m Model) Text() string {
	text, _ := doc.Extract(m.sync.Root(), doc.Anchor{})
	return text.String()
}

// Offset returns the caret as a logical offset.
func (m Model) Offset() int { return doc.Offset(m.sync.Root(), m.caret) }

// LineCol returns the 0-based caret line and column.
func (m Model) LineCol() (line, col int) { return doc.LineCol(m.sync.Root(), m.caret) }

// Composing reports whether a composition is in progress.
func (m Model) Composing() bool { return m.sync.State() == engine.StateComposing }

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
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

// Blur removes focus. A composition in progress is committed.
func (m Model) Blur() Model {
	if m.focused {
		if m.Composing() {
			m.endComposition()
			m.emitChange()
		}
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetTable swaps the code table and re-renders the content with it. During
// a composition the new table applies from the commit.
func (m Model) SetTable(table doc.Lookup) Model {
	m.cfg.Table = table
	if res, ok := m.sync.Retable(table, m.caret); ok {
		m.place(res)
	}
	m.rebuildContent()
	m.followCursor()
	m.emitChange()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		// Don't follow the cursor here; allow manual scrolling via mouse wheel.
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case TableMsg:
		return m.SetTable(msg.Table), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.rebuildContent()
		m.followCursor()
		m.emitChange()
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// place adopts the caret of a cycle result.
func (m *Model) place(res engine.Result) {
	if res.Placed {
		m.caret = res.Caret
		return
	}
	m.caret = doc.End(m.sync.Root())
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor keeps both terminal lines of the caret's row visible.
func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	top := 2 * m.lay.RowOf(m.Offset())
	bottom := top + 1

	y := m.viewport.YOffset
	if top < y {
		m.viewport.SetYOffset(top)
		return
	}
	if bottom >= y+h {
		m.viewport.SetYOffset(bottom - h + 1)
	}
}

func (m *Model) emitChange() {
	text, off, state := m.Text(), m.Offset(), m.sync.State()
	if text == m.lastText && off == m.lastOffset && state == m.lastState {
		return
	}
	m.lastText, m.lastOffset, m.lastState = text, off, state
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.buildChangeEvent())
	}
}

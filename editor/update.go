package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rubytype/doc"
	"github.com/iw2rmb/rubytype/engine"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insert(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	root := m.sync.Root()
	composing := m.Composing()

	switch {
	case key.Matches(msg, km.Compose):
		if m.cfg.ReadOnly {
			break
		}
		if composing {
			m.endComposition()
		} else {
			m.startComposition()
		}
	case composing && key.Matches(msg, km.Enter):
		m.endComposition()
	case composing && m.isMove(msg):
		// The composition owns the caret until it is committed.

	case key.Matches(msg, km.Left):
		m.caret = doc.MoveBy(root, m.caret, -1)
	case key.Matches(msg, km.Right):
		m.caret = doc.MoveBy(root, m.caret, 1)
	case key.Matches(msg, km.Up):
		m.caret = doc.MoveLine(root, m.caret, -1)
	case key.Matches(msg, km.Down):
		m.caret = doc.MoveLine(root, m.caret, 1)
	case key.Matches(msg, km.Home):
		m.caret = doc.LineStart(root, m.caret)
	case key.Matches(msg, km.End):
		m.caret = doc.LineEnd(root, m.caret)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.edit(doc.DeleteBackward)
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.edit(doc.DeleteForward)
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.edit(doc.InsertBreak)
		}

	case key.Matches(msg, km.Copy):
		m.copyText()
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if m.cfg.ReadOnly {
			return m, nil
		}
		switch {
		case msg.Type == tea.KeyTab:
			m.insert("\t")
		case msg.Type == tea.KeySpace:
			m.insert(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.insert(string(msg.Runes))
		}
	}

	return m, nil
}

func (m Model) isMove(msg tea.KeyMsg) bool {
	km := m.cfg.KeyMap
	return key.Matches(msg, km.Left, km.Right, km.Up, km.Down, km.Home, km.End)
}

func (m *Model) insert(s string) {
	m.edit(func(root *doc.Node, at doc.Anchor) doc.Anchor {
		return doc.InsertText(root, at, s)
	})
}

// edit applies one raw edit to the tree and reports it as an input event.
// Edits that change nothing send no event.
func (m *Model) edit(fn func(root *doc.Node, at doc.Anchor) doc.Anchor) {
	before := m.Text()
	m.caret = fn(m.sync.Root(), m.caret)
	if m.Text() == before {
		return
	}

	if m.Composing() {
		m.composeStart = min(m.composeStart, m.Offset())
	}
	if res, ok := m.sync.Handle(engine.Event{Kind: engine.EventInput, Anchor: m.caret}); ok {
		m.place(res)
	}
}

func (m *Model) startComposition() {
	m.composeStart = m.Offset()
	m.sync.Handle(engine.Event{Kind: engine.EventCompositionStart, Anchor: m.caret})
	m.cfg.Logger.Debug("composition started", "offset", m.composeStart)
}

func (m *Model) endComposition() {
	res, _ := m.sync.Handle(engine.Event{Kind: engine.EventCompositionEnd, Anchor: m.caret})
	m.place(res)
}

// compositionRange returns the logical range typed since the composition
// started, or an empty range when idle.
func (m Model) compositionRange() (from, to int) {
	if !m.Composing() {
		return -1, -1
	}
	off := m.Offset()
	return min(m.composeStart, off), off
}

func (m Model) copyText() {
	if m.cfg.Clipboard == nil {
		return
	}
	text := m.Text()
	if text == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(text); err != nil {
		m.cfg.Logger.Warn("clipboard write failed", "err", err)
	}
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Warn("clipboard read failed", "err", err)
		return
	}
	// InsertText normalizes newlines from external sources.
	m.insert(s)
}

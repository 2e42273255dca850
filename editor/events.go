package editor

import "github.com/iw2rmb/rubytype/engine"

// ChangeEvent is passed to Config.OnChange when the text or caret changes.
type ChangeEvent struct {
	Text   string
	Offset int
	Line   int
	Col    int
	State  engine.State
	Cycles uint64
}

func (m Model) buildChangeEvent() ChangeEvent {
	line, col := m.LineCol()
	return ChangeEvent{
		Text:   m.Text(),
		Offset: m.Offset(),
		Line:   line,
		Col:    col,
		State:  m.sync.State(),
		Cycles: m.sync.Cycles(),
	}
}

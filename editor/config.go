package editor

import (
	"log/slog"

	"github.com/iw2rmb/rubytype/doc"
	"github.com/iw2rmb/rubytype/engine"
)

// Config configures the editor Model.
type Config struct {
	// Table resolves characters to codes. Nil annotates nothing.
	Table doc.Lookup

	// Initial text, rendered with one cycle.
	Text string

	// Rendering options.
	ShowLineNums bool
	Wrap         bool
	Gap          int
	Style        Style

	// Placeholder is shown above unannotated characters. Only used when
	// ReadOnly is set.
	Placeholder string

	ReadOnly bool

	KeyMap    KeyMap
	Clipboard Clipboard

	Logger *slog.Logger

	// OnCycle is called after every synchronizer cycle.
	OnCycle func(engine.Report)

	// OnChange is called after an update that changed the text, the caret
	// or the composition state.
	OnChange func(ChangeEvent)
}

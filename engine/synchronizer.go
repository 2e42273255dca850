package engine

import (
	"log/slog"

	"github.com/iw2rmb/rubytype/doc"
)

// State is the composition gate of a Synchronizer.
type State uint8

const (
	StateIdle State = iota
	StateComposing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComposing:
		return "composing"
	default:
		return "unknown"
	}
}

// EventKind identifies what the host surface observed.
type EventKind uint8

const (
	EventInput            EventKind = iota // insert, delete or paste already applied to the tree
	EventCompositionStart                  // an input method began a multi-keystroke entry
	EventCompositionEnd                    // the input method committed its result
)

func (k EventKind) String() string {
	switch k {
	case EventInput:
		return "input"
	case EventCompositionStart:
		return "composition-start"
	case EventCompositionEnd:
		return "composition-end"
	default:
		return "unknown"
	}
}

// Event is one notification from the host surface. Anchor is the host's
// caret anchor in the synchronizer's tree at the time of the event.
type Event struct {
	Kind   EventKind
	Anchor doc.Anchor
}

// Report summarizes a completed cycle.
type Report struct {
	Cycle     uint64
	Length    int // logical characters, breaks included
	Offset    int
	Lines     int
	Annotated int // characters rendered with a code
	Plain     int // characters rendered without a code (breaks excluded)
}

// Options configures a Synchronizer.
type Options struct {
	Logger  *slog.Logger
	OnCycle func(Report)
}

// Synchronizer owns the document tree and runs cycles on qualifying events.
type Synchronizer struct {
	table  doc.Lookup
	root   *doc.Node
	state  State
	cycles uint64

	logger  *slog.Logger
	onCycle func(Report)
}

// New returns an idle synchronizer with an empty tree.
func New(table doc.Lookup, opt Options) *Synchronizer {
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Synchronizer{
		table:   table,
		root:    doc.NewContainer(),
		logger:  logger,
		onCycle: opt.OnCycle,
	}
}

// Root returns the tree the host renders and edits.
func (s *Synchronizer) Root() *doc.Node { return s.root }

// State returns the current composition gate.
func (s *Synchronizer) State() State { return s.state }

// Cycles returns the number of cycles run so far.
func (s *Synchronizer) Cycles() uint64 { return s.cycles }

// Seed replaces the content with text and runs one cycle with the caret at
// the end. A composition in progress is dropped.
func (s *Synchronizer) Seed(text string) Result {
	s.state = StateIdle
	s.root.Children = nil
	if text != "" {
		s.root.Children = []*doc.Node{doc.NewText(text)}
	}
	return s.cycle(doc.End(s.root), "seed")
}

// Handle processes one host event. It reports whether a cycle ran; when it
// did not, the host keeps its own caret.
func (s *Synchronizer) Handle(ev Event) (Result, bool) {
	switch ev.Kind {
	case EventCompositionStart:
		if s.state != StateComposing {
			s.state = StateComposing
			s.logger.Debug("composition started")
		}
		return Result{}, false
	case EventCompositionEnd:
		s.state = StateIdle
		return s.cycle(ev.Anchor, ev.Kind.String()), true
	case EventInput:
		if s.state == StateComposing {
			return Result{}, false
		}
		return s.cycle(ev.Anchor, ev.Kind.String()), true
	default:
		s.logger.Warn("ignoring unknown event", "kind", uint8(ev.Kind))
		return Result{}, false
	}
}

// Retable swaps in a new table and re-renders the current content with it.
// A composition in progress is left alone; the new table applies from its
// end.
func (s *Synchronizer) Retable(table doc.Lookup, at doc.Anchor) (Result, bool) {
	s.table = table
	if s.state == StateComposing {
		return Result{}, false
	}
	return s.cycle(at, "retable"), true
}

func (s *Synchronizer) cycle(at doc.Anchor, reason string) Result {
	res := Cycle(s.root, at, s.table)
	s.cycles++

	rep := report(s.cycles, s.root, res)
	s.logger.Debug("cycle",
		"n", rep.Cycle,
		"reason", reason,
		"len", rep.Length,
		"caret", rep.Offset,
		"annotated", rep.Annotated,
		"placed", res.Placed,
	)
	if s.onCycle != nil {
		s.onCycle(rep)
	}
	return res
}

func report(n uint64, root *doc.Node, res Result) Report {
	rep := Report{
		Cycle:  n,
		Length: res.Text.Len(),
		Offset: res.Offset,
		Lines:  1,
	}
	for _, c := range root.Children {
		switch c.Kind {
		case doc.KindAnnotated:
			rep.Annotated++
		case doc.KindBreak:
			rep.Lines++
		}
	}
	breaks := rep.Lines - 1
	rep.Plain = rep.Length - breaks - rep.Annotated
	return rep
}

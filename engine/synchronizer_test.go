package engine

import (
	"testing"

	"github.com/iw2rmb/rubytype/doc"
)

func TestSeed_RendersAndPlacesCaretAtEnd(t *testing.T) {
	s := New(wubi, Options{})
	res := s.Seed("一二three")

	if got, want := s.Root().String(), `[ruby(一/G) ruby(二/FG) "three"]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
	if !res.Placed || res.Offset != 7 {
		t.Fatalf("seed caret: got (placed=%v,offset=%d), want (true,7)", res.Placed, res.Offset)
	}
	if got := s.Cycles(); got != 1 {
		t.Fatalf("cycles: got %d, want %d", got, 1)
	}
}

func TestSeed_Empty(t *testing.T) {
	s := New(wubi, Options{})
	res := s.Seed("")
	if res.Placed || len(s.Root().Children) != 0 {
		t.Fatalf("empty seed: got placed=%v tree=%s", res.Placed, s.Root())
	}
	if got := s.Cycles(); got != 1 {
		t.Fatalf("cycles: got %d, want %d", got, 1)
	}
}

func TestSeed_DropsComposition(t *testing.T) {
	s := New(wubi, Options{})
	res := s.Seed("x")
	s.Handle(Event{Kind: EventCompositionStart, Anchor: res.Caret})

	s.Seed("一")
	if got, want := s.State(), StateIdle; got != want {
		t.Fatalf("state after seed: got %s, want %s", got, want)
	}

	at := doc.InsertText(s.Root(), doc.End(s.Root()), "二")
	if _, ran := s.Handle(Event{Kind: EventInput, Anchor: at}); !ran {
		t.Fatalf("input after seed must run a cycle")
	}
	if got, want := s.Root().String(), `[ruby(一/G) ruby(二/FG)]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
}

func TestHandle_InputRunsCycle(t *testing.T) {
	s := New(wubi, Options{})
	res := s.Seed("")

	at := doc.InsertText(s.Root(), res.Caret, "一")
	res, ran := s.Handle(Event{Kind: EventInput, Anchor: at})
	if !ran {
		t.Fatalf("input while idle must run a cycle")
	}
	if got, want := s.Root().String(), `[ruby(一/G)]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
	if res.Offset != 1 {
		t.Fatalf("offset: got %d, want %d", res.Offset, 1)
	}
}

func TestHandle_CompositionSuppressesCycles(t *testing.T) {
	var cycles []Report
	s := New(wubi, Options{OnCycle: func(r Report) { cycles = append(cycles, r) }})
	res := s.Seed("x")
	cycles = nil

	if _, ran := s.Handle(Event{Kind: EventCompositionStart, Anchor: res.Caret}); ran {
		t.Fatalf("composition start must not run a cycle")
	}
	if s.State() != StateComposing {
		t.Fatalf("state: got %v, want %v", s.State(), StateComposing)
	}

	at := res.Caret
	for _, part := range []string{"一", "二"} {
		at = doc.InsertText(s.Root(), at, part)
		if _, ran := s.Handle(Event{Kind: EventInput, Anchor: at}); ran {
			t.Fatalf("input while composing must not run a cycle")
		}
	}
	if got, want := s.Root().String(), `["x一二"]`; got != want {
		t.Fatalf("raw tree while composing: got %s, want %s", got, want)
	}
	if len(cycles) != 0 {
		t.Fatalf("cycles while composing: got %d, want 0", len(cycles))
	}

	res, ran := s.Handle(Event{Kind: EventCompositionEnd, Anchor: at})
	if !ran {
		t.Fatalf("composition end must run a cycle")
	}
	if len(cycles) != 1 {
		t.Fatalf("cycles after composition end: got %d, want 1", len(cycles))
	}
	if s.State() != StateIdle {
		t.Fatalf("state: got %v, want %v", s.State(), StateIdle)
	}
	if got, want := s.Root().String(), `["x" ruby(一/G) ruby(二/FG)]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
	if res.Offset != 3 {
		t.Fatalf("offset: got %d, want %d", res.Offset, 3)
	}
}

func TestHandle_RepeatedCompositionStartIsNoOp(t *testing.T) {
	s := New(wubi, Options{})
	s.Seed("")
	s.Handle(Event{Kind: EventCompositionStart})
	s.Handle(Event{Kind: EventCompositionStart})
	if s.State() != StateComposing {
		t.Fatalf("state: got %v, want %v", s.State(), StateComposing)
	}
	if got := s.Cycles(); got != 1 {
		t.Fatalf("cycles: got %d, want %d", got, 1)
	}
}

func TestHandle_CompositionEndWhileIdleStillCycles(t *testing.T) {
	s := New(wubi, Options{})
	res := s.Seed("一")
	if _, ran := s.Handle(Event{Kind: EventCompositionEnd, Anchor: res.Caret}); !ran {
		t.Fatalf("composition end while idle must run a cycle")
	}
	if got := s.Cycles(); got != 2 {
		t.Fatalf("cycles: got %d, want %d", got, 2)
	}
}

func TestHandle_UnknownEventIgnored(t *testing.T) {
	s := New(wubi, Options{})
	if _, ran := s.Handle(Event{Kind: EventKind(42)}); ran {
		t.Fatalf("unknown event must not run a cycle")
	}
}

func TestRetable_ReannotatesContent(t *testing.T) {
	s := New(mapTable{}, Options{})
	res := s.Seed("一二")
	if got, want := s.Root().String(), `["一二"]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}

	res, ran := s.Retable(wubi, doc.Restore(s.Root(), 1))
	if !ran {
		t.Fatalf("retable while idle must run a cycle")
	}
	if got, want := s.Root().String(), `[ruby(一/G) ruby(二/FG)]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
	if res.Offset != 1 {
		t.Fatalf("offset: got %d, want %d", res.Offset, 1)
	}

	s.Handle(Event{Kind: EventCompositionStart})
	if _, ran := s.Retable(mapTable{}, res.Caret); ran {
		t.Fatalf("retable while composing must wait for composition end")
	}
}

func TestReport_Counts(t *testing.T) {
	var last Report
	s := New(wubi, Options{OnCycle: func(r Report) { last = r }})
	s.Seed("一a\n二 b")

	want := Report{Cycle: 1, Length: 6, Offset: 6, Lines: 2, Annotated: 2, Plain: 3}
	if last != want {
		t.Fatalf("report: got %+v, want %+v", last, want)
	}
}

func TestState_String(t *testing.T) {
	if got := StateComposing.String(); got != "composing" {
		t.Fatalf("state string: got %q", got)
	}
	if got := EventCompositionEnd.String(); got != "composition-end" {
		t.Fatalf("event string: got %q", got)
	}
}

package editor

import (
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

type mapTable map[string]string

func (m mapTable) Lookup(char string) (string, bool) {
	code, ok := m[char]
	return code, ok
}

var wubi = mapTable{"一": "g", "二": "fg"}

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

var errNoClipboard = errors.New("no clipboard")

// testStyle marks the caret as [x] and composing characters as <x>, on a
// renderer that emits no colors.
func testStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	plain := r.NewStyle()
	return Style{
		Gutter:        plain,
		LineNum:       plain,
		LineNumActive: plain,
		Text:          plain,
		Code:          plain,
		Placeholder:   plain,
		Cursor:        r.NewStyle().Transform(func(s string) string { return "[" + s + "]" }),
		Composing:     r.NewStyle().Transform(func(s string) string { return "<" + s + ">" }),
	}
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runesMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(runesMsg(string(r)))
	}
	return m
}

// renderedLines returns the rendered content without escape sequences or
// trailing blanks.
func renderedLines(m Model) []string {
	lines := strings.Split(ansi.Strip(m.renderContent()), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/rubytype/doc"
	"github.com/iw2rmb/rubytype/internal/grapheme"
	"github.com/iw2rmb/rubytype/layout"
)

const tabWidth = 4

// renderContent lays the tree out and renders two terminal lines per row:
// codes on top, characters below.
func (m *Model) renderContent() string {
	root := m.sync.Root()
	st := m.cfg.Style

	line, _ := doc.LineCol(root, doc.End(root))
	gutterW := 0
	if m.cfg.ShowLineNums {
		gutterW = lineNumberWidth(line + 1)
	}

	opt := layout.Options{
		Placeholder: m.cfg.Placeholder,
		Gap:         m.cfg.Gap,
		TabWidth:    tabWidth,
	}
	if m.cfg.Wrap && m.viewport.Width > 0 {
		opt.Width = max(1, m.viewport.Width-gutterW)
	}
	m.lay = layout.Build(root, opt)

	offset := m.Offset()
	caretRow := m.lay.RowOf(offset)
	caretLine := m.lay.Rows[caretRow].Line
	caret := -1
	if m.focused {
		caret = offset
	}
	from, to := m.compositionRange()

	out := make([]string, 0, 2*len(m.lay.Rows))
	for i, row := range m.lay.Rows {
		var top, bottom strings.Builder

		if gutterW > 0 {
			top.WriteString(st.Gutter.Render(strings.Repeat(" ", gutterW)))
			num := strings.Repeat(" ", gutterW)
			if row.First {
				num = fmt.Sprintf("%*d ", gutterW-1, row.Line+1)
			}
			ns := st.LineNum
			if m.focused && row.Line == caretLine {
				ns = st.LineNumActive
			}
			bottom.WriteString(ns.Render(num))
		}

		for _, c := range row.Cells {
			top.WriteString(m.renderCode(c))
			bottom.WriteString(m.renderChars(c, caret, from, to))
		}

		if i == caretRow && caret == row.End {
			top.WriteString(" ")
			bottom.WriteString(st.Cursor.Render(" "))
		}

		out = append(out, top.String(), bottom.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderCode(c layout.Cell) string {
	if c.Code == "" {
		return strings.Repeat(" ", c.Span())
	}
	st := m.cfg.Style.Code
	if c.Placeholder {
		st = m.cfg.Style.Placeholder
	}
	left, right := layout.Padding(grapheme.Width(c.Code), c.Width)
	return strings.Repeat(" ", left) + st.Render(c.Code) + strings.Repeat(" ", right+c.Gap)
}

func (m *Model) renderChars(c layout.Cell, caret, from, to int) string {
	st := m.cfg.Style
	left, right := layout.Padding(grapheme.Width(c.Text()), c.Width)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", left))
	for i, ch := range c.Chars {
		off := c.Start + i
		s := st.Text
		switch {
		case off == caret:
			s = st.Cursor
		case off >= from && off < to:
			s = st.Composing
		}
		sb.WriteString(s.Render(ch))
	}
	sb.WriteString(strings.Repeat(" ", right+c.Gap))
	return sb.String()
}

func lineNumberWidth(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount)) + 1
}

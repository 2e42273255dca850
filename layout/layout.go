// Package layout arranges a document tree for a character-cell display:
// every visual row is two terminal lines, annotation codes above and the
// characters they belong to below, centered on each other.
package layout

import (
	"strings"

	"github.com/iw2rmb/rubytype/doc"
	"github.com/iw2rmb/rubytype/internal/grapheme"
)

// Options controls the arrangement.
type Options struct {
	// Width wraps rows at this many cells. 0 disables wrapping.
	Width int

	// Placeholder is shown above characters without a code, for display-only
	// output. Empty leaves them bare. Whitespace never gets a placeholder.
	Placeholder string

	// Gap is the number of blank cells after a character that shows a code.
	Gap int

	// TabWidth is the display width of a tab. Default: 4.
	TabWidth int
}

// Cell is one annotated character, or one plain character.
type Cell struct {
	Code  string   // shown above; "" for none
	Chars []string // display form of each logical character below
	Start int      // logical offset of Chars[0]

	Width int // cells taken by the wider of Code and Chars
	Gap   int

	Annotated   bool
	Placeholder bool // Code is Options.Placeholder
}

// Text returns the characters as displayed.
func (c Cell) Text() string { return strings.Join(c.Chars, "") }

// Span returns the total cells the cell occupies, gap included.
func (c Cell) Span() int { return c.Width + c.Gap }

// Row is one visual row.
type Row struct {
	Line  int  // 0-based logical line
	First bool // first visual row of its line
	Last  bool // last visual row of its line
	Start int  // logical offset of the first character
	End   int  // logical offset after the last character
	Cells []Cell
}

// Document is the arranged tree.
type Document struct {
	Rows  []Row
	Lines int
}

// Build arranges root. The result always has at least one row.
func Build(root *doc.Node, opt Options) Document {
	if opt.TabWidth <= 0 {
		opt.TabWidth = 4
	}
	b := &builder{opt: opt}
	b.node(root)
	b.flushLine()
	return Document{Rows: b.rows, Lines: b.line}
}

// RowOf returns the index of the row that shows a caret at offset. A caret
// at a wrap point belongs to the later row.
func (d Document) RowOf(offset int) int {
	for i, r := range d.Rows {
		if offset < r.Start {
			continue
		}
		if offset < r.End || (offset == r.End && r.Last) {
			return i
		}
	}
	if len(d.Rows) == 0 {
		return 0
	}
	return len(d.Rows) - 1
}

// String renders the document without styling, two lines per row, with
// trailing blanks trimmed.
func (d Document) String() string {
	out := make([]string, 0, 2*len(d.Rows))
	for _, r := range d.Rows {
		var top, bottom strings.Builder
		for _, c := range r.Cells {
			top.WriteString(Center(c.Code, c.Width))
			bottom.WriteString(Center(c.Text(), c.Width))
			gap := strings.Repeat(" ", c.Gap)
			top.WriteString(gap)
			bottom.WriteString(gap)
		}
		out = append(out,
			strings.TrimRight(top.String(), " "),
			strings.TrimRight(bottom.String(), " "),
		)
	}
	return strings.Join(out, "\n")
}

// Center pads s with spaces to width cells, extra space going right.
func Center(s string, width int) string {
	left, right := Padding(grapheme.Width(s), width)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// Padding splits the cells left over when content of width w is centered
// in width cells.
func Padding(w, width int) (left, right int) {
	pad := width - w
	if pad <= 0 {
		return 0, 0
	}
	left = pad / 2
	return left, pad - left
}

type builder struct {
	opt Options

	pos   int
	line  int
	cells []Cell
	rows  []Row
}

func (b *builder) node(n *doc.Node) {
	if n == nil || !n.Editable {
		return
	}
	switch n.Kind {
	case doc.KindText:
		for _, ch := range doc.NewLogicalText(n.Text) {
			if ch == doc.LineBreak {
				b.lineBreak()
				continue
			}
			b.plain(ch)
		}
	case doc.KindBreak:
		b.lineBreak()
	case doc.KindAnnotated:
		b.annotated(n)
	default:
		for _, c := range n.Children {
			b.node(c)
		}
	}
}

func (b *builder) plain(ch string) {
	c := Cell{Chars: []string{b.display(ch)}, Start: b.pos}
	if b.opt.Placeholder != "" && !grapheme.IsSpace(ch) {
		c.Code = b.opt.Placeholder
		c.Placeholder = true
		c.Gap = b.opt.Gap
	}
	c.Width = max(grapheme.Width(c.Chars[0]), grapheme.Width(c.Code))
	b.cells = append(b.cells, c)
	b.pos++
}

func (b *builder) annotated(n *doc.Node) {
	base := doc.NewLogicalText(n.Base())
	if base.Len() == 0 {
		return
	}
	chars := make([]string, len(base))
	for i, ch := range base {
		chars[i] = b.display(ch)
	}
	c := Cell{
		Code:      n.Code(),
		Chars:     chars,
		Start:     b.pos,
		Gap:       b.opt.Gap,
		Annotated: true,
	}
	c.Width = max(grapheme.Width(c.Text()), grapheme.Width(c.Code))
	b.cells = append(b.cells, c)
	b.pos += len(chars)
}

func (b *builder) display(ch string) string {
	if ch == "\t" {
		return strings.Repeat(" ", b.opt.TabWidth)
	}
	return ch
}

func (b *builder) lineBreak() {
	b.flushLine()
	b.pos++
}

// flushLine wraps the pending cells of the current logical line into rows.
func (b *builder) flushLine() {
	lineStart := b.pos
	if len(b.cells) > 0 {
		lineStart = b.cells[0].Start
	}

	var rows []Row
	cur := Row{Line: b.line, Start: lineStart, End: lineStart}
	width := 0
	for _, c := range b.cells {
		if b.opt.Width > 0 && len(cur.Cells) > 0 && width+c.Span() > b.opt.Width {
			rows = append(rows, cur)
			cur = Row{Line: b.line, Start: c.Start, End: c.Start}
			width = 0
		}
		cur.Cells = append(cur.Cells, c)
		cur.End = c.Start + len(c.Chars)
		width += c.Span()
	}
	rows = append(rows, cur)

	rows[0].First = true
	rows[len(rows)-1].Last = true
	b.rows = append(b.rows, rows...)
	b.cells = nil
	b.line++
}

// Package htmlview renders a document tree as HTML ruby markup.
//
// Annotated characters become <ruby>base<rt contenteditable="false">CODE</rt></ruby>,
// line breaks become <br/>, and plain runs become escaped text.
package htmlview

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iw2rmb/rubytype/doc"
	"github.com/iw2rmb/rubytype/internal/grapheme"
)

// Options controls the markup.
type Options struct {
	// Class of the wrapping element. Default: "editor".
	Class string

	// Editable marks the wrapping element contenteditable.
	Editable bool

	// Placeholder is shown as the code of characters without one.
	// Whitespace never gets a placeholder.
	Placeholder string
}

// Build converts root to an HTML node tree.
func Build(root *doc.Node, opt Options) *html.Node {
	class := opt.Class
	if class == "" {
		class = "editor"
	}
	div := element(atom.Div, html.Attribute{Key: "class", Val: class})
	if opt.Editable {
		div.Attr = append(div.Attr, html.Attribute{Key: "contenteditable", Val: "true"})
	}
	b := builder{opt: opt, parent: div}
	b.node(root)
	b.flush()
	return div
}

// Render writes the markup for root to w.
func Render(w io.Writer, root *doc.Node, opt Options) error {
	return html.Render(w, Build(root, opt))
}

// String returns the markup for root.
func String(root *doc.Node, opt Options) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, root, opt); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type builder struct {
	opt    Options
	parent *html.Node
	run    strings.Builder
}

func (b *builder) node(n *doc.Node) {
	if n == nil || !n.Editable {
		return
	}
	switch n.Kind {
	case doc.KindText:
		for _, ch := range doc.NewLogicalText(n.Text) {
			switch {
			case ch == doc.LineBreak:
				b.lineBreak()
			case b.opt.Placeholder != "" && !grapheme.IsSpace(ch):
				b.ruby(ch, b.opt.Placeholder, "placeholder")
			default:
				b.run.WriteString(ch)
			}
		}
	case doc.KindBreak:
		b.lineBreak()
	case doc.KindAnnotated:
		b.ruby(n.Base(), n.Code(), "")
	default:
		for _, c := range n.Children {
			b.node(c)
		}
	}
}

func (b *builder) flush() {
	if b.run.Len() == 0 {
		return
	}
	b.parent.AppendChild(&html.Node{Type: html.TextNode, Data: b.run.String()})
	b.run.Reset()
}

func (b *builder) lineBreak() {
	b.flush()
	b.parent.AppendChild(element(atom.Br))
}

func (b *builder) ruby(base, code, class string) {
	b.flush()
	ruby := element(atom.Ruby)
	if class != "" {
		ruby.Attr = append(ruby.Attr, html.Attribute{Key: "class", Val: class})
	}
	ruby.AppendChild(&html.Node{Type: html.TextNode, Data: base})

	rt := element(atom.Rt, html.Attribute{Key: "contenteditable", Val: "false"})
	rt.AppendChild(&html.Node{Type: html.TextNode, Data: code})
	ruby.AppendChild(rt)

	b.parent.AppendChild(ruby)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

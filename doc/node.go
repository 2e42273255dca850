package doc

import (
	"strconv"
	"strings"
)

// Kind tags the variant a Node represents.
type Kind uint8

const (
	KindContainer Kind = iota // ordered children, no text of its own
	KindText                  // run of plain characters
	KindBreak                 // one line break
	KindAnnotated             // one base character plus its code
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	case KindBreak:
		return "break"
	case KindAnnotated:
		return "annotated"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is one element of the document tree.
//
// Editable == false marks content the caret must never enter and that never
// contributes to the logical text (the code of an annotated character).
type Node struct {
	Kind     Kind
	Text     string
	Editable bool
	Children []*Node
}

// NewContainer returns an editable container holding children.
func NewContainer(children ...*Node) *Node {
	return &Node{Kind: KindContainer, Editable: true, Children: children}
}

// NewText returns an editable plain text run.
func NewText(s string) *Node {
	return &Node{Kind: KindText, Text: s, Editable: true}
}

// NewBreak returns a line break leaf.
func NewBreak() *Node {
	return &Node{Kind: KindBreak, Editable: true}
}

// NewAnnotated returns an annotated character: an editable base leaf
// followed by a non-editable code leaf.
func NewAnnotated(char, code string) *Node {
	return &Node{
		Kind:     KindAnnotated,
		Editable: true,
		Children: []*Node{
			NewText(char),
			{Kind: KindText, Text: code},
		},
	}
}

// IsLeaf reports whether n carries logical content directly.
func (n *Node) IsLeaf() bool {
	return n != nil && (n.Kind == KindText || n.Kind == KindBreak)
}

// Code returns the annotation text of an annotated node, or "".
func (n *Node) Code() string {
	if n == nil || n.Kind != KindAnnotated {
		return ""
	}
	var sb strings.Builder
	for _, c := range n.Children {
		if !c.Editable && c.Kind == KindText {
			sb.WriteString(c.Text)
		}
	}
	return sb.String()
}

// Base returns the logical text held by an annotated node's editable part.
func (n *Node) Base() string {
	if n == nil || n.Kind != KindAnnotated {
		return ""
	}
	text, _ := Extract(n, Anchor{})
	return text.String()
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Text: n.Text, Editable: n.Editable}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Text != b.Text || a.Editable != b.Editable || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// String renders a compact debug form, e.g. [ruby(一/G) "ab" BR].
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindText:
		if !n.Editable {
			return "(" + strconv.Quote(n.Text) + ")"
		}
		return strconv.Quote(n.Text)
	case KindBreak:
		return "BR"
	case KindAnnotated:
		return "ruby(" + n.Base() + "/" + n.Code() + ")"
	default:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = c.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
}

func insertChild(parent *Node, at int, child *Node) {
	at = clampInt(at, 0, len(parent.Children))
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[at+1:], parent.Children[at:])
	parent.Children[at] = child
}

func removeChild(parent *Node, child *Node) bool {
	i := indexOf(parent, child)
	if i < 0 {
		return false
	}
	parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
	return true
}

func indexOf(parent, child *Node) int {
	if parent == nil {
		return -1
	}
	for i, c := range parent.Children {
		if c == child {
			return i
		}
	}
	return -1
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

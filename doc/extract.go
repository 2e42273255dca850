package doc

// Extract returns the logical text of root and the caret offset of at.
//
// The caret is resolved by the identity of at.Node (see Anchor). When at
// does not name an editable node of the tree, the caret is the text length.
func Extract(root *Node, at Anchor) (LogicalText, int) {
	var text LogicalText
	caret := -1

	Walk(root, func(v Visit) bool {
		n := v.Node
		hit := caret < 0 && at.Node != nil && n == at.Node

		switch n.Kind {
		case KindText:
			chars := splitChars(n.Text)
			if hit {
				caret = len(text) + clampInt(at.Offset, 0, len(chars))
			}
			text = append(text, chars...)
		case KindBreak:
			if hit {
				caret = len(text)
				if at.Offset > 0 {
					caret++
				}
			}
			text = append(text, LineBreak)
		default:
			if hit {
				k := clampInt(at.Offset, 0, len(n.Children))
				caret = len(text) + lengthOf(n.Children[:k])
			}
		}
		return true
	})

	if caret < 0 {
		caret = len(text)
	}
	return text, caret
}

// Offset returns the logical caret offset of at within root.
func Offset(root *Node, at Anchor) int {
	_, caret := Extract(root, at)
	return caret
}

// Length returns the number of logical characters in root.
func Length(root *Node) int {
	n := 0
	Walk(root, func(v Visit) bool {
		switch v.Node.Kind {
		case KindText:
			n += len(splitChars(v.Node.Text))
		case KindBreak:
			n++
		}
		return true
	})
	return n
}

func lengthOf(nodes []*Node) int {
	n := 0
	for _, c := range nodes {
		n += Length(c)
	}
	return n
}

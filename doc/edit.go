package doc

import "strings"

// The edits below are what a host surface does to its tree between
// synchronizer cycles: raw, local mutations with no annotation lookup.
// Typing next to an annotated character lands in its base text, the way a
// browser edits a ruby element; the next cycle splits it back out.
//
// Every edit returns the caret anchor after the edit, resolved with Restore.

// InsertText inserts s at the caret as unannotated text. Newlines in s
// become break leaves.
func InsertText(root *Node, at Anchor, s string) Anchor {
	if root == nil || s == "" {
		return at
	}
	s = normalizeNewlines(s)
	for i, part := range strings.Split(s, LineBreak) {
		if i > 0 {
			at = InsertBreak(root, at)
		}
		if part != "" {
			at = insertRun(root, at, part)
		}
	}
	return at
}

func insertRun(root *Node, at Anchor, s string) Anchor {
	before := Length(root)
	caret := Offset(root, at)
	pos := Restore(root, caret)

	switch pos.Node.Kind {
	case KindText:
		chars := splitChars(pos.Node.Text)
		pos.Node.Text = strings.Join(chars[:pos.Offset], "") + s + strings.Join(chars[pos.Offset:], "")
	case KindContainer, KindAnnotated:
		p, k := pos.Node, pos.Offset
		if k > 0 && p.Children[k-1].Kind == KindText && p.Children[k-1].Editable {
			p.Children[k-1].Text += s
		} else {
			insertChild(p, k, NewText(s))
		}
	default:
		return at
	}
	return Restore(root, caret+Length(root)-before)
}

// InsertBreak inserts a line break at the caret. Breaks are never placed
// inside an annotated node; a caret inside one splits its base text.
func InsertBreak(root *Node, at Anchor) Anchor {
	if root == nil {
		return at
	}
	before := Length(root)
	caret := Offset(root, at)
	pos := Restore(root, caret)

	switch pos.Node.Kind {
	case KindText:
		path, ok := pathTo(root, pos.Node)
		if !ok || len(path) == 0 {
			return at
		}
		leaf := pos.Node
		chars := splitChars(leaf.Text)
		tail := strings.Join(chars[pos.Offset:], "")
		leaf.Text = strings.Join(chars[:pos.Offset], "")

		host, child := path[len(path)-1], leaf
		if host.Kind == KindAnnotated && len(path) >= 2 {
			host, child = path[len(path)-2], host
		}
		k := indexOf(host, child) + 1
		insertChild(host, k, NewBreak())
		if tail != "" {
			insertChild(host, k+1, NewText(tail))
		}
		if leaf.Text == "" {
			prune(root, leaf)
		}
	case KindContainer, KindAnnotated:
		insertChild(pos.Node, pos.Offset, NewBreak())
	default:
		return at
	}
	return Restore(root, caret+Length(root)-before)
}

// DeleteBackward removes the character before the caret.
func DeleteBackward(root *Node, at Anchor) Anchor {
	caret := Offset(root, at)
	if caret == 0 {
		return Restore(root, 0)
	}
	removeChar(root, caret-1)
	return Restore(root, caret-1)
}

// DeleteForward removes the character after the caret.
func DeleteForward(root *Node, at Anchor) Anchor {
	caret := Offset(root, at)
	if caret >= Length(root) {
		return Restore(root, caret)
	}
	removeChar(root, caret)
	return Restore(root, caret)
}

// removeChar deletes logical character idx.
func removeChar(root *Node, idx int) {
	var target Visit
	var charIdx int
	found := false

	count := 0
	Walk(root, func(v Visit) bool {
		switch v.Node.Kind {
		case KindText:
			n := len(splitChars(v.Node.Text))
			if idx < count+n {
				target, charIdx, found = v, idx-count, true
				return false
			}
			count += n
		case KindBreak:
			if idx == count {
				target, found = v, true
				return false
			}
			count++
		}
		return true
	})
	if !found || target.Parent == nil {
		return
	}

	if target.Node.Kind == KindBreak {
		removeChild(target.Parent, target.Node)
		return
	}
	chars := splitChars(target.Node.Text)
	target.Node.Text = strings.Join(append(chars[:charIdx:charIdx], chars[charIdx+1:]...), "")
	if target.Node.Text == "" {
		prune(root, target.Node)
	}
}

// prune removes an emptied text leaf, and its annotated parent when that
// parent has no logical content left.
func prune(root, leaf *Node) {
	path, ok := pathTo(root, leaf)
	if !ok || len(path) == 0 {
		return
	}
	parent := path[len(path)-1]
	removeChild(parent, leaf)
	if parent.Kind == KindAnnotated && Length(parent) == 0 && len(path) >= 2 {
		removeChild(path[len(path)-2], parent)
	}
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", LineBreak)
	return strings.ReplaceAll(s, "\r", LineBreak)
}

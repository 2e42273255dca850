package doc

// Restore maps a logical caret offset to an anchor in root.
//
// Text leaves are preferred with left affinity: an offset on the boundary
// between two leaves lands at the end of the earlier one. An offset that
// falls on a line break is placed before the break. Offsets at or past the
// end map to End(root).
func Restore(root *Node, caret int) Anchor {
	count := 0
	var at Anchor
	found := false

	Walk(root, func(v Visit) bool {
		switch v.Node.Kind {
		case KindText:
			n := len(splitChars(v.Node.Text))
			if caret <= count+n {
				at = Anchor{Node: v.Node, Offset: clampInt(caret-count, 0, n)}
				found = true
				return false
			}
			count += n
		case KindBreak:
			if caret <= count {
				if v.Parent == nil {
					at = Anchor{Node: v.Node}
				} else {
					at = Anchor{Node: v.Parent, Offset: v.Index}
				}
				found = true
				return false
			}
			count++
		}
		return true
	})

	if !found {
		return End(root)
	}
	return at
}

package doc

// Anchor is a caret position expressed against a specific tree, the way a
// host surface reports its selection anchor.
//
// The meaning of Offset depends on Node:
//   - text leaf: characters into the leaf's text;
//   - break leaf: 0 sits before the break, 1 sits after it;
//   - container or annotated node: the caret sits before Children[Offset].
type Anchor struct {
	Node   *Node
	Offset int
}

// End returns the anchor after all of root's content.
func End(root *Node) Anchor {
	if root == nil {
		return Anchor{}
	}
	return Anchor{Node: root, Offset: len(root.Children)}
}

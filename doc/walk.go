package doc

// Visit describes one node reached by Walk.
type Visit struct {
	Node   *Node
	Parent *Node // nil for the walk root
	Index  int   // position of Node in Parent.Children
}

// Walk visits root and its editable descendants depth-first in document
// order, parents before children. A non-editable node and its whole subtree
// are skipped.
//
// Returning false from fn stops the walk. Walk reports whether it ran to
// completion.
func Walk(root *Node, fn func(v Visit) bool) bool {
	if root == nil {
		return true
	}
	return walk(Visit{Node: root}, fn)
}

func walk(v Visit, fn func(v Visit) bool) bool {
	if !v.Node.Editable {
		return true
	}
	if !fn(v) {
		return false
	}
	for i, c := range v.Node.Children {
		if c == nil {
			continue
		}
		if !walk(Visit{Node: c, Parent: v.Node, Index: i}, fn) {
			return false
		}
	}
	return true
}

// pathTo returns the ancestors of target from root down to its parent.
// ok is false when target is not reachable through editable nodes.
func pathTo(root, target *Node) (path []*Node, ok bool) {
	var rec func(n *Node) bool
	rec = func(n *Node) bool {
		if n == nil || !n.Editable {
			return false
		}
		if n == target {
			return true
		}
		path = append(path, n)
		for _, c := range n.Children {
			if rec(c) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if !rec(root) {
		return nil, false
	}
	return path, true
}

package engine

import "github.com/iw2rmb/rubytype/doc"

// Result is the outcome of one cycle.
type Result struct {
	Text   doc.LogicalText
	Offset int        // caret offset into Text
	Caret  doc.Anchor // caret placement in the rebuilt tree
	Placed bool       // false when the tree was cleared and no caret was restored
}

// Cycle runs extract, rebuild, swap and restore on root in place.
//
// It never fails: an anchor that cannot be found extracts as "caret at end",
// and an empty text clears root to an empty container.
func Cycle(root *doc.Node, at doc.Anchor, table doc.Lookup) Result {
	if root == nil {
		return Result{}
	}

	text, offset := doc.Extract(root, at)
	if text.Len() == 0 {
		root.Children = nil
		return Result{Text: text, Caret: doc.End(root)}
	}

	root.Children = doc.Rebuild(text, table)

	return Result{
		Text:   text,
		Offset: offset,
		Caret:  doc.Restore(root, offset),
		Placed: true,
	}
}

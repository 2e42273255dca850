// Package engine implements the annotated document synchronizer.
//
// A Synchronizer owns one document tree. The host surface mutates that tree
// in place (typing, deleting, pasting) and then reports the edit with an
// Event carrying its caret anchor. On a qualifying event the synchronizer
// runs a cycle: extract the logical text and caret offset, rebuild the tree
// from the text and the code table, swap the new nodes in, and map the
// caret offset back into the new tree. The host applies the returned caret.
//
// While an input method is composing, edits are left raw and no cycle runs;
// composition end triggers exactly one cycle.
//
// A Synchronizer is not safe for concurrent use. It is meant to be driven
// from the host's single event loop.
package engine

// Package doc implements the annotated document tree shown by an editable
// surface.
//
// The tree mixes plain text runs, line breaks and annotated characters. An
// annotated character holds its base character as an editable text leaf and
// its code as a non-editable leaf; every traversal in this package skips
// non-editable nodes, so annotation text never reaches the logical text and
// can never hold the caret.
//
// Offsets are 0-based character counts into the logical text, where a
// character is one grapheme cluster and a line break counts as one.
package doc

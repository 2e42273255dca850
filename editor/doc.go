// Package editor provides a Bubble Tea component that edits annotated text.
//
// The component is the host surface for an engine.Synchronizer: it applies
// keystrokes to the synchronizer's tree as raw local edits, reports each
// edit back as an event, and renders every character with its code above
// it. Composition is driven by an explicit toggle key, since terminals do
// not forward IME composition state.
package editor

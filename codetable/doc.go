// Package codetable holds the immutable character → annotation code mapping.
//
// A table is built once from (code, character) pairs, keeping the shortest
// code per character, and is never mutated afterwards. It is safe to share
// by reference between goroutines.
//
// A character with no entry is the normal NoAnnotation case: Lookup reports
// ok == false and callers render the character alone.
package codetable

package doc

import (
	"strings"

	"github.com/iw2rmb/rubytype/internal/grapheme"
)

// LineBreak is the logical character a KindBreak node stands for.
const LineBreak = "\n"

// LogicalText is the user's content as a sequence of characters, line
// breaks included. It is the only source of truth for a render.
type LogicalText []string

// NewLogicalText splits s into characters. CRLF and lone CR become LineBreak.
func NewLogicalText(s string) LogicalText {
	return LogicalText(splitChars(s))
}

func (t LogicalText) Len() int { return len(t) }

func (t LogicalText) String() string {
	return strings.Join(t, "")
}

// Equal reports whether t and other hold the same characters.
func (t LogicalText) Equal(other LogicalText) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

func splitChars(s string) []string {
	chars := grapheme.Split(s)
	for i, c := range chars {
		if c == "\r\n" || c == "\r" {
			chars[i] = LineBreak
		}
	}
	return chars
}

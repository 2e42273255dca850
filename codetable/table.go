package codetable

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/iw2rmb/rubytype/internal/grapheme"
)

// Pair is one (code, character) entry from a table source.
type Pair struct {
	Code string
	Char string
}

// Table maps a single character to its shortest known code.
type Table struct {
	codes map[string]string
	chars map[string][]string // upper-case code -> characters, first-seen order
}

// Empty returns a table with no entries.
func Empty() *Table {
	return &Table{
		codes: map[string]string{},
		chars: map[string][]string{},
	}
}

// Build constructs a table from pairs.
//
// For a character seen more than once the shorter code wins; ties keep the
// first one seen. Pairs whose character is not exactly one character, or
// whose code is not a single non-empty token, are ignored.
func Build(pairs []Pair) *Table {
	t := Empty()
	for _, p := range pairs {
		code, ok := normalizeCode(p.Code)
		if !ok {
			continue
		}
		char, ok := normalizeChar(p.Char)
		if !ok {
			continue
		}

		prev, seen := t.codes[char]
		if seen && len(code) >= len(prev) {
			continue
		}
		t.codes[char] = code
	}

	// Reverse index is derived from the final mapping so it never lists a
	// character under a code that lost to a shorter one.
	for _, p := range pairs {
		code, ok := normalizeCode(p.Code)
		if !ok {
			continue
		}
		char, ok := normalizeChar(p.Char)
		if !ok || t.codes[char] != code {
			continue
		}
		if containsString(t.chars[code], char) {
			continue
		}
		t.chars[code] = append(t.chars[code], char)
	}
	return t
}

// Lookup returns the upper-case code for char.
func (t *Table) Lookup(char string) (string, bool) {
	if t == nil || len(t.codes) == 0 {
		return "", false
	}
	if code, ok := t.codes[char]; ok {
		return code, true
	}
	// Input methods and pastes may deliver decomposed forms.
	nfc := norm.NFC.String(char)
	if nfc == char {
		return "", false
	}
	code, ok := t.codes[nfc]
	return code, ok
}

// Chars returns the characters whose shortest code is code. The match is
// case-insensitive.
func (t *Table) Chars(code string) []string {
	if t == nil {
		return nil
	}
	key, ok := normalizeCode(code)
	if !ok {
		return nil
	}
	return append([]string(nil), t.chars[key]...)
}

// Len returns the number of characters with a code.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.codes)
}

func normalizeCode(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" || strings.ContainsFunc(code, isSpaceRune) {
		return "", false
	}
	return strings.ToUpper(code), true
}

func normalizeChar(char string) (string, bool) {
	char = norm.NFC.String(strings.TrimSpace(char))
	if grapheme.Count(char) != 1 {
		return "", false
	}
	return char, true
}

func isSpaceRune(r rune) bool {
	return grapheme.IsSpace(string(r))
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package doc

import (
	"strings"

	"github.com/iw2rmb/rubytype/internal/grapheme"
)

// Lookup resolves a character to its annotation code.
//
// ok == false is the ordinary "no annotation" case.
type Lookup interface {
	Lookup(char string) (code string, ok bool)
}

// Rebuild maps text to a fresh list of nodes: line breaks become break
// leaves, characters known to table become annotated nodes with an
// upper-case code, and everything else is merged into plain text runs.
//
// Characters are stored as node data only; escaping for a markup target is
// the renderer's job.
func Rebuild(text LogicalText, table Lookup) []*Node {
	nodes := make([]*Node, 0, len(text))

	var run strings.Builder
	last := ""
	flush := func() {
		if run.Len() > 0 {
			nodes = append(nodes, NewText(run.String()))
			run.Reset()
		}
		last = ""
	}

	for _, ch := range text {
		if ch == LineBreak {
			flush()
			nodes = append(nodes, NewBreak())
			continue
		}
		if table != nil {
			if code, ok := table.Lookup(ch); ok && code != "" {
				flush()
				nodes = append(nodes, NewAnnotated(ch, strings.ToUpper(code)))
				continue
			}
		}
		// Start a new run where concatenation would fuse two characters
		// into one cluster, so the run splits back into the same text.
		if last != "" && grapheme.Count(last+ch) != 2 {
			flush()
		}
		run.WriteString(ch)
		last = ch
	}
	flush()
	return nodes
}

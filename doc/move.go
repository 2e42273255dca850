package doc

// MoveBy shifts the caret by delta characters, clamped to the text.
func MoveBy(root *Node, at Anchor, delta int) Anchor {
	caret := Offset(root, at)
	return Restore(root, clampInt(caret+delta, 0, Length(root)))
}

// LineStart moves the caret to the start of its line.
func LineStart(root *Node, at Anchor) Anchor {
	text, caret := Extract(root, at)
	start, _ := lineBounds(text, caret)
	return Restore(root, start)
}

// LineEnd moves the caret to the end of its line, before any line break.
func LineEnd(root *Node, at Anchor) Anchor {
	text, caret := Extract(root, at)
	_, end := lineBounds(text, caret)
	return Restore(root, end)
}

// MoveLine moves the caret dir lines up (negative) or down (positive),
// keeping its column where the target line is long enough.
func MoveLine(root *Node, at Anchor, dir int) Anchor {
	text, caret := Extract(root, at)
	start, _ := lineBounds(text, caret)
	col := caret - start

	for ; dir < 0; dir++ {
		if start == 0 {
			return Restore(root, 0)
		}
		start, _ = lineBounds(text, start-1)
	}
	for ; dir > 0; dir-- {
		_, end := lineBounds(text, start)
		if end >= len(text) {
			return Restore(root, len(text))
		}
		start = end + 1
	}
	_, end := lineBounds(text, start)
	return Restore(root, start+min(col, end-start))
}

// LineCol reports the 0-based line and column of the caret.
func LineCol(root *Node, at Anchor) (line, col int) {
	text, caret := Extract(root, at)
	start := 0
	for i := 0; i < caret && i < len(text); i++ {
		if text[i] == LineBreak {
			line++
			start = i + 1
		}
	}
	return line, caret - start
}

// lineBounds returns [start, end) of the line holding caret; end is the
// index of the terminating break or len(text).
func lineBounds(text LogicalText, caret int) (start, end int) {
	caret = clampInt(caret, 0, len(text))
	start = caret
	for start > 0 && text[start-1] != LineBreak {
		start--
	}
	end = caret
	for end < len(text) && text[end] != LineBreak {
		end++
	}
	return start, end
}

package doc

import "testing"

func TestInsertText_IntoAnnotatedBase(t *testing.T) {
	root := build("一二", wubi)
	at := Restore(root, 1)

	at = InsertText(root, at, "x")

	if got, want := root.String(), `[ruby(一x/G) ruby(二/FG)]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
	if got := Offset(root, at); got != 2 {
		t.Fatalf("caret: got %d, want %d", got, 2)
	}
}

func TestInsertText_EmptyTreeAndAfterBreak(t *testing.T) {
	root := NewContainer()
	at := InsertText(root, End(root), "ab")
	if got, want := root.String(), `["ab"]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}

	at = InsertBreak(root, at)
	at = InsertText(root, at, "c")
	if got, want := root.String(), `["ab" BR "c"]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
	if got := Offset(root, at); got != 4 {
		t.Fatalf("caret: got %d, want %d", got, 4)
	}
}

func TestInsertText_Newlines(t *testing.T) {
	root := build("ab", wubi)
	at := InsertText(root, Restore(root, 1), "x\r\ny")

	text, caret := Extract(root, at)
	if got, want := text.String(), "ax\nyb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if caret != 4 {
		t.Fatalf("caret: got %d, want %d", caret, 4)
	}
}

func TestInsertBreak_SplitsTextLeaf(t *testing.T) {
	root := build("abcd", wubi)
	at := InsertBreak(root, Restore(root, 2))

	if got, want := root.String(), `["ab" BR "cd"]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
	if got := Offset(root, at); got != 3 {
		t.Fatalf("caret: got %d, want %d", got, 3)
	}
}

func TestInsertBreak_NeverInsideAnnotated(t *testing.T) {
	root := build("一二", wubi)

	at := InsertBreak(root, Restore(root, 0))
	if got, want := root.String(), `[BR "一" ruby(二/FG)]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
	if got := Offset(root, at); got != 1 {
		t.Fatalf("caret: got %d, want %d", got, 1)
	}

	root = build("一二", wubi)
	InsertBreak(root, Restore(root, 1))
	if got, want := root.String(), `[ruby(一/G) BR ruby(二/FG)]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
}

func TestDeleteBackward(t *testing.T) {
	root := build("一ab\nc", wubi)

	at := DeleteBackward(root, Restore(root, 4))
	if got, want := root.String(), `[ruby(一/G) "ab" "c"]`; got != want {
		t.Fatalf("after deleting break: got %s, want %s", got, want)
	}
	if got := Offset(root, at); got != 3 {
		t.Fatalf("caret: got %d, want %d", got, 3)
	}

	at = DeleteBackward(root, Restore(root, 1))
	if got, want := root.String(), `["ab" "c"]`; got != want {
		t.Fatalf("after deleting annotated: got %s, want %s", got, want)
	}
	if got := Offset(root, at); got != 0 {
		t.Fatalf("caret: got %d, want %d", got, 0)
	}

	at = DeleteBackward(root, at)
	if got, want := root.String(), `["ab" "c"]`; got != want {
		t.Fatalf("delete at start must be a no-op: got %s", got)
	}
	if got := Offset(root, at); got != 0 {
		t.Fatalf("caret: got %d, want %d", got, 0)
	}
}

func TestDeleteForward(t *testing.T) {
	root := build("a\n一", wubi)

	at := DeleteForward(root, Restore(root, 1))
	if got, want := root.String(), `["a" ruby(一/G)]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
	if got := Offset(root, at); got != 1 {
		t.Fatalf("caret: got %d, want %d", got, 1)
	}

	at = DeleteForward(root, at)
	if got, want := root.String(), `["a"]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}

	at = DeleteForward(root, at)
	if got, want := root.String(), `["a"]`; got != want {
		t.Fatalf("delete at end must be a no-op: got %s", got)
	}
	if got := Offset(root, at); got != 1 {
		t.Fatalf("caret: got %d, want %d", got, 1)
	}
}

package doc

import "testing"

func TestRebuild_RenderOrder(t *testing.T) {
	root := build("一二three", wubi)

	if got, want := root.String(), `[ruby(一/G) ruby(二/FG) "three"]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
}

func TestRebuild_MergesPlainRunsAndBreaks(t *testing.T) {
	root := build("ab一c\n\nd", wubi)

	if got, want := root.String(), `["ab" ruby(一/G) "c" BR BR "d"]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
}

func TestRebuild_AnnotationCorrectness(t *testing.T) {
	text := NewLogicalText("五一x二y")
	nodes := Rebuild(text, wubi)

	var annotated []*Node
	for _, n := range nodes {
		if n.Kind == KindAnnotated {
			annotated = append(annotated, n)
		}
	}
	want := []struct{ base, code string }{{"五", "GG"}, {"一", "G"}, {"二", "FG"}}
	if len(annotated) != len(want) {
		t.Fatalf("annotated nodes: got %d, want %d", len(annotated), len(want))
	}
	for i, w := range want {
		if annotated[i].Base() != w.base || annotated[i].Code() != w.code {
			t.Fatalf("annotated %d: got (%q,%q), want (%q,%q)", i, annotated[i].Base(), annotated[i].Code(), w.base, w.code)
		}
		if annotated[i].Children[1].Editable {
			t.Fatalf("annotation part of %q must not be editable", w.base)
		}
	}
}

func TestRebuild_MarkupCharactersStayData(t *testing.T) {
	root := build("<b>&amp;</b>", wubi)
	if got, want := root.String(), `["<b>&amp;</b>"]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
}

func TestRebuild_NilTable(t *testing.T) {
	root := NewContainer(Rebuild(NewLogicalText("一二"), nil)...)
	if got, want := root.String(), `["一二"]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
}

func TestRebuild_EmptyCodeIsNoAnnotation(t *testing.T) {
	root := build("一", mapTable{"一": ""})
	if got, want := root.String(), `["一"]`; got != want {
		t.Fatalf("tree: got %s, want %s", got, want)
	}
}

func TestRebuild_RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"一",
		"一二three",
		"a\nb",
		"\n\n",
		"五笔编码查询工具",
		"x一\n二y\n",
		"é\U0001F1FA\U0001F1F8一",
		"<script>alert(1)</script>",
	}
	for _, s := range cases {
		want := NewLogicalText(s)
		root := NewContainer(Rebuild(want, wubi)...)
		got, _ := Extract(root, Anchor{})
		if !got.Equal(want) {
			t.Fatalf("round trip %q: got %q", s, got.String())
		}
	}
}

func TestRebuild_RoundTripKeepsSeparatedClusters(t *testing.T) {
	// Two regional indicators that arrived as separate characters must not
	// fuse into one flag when merged into a run.
	want := LogicalText{"\U0001F1FA", "\U0001F1F8", "a"}
	root := NewContainer(Rebuild(want, nil)...)
	got, _ := Extract(root, Anchor{})
	if !got.Equal(want) {
		t.Fatalf("round trip: got %q, want %q", []string(got), []string(want))
	}
}

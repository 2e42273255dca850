package layout

import (
	"testing"

	"github.com/iw2rmb/rubytype/doc"
)

type mapTable map[string]string

func (m mapTable) Lookup(char string) (string, bool) {
	code, ok := m[char]
	return code, ok
}

var wubi = mapTable{"一": "g", "二": "fg"}

func build(text string) *doc.Node {
	return doc.NewContainer(doc.Rebuild(doc.NewLogicalText(text), wubi)...)
}

func TestBuild_CellsCarryCodesAndOffsets(t *testing.T) {
	d := Build(build("一二three"), Options{})
	if got, want := len(d.Rows), 1; got != want {
		t.Fatalf("rows: got %d, want %d", got, want)
	}
	cells := d.Rows[0].Cells
	if got, want := len(cells), 7; got != want {
		t.Fatalf("cells: got %d, want %d", got, want)
	}
	if c := cells[0]; c.Code != "G" || c.Text() != "一" || c.Start != 0 || c.Width != 2 || !c.Annotated {
		t.Fatalf("cell 0: got %+v", c)
	}
	if c := cells[1]; c.Code != "FG" || c.Start != 1 || c.Width != 2 {
		t.Fatalf("cell 1: got %+v", c)
	}
	if c := cells[2]; c.Code != "" || c.Text() != "t" || c.Start != 2 || c.Annotated {
		t.Fatalf("cell 2: got %+v", c)
	}
	if r := d.Rows[0]; r.Start != 0 || r.End != 7 || !r.First || !r.Last {
		t.Fatalf("row: got start=%d end=%d first=%v last=%v", r.Start, r.End, r.First, r.Last)
	}
}

func TestBuild_String(t *testing.T) {
	cases := []struct {
		name string
		text string
		opt  Options
		want string
	}{
		{
			name: "tight",
			text: "一二three",
			want: "G FG\n一二three",
		},
		{
			name: "gap",
			text: "一二three",
			opt:  Options{Gap: 1},
			want: "G  FG\n一 二 three",
		},
		{
			name: "wide code centered over narrow char",
			text: "a一",
			opt:  Options{Placeholder: "---"},
			want: "---G\n a 一",
		},
		{
			name: "placeholder skips spaces",
			text: "a b",
			opt:  Options{Placeholder: "-"},
			want: "- -\na b",
		},
		{
			name: "lines",
			text: "一\n\nx",
			want: "G\n一\n\n\n\nx",
		},
		{
			name: "tab",
			text: "\tx",
			opt:  Options{TabWidth: 2},
			want: "\n  x",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Build(build(tc.text), tc.opt).String(); got != tc.want {
				t.Fatalf("String:\ngot  %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestBuild_LinesAndBreakOffsets(t *testing.T) {
	d := Build(build("ab\n一"), Options{})
	if got, want := d.Lines, 2; got != want {
		t.Fatalf("lines: got %d, want %d", got, want)
	}
	if r := d.Rows[0]; r.Line != 0 || r.Start != 0 || r.End != 2 {
		t.Fatalf("row 0: got %+v", r)
	}
	if r := d.Rows[1]; r.Line != 1 || r.Start != 3 || r.End != 4 {
		t.Fatalf("row 1: got %+v", r)
	}
}

func TestBuild_EmptyDocumentHasOneRow(t *testing.T) {
	d := Build(doc.NewContainer(), Options{})
	if got, want := len(d.Rows), 1; got != want {
		t.Fatalf("rows: got %d, want %d", got, want)
	}
	if r := d.Rows[0]; !r.First || !r.Last || r.Start != 0 || r.End != 0 {
		t.Fatalf("row: got %+v", r)
	}
	if got := d.RowOf(0); got != 0 {
		t.Fatalf("RowOf(0): got %d, want 0", got)
	}
}

func TestBuild_Wrap(t *testing.T) {
	// Each annotated cell spans 2 cells; width 5 fits two per row.
	d := Build(build("一二一二"), Options{Width: 5})
	if got, want := len(d.Rows), 2; got != want {
		t.Fatalf("rows: got %d, want %d", got, want)
	}
	if r := d.Rows[0]; r.Start != 0 || r.End != 2 || !r.First || r.Last {
		t.Fatalf("row 0: got %+v", r)
	}
	if r := d.Rows[1]; r.Start != 2 || r.End != 4 || r.First || !r.Last {
		t.Fatalf("row 1: got %+v", r)
	}

	cases := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{1, 0},
		{2, 1}, // wrap point belongs to the later row
		{4, 1},
		{99, 1},
	}
	for _, tc := range cases {
		if got := d.RowOf(tc.offset); got != tc.want {
			t.Fatalf("RowOf(%d): got %d, want %d", tc.offset, got, tc.want)
		}
	}
}

func TestBuild_OversizedCellGetsOwnRow(t *testing.T) {
	d := Build(build("一"), Options{Width: 1})
	if got, want := len(d.Rows), 1; got != want {
		t.Fatalf("rows: got %d, want %d", got, want)
	}
}

func TestBuild_SkipsNonEditable(t *testing.T) {
	root := doc.NewContainer(doc.NewText("a"), &doc.Node{Kind: doc.KindText, Text: "hidden"})
	if got, want := Build(root, Options{}).String(), "\na"; got != want {
		t.Fatalf("String: got %q, want %q", got, want)
	}
}

func TestCenter(t *testing.T) {
	cases := []struct {
		s     string
		width int
		want  string
	}{
		{"G", 2, "G "},
		{"G", 3, " G "},
		{"FG", 2, "FG"},
		{"ABC", 2, "ABC"},
		{"一", 4, " 一 "},
	}
	for _, tc := range cases {
		if got := Center(tc.s, tc.width); got != tc.want {
			t.Fatalf("Center(%q, %d): got %q, want %q", tc.s, tc.width, got, tc.want)
		}
	}
}

package doc

type mapTable map[string]string

func (m mapTable) Lookup(char string) (string, bool) {
	code, ok := m[char]
	return code, ok
}

var wubi = mapTable{"一": "g", "二": "fg", "五": "gg"}

func build(text string, table Lookup) *Node {
	return NewContainer(Rebuild(NewLogicalText(text), table)...)
}

package engine

type mapTable map[string]string

func (m mapTable) Lookup(char string) (string, bool) {
	code, ok := m[char]
	return code, ok
}

var wubi = mapTable{"一": "g", "二": "fg"}

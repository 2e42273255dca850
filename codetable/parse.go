package codetable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineBytes = 1 << 20

// LoadError reports a table source that could not be read completely.
//
// It is surfaced to the operator; the table built from the entries parsed
// before the failure is still usable.
type LoadError struct {
	Path string
	Line int // 0 when the failure is not tied to a line
	Err  error
}

func (e *LoadError) Error() string {
	src := e.Path
	if src == "" {
		src = "code table"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", src, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", src, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Parse reads the line-oriented table format: a code token followed by one
// or more whitespace-separated character tokens. Blank lines and lines
// starting with '#' are skipped; multi-character tokens are skipped.
//
// On a read failure Parse returns the pairs parsed so far with a *LoadError.
func Parse(r io.Reader) ([]Pair, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var pairs []Pair
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			continue
		}
		code := fields[0]
		for _, char := range fields[1:] {
			if _, ok := normalizeChar(char); !ok {
				continue
			}
			pairs = append(pairs, Pair{Code: code, Char: char})
		}
	}
	if err := sc.Err(); err != nil {
		return pairs, &LoadError{Line: line + 1, Err: err}
	}
	return pairs, nil
}

// Load builds a table from the file at path.
//
// Load never returns a nil table. A missing or unreadable file yields an
// empty table and a *LoadError; a read failure part way through yields the
// entries parsed before it and a *LoadError.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Empty(), &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	pairs, err := Parse(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return Build(pairs), err
	}
	return Build(pairs), nil
}

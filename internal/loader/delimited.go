package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const maxLineBytes = 1 << 20

// delimitedReader splits lines on a single delimiter. The format has no
// quoting, so a delimiter inside a field always starts a new field.
type delimitedReader struct {
	ext   string
	delim rune
}

func (r delimitedReader) CanRead(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), r.ext)
}

func (r delimitedReader) Extension() string { return r.ext }

func (r delimitedReader) ReadRows(path string, opt Options) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceNotFoundError{Source: path, Err: err}
	}
	defer f.Close()

	delim := string(r.delim)
	if opt.Delimiter != 0 {
		delim = string(opt.Delimiter)
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var rows []Row
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimSuffix(sc.Text(), "\r")
		rows = append(rows, Row{Line: line, Fields: strings.Split(text, delim)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

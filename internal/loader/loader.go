// Package loader reads assessment sources into a dataset.Dataset.
package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/KaramelBytes/propmap-cli/internal/dataset"
	"github.com/KaramelBytes/propmap-cli/internal/property"
)

// DefaultExtension is appended to source names that carry no known extension.
const DefaultExtension = ".csv"

// Options tune how a source is read. The zero value reads comma-delimited
// text and the first worksheet of a workbook.
type Options struct {
	Delimiter rune
	Sheet     string
}

// Reader produces raw rows, header excluded, from a resolved source path.
type Reader interface {
	CanRead(path string) bool
	Extension() string
	ReadRows(path string, opt Options) ([]Row, error)
}

// Row is one data row with its 1-based line (or spreadsheet row) number.
type Row struct {
	Line   int
	Fields []string
}

var registry []Reader

// Register adds a reader implementation to the registry.
func Register(r Reader) {
	registry = append(registry, r)
}

func init() {
	Register(xlsxReader{})
	Register(delimitedReader{ext: ".tsv", delim: '\t'})
	Register(delimitedReader{ext: DefaultExtension, delim: ','})
}

// Resolve maps a source name to the path that will be opened.
func Resolve(sourceName string) string {
	lower := strings.ToLower(sourceName)
	if strings.Contains(lower, DefaultExtension) {
		return sourceName
	}
	for _, r := range registry {
		if strings.HasSuffix(lower, r.Extension()) {
			return sourceName
		}
	}
	return sourceName + DefaultExtension
}

// Load resolves sourceName, reads every row and builds a dataset in file
// order. Any malformed row aborts the load.
func Load(sourceName string, opt Options) (*dataset.Dataset, error) {
	path := Resolve(sourceName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, &SourceNotFoundError{Source: path, Err: err}
	}
	reader := readerFor(path)
	rows, err := reader.ReadRows(path, opt)
	if err != nil {
		return nil, err
	}
	records := make([]*property.Record, 0, len(rows))
	for _, row := range rows {
		if len(row.Fields) < FieldCount {
			return nil, &MalformedRowError{Source: path, Line: row.Line, Fields: len(row.Fields)}
		}
		rec, err := ParseRecord(row.Fields)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, row.Line, err)
		}
		records = append(records, rec)
	}
	return dataset.New(records, path), nil
}

func readerFor(path string) Reader {
	for _, r := range registry {
		if r.CanRead(path) {
			return r
		}
	}
	// Names containing ".csv" anywhere fall back to comma-delimited text.
	return delimitedReader{ext: DefaultExtension, delim: ','}
}

func describe(opt Options) string {
	if opt.Sheet != "" {
		return fmt.Sprintf("sheet %q", opt.Sheet)
	}
	return "first sheet"
}

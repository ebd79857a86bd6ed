package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound matches any *SourceNotFoundError.
	ErrSourceNotFound = errors.New("source not found")
	// ErrMalformedRow matches any *MalformedRowError.
	ErrMalformedRow = errors.New("malformed row")
)

// SourceNotFoundError reports a source that could not be opened.
type SourceNotFoundError struct {
	Source string
	Err    error
}

func (e *SourceNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source not found: %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("source not found: %s", e.Source)
}

func (e *SourceNotFoundError) Is(target error) bool { return target == ErrSourceNotFound }

func (e *SourceNotFoundError) Unwrap() error { return e.Err }

// MalformedRowError reports a row with fewer fields than the schema requires.
type MalformedRowError struct {
	Source string
	Line   int
	Fields int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at %s:%d: got %d fields, need %d", e.Source, e.Line, e.Fields, FieldCount)
}

func (e *MalformedRowError) Is(target error) bool { return target == ErrMalformedRow }

package sequence

import (
	"errors"
	"fmt"
)

// ErrShortRow is the cause of a MalformedDataError for a non-blank row that
// has no field at the selected column.
var ErrShortRow = errors.New("row has too few fields")

// ErrIsDirectory is the cause of a SourceUnavailableError for a path that
// names a directory.
var ErrIsDirectory = errors.New("is a directory")

// MalformedDataError reports a row whose selected field is not a number.
type MalformedDataError struct {
	Source string   // file name or reader label
	Line   int      // 1-based line on which the row starts
	Column int      // selected column
	Row    []string // offending row; nil if the row could not be split
	Err    error
}

func (e *MalformedDataError) Error() string {
	if e.Row == nil {
		return fmt.Sprintf("sequence: %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("sequence: all rows in %s must be numbers in column %d; line %d found %q: %v",
		e.Source, e.Column, e.Line, e.Row, e.Err)
}

// Unwrap returns the parse failure.
func (e *MalformedDataError) Unwrap() error { return e.Err }

// SourceUnavailableError reports a file that cannot be opened for reading.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("sequence: cannot open %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying file system error.
func (e *SourceUnavailableError) Unwrap() error { return e.Err }

package sequence

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions is returned when ImportOptions cannot describe a table.
var ErrInvalidOptions = errors.New("sequence: invalid import options")

// ImportOptions selects and parses one column of a delimited table.
type ImportOptions struct {
	Column    int  // zero-based column holding the samples
	Delimiter byte // field delimiter (default ',')
	Quote     byte // quote character for fields containing the delimiter (default '"')
	SkipLines int  // leading lines discarded unread
}

// DefaultImportOptions returns options for a header-less, comma separated,
// single column file.
func DefaultImportOptions() *ImportOptions {
	return &ImportOptions{
		Delimiter: ',',
		Quote:     '"',
	}
}

// Validate reports whether the options are usable.
func (o *ImportOptions) Validate() error {
	if o.Column < 0 {
		return fmt.Errorf("%w: column must be >= 0, got %d", ErrInvalidOptions, o.Column)
	}
	if o.SkipLines < 0 {
		return fmt.Errorf("%w: skip lines must be >= 0, got %d", ErrInvalidOptions, o.SkipLines)
	}
	if o.Delimiter == 0 || o.Delimiter == '\n' || o.Delimiter == '\r' {
		return fmt.Errorf("%w: delimiter %q", ErrInvalidOptions, o.Delimiter)
	}
	if o.Quote == 0 || o.Quote == '\n' || o.Quote == '\r' {
		return fmt.Errorf("%w: quote %q", ErrInvalidOptions, o.Quote)
	}
	if o.Delimiter == o.Quote {
		return fmt.Errorf("%w: delimiter and quote are both %q", ErrInvalidOptions, o.Delimiter)
	}
	return nil
}

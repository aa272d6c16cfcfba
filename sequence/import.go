package sequence

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-deriv/internal/delimited"
)

// Source yields an ordered sample sequence.
type Source interface {
	Samples() ([]float64, error)
}

// Values returns a Source over an in-memory sequence.
func Values(v []float64) Source {
	return valuesSource(v)
}

type valuesSource []float64

// Samples returns a copy of the values.
func (s valuesSource) Samples() ([]float64, error) {
	return slices.Clone([]float64(s)), nil
}

// File returns a Source reading path with opts. Nil opts means
// DefaultImportOptions.
func File(path string, opts *ImportOptions) Source {
	return fileSource{path: path, opts: opts}
}

type fileSource struct {
	path string
	opts *ImportOptions
}

// Samples loads the file.
func (s fileSource) Samples() ([]float64, error) {
	return Load(s.path, s.opts)
}

// Load reads the selected column of the delimited file at path.
func Load(path string, opts *ImportOptions) ([]float64, error) {
	if opts == nil {
		opts = DefaultImportOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &SourceUnavailableError{Path: path, Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, &SourceUnavailableError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &SourceUnavailableError{Path: path, Err: ErrIsDirectory}
	}

	return LoadFromReader(file, path, opts)
}

// LoadFromReader reads the selected column from r. name identifies the
// source in errors.
func LoadFromReader(r io.Reader, name string, opts *ImportOptions) ([]float64, error) {
	if opts == nil {
		opts = DefaultImportOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	reader := delimited.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.Quote = opts.Quote

	if _, err := reader.Skip(opts.SkipLines); err != nil {
		return nil, fmt.Errorf("sequence: skip leading lines of %s: %w", name, err)
	}

	seq := make([]float64, 0, 64)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *delimited.ParseError
			if errors.As(err, &perr) {
				return nil, &MalformedDataError{Source: name, Line: perr.Line, Column: opts.Column, Err: err}
			}
			return nil, fmt.Errorf("sequence: read %s: %w", name, err)
		}

		if len(row) == 0 {
			continue
		}
		if len(row) <= opts.Column {
			return nil, &MalformedDataError{
				Source: name,
				Line:   reader.Line(),
				Column: opts.Column,
				Row:    row,
				Err:    ErrShortRow,
			}
		}

		v, err := ParseSample(row[opts.Column])
		if err != nil {
			return nil, &MalformedDataError{
				Source: name,
				Line:   reader.Line(),
				Column: opts.Column,
				Row:    row,
				Err:    err,
			}
		}
		seq = append(seq, v)
	}

	return seq, nil
}

// ParseSample converts one field to a sample. Surrounding white space is
// ignored and literals beyond the float64 range saturate to ±Inf.
// Hexadecimal literals are rejected; underscores between digits are allowed.
func ParseSample(field string) (float64, error) {
	s := strings.TrimSpace(field)
	if isHexLiteral(s) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

func isHexLiteral(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

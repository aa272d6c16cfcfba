package delimited

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrBareQuote is returned when a quote appears inside an unquoted field.
	ErrBareQuote = errors.New("delimited: bare quote in non-quoted field")
	// ErrUnterminatedQuote is returned when a quoted field is still open at EOF.
	ErrUnterminatedQuote = errors.New("delimited: unterminated quoted field")
)

// ParseError records where a record could not be parsed.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("delimited: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Reader reads records from delimiter-separated text.
//
// Records end at '\n', '\r' or "\r\n". A field that starts with Quote may
// contain Comma, line breaks and doubled quotes. A physically empty line
// yields a record with zero fields.
type Reader struct {
	// Comma is the field delimiter. Zero means ','.
	Comma byte
	// Quote is the quote character. Zero means '"'.
	Quote byte

	src        *bufio.Reader
	line       int
	recordLine int
	field      []byte
	record     []string
}

// NewReader returns a Reader consuming r. It panics if r is nil.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("delimited: reader source cannot be nil")
	}
	return &Reader{
		Comma: ',',
		Quote: '"',
		src:   bufio.NewReader(r),
		line:  1,
		field: make([]byte, 0, 64),
	}
}

// Line returns the 1-based line on which the most recently read record
// started.
func (r *Reader) Line() int {
	return r.recordLine
}

// Skip discards up to n physical lines without parsing them and returns how
// many were discarded. Running out of input is not an error.
func (r *Reader) Skip(n int) (int, error) {
	skipped := 0
	for skipped < n {
		b, err := r.src.ReadByte()
		if err == io.EOF {
			return skipped, nil
		}
		if err != nil {
			return skipped, err
		}
		switch b {
		case '\n':
		case '\r':
			if err := r.consumeLF(); err != nil {
				return skipped, err
			}
		default:
			continue
		}
		r.line++
		skipped++
	}
	return skipped, nil
}

// Read returns the next record. io.EOF signals the end of input.
func (r *Reader) Read() ([]string, error) {
	comma, quote := r.Comma, r.Quote
	if comma == 0 {
		comma = ','
	}
	if quote == 0 {
		quote = '"'
	}

	r.record = make([]string, 0, 8)
	r.field = r.field[:0]
	r.recordLine = r.line

	inQuotes := false
	quoted := false
	empty := true
	column := 0

	for {
		b, err := r.src.ReadByte()
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			if inQuotes {
				return nil, &ParseError{Line: r.line, Column: column, Err: ErrUnterminatedQuote}
			}
			if empty {
				return nil, io.EOF
			}
			r.endField()
			return r.record, nil
		}
		column++

		if inQuotes {
			switch b {
			case quote:
				next, err := r.src.Peek(1)
				if err == nil && next[0] == quote {
					_, _ = r.src.ReadByte()
					column++
					r.field = append(r.field, quote)
					continue
				}
				if err != nil && err != io.EOF {
					return nil, err
				}
				inQuotes = false
			case '\n':
				r.field = append(r.field, b)
				r.line++
				column = 0
			default:
				r.field = append(r.field, b)
			}
			continue
		}

		switch b {
		case comma:
			r.endField()
			quoted = false
			empty = false
		case '\r', '\n':
			if b == '\r' {
				if err := r.consumeLF(); err != nil {
					return nil, err
				}
			}
			r.line++
			if empty {
				return r.record, nil
			}
			r.endField()
			return r.record, nil
		case quote:
			if len(r.field) == 0 && !quoted {
				inQuotes = true
				quoted = true
				empty = false
				continue
			}
			return nil, &ParseError{Line: r.line, Column: column, Err: ErrBareQuote}
		default:
			r.field = append(r.field, b)
			empty = false
		}
	}
}

// ReadAll reads records until io.EOF.
func (r *Reader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

func (r *Reader) endField() {
	r.record = append(r.record, string(r.field))
	r.field = r.field[:0]
}

// consumeLF swallows the '\n' of a "\r\n" pair.
func (r *Reader) consumeLF() error {
	next, err := r.src.Peek(1)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if next[0] == '\n' {
		_, _ = r.src.ReadByte()
	}
	return nil
}

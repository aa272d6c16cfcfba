package delimited

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestReaderReadRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		comma byte
		quote byte
		want  [][]string
	}{
		{
			name:  "basicRecords",
			input: "one,two\nthree,four\n",
			want:  [][]string{{"one", "two"}, {"three", "four"}},
		},
		{
			name:  "finalRecordWithoutTerminator",
			input: "alpha,beta,gamma",
			want:  [][]string{{"alpha", "beta", "gamma"}},
		},
		{
			name:  "windowsLineEndings",
			input: "a,b\r\nc,d\r\n",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "quotedComma",
			input: "a,\"b,b\",c\n",
			want:  [][]string{{"a", "b,b", "c"}},
		},
		{
			name:  "escapedQuote",
			input: "a,\"b\"\"c\",d\n",
			want:  [][]string{{"a", "b\"c", "d"}},
		},
		{
			name:  "embeddedNewline",
			input: "a,\"b\nc\",d\n",
			want:  [][]string{{"a", "b\nc", "d"}},
		},
		{
			name:  "emptyFields",
			input: ",,\n",
			want:  [][]string{{"", "", ""}},
		},
		{
			name:  "blankLineHasNoFields",
			input: "1\n\n2\n",
			want:  [][]string{{"1"}, {}, {"2"}},
		},
		{
			name:  "quotedEmptyFieldIsNotBlank",
			input: "\"\"\n",
			want:  [][]string{{""}},
		},
		{
			name:  "customComma",
			input: "left;right\nup;down\n",
			comma: ';',
			want:  [][]string{{"left", "right"}, {"up", "down"}},
		},
		{
			name:  "customQuote",
			input: "'a|b'|c\n",
			comma: '|',
			quote: '\'',
			want:  [][]string{{"a|b", "c"}},
		},
		{
			name:  "tabDelimited",
			input: "x\t1.5\ny\t2.5\n",
			comma: '\t',
			want:  [][]string{{"x", "1.5"}, {"y", "2.5"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewReader(strings.NewReader(tt.input))
			if tt.comma != 0 {
				r.Comma = tt.comma
			}
			if tt.quote != 0 {
				r.Quote = tt.quote
			}

			got, err := r.ReadAll()
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ReadAll() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReaderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{name: "bareQuote", input: "ok\na\"b,c\n", wantErr: ErrBareQuote, wantLine: 2},
		{name: "unterminatedQuote", input: "\"open,1\n", wantErr: ErrUnterminatedQuote, wantLine: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewReader(strings.NewReader(tt.input)).ReadAll()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if perr.Line != tt.wantLine {
				t.Fatalf("line = %d, want %d", perr.Line, tt.wantLine)
			}
		})
	}
}

func TestReaderSkip(t *testing.T) {
	r := NewReader(strings.NewReader("header \"unbalanced\n# comment\r\n1\n2\n"))

	n, err := r.Skip(2)
	if err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("skipped %d lines, want 2", n)
	}

	rec, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(rec, []string{"1"}) {
		t.Fatalf("record = %q, want [1]", rec)
	}
	if r.Line() != 3 {
		t.Fatalf("Line() = %d, want 3", r.Line())
	}
}

func TestReaderSkipPastEOF(t *testing.T) {
	r := NewReader(strings.NewReader("only\n"))

	n, err := r.Skip(5)
	if err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("skipped %d lines, want 1", n)
	}
	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("Read() error = %v, want io.EOF", err)
	}
}

func TestReaderLineTracksQuotedNewlines(t *testing.T) {
	r := NewReader(strings.NewReader("\"a\nb\",1\n2,3\n"))

	if _, err := r.Read(); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if _, err := r.Read(); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if r.Line() != 3 {
		t.Fatalf("Line() = %d, want 3", r.Line())
	}
}

func TestReaderRecordsDoNotAlias(t *testing.T) {
	r := NewReader(strings.NewReader("a,b\nc,d\n"))

	first, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if _, err := r.Read(); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if first[0] != "a" || first[1] != "b" {
		t.Fatalf("first record changed to %q", first)
	}
}

func TestNewReaderNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil source")
		}
	}()
	NewReader(nil)
}

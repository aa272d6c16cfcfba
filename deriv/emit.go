package deriv

import (
	"fmt"
	"io"
	"strconv"
)

// Emitter writes values to w, one per line, without buffering.
type Emitter struct {
	w         io.Writer
	format    byte
	precision int
	buf       []byte
	count     int
}

// NewEmitter returns an Emitter formatting values with strconv.AppendFloat.
func NewEmitter(w io.Writer, format byte, precision int) *Emitter {
	return &Emitter{
		w:         w,
		format:    format,
		precision: precision,
		buf:       make([]byte, 0, 32),
	}
}

// Emit writes v followed by '\n'.
func (e *Emitter) Emit(v float64) error {
	e.buf = strconv.AppendFloat(e.buf[:0], v, e.format, e.precision, 64)
	e.buf = append(e.buf, '\n')
	if _, err := e.w.Write(e.buf); err != nil {
		return fmt.Errorf("deriv: write value %d: %w", e.count, err)
	}
	e.count++
	return nil
}

// EmitAll writes every value in vs.
func (e *Emitter) EmitAll(vs []float64) error {
	for _, v := range vs {
		if err := e.Emit(v); err != nil {
			return err
		}
	}
	return nil
}

// Count returns how many values were written.
func (e *Emitter) Count() int {
	return e.count
}

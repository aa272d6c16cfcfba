package deriv

import (
	"bytes"
	"testing"
)

func TestEmitter(t *testing.T) {
	var buf bytes.Buffer
	em := NewEmitter(&buf, 'g', -1)

	if err := em.EmitAll([]float64{2, 9.5, -0.125, 1e21}); err != nil {
		t.Fatalf("EmitAll() error = %v", err)
	}
	if want := "2\n9.5\n-0.125\n1e+21\n"; buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
	if em.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", em.Count())
	}
}

func TestEmitterFixedFormat(t *testing.T) {
	var buf bytes.Buffer
	em := NewEmitter(&buf, 'f', 2)

	if err := em.Emit(2); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if buf.String() != "2.00\n" {
		t.Fatalf("output = %q, want %q", buf.String(), "2.00\n")
	}
}

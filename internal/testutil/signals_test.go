package testutil

import (
	"math"
	"os"
	"testing"
)

func TestAffine(t *testing.T) {
	s := Affine(2, 3, 0, 20)
	if len(s) != 20 {
		t.Fatalf("len = %d, want 20", len(s))
	}
	if s[0] != 3 || s[19] != 41 {
		t.Fatalf("endpoints = %v, %v, want 3, 41", s[0], s[19])
	}

	shifted := Affine(2, 3, 1, 19)
	if shifted[0] != 5 {
		t.Fatalf("shifted[0] = %v, want 5", shifted[0])
	}
}

func TestQuadratic(t *testing.T) {
	q := Quadratic(1, 0, 0, 5)
	want := []float64{0, 1, 4, 9, 16}
	for i := range want {
		if q[i] != want[i] {
			t.Fatalf("q[%d] = %v, want %v", i, q[i], want[i])
		}
	}
}

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(0.1, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}

	c := DeterministicNoise(43, 1.0, 64)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestWriteLines(t *testing.T) {
	path := WriteLines(t, "data.csv", "a", "b")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "a\nb\n" {
		t.Fatalf("content = %q, want %q", data, "a\nb\n")
	}
}

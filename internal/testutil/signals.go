package testutil

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Affine samples f(x) = slope*x + intercept for x = start, start+1, ...
func Affine(slope, intercept float64, start, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = slope*float64(start+i) + intercept
	}
	return out
}

// Quadratic samples f(x) = a*x^2 + b*x + c for x = 0, 1, ...
func Quadratic(a, b, c float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		x := float64(i)
		out[i] = (a*x+b)*x + c
	}
	return out
}

// DeterministicSine samples amplitude*sin(omega*x) for x = 0, 1, ...
func DeterministicSine(omega, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(omega*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// WriteLines writes lines, each terminated by '\n', to name inside a fresh
// temporary directory and returns the file path.
func WriteLines(t testing.TB, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

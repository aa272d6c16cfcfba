package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Stride == nil {
		return errors.New("stride is not set")
	}
	if *c.Stride < 1 {
		return fmt.Errorf("stride must be >= 1, got %d", *c.Stride)
	}

	opts, err := c.ImportOptions()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	switch c.FormatByte() {
	case 'e', 'E', 'f', 'g', 'G':
	default:
		return fmt.Errorf("format must be one of e, E, f, g, G, got %q", c.Format)
	}
	if c.Precision != nil && *c.Precision < -1 {
		return fmt.Errorf("precision must be >= -1, got %d", *c.Precision)
	}

	return nil
}

// ParseChar converts a one-character option to a byte. The names "tab",
// "space", "semicolon", "pipe" and the escape `\t` are accepted.
func ParseChar(s string) (byte, error) {
	switch strings.ToLower(s) {
	case `\t`, "tab":
		return '\t', nil
	case "space":
		return ' ', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}
	if len(s) != 1 {
		return 0, errors.New("must be a single ASCII character")
	}
	return s[0], nil
}

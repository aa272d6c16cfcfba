package config

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-deriv/sequence"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the deriv command accepts.
type Config struct {
	Import    ImportConfig `yaml:"import"`
	Stride    *int         `yaml:"stride"`
	Format    string       `yaml:"format"`
	Precision *int         `yaml:"precision"`
}

// ImportConfig mirrors sequence.ImportOptions with text characters.
type ImportConfig struct {
	Column    int    `yaml:"column"`
	Delimiter string `yaml:"delimiter"`
	Quote     string `yaml:"quote"`
	SkipLines int    `yaml:"skip_lines"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates.
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Import.Delimiter == "" {
		c.Import.Delimiter = ","
	}
	if c.Import.Quote == "" {
		c.Import.Quote = `"`
	}
	if c.Stride == nil {
		k := 1
		c.Stride = &k
	}
	if c.Format == "" {
		c.Format = "g"
	}
	if c.Precision == nil {
		p := -1
		c.Precision = &p
	}
}

// ImportOptions converts the import section for the sequence package.
func (c *Config) ImportOptions() (*sequence.ImportOptions, error) {
	delim, err := ParseChar(c.Import.Delimiter)
	if err != nil {
		return nil, fmt.Errorf("import.delimiter: %w", err)
	}
	quote, err := ParseChar(c.Import.Quote)
	if err != nil {
		return nil, fmt.Errorf("import.quote: %w", err)
	}
	return &sequence.ImportOptions{
		Column:    c.Import.Column,
		Delimiter: delim,
		Quote:     quote,
		SkipLines: c.Import.SkipLines,
	}, nil
}

// FormatByte returns Format as a strconv format verb.
func (c *Config) FormatByte() byte {
	if len(c.Format) != 1 {
		return 0
	}
	return c.Format[0]
}

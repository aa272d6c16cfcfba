// Command deriv prints the first derivative of one numeric column of a
// delimited text file, one value per line.
//
// Usage:
//
//	deriv [flags] <file>
//
// Examples:
//
//	deriv samples.csv
//	deriv -i 1 -s 1 measurements.csv
//	deriv --delimiter tab --xDelta 2 data.tsv
//	deriv -config deriv.yaml data.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-deriv/deriv"
	"github.com/cwbudde/algo-deriv/internal/config"
	"github.com/cwbudde/algo-deriv/internal/version"
	"github.com/cwbudde/algo-deriv/sequence"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flagValues struct {
	column    int
	delimiter string
	quote     string
	skipLines int
	stride    int
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("deriv", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var fv flagValues
	fs.IntVar(&fv.column, "i", 0, "index of the column holding the sequence (short for -colIndex)")
	fs.IntVar(&fv.column, "colIndex", 0, "index of the column holding the sequence")
	fs.StringVar(&fv.delimiter, "d", ",", "field delimiter (short for -delimiter)")
	fs.StringVar(&fv.delimiter, "delimiter", ",", "field delimiter; \\t or tab for TAB")
	fs.StringVar(&fv.quote, "q", `"`, "quote character (short for -csvQuotechar)")
	fs.StringVar(&fv.quote, "csvQuotechar", `"`, "quote character for fields containing the delimiter")
	fs.IntVar(&fv.skipLines, "s", 0, "leading lines to skip (short for -skipLines)")
	fs.IntVar(&fv.skipLines, "skipLines", 0, "leading lines to skip, e.g. a column header")
	fs.IntVar(&fv.stride, "x", 1, "stride in samples (short for -xDelta)")
	fs.IntVar(&fv.stride, "xDelta", 1, "stride in samples between stencil points")
	configPath := fs.String("config", "", "YAML options file; explicit flags override it")
	showVersion := fs.Bool("version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: deriv [flags] <file>\n\n")
		fmt.Fprintf(stderr, "Prints the first derivative of one column of a delimited file,\n")
		fmt.Fprintf(stderr, "one value per line.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintln(stdout, "deriv", version.String())
		return exitOK
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "error: expected exactly one file argument, got %d\n", fs.NArg())
		fs.Usage()
		return exitUsage
	}
	path := fs.Arg(0)

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "config", *configPath, "error", err)
		return exitUsage
	}
	applyFlags(fs, &fv, cfg)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid options", "error", err)
		return exitUsage
	}

	imp, err := cfg.ImportOptions()
	if err != nil {
		logger.Error("invalid options", "error", err)
		return exitUsage
	}

	_, err = deriv.DifferentiateFile(path, imp,
		deriv.WithStride(*cfg.Stride),
		deriv.WithOutput(stdout),
		deriv.WithFormat(cfg.FormatByte(), *cfg.Precision),
	)
	if err != nil {
		logFailure(logger, path, err)
		return exitError
	}

	return exitOK
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(fs *flag.FlagSet, fv *flagValues, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i", "colIndex":
			cfg.Import.Column = fv.column
		case "d", "delimiter":
			cfg.Import.Delimiter = fv.delimiter
		case "q", "csvQuotechar":
			cfg.Import.Quote = fv.quote
		case "s", "skipLines":
			cfg.Import.SkipLines = fv.skipLines
		case "x", "xDelta":
			stride := fv.stride
			cfg.Stride = &stride
		}
	})
}

func logFailure(logger *slog.Logger, path string, err error) {
	var (
		malformed    *sequence.MalformedDataError
		unavailable  *sequence.SourceUnavailableError
		insufficient *deriv.InsufficientSamplesError
	)
	switch {
	case errors.As(err, &malformed):
		logger.Error("malformed data",
			"file", malformed.Source,
			"line", malformed.Line,
			"column", malformed.Column,
			"row", malformed.Row,
			"error", malformed.Err,
		)
	case errors.As(err, &unavailable):
		logger.Error("cannot open input", "file", unavailable.Path, "error", unavailable.Err)
	case errors.As(err, &insufficient):
		logger.Error("not enough samples",
			"file", path,
			"samples", insufficient.Len,
			"stride", insufficient.Stride,
			"need", deriv.MinSamples(insufficient.Stride),
		)
	default:
		logger.Error("differentiation failed", "file", path, "error", err)
	}
}

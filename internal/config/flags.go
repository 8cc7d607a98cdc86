package config

// Command-line parsing for the three commands. Parsers take an explicit args
// slice (os.Args[1:] in production) and never exit the process themselves.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUsage marks errors caused by bad invocation rather than failed work.
var ErrUsage = errors.New("usage")

// ErrHelp is returned when -h/-help was requested.
var ErrHelp = flag.ErrHelp

// Paths is an input/output pair resolved from the command line.
type Paths struct {
	Input  string
	Output string
}

// ParsePositional expects exactly two positional arguments: input and output.
// It is shared by lzwencode and lzwdecode, which accept no flags.
func ParsePositional(name string, args []string) (Paths, error) {
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help" || args[0] == "-help") {
		return Paths{}, ErrHelp
	}
	if len(args) != 2 {
		return Paths{}, fmt.Errorf("%w: %s <input_path> <output_path>", ErrUsage, name)
	}
	if strings.TrimSpace(args[0]) == "" || strings.TrimSpace(args[1]) == "" {
		return Paths{}, fmt.Errorf("%w: %s: paths must not be empty", ErrUsage, name)
	}
	return Paths{Input: args[0], Output: args[1]}, nil
}

// ParseCleanFlags parses tsclean's -in and -out flags into cfg. Values already
// in cfg (defaults or environment) are kept unless the flag is given.
func ParseCleanFlags(cfg *Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("tsclean", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.CleanInput, "in", cfg.CleanInput, "transcript to clean")
	fs.StringVar(&cfg.CleanOutput, "out", cfg.CleanOutput, "where to write the cleaned transcript")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: tsclean [-in FILE] [-out FILE]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Strips leading [mm:ss.mmm --> mm:ss.mmm] markers from every line.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrHelp
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if cfg.CleanInput == "" || cfg.CleanOutput == "" {
		return fmt.Errorf("%w: -in and -out must not be empty", ErrUsage)
	}
	// The output is truncated before the input is read.
	if filepath.Clean(cfg.CleanInput) == filepath.Clean(cfg.CleanOutput) {
		return fmt.Errorf("%w: -in and -out name the same file", ErrUsage)
	}
	return nil
}

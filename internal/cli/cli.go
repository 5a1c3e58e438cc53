package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options holds the parsed command line.
type Options struct {
	// ProjectDir is searched for a configuration file when ConfigPath is empty.
	ProjectDir string
	ConfigPath string
	CleanCache bool
	// Validate and Strict are nil unless given on the command line, so the
	// configuration decides.
	Validate  *bool
	Strict    *bool
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns the options, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("uigen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
uigen - generates native UI layouts from declarative JSON component trees.

Usage:
  uigen [options] [PROJECT_DIR]

Arguments:
  PROJECT_DIR
    Directory holding uigen.yaml, uigen.json or uigen.hcl. Defaults to ".".

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the configuration file.")
	cleanFlag := flagSet.Bool("clean-cache", false, "Delete the build cache before building.")
	validateFlag := flagSet.Bool("validate", true, "Validate binding expressions.")
	strictFlag := flagSet.Bool("strict", false, "Fail the build when validation reports warnings.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "at most one project directory may be given"}
	}

	opts := &Options{
		ProjectDir: ".",
		ConfigPath: *configFlag,
		CleanCache: *cleanFlag,
		LogLevel:   strings.ToLower(*logLevelFlag),
		LogFormat:  strings.ToLower(*logFormatFlag),
	}

	if flagSet.NArg() == 1 {
		opts.ProjectDir = flagSet.Arg(0)
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "validate":
			opts.Validate = validateFlag
		case "strict":
			opts.Strict = strictFlag
		}
	})

	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return opts, false, nil
}

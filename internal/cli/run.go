package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"uigen/internal/build"
	"uigen/internal/config"
	"uigen/internal/ctxlog"
)

// LoadConfig loads the configuration named by opts and applies the
// command-line overrides.
func LoadConfig(opts *Options) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		found, err := config.Find(opts.ProjectDir)
		if err != nil {
			return nil, err
		}

		path = found
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if opts.Validate != nil {
		cfg.Validation.Enabled = *opts.Validate
	}

	if opts.Strict != nil {
		cfg.Validation.Strict = *opts.Strict
	}

	return cfg, nil
}

// Run loads the configuration, runs one build and writes a summary to outW.
// Configuration problems map to ExitUsage, a failed or strict-failed build
// to ExitFailure.
func Run(ctx context.Context, opts *Options, outW io.Writer) error {
	logger := NewLogger(opts.LogLevel, opts.LogFormat, outW)
	ctx = ctxlog.WithLogger(ctx, logger)

	cfg, err := LoadConfig(opts)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	logger.Debug("Configuration loaded", "project", cfg.ProjectName, "layouts", cfg.LayoutsDir, "targets", len(cfg.Targets))

	builder, err := build.New(cfg, build.Options{CleanCache: opts.CleanCache})
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	report, err := builder.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return &ExitError{Code: ExitFailure, Message: "build cancelled"}
		}

		return err
	}

	printReport(outW, report)

	switch {
	case len(report.Failed) > 0:
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d layout(s) failed", len(report.Failed))}
	case report.StrictFailure():
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("strict mode: %d validation warning(s)", len(report.Warnings.Warnings))}
	}

	return nil
}

func printReport(w io.Writer, report *build.Report) {
	for _, warning := range report.Warnings.WarningMessages() {
		fmt.Fprintln(w, "warning:", warning)
	}

	for _, f := range report.Failed {
		fmt.Fprintln(w, "error:", f.Error())
	}

	fmt.Fprintln(w, report.Summary())
}

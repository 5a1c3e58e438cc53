package build

import (
	"fmt"
	"strings"

	"uigen/internal/diagnostic"
)

// FileError is a failure of one layout file.
type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Report summarizes a pass.
type Report struct {
	// Built lists the layouts emitted in this pass.
	Built []string
	// UpToDate lists the layouts skipped as unchanged.
	UpToDate []string
	// Excluded lists the layouts matched by an exclude pattern.
	Excluded []string
	// Failed holds per-file failures.
	Failed []FileError
	// Warnings holds validation warnings and skipped-reference notes.
	Warnings diagnostic.Diagnostics
	// Resources is the number of values extracted into resource tables.
	Resources int

	strict bool
}

// StrictFailure reports whether strict mode is on and validation produced
// warnings.
func (r *Report) StrictFailure() bool {
	return r.strict && r.Warnings.HasWarnings()
}

// OK reports whether the pass should exit successfully.
func (r *Report) OK() bool {
	return len(r.Failed) == 0 && !r.StrictFailure()
}

// Summary returns a one-line description of the pass.
func (r *Report) Summary() string {
	parts := []string{
		fmt.Sprintf("%d built", len(r.Built)),
		fmt.Sprintf("%d up to date", len(r.UpToDate)),
	}

	if len(r.Excluded) > 0 {
		parts = append(parts, fmt.Sprintf("%d excluded", len(r.Excluded)))
	}

	parts = append(parts,
		fmt.Sprintf("%d failed", len(r.Failed)),
		fmt.Sprintf("%d warnings", len(r.Warnings.Warnings)))

	return strings.Join(parts, ", ")
}

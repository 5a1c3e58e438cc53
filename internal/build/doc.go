// Package build runs one generation pass over a project.
//
// A pass discovers the layout files, asks the cache which of them are
// stale and pushes each stale file through the pipeline:
//
//	resolve -> validate -> extract resources -> map (per target) -> emit
//
// Failures are per file. A failing file is reported and retried on the
// next pass; the rest of the batch continues. The cache is saved once,
// after the last file.
package build

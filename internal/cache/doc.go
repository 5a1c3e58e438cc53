// Package cache decides which layout files must be rebuilt and persists the
// per-file records that make that decision possible across runs.
//
// The durable state is three JSON tables in a hidden directory, all keyed by
// layout base name (file name without extension):
//
//	last_updated.json          name -> mtime (UnixNano)
//	last_including_files.json  name -> included layout names
//	style_dependencies.json    name -> referenced style names
//
// Style documents get mtime rows too, under StyleKey(name).
//
// A Store is read once at build start. During the build it hands out a
// read-only Snapshot and accumulates a write-set through Record; Save
// flushes every table in one pass, carrying forward rows for files that
// were not rebuilt. Rows of deleted files are never pruned. The directory
// is safe to delete as a whole, which is what Clean does.
package cache

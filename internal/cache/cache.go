package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"uigen/internal/fsutil"
)

// DefaultDir is the cache directory name used when the config leaves it unset.
const DefaultDir = ".uigen_cache"

// Table file names.
const (
	LastUpdatedFile = "last_updated.json"
	IncludesFile    = "last_including_files.json"
	StylesFile      = "style_dependencies.json"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrCorrupt is returned when a cache table cannot be decoded.
var ErrCorrupt = errors.New("corrupt cache table")

const stylePrefix = "style:"

// StyleKey returns the last_updated key of a style document.
func StyleKey(name string) string {
	return stylePrefix + name
}

// Key returns the table key of a layout file.
func Key(path string) string {
	return fsutil.BaseName(path)
}

// Record is the cached state of one source file.
type Record struct {
	Mtime    int64
	Includes []string
	Styles   []string
}

// Tables holds the three persisted tables.
type Tables struct {
	LastUpdated map[string]int64
	Includes    map[string][]string
	Styles      map[string][]string
}

func newTables() Tables {
	return Tables{
		LastUpdated: make(map[string]int64),
		Includes:    make(map[string][]string),
		Styles:      make(map[string][]string),
	}
}

func (t Tables) clone() Tables {
	out := newTables()
	maps.Copy(out.LastUpdated, t.LastUpdated)

	for k, v := range t.Includes {
		out.Includes[k] = slices.Clone(v)
	}

	for k, v := range t.Styles {
		out.Styles[k] = slices.Clone(v)
	}

	return out
}

// Store is the durable record store. It assumes a single writer.
type Store struct {
	dir     string
	tables  Tables
	pending map[string]Record
}

// Open loads the tables in dir. A missing directory yields an empty store.
func Open(dir string) (*Store, error) {
	s := &Store{dir: dir, tables: newTables(), pending: make(map[string]Record)}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) load() error {
	if err := readTable(filepath.Join(s.dir, LastUpdatedFile), &s.tables.LastUpdated); err != nil {
		return err
	}

	if err := readTable(filepath.Join(s.dir, IncludesFile), &s.tables.Includes); err != nil {
		return err
	}

	return readTable(filepath.Join(s.dir, StylesFile), &s.tables.Styles)
}

func readTable[T any](path string, into *map[string]T) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("reading cache table %s: %w", path, err)
	}

	table := make(map[string]T)
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("%w %s: %v", ErrCorrupt, path, err)
	}

	*into = table

	return nil
}

// Clean deletes and recreates the cache directory and empties the store.
func (s *Store) Clean() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("removing cache directory: %w", err)
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	s.tables = newTables()
	s.pending = make(map[string]Record)

	return nil
}

// Snapshot returns a read-only view of the tables as loaded at build start.
// Records written during the build are not visible through it.
func (s *Store) Snapshot(watchedRoot string) Snapshot {
	return Snapshot{Root: watchedRoot, tables: s.tables.clone()}
}

// Record adds a row to the write-set.
func (s *Store) Record(key string, rec Record) {
	s.pending[key] = Record{
		Mtime:    rec.Mtime,
		Includes: slices.Clone(rec.Includes),
		Styles:   slices.Clone(rec.Styles),
	}
}

// Save writes all three tables in one pass: the rows loaded at start,
// overridden by the write-set.
func (s *Store) Save() error {
	out := s.tables.clone()

	for key, rec := range s.pending {
		out.LastUpdated[key] = rec.Mtime

		if strings.HasPrefix(key, stylePrefix) {
			continue
		}

		out.Includes[key] = nonNil(rec.Includes)
		out.Styles[key] = nonNil(rec.Styles)
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	if err := writeTable(filepath.Join(s.dir, LastUpdatedFile), out.LastUpdated); err != nil {
		return err
	}

	if err := writeTable(filepath.Join(s.dir, IncludesFile), out.Includes); err != nil {
		return err
	}

	if err := writeTable(filepath.Join(s.dir, StylesFile), out.Styles); err != nil {
		return err
	}

	s.tables = out
	s.pending = make(map[string]Record)

	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func writeTable[T any](path string, table map[string]T) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache table %s: %w", path, err)
	}

	if err := os.WriteFile(path, append(data, '\n'), filePerm); err != nil {
		return fmt.Errorf("writing cache table %s: %w", path, err)
	}

	return nil
}

// Mtime returns the modification time of path in UnixNano.
func Mtime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	return info.ModTime().UnixNano(), nil
}

// NeedsUpdate reports whether file must be rebuilt: it has no recorded mtime
// or its current mtime is newer than the recorded one. A relative file is
// taken relative to watchedRoot. The include and style tables are accepted
// for the dependency walk done by Snapshot.Dependents and are not consulted
// here.
func NeedsUpdate(
	file string,
	lastUpdated map[string]int64,
	watchedRoot string,
	lastIncludes map[string][]string,
	lastStyleDeps map[string][]string,
) (bool, error) {
	path := file
	if !filepath.IsAbs(path) && watchedRoot != "" {
		path = filepath.Join(watchedRoot, path)
	}

	recorded, ok := lastUpdated[Key(path)]
	if !ok {
		return true, nil
	}

	current, err := Mtime(path)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	return current > recorded, nil
}

// Snapshot is a read-only view of the cache tables.
type Snapshot struct {
	Root   string
	tables Tables
}

// NeedsUpdate applies the package-level NeedsUpdate to this snapshot.
func (s Snapshot) NeedsUpdate(file string) (bool, error) {
	return NeedsUpdate(file, s.tables.LastUpdated, s.Root, s.tables.Includes, s.tables.Styles)
}

// StyleChanged reports whether a style document is newer than its record or
// has none.
func (s Snapshot) StyleChanged(name, path string) (bool, error) {
	recorded, ok := s.tables.LastUpdated[StyleKey(name)]
	if !ok {
		return true, nil
	}

	current, err := Mtime(path)
	if err != nil {
		return false, fmt.Errorf("checking style %s: %w", path, err)
	}

	return current > recorded, nil
}

// Lookup returns the recorded row for key.
func (s Snapshot) Lookup(key string) (Record, bool) {
	mtime, ok := s.tables.LastUpdated[key]
	if !ok {
		return Record{}, false
	}

	return Record{
		Mtime:    mtime,
		Includes: slices.Clone(s.tables.Includes[key]),
		Styles:   slices.Clone(s.tables.Styles[key]),
	}, true
}

// Len returns the number of rows in the last_updated table.
func (s Snapshot) Len() int {
	return len(s.tables.LastUpdated)
}

// Dependents returns, sorted, the keys of layouts whose recorded includes
// reach a changed layout (transitively) or whose recorded styles contain a
// changed style. The changed layouts themselves are not included.
func (s Snapshot) Dependents(changedLayouts, changedStyles []string) []string {
	dirty := make(map[string]bool, len(changedLayouts))
	for _, k := range changedLayouts {
		dirty[k] = true
	}

	result := make(map[string]bool)

	for key, styles := range s.tables.Styles {
		for _, st := range styles {
			if slices.Contains(changedStyles, st) && !dirty[key] {
				result[key] = true
			}
		}
	}

	// Propagate through includes until nothing new is marked.
	for changed := true; changed; {
		changed = false

		for key, includes := range s.tables.Includes {
			if dirty[key] || result[key] {
				continue
			}

			for _, inc := range includes {
				name := fsutil.BaseName(inc)
				if dirty[name] || result[name] {
					result[key] = true
					changed = true

					break
				}
			}
		}
	}

	out := make([]string, 0, len(result))
	for k := range result {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}

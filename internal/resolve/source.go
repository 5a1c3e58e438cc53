package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"uigen/internal/component"
	"uigen/internal/fsutil"
)

// Source loads layout and style documents by name.
type Source interface {
	Layout(name string) (*component.Node, error)
	Style(name string) (*component.Node, error)
}

// DirSource reads documents from a layouts directory and a styles directory.
// A name is first looked up as a relative path ("common/header" ->
// "<dir>/common/header.json"); failing that, any file in the tree with the
// same base name is used.
type DirSource struct {
	LayoutsDir string
	StylesDir  string

	index map[string]map[string]string // dir -> base name -> path
}

// NewDirSource creates a DirSource.
func NewDirSource(layoutsDir, stylesDir string) *DirSource {
	return &DirSource{
		LayoutsDir: layoutsDir,
		StylesDir:  stylesDir,
		index:      make(map[string]map[string]string),
	}
}

// Layout loads the named layout document.
func (s *DirSource) Layout(name string) (*component.Node, error) {
	return s.load(s.LayoutsDir, name)
}

// Style loads the named style document.
func (s *DirSource) Style(name string) (*component.Node, error) {
	return s.load(s.StylesDir, name)
}

// LayoutPath returns the file backing a layout name.
func (s *DirSource) LayoutPath(name string) (string, error) {
	return s.locate(s.LayoutsDir, name)
}

// StylePath returns the file backing a style name.
func (s *DirSource) StylePath(name string) (string, error) {
	return s.locate(s.StylesDir, name)
}

func (s *DirSource) load(dir, name string) (*component.Node, error) {
	path, err := s.locate(dir, name)
	if err != nil {
		return nil, err
	}

	n, err := component.LoadFile(path)
	if err != nil {
		if errors.Is(err, component.ErrMalformed) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		return nil, err
	}

	return n, nil
}

func (s *DirSource) locate(dir, name string) (string, error) {
	if dir == "" || name == "" {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	rel := filepath.FromSlash(strings.TrimSuffix(name, ".json")) + ".json"

	direct := filepath.Join(dir, rel)
	if info, err := os.Stat(direct); err == nil && !info.IsDir() {
		return direct, nil
	}

	idx, err := s.dirIndex(dir)
	if err != nil {
		return "", err
	}

	if path, ok := idx[fsutil.BaseName(rel)]; ok {
		return path, nil
	}

	return "", fmt.Errorf("%w: %q in %s", ErrNotFound, name, dir)
}

func (s *DirSource) dirIndex(dir string) (map[string]string, error) {
	if s.index == nil {
		s.index = make(map[string]map[string]string)
	}

	if idx, ok := s.index[dir]; ok {
		return idx, nil
	}

	files, err := fsutil.FindFilesByExtension(dir, ".json")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("indexing %s: %w", dir, err)
	}

	idx := make(map[string]string, len(files))

	for _, f := range files {
		// first match wins; files are sorted
		if _, dup := idx[fsutil.BaseName(f)]; !dup {
			idx[fsutil.BaseName(f)] = f
		}
	}

	s.index[dir] = idx

	return idx, nil
}

// MapSource serves documents from memory. Values are cloned on every load.
type MapSource struct {
	Layouts map[string]*component.Node
	Styles  map[string]*component.Node
}

// Layout returns a copy of the named layout.
func (s MapSource) Layout(name string) (*component.Node, error) {
	n, ok := s.Layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: layout %q", ErrNotFound, name)
	}

	return n.Clone(), nil
}

// Style returns a copy of the named style.
func (s MapSource) Style(name string) (*component.Node, error) {
	n, ok := s.Styles[name]
	if !ok {
		return nil, fmt.Errorf("%w: style %q", ErrNotFound, name)
	}

	return n.Clone(), nil
}

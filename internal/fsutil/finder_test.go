package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()

	write := func(rel string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}

	write("b.json")
	write("a.json")
	write("nested/c.json")
	write("notes.txt")
	write(".cache/d.json")

	files, err := FindFilesByExtension(root, ".json")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.json"),
		filepath.Join(root, "b.json"),
		filepath.Join(root, "nested", "c.json"),
	}, files)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir(), "")
	})
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "home", BaseName("/x/Layouts/home.json"))
	assert.Equal(t, "card", BaseName("card"))
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uigen/internal/cli"
)

func writeProject(t *testing.T, layouts map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	files := map[string]string{
		"uigen.yaml": "targets:\n  - name: views\n",
	}
	for name, content := range layouts {
		files[filepath.Join("Layouts", name)] = content
	}

	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	if err == nil {
		return cli.ExitOK
	}

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "unexpected error type: %v", err)

	return exitErr.Code
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		layouts  map[string]string
		args     []string
		wantCode int
	}{
		{"clean build", map[string]string{"home.json": `{"type": "View"}`}, nil, cli.ExitOK},
		{"warnings pass", map[string]string{"home.json": `{"type": "Label", "text": "@{name}"}`}, nil, cli.ExitOK},
		{"strict fails", map[string]string{"home.json": `{"type": "Label", "text": "@{name}"}`}, []string{"-strict"}, cli.ExitFailure},
		{"strict without validation", map[string]string{"home.json": `{"type": "Label", "text": "@{name}"}`}, []string{"-strict", "-validate=false"}, cli.ExitOK},
		{"broken layout", map[string]string{"home.json": `[1, 2]`}, nil, cli.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, tt.layouts)
			out := &bytes.Buffer{}

			args := append([]string{"-log-level", "error"}, tt.args...)
			args = append(args, dir)

			err := run(out, args)
			assert.Equal(t, tt.wantCode, exitCode(t, err), out.String())
			assert.Contains(t, out.String(), "built")
		})
	}
}

func TestRun_WritesOutput(t *testing.T) {
	dir := writeProject(t, map[string]string{"home.json": `{"type": "View"}`})

	require.NoError(t, run(&bytes.Buffer{}, []string{"-config", filepath.Join(dir, "uigen.yaml")}))
	assert.FileExists(t, filepath.Join(dir, "out", "views", "home.yaml"))
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, run(out, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--this-is-not-a-valid-flag"}},
		{"no configuration", []string{t.TempDir()}},
		{"bad log level", []string{"-log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(&bytes.Buffer{}, tt.args)
			assert.Equal(t, cli.ExitUsage, exitCode(t, err))
		})
	}
}

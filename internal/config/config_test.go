package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uigen/internal/cache"
	"uigen/internal/mapper"
)

const sampleYAML = `
project_name: Sample
layouts_dir: Layouts
styles_dir: Styles
resources_dir: Resources
targets:
  - name: views
    output_dir: out/views
  - name: Compose
validation: {strict: true}
resolve: {strict_references: true}
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Sample", cfg.ProjectName)
	assert.Equal(t, "Resources", cfg.ResourcesDir)
	assert.Equal(t, cache.DefaultDir, cfg.CacheDir)
	assert.Equal(t, []Target{
		{Name: "views", OutputDir: "out/views"},
		{Name: "compose", OutputDir: filepath.Join("out", "compose")},
	}, cfg.Targets)
	assert.Equal(t, Validation{Enabled: true, Strict: true}, cfg.Validation)
	assert.Equal(t, Resolve{MaxIncludeDepth: DefaultMaxIncludeDepth, StrictReferences: true}, cfg.Resolve)
	assert.True(t, cfg.Cache.TrackDependencies)
	require.NoError(t, cfg.Validate())
}

func TestParse_JSON(t *testing.T) {
	data := `{
		"layouts_dir": "src/layouts",
		"targets": [{"name": "views", "output_dir": "build"}],
		"validation": {"enabled": false},
		"cache": {"track_dependencies": false}
	}`

	cfg, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "src/layouts", cfg.LayoutsDir)
	assert.Equal(t, "Styles", cfg.StylesDir)
	assert.False(t, cfg.Validation.Enabled)
	assert.False(t, cfg.Cache.TrackDependencies)
}

func TestParse_Exclude(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want StringOrArray
	}{
		{"single string", `exclude: "drafts/*"`, StringOrArray{"drafts/*"}},
		{"list", "exclude: [\"drafts/*\", \"*_old.json\"]", StringOrArray{"drafts/*", "*_old.json"}},
		{"empty string", `exclude: ""`, StringOrArray{}},
		{"absent", `project_name: x`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Exclude)
		})
	}
}

func TestParse_ExcludeRejectsMapping(t *testing.T) {
	_, err := Parse([]byte("exclude: {a: b}"))
	require.Error(t, err)
}

func TestStringOrArray_Marshal(t *testing.T) {
	v, err := StringOrArray{"a"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = StringOrArray{"a", "b"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)

	assert.Equal(t, "", StringOrArray{}.First())
	assert.Equal(t, "a", StringOrArray{"a", "b"}.First())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"no targets", func(c *Config) { c.Targets = nil }, ErrInvalid},
		{"unknown mode", func(c *Config) { c.Targets[0].Name = "web" }, mapper.ErrUnknownMode},
		{"duplicate target", func(c *Config) { c.Targets = append(c.Targets, c.Targets[0]) }, ErrInvalid},
		{"no layouts dir", func(c *Config) { c.LayoutsDir = "" }, ErrInvalid},
		{"negative depth", func(c *Config) { c.Resolve.MaxIncludeDepth = -1 }, ErrInvalid},
		{"bad pattern", func(c *Config) { c.Exclude = StringOrArray{"[a"} }, ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Targets = []Target{{Name: "views", OutputDir: "out"}}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), err.Error())
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestExcluded(t *testing.T) {
	cfg := Default()
	cfg.Exclude = StringOrArray{"drafts/*", "*_old.json"}

	assert.True(t, cfg.Excluded("drafts/home.json"))
	assert.True(t, cfg.Excluded(filepath.Join("screens", "list_old.json")))
	assert.False(t, cfg.Excluded("screens/drafts.json"))
	assert.False(t, cfg.Excluded("home.json"))
}

func TestParseHCL(t *testing.T) {
	t.Setenv("UIGEN_TEST_OUT", "/tmp/uigen")

	src := `
project_name = "Sample"
layouts_dir  = "Layouts"
exclude      = ["drafts/*"]

target "views" {
  output_dir = "${env.UIGEN_TEST_OUT}/views"
}

target "compose" {}

validation {
  strict = true
}

resolve {
  max_include_depth = 4
}
`

	cfg, err := ParseHCL([]byte(src), "uigen.hcl")
	require.NoError(t, err)

	assert.Equal(t, "Sample", cfg.ProjectName)
	assert.Equal(t, "Styles", cfg.StylesDir)
	assert.Equal(t, StringOrArray{"drafts/*"}, cfg.Exclude)
	assert.Equal(t, []Target{
		{Name: "views", OutputDir: "/tmp/uigen/views"},
		{Name: "compose", OutputDir: filepath.Join("out", "compose")},
	}, cfg.Targets)
	assert.Equal(t, Validation{Enabled: true, Strict: true}, cfg.Validation)
	assert.Equal(t, 4, cfg.Resolve.MaxIncludeDepth)
	assert.True(t, cfg.Cache.TrackDependencies)
}

func TestParseHCL_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `layouts_dir = `},
		{"unknown attribute", `colour = "red"`},
		{"wrong type", `resolve { max_include_depth = "deep" }`},
		{"unknown env", `cache_dir = env.UIGEN_SURELY_UNSET_VARIABLE`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHCL([]byte(tt.src), "uigen.hcl")
			require.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uigen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Layouts"), cfg.LayoutsDir)
	assert.Equal(t, filepath.Join(dir, cache.DefaultDir), cfg.CacheDir)
	assert.Equal(t, filepath.Join(dir, "out", "views"), cfg.Targets[0].OutputDir)
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uigen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targets: [{name: web}]"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))

	_, err = LoadFile(filepath.Join(dir, "uigen.toml"))
	require.Error(t, err)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()

	_, err := Find(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "uigen.hcl"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uigen.json"), nil, 0o644))

	got, err := Find(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "uigen.json"), got)
}

package config

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"uigen/internal/cache"
	"uigen/internal/mapper"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// DefaultMaxIncludeDepth bounds include nesting when the config leaves it unset.
const DefaultMaxIncludeDepth = 16

// Config is the project configuration.
type Config struct {
	ProjectName  string        `yaml:"project_name"`
	LayoutsDir   string        `yaml:"layouts_dir"`
	StylesDir    string        `yaml:"styles_dir"`
	ResourcesDir string        `yaml:"resources_dir,omitempty"`
	CacheDir     string        `yaml:"cache_dir"`
	Exclude      StringOrArray `yaml:"exclude,omitempty"`
	Targets      []Target      `yaml:"targets"`
	Validation   Validation    `yaml:"validation"`
	Resolve      Resolve       `yaml:"resolve"`
	Cache        Cache         `yaml:"cache"`
}

// Target is one output backend.
type Target struct {
	Name      string `yaml:"name"`
	OutputDir string `yaml:"output_dir"`
}

// Mode returns the mapper mode named by the target.
func (t Target) Mode() (mapper.Mode, error) {
	return mapper.ParseMode(t.Name)
}

// Validation controls the binding validator.
type Validation struct {
	Enabled bool `yaml:"enabled"`
	Strict  bool `yaml:"strict"`
}

// Resolve controls include and style resolution.
type Resolve struct {
	MaxIncludeDepth  int  `yaml:"max_include_depth"`
	StrictReferences bool `yaml:"strict_references"`
}

// Cache controls incremental builds.
type Cache struct {
	TrackDependencies bool `yaml:"track_dependencies"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		LayoutsDir: "Layouts",
		StylesDir:  "Styles",
		CacheDir:   cache.DefaultDir,
		Validation: Validation{Enabled: true},
		Resolve:    Resolve{MaxIncludeDepth: DefaultMaxIncludeDepth},
		Cache:      Cache{TrackDependencies: true},
	}
}

// applyDefaults fills in values a decoder may have cleared.
func applyDefaults(cfg *Config) {
	if cfg.CacheDir == "" {
		cfg.CacheDir = cache.DefaultDir
	}

	if cfg.Resolve.MaxIncludeDepth == 0 {
		cfg.Resolve.MaxIncludeDepth = DefaultMaxIncludeDepth
	}

	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		t.Name = strings.ToLower(strings.TrimSpace(t.Name))

		if t.OutputDir == "" {
			t.OutputDir = filepath.Join("out", t.Name)
		}
	}
}

// Rebase makes every relative directory relative to base instead.
func (c *Config) Rebase(base string) {
	if base == "" {
		return
	}

	for _, dir := range []*string{&c.LayoutsDir, &c.StylesDir, &c.ResourcesDir, &c.CacheDir} {
		if *dir != "" && !filepath.IsAbs(*dir) {
			*dir = filepath.Join(base, *dir)
		}
	}

	for i := range c.Targets {
		if t := &c.Targets[i]; !filepath.IsAbs(t.OutputDir) {
			t.OutputDir = filepath.Join(base, t.OutputDir)
		}
	}
}

// Validate reports every problem found, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if c.LayoutsDir == "" {
		errs = append(errs, errors.New("layouts_dir is required"))
	}

	if len(c.Targets) == 0 {
		errs = append(errs, errors.New("at least one target is required"))
	}

	seen := make(map[string]bool, len(c.Targets))

	for i, t := range c.Targets {
		if _, err := t.Mode(); err != nil {
			errs = append(errs, fmt.Errorf("targets[%d]: %w", i, err))
		}

		if seen[t.Name] {
			errs = append(errs, fmt.Errorf("targets[%d]: duplicate target %q", i, t.Name))
		}

		seen[t.Name] = true
	}

	if c.Resolve.MaxIncludeDepth < 0 {
		errs = append(errs, fmt.Errorf("resolve.max_include_depth must be positive, got %d", c.Resolve.MaxIncludeDepth))
	}

	for _, pattern := range c.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			errs = append(errs, fmt.Errorf("exclude %q: %w", pattern, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

// Excluded reports whether a layout path, relative to the layouts
// directory, matches one of the exclude patterns. Patterns are matched
// against the slash-separated relative path and against the file name.
func (c *Config) Excluded(rel string) bool {
	rel = filepath.ToSlash(rel)

	for _, pattern := range c.Exclude {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}

		if ok, _ := path.Match(pattern, path.Base(rel)); ok {
			return true
		}
	}

	return false
}

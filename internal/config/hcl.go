package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the top-level structure of an HCL configuration. Every
// setting is optional so Default survives what the file leaves out.
type hclFile struct {
	ProjectName  *string        `hcl:"project_name,optional"`
	LayoutsDir   *string        `hcl:"layouts_dir,optional"`
	StylesDir    *string        `hcl:"styles_dir,optional"`
	ResourcesDir *string        `hcl:"resources_dir,optional"`
	CacheDir     *string        `hcl:"cache_dir,optional"`
	Exclude      []string       `hcl:"exclude,optional"`
	Targets      []*hclTarget   `hcl:"target,block"`
	Validation   *hclValidation `hcl:"validation,block"`
	Resolve      *hclResolve    `hcl:"resolve,block"`
	Cache        *hclCache      `hcl:"cache,block"`
}

type hclTarget struct {
	Name      string  `hcl:"name,label"`
	OutputDir *string `hcl:"output_dir,optional"`
}

type hclValidation struct {
	Enabled *bool `hcl:"enabled,optional"`
	Strict  *bool `hcl:"strict,optional"`
}

type hclResolve struct {
	MaxIncludeDepth  *int  `hcl:"max_include_depth,optional"`
	StrictReferences *bool `hcl:"strict_references,optional"`
}

type hclCache struct {
	TrackDependencies *bool `hcl:"track_dependencies,optional"`
}

// ParseHCL parses HCL data on top of Default. filename is used in
// diagnostics only.
func ParseHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclFile

	diags = gohcl.DecodeBody(file.Body, evalContext(os.Environ()), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	cfg := Default()
	parsed.apply(cfg)
	applyDefaults(cfg)

	return cfg, nil
}

// evalContext exposes the environment as the "env" object, so a file can
// say cache_dir = "${env.HOME}/.uigen_cache".
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))

	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}

		vars[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

func (f *hclFile) apply(cfg *Config) {
	set(&cfg.ProjectName, f.ProjectName)
	set(&cfg.LayoutsDir, f.LayoutsDir)
	set(&cfg.StylesDir, f.StylesDir)
	set(&cfg.ResourcesDir, f.ResourcesDir)
	set(&cfg.CacheDir, f.CacheDir)

	if f.Exclude != nil {
		cfg.Exclude = StringOrArray(f.Exclude)
	}

	for _, t := range f.Targets {
		target := Target{Name: t.Name}
		set(&target.OutputDir, t.OutputDir)
		cfg.Targets = append(cfg.Targets, target)
	}

	if v := f.Validation; v != nil {
		set(&cfg.Validation.Enabled, v.Enabled)
		set(&cfg.Validation.Strict, v.Strict)
	}

	if r := f.Resolve; r != nil {
		set(&cfg.Resolve.MaxIncludeDepth, r.MaxIncludeDepth)
		set(&cfg.Resolve.StrictReferences, r.StrictReferences)
	}

	if c := f.Cache; c != nil {
		set(&cfg.Cache.TrackDependencies, c.TrackDependencies)
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Package emit writes mapped documents for a target.
//
// Backend source syntax is not produced here. IRWriter stores the mapped
// form as YAML, one file per layout, which downstream generators consume.
package emit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"uigen/internal/config"
	"uigen/internal/ctxlog"
	"uigen/internal/mapper"
	"uigen/internal/resources"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// IRExt is the extension of files written by IRWriter.
const IRExt = ".yaml"

// ResourcesFile is the name of the resource table written per target.
const ResourcesFile = "resources" + IRExt

// Emitter writes one mapped document for a target.
type Emitter interface {
	Emit(ctx context.Context, target config.Target, doc *mapper.Document) error
}

// IRWriter writes documents to <output_dir>/<name>.yaml.
type IRWriter struct{}

var _ Emitter = IRWriter{}

// Emit implements Emitter.
func (IRWriter) Emit(ctx context.Context, target config.Target, doc *mapper.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := OutputPath(target, doc.Name)

	if err := writeYAML(path, doc); err != nil {
		return fmt.Errorf("emitting %s for %s: %w", doc.Name, target.Name, err)
	}

	ctxlog.FromContext(ctx).Debug("Wrote document", "target", target.Name, "path", path)

	return nil
}

// OutputPath returns where IRWriter puts the document called name.
// Slash-separated names keep their subdirectories.
func OutputPath(target config.Target, name string) string {
	return filepath.Join(target.OutputDir, filepath.FromSlash(name)+IRExt)
}

// resourceTables is the on-disk form of the extracted resources.
type resourceTables struct {
	Strings []resources.Entry `yaml:"strings"`
	Colors  []resources.Entry `yaml:"colors"`
}

// WriteResources writes the string and color tables of res into the
// target's output directory. Entries already in the file are carried
// forward unless res redefines them, so an incremental build keeps the
// resources of layouts it did not rebuild.
func WriteResources(ctx context.Context, target config.Target, res *resources.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(target.OutputDir, ResourcesFile)

	tables, err := readResources(path)
	if err != nil {
		return fmt.Errorf("writing resources for %s: %w", target.Name, err)
	}

	tables.Strings = mergeEntries(tables.Strings, res.Strings())
	tables.Colors = mergeEntries(tables.Colors, res.Colors())

	if err := writeYAML(path, tables); err != nil {
		return fmt.Errorf("writing resources for %s: %w", target.Name, err)
	}

	ctxlog.FromContext(ctx).Debug("Wrote resources", "target", target.Name, "path", path,
		"strings", len(tables.Strings), "colors", len(tables.Colors))

	return nil
}

func readResources(path string) (resourceTables, error) {
	var tables resourceTables

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tables, nil
		}

		return tables, err
	}

	if err := yaml.Unmarshal(data, &tables); err != nil {
		return tables, fmt.Errorf("parsing %s: %w", path, err)
	}

	return tables, nil
}

// mergeEntries overlays next on prev by name and sorts the result.
func mergeEntries(prev, next []resources.Entry) []resources.Entry {
	byName := make(map[string]string, len(prev)+len(next))
	for _, e := range prev {
		byName[e.Name] = e.Value
	}

	for _, e := range next {
		byName[e.Name] = e.Value
	}

	out := make([]resources.Entry, 0, len(byName))
	for name, value := range byName {
		out = append(out, resources.Entry{Name: name, Value: value})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

func writeYAML(path string, v any) error {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

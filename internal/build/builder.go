package build

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"uigen/internal/binding"
	"uigen/internal/cache"
	"uigen/internal/config"
	"uigen/internal/ctxlog"
	"uigen/internal/diagnostic"
	"uigen/internal/emit"
	"uigen/internal/fsutil"
	"uigen/internal/mapper"
	"uigen/internal/resolve"
	"uigen/internal/resources"
)

const layoutExt = ".json"

// Options tunes a Builder.
type Options struct {
	// CleanCache wipes the cache directory before the pass.
	CleanCache bool
	// Emitter writes mapped documents. Nil means emit.IRWriter.
	Emitter emit.Emitter
}

// Builder runs generation passes for one configuration.
type Builder struct {
	cfg      *config.Config
	opts     Options
	resolver *resolve.Resolver
	mappers  map[string]*mapper.Mapper
}

// New creates a Builder. cfg is expected to be validated.
func New(cfg *config.Config, opts Options) (*Builder, error) {
	if opts.Emitter == nil {
		opts.Emitter = emit.IRWriter{}
	}

	mappers := make(map[string]*mapper.Mapper, len(cfg.Targets))

	for _, target := range cfg.Targets {
		mode, err := target.Mode()
		if err != nil {
			return nil, err
		}

		mappers[target.Name] = mapper.New(mode)
	}

	src := resolve.NewDirSource(cfg.LayoutsDir, cfg.StylesDir)
	resolver := resolve.New(src, resolve.Options{
		MaxIncludeDepth:  cfg.Resolve.MaxIncludeDepth,
		StrictReferences: cfg.Resolve.StrictReferences,
	})

	return &Builder{cfg: cfg, opts: opts, resolver: resolver, mappers: mappers}, nil
}

// layoutFile is one discovered layout. name is the slash-separated path
// relative to the layouts directory without extension; key is its cache key.
type layoutFile struct {
	path string
	name string
	key  string
}

type styleFile struct {
	path string
	name string
}

// Run executes one pass. Per-file failures land in the report; the
// returned error is reserved for problems that stop the whole pass, and
// for cancellation, in which case the partial report is returned too.
func (b *Builder) Run(ctx context.Context) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	report := &Report{strict: b.cfg.Validation.Strict}

	store, err := b.openCache(ctx)
	if err != nil {
		return nil, err
	}

	files, err := b.discover(report)
	if err != nil {
		return nil, err
	}

	styles, err := b.discoverStyles()
	if err != nil {
		return nil, err
	}

	res := resources.NewContext()

	if b.cfg.ResourcesDir != "" {
		if err := res.LoadColors(filepath.Join(b.cfg.ResourcesDir, resources.ColorsFile)); err != nil {
			return nil, err
		}
	}

	// Discovered paths already include the layouts directory.
	snap := store.Snapshot("")
	stale := b.staleFiles(ctx, snap, files, styles)

	logger.Info("Starting build", "layouts", len(files), "stale", len(stale), "targets", len(b.cfg.Targets))

	var cancelled error

	for _, f := range files {
		if !stale[f.path] {
			report.UpToDate = append(report.UpToDate, f.name)
			continue
		}

		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}

		rec, err := b.buildFile(ctx, f, res, report)
		if err != nil {
			logger.Error("Failed to build layout", "layout", f.name, "error", err)
			report.Failed = append(report.Failed, FileError{File: f.name, Err: err})
			// A zero mtime keeps the file stale until it builds.
			store.Record(f.key, cache.Record{})

			continue
		}

		store.Record(f.key, rec)
		report.Built = append(report.Built, f.name)
	}

	// Style rows advance only on a complete pass.
	if cancelled == nil {
		b.recordStyles(ctx, store, styles)

		if len(report.Built) > 0 && res.Len() > 0 {
			for _, target := range b.cfg.Targets {
				if err := emit.WriteResources(ctx, target, res); err != nil {
					return report, err
				}
			}
		}
	}

	if err := store.Save(); err != nil {
		return report, fmt.Errorf("saving cache: %w", err)
	}

	logger.Info("Build finished", "summary", report.Summary())

	return report, cancelled
}

func (b *Builder) openCache(ctx context.Context) (*cache.Store, error) {
	logger := ctxlog.FromContext(ctx)
	dir := b.cfg.CacheDir

	store, err := cache.Open(dir)
	if errors.Is(err, cache.ErrCorrupt) {
		logger.Warn("Cache is corrupt, starting from scratch", "dir", dir, "error", err)

		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("removing corrupt cache: %w", err)
		}

		store, err = cache.Open(dir)
	}

	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	if b.opts.CleanCache {
		logger.Info("Cleaning cache", "dir", dir)

		if err := store.Clean(); err != nil {
			return nil, err
		}
	}

	return store, nil
}

func (b *Builder) discover(report *Report) ([]layoutFile, error) {
	dir := b.cfg.LayoutsDir

	paths, err := fsutil.FindFilesByExtension(dir, layoutExt)
	if err != nil {
		return nil, fmt.Errorf("discovering layouts in %s: %w", dir, err)
	}

	files := make([]layoutFile, 0, len(paths))

	for _, path := range paths {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, fmt.Errorf("discovering layouts in %s: %w", dir, err)
		}

		rel = filepath.ToSlash(rel)
		name := strings.TrimSuffix(rel, layoutExt)

		if b.cfg.Excluded(rel) {
			report.Excluded = append(report.Excluded, name)
			continue
		}

		files = append(files, layoutFile{path: path, name: name, key: cache.Key(path)})
	}

	return files, nil
}

func (b *Builder) discoverStyles() ([]styleFile, error) {
	if b.cfg.StylesDir == "" {
		return nil, nil
	}

	paths, err := fsutil.FindFilesByExtension(b.cfg.StylesDir, layoutExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("discovering styles in %s: %w", b.cfg.StylesDir, err)
	}

	styles := make([]styleFile, 0, len(paths))
	for _, path := range paths {
		styles = append(styles, styleFile{path: path, name: fsutil.BaseName(path)})
	}

	return styles, nil
}

// staleFiles returns the paths to rebuild: files newer than their record,
// plus, with dependency tracking, files whose recorded includes or styles
// reach a changed layout or style.
func (b *Builder) staleFiles(ctx context.Context, snap cache.Snapshot, files []layoutFile, styles []styleFile) map[string]bool {
	logger := ctxlog.FromContext(ctx)
	stale := make(map[string]bool)

	var changed []string

	for _, f := range files {
		needs, err := snap.NeedsUpdate(f.path)
		if err != nil {
			logger.Warn("Cannot check layout, rebuilding", "layout", f.name, "error", err)

			needs = true
		}

		if needs {
			stale[f.path] = true
			changed = append(changed, f.key)
		}
	}

	if !b.cfg.Cache.TrackDependencies {
		return stale
	}

	var changedStyles []string

	for _, st := range styles {
		if ok, err := snap.StyleChanged(st.name, st.path); err != nil || ok {
			changedStyles = append(changedStyles, st.name)
		}
	}

	dependents := make(map[string]bool)
	for _, key := range snap.Dependents(changed, changedStyles) {
		dependents[key] = true
	}

	for _, f := range files {
		if dependents[f.key] && !stale[f.path] {
			logger.Debug("Rebuilding dependent layout", "layout", f.name)

			stale[f.path] = true
		}
	}

	return stale
}

func (b *Builder) recordStyles(ctx context.Context, store *cache.Store, styles []styleFile) {
	for _, st := range styles {
		mtime, err := cache.Mtime(st.path)
		if err != nil {
			ctxlog.FromContext(ctx).Warn("Cannot record style", "style", st.name, "error", err)
			continue
		}

		store.Record(cache.StyleKey(st.name), cache.Record{Mtime: mtime})
	}
}

// buildFile runs the pipeline for one layout and returns its cache row.
func (b *Builder) buildFile(ctx context.Context, f layoutFile, res *resources.Context, report *Report) (cache.Record, error) {
	logger := ctxlog.FromContext(ctx).With("layout", f.name)

	// Taken before reading so an edit made during the pass triggers a
	// rebuild next time.
	mtime, err := cache.Mtime(f.path)
	if err != nil {
		return cache.Record{}, err
	}

	result, err := b.resolver.Resolve(ctx, f.name)
	if err != nil {
		return cache.Record{}, err
	}

	var diags diagnostic.Diagnostics

	for _, ref := range result.Skipped {
		diags.AddInfo(diagnostic.CodeSkippedReference,
			fmt.Sprintf("missing %s %q skipped", ref.Kind, ref.Name), "", ref.Path)
	}

	if b.cfg.Validation.Enabled {
		diags.Merge(*binding.Check(result.Root))
	}

	diags.SetFile(f.name)

	for _, w := range diags.Warnings {
		logger.Warn("Binding warning", "warning", w.String())
	}

	report.Warnings.Merge(diags)

	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("Resolved layout", "includes", result.Includes, "styles", result.Styles,
			"tree", spew.Sdump(result.Root))
	}

	report.Resources += res.Extract(f.key, result.Root)

	for _, target := range b.cfg.Targets {
		doc := b.mappers[target.Name].MapDocument(f.name, result.Root)

		if err := b.opts.Emitter.Emit(ctx, target, doc); err != nil {
			return cache.Record{}, err
		}
	}

	logger.Debug("Built layout", "targets", len(b.cfg.Targets))

	return cache.Record{Mtime: mtime, Includes: result.Includes, Styles: result.Styles}, nil
}

package resolve

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"uigen/internal/component"
	"uigen/internal/ctxlog"
)

// Errors reported by the resolver.
var (
	ErrNotFound          = errors.New("document not found")
	ErrMalformedDocument = errors.New("malformed document")
	ErrUnknownReference  = errors.New("unknown reference")
	ErrIncludeCycle      = errors.New("include cycle")
	ErrIncludeDepth      = errors.New("include depth exceeded")
)

// DefaultMaxIncludeDepth bounds include nesting when Options leaves it unset.
const DefaultMaxIncludeDepth = 16

// Options configures a Resolver.
type Options struct {
	// MaxIncludeDepth limits include nesting (0 = DefaultMaxIncludeDepth).
	MaxIncludeDepth int
	// StrictReferences fails on a missing include or style instead of skipping it.
	StrictReferences bool
}

// ReferenceKind tells includes and styles apart in skip reports.
type ReferenceKind string

const (
	RefInclude ReferenceKind = "include"
	RefStyle   ReferenceKind = "style"
)

// Reference is an include or style name that could not be loaded.
type Reference struct {
	Kind ReferenceKind
	Name string
	Path string
}

// Result is a resolved layout together with what it depended on.
type Result struct {
	Root *component.Node
	// Includes lists included layout names in first-seen order.
	Includes []string
	// Styles lists referenced style names in first-seen order.
	Styles []string
	// Skipped lists references that were missing and ignored.
	Skipped []Reference
}

// Resolver splices includes and styles into layouts loaded from a Source.
type Resolver struct {
	src  Source
	opts Options
}

// New creates a Resolver.
func New(src Source, opts Options) *Resolver {
	if opts.MaxIncludeDepth <= 0 {
		opts.MaxIncludeDepth = DefaultMaxIncludeDepth
	}

	return &Resolver{src: src, opts: opts}
}

// Resolve loads the named layout and resolves it.
func (r *Resolver) Resolve(ctx context.Context, layoutName string) (*Result, error) {
	root, err := r.src.Layout(layoutName)
	if err != nil {
		return nil, fmt.Errorf("resolving layout %q: %w", layoutName, err)
	}

	// The layout itself counts as active so a self-include is a cycle.
	return r.resolve(ctx, root, []string{layoutName})
}

// ResolveNode resolves an in-memory tree in place and returns it.
func (r *Resolver) ResolveNode(ctx context.Context, root *component.Node) (*Result, error) {
	return r.resolve(ctx, root, nil)
}

func (r *Resolver) resolve(ctx context.Context, root *component.Node, active []string) (*Result, error) {
	w := &walker{
		ctx:      ctx,
		r:        r,
		active:   active,
		base:     len(active),
		includes: newOrderedSet(),
		styles:   newOrderedSet(),
	}

	if err := w.node(root, component.Root()); err != nil {
		return nil, err
	}

	return &Result{
		Root:     root,
		Includes: w.includes.items,
		Styles:   w.styles.items,
		Skipped:  w.skipped,
	}, nil
}

type walker struct {
	ctx      context.Context
	r        *Resolver
	active   []string // include names being expanded on the current path
	base     int      // entries of active that are not includes (the root layout)
	includes *orderedSet
	styles   *orderedSet
	skipped  []Reference
}

func (w *walker) node(n *component.Node, path component.Path) error {
	pushed := 0
	defer func() { w.active = w.active[:len(w.active)-pushed] }()

	// An included layout may itself start with an include; keep splicing
	// until the node is include-free.
	for n.Has(component.KeyInclude) {
		name, ok := n.GetString(component.KeyInclude)
		n.Delete(component.KeyInclude)

		if !ok || name == "" {
			continue
		}

		if slices.Contains(w.active, name) {
			return fmt.Errorf("%w: %s -> %s", ErrIncludeCycle, strings.Join(w.active, " -> "), name)
		}

		if len(w.active)-w.base >= w.r.opts.MaxIncludeDepth {
			return fmt.Errorf("%w: %q at depth %d", ErrIncludeDepth, name, w.r.opts.MaxIncludeDepth)
		}

		spliced, err := w.include(n, name, path)
		if err != nil {
			return err
		}

		if spliced {
			w.active = append(w.active, name)
			pushed++
		}
	}

	if n.Has(component.KeyStyle) {
		if err := w.applyStyles(n, path, nil); err != nil {
			return err
		}
	}

	component.NormalizeChildren(n)

	for _, key := range n.Keys() {
		switch key {
		case component.KeyChild, component.KeyChildren:
			if err := w.sequence(n, key, path.Field(key)); err != nil {
				return err
			}
		case component.KeySections:
			if err := w.sections(n, path.Field(key)); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *walker) sequence(n *component.Node, key string, path component.Path) error {
	v, _ := n.Get(key)

	items, ok := v.([]any)
	if !ok {
		return nil
	}

	for i, item := range items {
		child, ok := item.(*component.Node)
		if !ok {
			continue
		}

		if err := w.node(child, path.Index(i)); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) sections(n *component.Node, path component.Path) error {
	v, _ := n.Get(component.KeySections)

	items, ok := v.([]any)
	if !ok {
		return nil
	}

	for i, item := range items {
		section, ok := item.(*component.Node)
		if !ok {
			continue
		}

		for _, slot := range component.SectionSlots {
			sub, ok := section.GetNode(slot)
			if !ok {
				continue
			}

			if err := w.node(sub, path.Index(i).Field(slot)); err != nil {
				return err
			}
		}
	}

	return nil
}

// include splices the named layout into n. It reports false when the
// reference was skipped.
func (w *walker) include(n *component.Node, name string, path component.Path) (bool, error) {
	w.includes.add(name)

	loaded, err := w.r.src.Layout(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, w.skip(RefInclude, name, path)
		}

		return false, fmt.Errorf("including %q at %q: %w", name, path.String(), err)
	}

	// Values passed to the included layout fill its top level.
	for _, key := range []string{component.KeyData, component.KeySharedData} {
		values, ok := n.GetNode(key)
		if !ok {
			continue
		}

		loaded.Fill(values)
		n.Delete(key)
	}

	n.Fill(loaded)

	return true, nil
}

// applyStyles applies every style named by n's style key, strongest first,
// and removes the key. seen guards chained style documents against cycles.
func (w *walker) applyStyles(n *component.Node, path component.Path, seen []string) error {
	v, _ := n.Get(component.KeyStyle)
	n.Delete(component.KeyStyle)

	for _, name := range styleNames(v) {
		if slices.Contains(seen, name) {
			continue
		}

		w.styles.add(name)

		doc, err := w.r.src.Style(name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				if err := w.skip(RefStyle, name, path); err != nil {
					return err
				}

				continue
			}

			return fmt.Errorf("applying style %q at %q: %w", name, path.String(), err)
		}

		if doc.Has(component.KeyStyle) {
			if err := w.applyStyles(doc, path, append(slices.Clone(seen), name)); err != nil {
				return err
			}
		}

		n.Fill(doc, component.KeyStyle)
	}

	return nil
}

func (w *walker) skip(kind ReferenceKind, name string, path component.Path) error {
	if w.r.opts.StrictReferences {
		return fmt.Errorf("%w: %s %q at %q", ErrUnknownReference, kind, name, path.String())
	}

	w.skipped = append(w.skipped, Reference{Kind: kind, Name: name, Path: path.String()})

	ctxlog.FromContext(w.ctx).Warn("Skipping missing reference",
		"kind", string(kind), "name", name, "path", path.String())

	return nil
}

// styleNames accepts a single name or a sequence of names.
func styleNames(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}

		return []string{t}
	case []any:
		out := make([]string, 0, len(t))

		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}

	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

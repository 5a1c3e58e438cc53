// Package resources pulls literal strings and colors out of resolved trees
// into shared tables, replacing them with resource references.
//
// A Context is created per build and passed down explicitly; nothing is
// shared between builds.
package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"uigen/internal/component"
	"uigen/internal/match"
)

// ColorsFile is the optional seed document of named colors in the
// resources directory.
const ColorsFile = "colors.json"

// Reference prefixes.
const (
	StringRef = "@string/"
	ColorRef  = "@color/"
)

var (
	textKeys = map[string]bool{
		"text":               true,
		"title":              true,
		"hint":               true,
		"placeholder":        true,
		"contentDescription": true,
		"accessibilityLabel": true,
	}
	colorKeys = map[string]bool{
		"fontColor":       true,
		"textColor":       true,
		"background":      true,
		"backgroundColor": true,
		"tint":            true,
		"tintColor":       true,
		"borderColor":     true,
	}
	hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// Entry is one named resource.
type Entry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Context holds the string and color tables of one build.
type Context struct {
	strings map[string]string
	colors  map[string]string
	byHex   map[string]string
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{
		strings: make(map[string]string),
		colors:  make(map[string]string),
		byHex:   make(map[string]string),
	}
}

// LoadColors seeds the color table from a name -> hex document. A missing
// file is not an error.
func (c *Context) LoadColors(path string) error {
	doc, err := component.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("loading colors: %w", err)
	}

	for _, name := range doc.Keys() {
		hex, ok := doc.GetString(name)
		if !ok || !hexColor.MatchString(hex) {
			return fmt.Errorf("loading colors: %q is not a hex color", name)
		}

		c.AddColor(name, hex)
	}

	return nil
}

// AddColor registers a named color. The first name registered for a hex
// value is the one reused by Extract.
func (c *Context) AddColor(name, hex string) {
	hex = normalizeHex(hex)
	c.colors[name] = hex

	if _, ok := c.byHex[hex]; !ok {
		c.byHex[hex] = name
	}
}

// Strings returns the string table sorted by name.
func (c *Context) Strings() []Entry {
	return entries(c.strings)
}

// Colors returns the color table sorted by name.
func (c *Context) Colors() []Entry {
	return entries(c.colors)
}

// Len returns the total number of entries.
func (c *Context) Len() int {
	return len(c.strings) + len(c.colors)
}

func entries(m map[string]string) []Entry {
	out := make([]Entry, 0, len(m))
	for k, v := range m {
		out = append(out, Entry{Name: k, Value: v})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Extract replaces literal text under text keys with @string references
// and hex colors under color keys with @color references, registering the
// values in c. Bindings and existing references are left alone. It returns
// the number of values replaced.
func (c *Context) Extract(layout string, tree *component.Node) int {
	count := 0

	_ = component.Walk(tree, func(n, _ *component.Node, _ component.Path) error {
		id, _ := n.GetString(component.KeyID)

		for _, key := range n.Keys() {
			s, ok := n.GetString(key)
			if !ok || s == "" || component.IsBinding(s) || strings.HasPrefix(s, "@") {
				continue
			}

			switch {
			case textKeys[key]:
				n.Set(key, StringRef+c.addString(resourceName(layout, id, key), s))
				count++
			case colorKeys[key] && hexColor.MatchString(s):
				n.Set(key, ColorRef+c.addColorFor(resourceName(layout, id, key), s))
				count++
			}
		}

		return nil
	})

	return count
}

// addString registers value under base, or base_2, base_3... when base is
// taken by a different value.
func (c *Context) addString(base, value string) string {
	name := base

	for i := 2; ; i++ {
		have, ok := c.strings[name]
		if !ok {
			c.strings[name] = value
			return name
		}

		if have == value {
			return name
		}

		name = base + "_" + strconv.Itoa(i)
	}
}

func (c *Context) addColorFor(base, hex string) string {
	hex = normalizeHex(hex)
	if name, ok := c.byHex[hex]; ok {
		return name
	}

	name := base
	for i := 2; ; i++ {
		if _, ok := c.colors[name]; !ok {
			break
		}

		name = base + "_" + strconv.Itoa(i)
	}

	c.AddColor(name, hex)

	return name
}

func normalizeHex(hex string) string {
	return strings.ToUpper(strings.TrimSpace(hex))
}

// resourceName builds a snake_case name from the layout, the component id
// (if any) and the attribute key.
func resourceName(parts ...string) string {
	var tokens []string

	for _, p := range parts {
		for _, t := range match.TokenizeIdent(p) {
			t = strings.Map(func(r rune) rune {
				if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
					return r
				}

				return '_'
			}, t)

			if t != "" {
				tokens = append(tokens, t)
			}
		}
	}

	return strings.Join(tokens, "_")
}

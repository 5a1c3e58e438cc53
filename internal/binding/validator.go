package binding

import (
	"fmt"

	"uigen/internal/component"
	"uigen/internal/diagnostic"
	"uigen/internal/match"
)

// structural keys are walked by component.Walk or hold declarations.
var structural = map[string]bool{
	component.KeyType:     true,
	component.KeyChild:    true,
	component.KeyChildren: true,
	component.KeySections: true,
	component.KeyData:     true,
}

// Namespace returns every declared field name in tree, in first-seen order.
func Namespace(tree *component.Node) []string {
	var names []string

	seen := make(map[string]bool)

	for _, f := range component.DeclaredFields(tree) {
		if !seen[f.Name] {
			seen[f.Name] = true
			names = append(names, f.Name)
		}
	}

	return names
}

// Validate returns the formatted warnings for every binding in tree.
func Validate(tree *component.Node) []string {
	return Check(tree).WarningMessages()
}

// Check validates every binding in tree and returns the diagnostics.
func Check(tree *component.Node) *diagnostic.Diagnostics {
	c := &checker{
		diags:    &diagnostic.Diagnostics{},
		names:    Namespace(tree),
		declared: make(map[string]bool),
	}

	for _, name := range c.names {
		c.declared[name] = true
	}

	_ = component.Walk(tree, func(n, _ *component.Node, path component.Path) error {
		for _, key := range n.Keys() {
			if structural[key] {
				continue
			}

			v, _ := n.Get(key)
			c.value(n.Type(), key, path.Field(key), v)
		}

		return nil
	})

	return c.diags
}

type checker struct {
	diags    *diagnostic.Diagnostics
	names    []string
	declared map[string]bool
}

// value checks v and any binding nested in maps or sequences under it.
// attr is the top-level attribute key, used for type suggestions.
func (c *checker) value(componentType, attr string, path component.Path, v any) {
	switch t := v.(type) {
	case string:
		if body, ok := component.BindingBody(t); ok {
			c.expression(componentType, attr, path, t, body)
		}
	case *component.Node:
		for _, key := range t.Keys() {
			nested, _ := t.Get(key)
			c.value(componentType, attr, path.Field(key), nested)
		}
	case []any:
		for i, item := range t {
			c.value(componentType, attr, path.Index(i), item)
		}
	}
}

func (c *checker) expression(componentType, attr string, path component.Path, raw, body string) {
	where := path.String()

	for _, r := range Shapes(body) {
		c.diags.AddWarning(diagnostic.CodeForbiddenExpression,
			fmt.Sprintf("%s in binding %s", r.Message, raw),
			componentType, where)
	}

	for _, ident := range Identifiers(body) {
		if c.declared[ident] {
			continue
		}

		suggested := SuggestType(ident, attr)
		suggestions := []string{
			fmt.Sprintf(`declare {"name": %q, "class": %q} in data`, ident, suggested),
		}

		if near, ok := match.Closest(ident, c.names, match.DefaultThreshold); ok {
			suggestions = append(suggestions, fmt.Sprintf("did you mean %q?", near))
		}

		c.diags.AddWarning(diagnostic.CodeUndeclaredBinding,
			fmt.Sprintf("undeclared binding variable %q", ident),
			componentType, where, suggestions...)
	}
}

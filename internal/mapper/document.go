package mapper

import (
	"uigen/internal/component"
)

// Field is a mapped data declaration.
type Field struct {
	Name     string `yaml:"name"`
	Declared string `yaml:"declared,omitempty"`
	Type     string `yaml:"type"`
	Default  string `yaml:"default,omitempty"`
}

// Document is the mapped form of one layout, ready for an emitter.
type Document struct {
	Name   string  `yaml:"name"`
	Mode   Mode    `yaml:"mode"`
	Fields []Field `yaml:"fields,omitempty"`
	Root   *Node   `yaml:"root"`
}

// MapDocument maps a resolved layout. Fields are collected from every data
// declaration in the tree; the first declaration of a name wins.
func (m *Mapper) MapDocument(name string, root *component.Node) *Document {
	doc := &Document{Name: name, Mode: m.mode}

	seen := make(map[string]bool)

	for _, f := range component.DeclaredFields(root) {
		if seen[f.Name] {
			continue
		}

		seen[f.Name] = true

		declared := f.Type
		if declared == "" {
			declared = "Any"
		}

		doc.Fields = append(doc.Fields, Field{
			Name:     f.Name,
			Declared: f.Type,
			Type:     MapType(declared, m.mode),
			Default:  f.Default,
		})
	}

	doc.Root = m.MapNode(root, "")

	return doc
}

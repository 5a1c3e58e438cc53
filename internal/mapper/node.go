package mapper

import (
	"strings"

	"uigen/internal/common"
	"uigen/internal/component"
)

// Node is a mapped component.
type Node struct {
	Type       string      `yaml:"type"`
	Widget     string      `yaml:"widget"`
	Attributes []Attribute `yaml:"attributes,omitempty"`
	Unmapped   []string    `yaml:"unmapped,omitempty"`
	Children   []*Node     `yaml:"children,omitempty"`
	Sections   []Section   `yaml:"sections,omitempty"`
}

// Section holds the mapped slots of one sections entry.
type Section struct {
	Header *Node `yaml:"header,omitempty"`
	Footer *Node `yaml:"footer,omitempty"`
	Cell   *Node `yaml:"cell,omitempty"`
}

// Attribute returns the value of the attribute with the given qualified name.
func (n *Node) Attribute(qualified string) (string, bool) {
	for _, a := range n.Attributes {
		if a.QualifiedName() == qualified {
			return a.Value, true
		}
	}

	return "", false
}

// flagAttributes are merged into one "|"-joined union per node.
var flagAttributes = map[string]bool{
	NSAndroid + ":layout_gravity": true,
	NSAndroid + ":gravity":        true,
}

// Mapper maps resolved trees for one target mode.
type Mapper struct {
	mode Mode
}

// New creates a Mapper for mode.
func New(mode Mode) *Mapper {
	return &Mapper{mode: mode}
}

// Mode returns the target mode.
func (m *Mapper) Mode() Mode {
	return m.mode
}

// MapNode maps n and its subtree. parentType is the type of the enclosing
// component, empty for a root.
func (m *Mapper) MapNode(n *component.Node, parentType string) *Node {
	typ := n.Type()
	family := FamilyOf(parentType)
	widget, implicit := widgetFor(typ, m.mode)

	out := &Node{Type: typ, Widget: widget}

	var attrs []Attribute

	for _, key := range n.Keys() {
		if IsReserved(key) {
			continue
		}

		v, _ := n.Get(key)

		mapped, _, ok := Dispatch(Input{
			Key:           key,
			Value:         v,
			ComponentType: typ,
			ParentType:    parentType,
			Family:        family,
		})
		if !ok {
			out.Unmapped = append(out.Unmapped, key)
			continue
		}

		attrs = append(attrs, mapped...)
	}

	attrs = append(attrs, implicit...)
	attrs = mergeFlags(attrs)

	if family == FamilyAnchor {
		attrs = addDefaultAnchors(attrs)
	}

	out.Attributes = dedupe(attrs)

	for _, child := range component.Children(n) {
		out.Children = append(out.Children, m.MapNode(child, typ))
	}

	out.Sections = m.mapSections(n, typ)

	return out
}

func (m *Mapper) mapSections(n *component.Node, typ string) []Section {
	v, ok := n.Get(component.KeySections)
	if !ok {
		return nil
	}

	items, _ := v.([]any)

	var out []Section

	for _, item := range items {
		sec, ok := item.(*component.Node)
		if !ok {
			continue
		}

		var s Section

		if h, ok := sec.GetNode("header"); ok {
			s.Header = m.MapNode(h, typ)
		}

		if f, ok := sec.GetNode("footer"); ok {
			s.Footer = m.MapNode(f, typ)
		}

		if c, ok := sec.GetNode("cell"); ok {
			s.Cell = m.MapNode(c, typ)
		}

		out = append(out, s)
	}

	return out
}

// mergeFlags folds every occurrence of a flag attribute into the first one,
// keeping source order and dropping repeated flags. Binding values are left
// alone.
func mergeFlags(attrs []Attribute) []Attribute {
	out := make([]Attribute, 0, len(attrs))
	at := make(map[string]int)

	for _, a := range attrs {
		q := a.QualifiedName()
		if !flagAttributes[q] || component.IsBinding(a.Value) {
			out = append(out, a)
			continue
		}

		parts := splitFlags(a.Value)

		if i, ok := at[q]; ok {
			out[i].Value = strings.Join(common.AppendUnique(splitFlags(out[i].Value), parts...), "|")
			continue
		}

		at[q] = len(out)
		a.Value = strings.Join(common.AppendUnique([]string(nil), parts...), "|")
		out = append(out, a)
	}

	return out
}

func splitFlags(s string) []string {
	var out []string

	for p := range strings.SplitSeq(s, "|") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

const constraintPrefix = "layout_constraint"

// addDefaultAnchors pins an axis with no constraint to the parent's start
// or top edge.
func addDefaultAnchors(attrs []Attribute) []Attribute {
	var horizontal, vertical bool

	for _, a := range attrs {
		if !isConstraint(a) {
			continue
		}

		side, _, _ := strings.Cut(strings.TrimPrefix(a.Name, constraintPrefix), "_")

		switch side {
		case "Start", "End", "Left", "Right":
			horizontal = true
		case "Top", "Bottom", "Baseline":
			vertical = true
		}
	}

	if !horizontal {
		attrs = append(attrs, app(constraintPrefix+"Start_toStartOf", "parent"))
	}

	if !vertical {
		attrs = append(attrs, app(constraintPrefix+"Top_toTopOf", "parent"))
	}

	return attrs
}

// dedupe keeps the first attribute per qualified name. A constraint
// anchored to a sibling replaces one anchored to the parent in place.
func dedupe(attrs []Attribute) []Attribute {
	at := make(map[string]int, len(attrs))
	out := make([]Attribute, 0, len(attrs))

	for _, a := range attrs {
		q := a.QualifiedName()
		if i, ok := at[q]; ok {
			if isConstraint(a) && out[i].Value == "parent" && a.Value != "parent" {
				out[i] = a
			}

			continue
		}

		at[q] = len(out)
		out = append(out, a)
	}

	return out
}

func isConstraint(a Attribute) bool {
	return a.Namespace == NSApp && strings.HasPrefix(a.Name, constraintPrefix)
}

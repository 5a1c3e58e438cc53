package component

// Field is one entry of a data declaration array.
type Field struct {
	Name    string
	Type    string
	Default string
}

// Fields decodes the data declarations on n. Entries without a name are
// ignored, as is a data value that is not a sequence (include value maps).
func Fields(n *Node) []Field {
	v, ok := n.Get(KeyData)
	if !ok {
		return nil
	}

	items, ok := v.([]any)
	if !ok {
		return nil
	}

	var out []Field

	for _, item := range items {
		decl, ok := item.(*Node)
		if !ok {
			continue
		}

		name, _ := decl.GetString("name")
		if name == "" {
			continue
		}

		typ, ok := decl.GetString("class")
		if !ok {
			typ, _ = decl.GetString("type")
		}

		f := Field{Name: name, Type: typ}

		if def, ok := decl.Get("defaultValue"); ok {
			f.Default = Literal(def)
		}

		out = append(out, f)
	}

	return out
}

// DeclaredFields collects every field declaration reachable from root.
func DeclaredFields(root *Node) []Field {
	var out []Field

	_ = Walk(root, func(n, _ *Node, _ Path) error {
		out = append(out, Fields(n)...)
		return nil
	})

	return out
}

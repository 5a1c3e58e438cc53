package component

import "errors"

// SkipChildren can be returned by a WalkFunc to skip the subtree of the
// current node.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every node in a tree. parent is nil for the root.
type WalkFunc func(n, parent *Node, path Path) error

// Walk visits root and its nested component nodes depth-first in source
// order: child/children sequences and sections[*].{header,footer,cell}.
func Walk(root *Node, fn WalkFunc) error {
	return walk(root, nil, Root(), fn)
}

func walk(n, parent *Node, path Path, fn WalkFunc) error {
	if n == nil {
		return nil
	}

	if err := fn(n, parent, path); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}

		return err
	}

	for _, key := range n.Keys() {
		switch key {
		case KeyChild, KeyChildren:
			v, _ := n.Get(key)
			for _, child := range asNodes(v) {
				if err := walk(child.node, n, path.Field(key).Index(child.index), fn); err != nil {
					return err
				}
			}
		case KeySections:
			v, _ := n.Get(key)

			items, _ := v.([]any)
			for i, item := range items {
				section, ok := item.(*Node)
				if !ok {
					continue
				}

				for _, slot := range SectionSlots {
					sub, ok := section.GetNode(slot)
					if !ok {
						continue
					}

					if err := walk(sub, n, path.Field(key).Index(i).Field(slot), fn); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

type indexedNode struct {
	node  *Node
	index int
}

// asNodes returns the nodes held by a child/children value together with
// their position in the sequence. Non-node items are skipped.
func asNodes(v any) []indexedNode {
	switch t := v.(type) {
	case *Node:
		return []indexedNode{{node: t, index: 0}}
	case []any:
		out := make([]indexedNode, 0, len(t))

		for i, item := range t {
			if child, ok := item.(*Node); ok {
				out = append(out, indexedNode{node: child, index: i})
			}
		}

		return out
	default:
		return nil
	}
}

// Children returns the nested nodes of n under child and children, in
// source order.
func Children(n *Node) []*Node {
	var out []*Node

	for _, key := range []string{KeyChild, KeyChildren} {
		v, ok := n.Get(key)
		if !ok {
			continue
		}

		for _, c := range asNodes(v) {
			out = append(out, c.node)
		}
	}

	return out
}

// NormalizeChildren rewrites a lone child node into a one-element sequence.
func NormalizeChildren(n *Node) {
	for _, key := range []string{KeyChild, KeyChildren} {
		if child, ok := n.GetNode(key); ok {
			n.Set(key, []any{child})
		}
	}
}

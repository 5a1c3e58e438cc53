package component

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Reserved attribute keys.
const (
	KeyType       = "type"
	KeyChild      = "child"
	KeyChildren   = "children"
	KeySections   = "sections"
	KeyData       = "data"
	KeySharedData = "shared_data"
	KeyStyle      = "style"
	KeyInclude    = "include"
	KeyID         = "id"
)

// Section slot keys.
var SectionSlots = []string{"header", "footer", "cell"}

// Node is an ordered attribute map.
type Node struct {
	keys   []string
	values map[string]any
}

// New creates an empty node.
func New() *Node {
	return &Node{values: make(map[string]any)}
}

// FromPairs builds a node from alternating key/value arguments.
// It panics on an odd argument count or a non-string key.
func FromPairs(kv ...any) *Node {
	if len(kv)%2 != 0 {
		panic("component.FromPairs: odd number of arguments")
	}

	n := New()

	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("component.FromPairs: key must be a string")
		}

		n.Set(key, kv[i+1])
	}

	return n
}

// Len returns the number of attributes.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}

	return len(n.keys)
}

// Keys returns the attribute names in source order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}

	return slices.Clone(n.keys)
}

// Has reports whether the key is present.
func (n *Node) Has(key string) bool {
	if n == nil {
		return false
	}

	_, ok := n.values[key]

	return ok
}

// Get returns the value stored under key.
func (n *Node) Get(key string) (any, bool) {
	if n == nil {
		return nil, false
	}

	v, ok := n.values[key]

	return v, ok
}

// GetString returns the value under key when it is a string.
func (n *Node) GetString(key string) (string, bool) {
	v, ok := n.Get(key)
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

// GetNode returns the value under key when it is a nested node.
func (n *Node) GetNode(key string) (*Node, bool) {
	v, ok := n.Get(key)
	if !ok {
		return nil, false
	}

	child, ok := v.(*Node)

	return child, ok
}

// Type returns the component type, or "" when absent.
func (n *Node) Type() string {
	s, _ := n.GetString(KeyType)
	return s
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (n *Node) Set(key string, value any) {
	if n.values == nil {
		n.values = make(map[string]any)
	}

	if _, ok := n.values[key]; !ok {
		n.keys = append(n.keys, key)
	}

	n.values[key] = value
}

// SetIfAbsent stores value only when key is not present yet and reports
// whether it did.
func (n *Node) SetIfAbsent(key string, value any) bool {
	if n.Has(key) {
		return false
	}

	n.Set(key, value)

	return true
}

// Delete removes key.
func (n *Node) Delete(key string) {
	if !n.Has(key) {
		return
	}

	delete(n.values, key)

	n.keys = slices.DeleteFunc(n.keys, func(k string) bool { return k == key })
}

// Fill copies every attribute of layer into n with set-if-absent semantics,
// skipping the listed keys. Attributes already present on n always win.
func (n *Node) Fill(layer *Node, skip ...string) {
	if layer == nil {
		return
	}

	for _, key := range layer.keys {
		if slices.Contains(skip, key) {
			continue
		}

		n.SetIfAbsent(key, CloneValue(layer.values[key]))
	}
}

// Clone returns a deep copy.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	out := &Node{
		keys:   slices.Clone(n.keys),
		values: make(map[string]any, len(n.values)),
	}

	for k, v := range n.values {
		out.values[k] = CloneValue(v)
	}

	return out
}

// CloneValue deep-copies a node value.
func CloneValue(v any) any {
	switch t := v.(type) {
	case *Node:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = CloneValue(item)
		}

		return out
	default:
		return v
	}
}

// Equal reports whether two nodes hold the same attributes in the same order.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n.Len() == 0 && other.Len() == 0
	}

	if !slices.Equal(n.keys, other.keys) {
		return false
	}

	for _, k := range n.keys {
		if !valueEqual(n.values[k], other.values[k]) {
			return false
		}
	}

	return true
}

func valueEqual(a, b any) bool {
	switch x := a.(type) {
	case *Node:
		y, ok := b.(*Node)
		return ok && x.Equal(y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}

		for i := range x {
			if !valueEqual(x[i], y[i]) {
				return false
			}
		}

		return true
	default:
		return a == b
	}
}

// MarshalJSON encodes the node as a JSON object in key order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := json.Marshal(n.values[k])
		if err != nil {
			return nil, err
		}

		buf.Write(vb)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// GoString renders the node as JSON, used in test failure output.
func (n *Node) GoString() string {
	if n == nil {
		return "<nil>"
	}

	b, err := json.Marshal(n)
	if err != nil {
		return "<invalid node>"
	}

	return string(b)
}

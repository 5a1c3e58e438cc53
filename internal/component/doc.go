// Package component provides the ordered ComponentNode model shared by every
// stage of the layout pipeline.
//
// A layout document is a JSON object describing one screen. Each object is
// decoded into a Node that keeps the source key order, because several later
// stages depend on it (gravity unions are joined in source order, emitted
// output must be deterministic).
//
// # Reserved keys
//
//   - type: the component type ("View", "Label", "Button", ...)
//   - child / children: nested nodes (a lone node is normalized to a sequence)
//   - sections: ordered slots, each holding header / footer / cell sub-nodes
//   - data: ordered field declarations, or on an include node a value map
//   - shared_data: value map passed to an included layout
//   - style: one style name or an ordered sequence of names
//   - include: name of a layout to splice in
//
// # Values
//
// A value is one of: nil, bool, int64, float64, string, *Node or []any.
// Strings of the form "@{expr}" are binding expressions.
package component

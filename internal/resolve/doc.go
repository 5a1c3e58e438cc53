// Package resolve turns a named layout into one self-contained component
// tree by splicing includes and applying styles.
//
// # Precedence
//
// Every merge is a set-if-absent layering: a key already present on the
// receiving node is never overwritten. For a node
//
//	{"include": "card", "style": ["primary", "rounded"], "title": "A"}
//
// the effective attribute sources, strongest first, are:
//  1. the node's own keys ("title")
//  2. keys of the included "card" layout
//  3. keys of style "primary"
//  4. keys of style "rounded"
//
// An include node may pass values to the included layout through a "data"
// or "shared_data" map; those are applied to the loaded layout's top level
// with the same set-if-absent rule before it is spliced in.
//
// # References
//
// A missing include or style name is skipped and reported through
// Result.Skipped unless Options.StrictReferences is set. Include cycles fail
// the layout with ErrIncludeCycle; MaxIncludeDepth bounds nesting.
package resolve

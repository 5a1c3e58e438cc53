// Package binding checks "@{...}" binding expressions in resolved trees.
//
// Validation runs two passes. The first collects every name declared in a
// data array anywhere in the tree into one flat namespace. The second
// visits every binding, reports each forbidden expression shape it matches
// (logic that belongs in a view model, not a layout) and reports bare
// identifiers that are not declared, with a suggested type for the missing
// declaration.
//
// Validation never fails; results are diagnostics only.
package binding

// Package mapper converts resolved component trees into the target
// intermediate form.
//
// Attribute mapping is an ordered rule table (dimension, alignment, text,
// visual, input, generic fallback); the first rule that claims a key wins.
// Alignment depends on the layout family of the parent: flow parents get a
// gravity flag union, anchor parents get paired constraint anchors and
// relative parents get parent-relative boolean flags.
//
// Declared data types are mapped with MapType, which parses the type
// expression grammar from package typeexpr. Callback types always map to
// their optional form.
package mapper

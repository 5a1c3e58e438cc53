// Package diagnostic provides structured warnings and errors for layout
// compilation.
//
// A Diagnostic names the component type and the dotted/bracketed attribute
// path it concerns, a stable Code, and optional suggestions such as a
// declared type to add or a similarly named field.
package diagnostic

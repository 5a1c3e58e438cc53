// Package cli parses command-line arguments, validates user input and maps
// outcomes to process exit codes. It turns flags into build options and
// overrides on top of the project configuration.
package cli

// Package config loads the project configuration document.
//
// Three encodings are accepted, picked by file extension:
//
//	uigen.yaml, uigen.yml   YAML
//	uigen.json              JSON (decoded by the YAML parser)
//	uigen.hcl               HCL, with an "env" object exposing the process environment
//
// Relative directories are resolved against the directory holding the
// configuration file. Missing settings take the values of Default.
package config

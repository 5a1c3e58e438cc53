package component

import "strings"

// Binding delimiters.
const (
	BindingOpen  = "@{"
	BindingClose = "}"
)

// IsBinding reports whether s is a binding expression.
func IsBinding(s string) bool {
	_, ok := BindingBody(s)
	return ok
}

// BindingBody returns the trimmed expression inside "@{...}".
func BindingBody(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(BindingOpen)+len(BindingClose) {
		return "", false
	}

	if !strings.HasPrefix(s, BindingOpen) || !strings.HasSuffix(s, BindingClose) {
		return "", false
	}

	return strings.TrimSpace(s[len(BindingOpen) : len(s)-len(BindingClose)]), true
}

// WrapBinding wraps an expression in binding delimiters.
func WrapBinding(expr string) string {
	return BindingOpen + expr + BindingClose
}

package mapper

import (
	"strconv"
	"strings"
	"unicode"

	"uigen/internal/component"
	"uigen/internal/match"
)

// Value units.
const (
	unitDP = "dp"
	unitSP = "sp"
)

// literal renders a value unchanged. Bindings are kept verbatim.
func literal(v any) string {
	return component.Literal(v)
}

func isBindingValue(v any) bool {
	s, ok := v.(string)
	return ok && component.IsBinding(s)
}

// formatDimension appends unit to bare numbers. Strings that already carry
// a unit, resource references and bindings pass through.
func formatDimension(v any, unit string) string {
	if n, ok := component.Number(v); ok {
		return strconv.FormatFloat(n, 'f', -1, 64) + unit
	}

	s := strings.TrimSpace(literal(v))
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return s + unit
	}

	return s
}

var sizeKeywords = map[string]string{
	"match":        "match_parent",
	"fill":         "match_parent",
	"matchParent":  "match_parent",
	"match_parent": "match_parent",
	"infinity":     "match_parent",
	"wrap":         "wrap_content",
	"auto":         "wrap_content",
	"wrapContent":  "wrap_content",
	"wrap_content": "wrap_content",
}

func formatSize(v any) string {
	if s, ok := v.(string); ok {
		if kw, ok := sizeKeywords[strings.TrimSpace(s)]; ok {
			return kw
		}
	}

	return formatDimension(v, unitDP)
}

// formatColor keeps hex literals, resource references and bindings, and
// turns a bare color name into a color resource reference.
func formatColor(v any) string {
	s := strings.TrimSpace(literal(v))

	switch {
	case s == "":
		return s
	case strings.HasPrefix(s, "#"), strings.HasPrefix(s, "@"), strings.HasPrefix(s, "?"):
		return s
	case s == "transparent":
		return "@android:color/transparent"
	default:
		return "@color/" + resourceName(s)
	}
}

// formatDrawable turns a bare image name into a drawable reference.
func formatDrawable(v any) string {
	s := strings.TrimSpace(literal(v))

	switch {
	case s == "", strings.HasPrefix(s, "@"), strings.Contains(s, "://"):
		return s
	default:
		return "@drawable/" + resourceName(strings.TrimSuffix(strings.TrimSuffix(s, ".png"), ".xml"))
	}
}

// formatBool renders booleans as "true"/"false". Bindings pass through.
func formatBool(v any) string {
	if isBindingValue(v) {
		return literal(v)
	}

	return strconv.FormatBool(component.Truthy(v))
}

// resourceName converts an identifier into a lower snake_case resource name.
func resourceName(s string) string {
	tokens := match.TokenizeIdent(s)

	for i, t := range tokens {
		tokens[i] = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}

			return '_'
		}, t)
	}

	return strings.Join(tokens, "_")
}

// lookup maps a string value through table, leaving unknown values and
// bindings unchanged.
func lookup(table map[string]string, v any) string {
	s := strings.TrimSpace(literal(v))
	if isBindingValue(v) {
		return s
	}

	if mapped, ok := table[s]; ok {
		return mapped
	}

	return s
}

package mapper

import (
	"errors"
	"fmt"
	"strings"

	"uigen/internal/typeexpr"
)

// Mode selects the output family for backend-ambiguous declared types.
type Mode string

// Supported modes.
const (
	ModeViews   Mode = "views"
	ModeCompose Mode = "compose"
)

// ErrUnknownMode is returned by ParseMode for unsupported names.
var ErrUnknownMode = errors.New("unknown target mode")

// ParseMode parses a target name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeViews, ModeCompose:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// baseTypes map identically in every mode.
var baseTypes = map[string]string{
	"String":  "String",
	"Int":     "Int",
	"Integer": "Int",
	"Long":    "Long",
	"Float":   "Float",
	"Double":  "Double",
	"Bool":    "Boolean",
	"Boolean": "Boolean",
	"Void":    "Unit",
	"Any":     "Any",
}

var modeTypes = map[Mode]map[string]string{
	ModeCompose: {
		"Color": "Color",
		"Image": "Painter",
		"Font":  "FontFamily",
	},
	ModeViews: {
		"Color": "Int",
		"Image": "Drawable",
		"Font":  "Typeface",
	},
}

// MapType maps a declared type expression to the target type string.
// Expressions that do not parse are returned trimmed and unchanged.
func MapType(expr string, mode Mode) string {
	e, err := typeexpr.Parse(expr)
	if err != nil {
		return strings.TrimSpace(expr)
	}

	return renderType(e, mode)
}

func renderType(e *typeexpr.Expr, mode Mode) string {
	var s string

	switch e.Kind {
	case typeexpr.KindArray:
		s = "List<" + renderType(e.Elem, mode) + ">"
	case typeexpr.KindDictionary:
		s = "Map<" + renderType(e.Key, mode) + ", " + renderType(e.Value, mode) + ">"
	case typeexpr.KindCallback:
		params := make([]string, len(e.Params))
		for i, p := range e.Params {
			params[i] = renderType(p, mode)
		}

		// Callbacks are always optional.
		return "((" + strings.Join(params, ", ") + ") -> " + renderType(e.Result, mode) + ")?"
	default:
		s = baseType(e.Name, mode)
	}

	if e.Optional {
		s += "?"
	}

	return s
}

func baseType(name string, mode Mode) string {
	if t, ok := modeTypes[mode][name]; ok {
		return t
	}

	if t, ok := baseTypes[name]; ok {
		return t
	}

	return name
}

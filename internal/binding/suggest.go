package binding

import (
	"strings"

	"uigen/internal/match"
)

// Suggested declared types.
const (
	TypeCallback   = "() -> Void"
	TypeCollection = "Array(Any)"
	TypeBool       = "Bool"
	TypeAny        = "Any"
)

// attributeTypes suggests a type from the attribute the binding is bound to.
var attributeTypes = map[string]string{
	"text":               "String",
	"title":              "String",
	"hint":               "String",
	"placeholder":        "String",
	"contentDescription": "String",
	"image":              "Image",
	"src":                "Image",
	"fontColor":          "Color",
	"textColor":          "Color",
	"background":         "Color",
	"backgroundColor":    "Color",
	"tint":               "Color",
	"hidden":             TypeBool,
	"enabled":            TypeBool,
	"disabled":           TypeBool,
	"checked":            TypeBool,
	"isOn":               TypeBool,
	"alpha":              "Float",
	"opacity":            "Float",
	"progress":           "Int",
	"maxLines":           "Int",
	"fontSize":           "Int",
}

// SuggestType proposes a declared type for an undeclared identifier used
// in the attribute attr. Naming conventions win over the attribute table.
func SuggestType(name, attr string) string {
	last := match.LastToken(name)

	switch {
	case match.HasLeadingToken(name, "on"):
		return TypeCallback
	case last == "items" || last == "list":
		return TypeCollection
	case match.HasLeadingToken(name, "is"), match.HasLeadingToken(name, "has"):
		return TypeBool
	}

	if t, ok := attributeTypes[attr]; ok {
		return t
	}

	if strings.HasPrefix(attr, "on") {
		return TypeCallback
	}

	return TypeAny
}

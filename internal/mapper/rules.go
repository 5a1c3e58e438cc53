package mapper

import (
	"strconv"
	"strings"

	"uigen/internal/component"
)

var dimensionKeys = map[string]string{
	"minWidth":          "minWidth",
	"minHeight":         "minHeight",
	"padding":           "padding",
	"paddingTop":        "paddingTop",
	"paddingBottom":     "paddingBottom",
	"paddingStart":      "paddingStart",
	"paddingEnd":        "paddingEnd",
	"paddingLeft":       "paddingStart",
	"paddingRight":      "paddingEnd",
	"paddingHorizontal": "paddingHorizontal",
	"paddingVertical":   "paddingVertical",
	"margin":            "layout_margin",
	"marginTop":         "layout_marginTop",
	"marginBottom":      "layout_marginBottom",
	"marginStart":       "layout_marginStart",
	"marginEnd":         "layout_marginEnd",
	"marginLeft":        "layout_marginStart",
	"marginRight":       "layout_marginEnd",
}

func dimensionRule(in Input) ([]Attribute, bool) {
	switch in.Key {
	case "width":
		return []Attribute{android("layout_width", formatSize(in.Value))}, true
	case "height":
		return []Attribute{android("layout_height", formatSize(in.Value))}, true
	case "weight":
		return []Attribute{android("layout_weight", literal(in.Value))}, true
	}

	name, ok := dimensionKeys[in.Key]
	if !ok {
		return nil, false
	}

	return []Attribute{android(name, formatDimension(in.Value, unitDP))}, true
}

// alignment describes one alignment key in each layout family.
type alignment struct {
	gravity  string   // flow: gravity flag
	sides    []string // anchor: constrained sides
	relative string   // relative: parent-relative flag
	sibling  string   // relative: sibling-relative attribute, if any
}

var alignments = map[string]alignment{
	"alignTop":         {gravity: "top", sides: []string{"Top"}, relative: "layout_alignParentTop", sibling: "layout_alignTop"},
	"alignBottom":      {gravity: "bottom", sides: []string{"Bottom"}, relative: "layout_alignParentBottom", sibling: "layout_alignBottom"},
	"alignStart":       {gravity: "start", sides: []string{"Start"}, relative: "layout_alignParentStart", sibling: "layout_alignStart"},
	"alignLeading":     {gravity: "start", sides: []string{"Start"}, relative: "layout_alignParentStart", sibling: "layout_alignStart"},
	"alignEnd":         {gravity: "end", sides: []string{"End"}, relative: "layout_alignParentEnd", sibling: "layout_alignEnd"},
	"alignTrailing":    {gravity: "end", sides: []string{"End"}, relative: "layout_alignParentEnd", sibling: "layout_alignEnd"},
	"centerHorizontal": {gravity: "center_horizontal", sides: []string{"Start", "End"}, relative: "layout_centerHorizontal"},
	"centerVertical":   {gravity: "center_vertical", sides: []string{"Top", "Bottom"}, relative: "layout_centerVertical"},
	"center":           {gravity: "center", sides: []string{"Start", "End", "Top", "Bottom"}, relative: "layout_centerInParent"},
}

var gravityAliases = map[string]string{
	"leading":  "start",
	"trailing": "end",
	"left":     "start",
	"right":    "end",
	"middle":   "center",
}

func alignmentRule(in Input) ([]Attribute, bool) {
	if in.Key == "gravity" || in.Key == "contentAlignment" {
		return []Attribute{android("gravity", formatGravity(in.Value))}, true
	}

	a, ok := alignments[in.Key]
	if !ok {
		return nil, false
	}

	target, on := alignTarget(in.Value)
	if !on {
		return []Attribute{}, true
	}

	switch in.Family {
	case FamilyAnchor:
		ref := "parent"
		if target != "" {
			ref = "@id/" + target
		}

		out := make([]Attribute, 0, len(a.sides))
		for _, side := range a.sides {
			out = append(out, app("layout_constraint"+side+"_to"+side+"Of", ref))
		}

		return out, true
	case FamilyRelative:
		if target != "" && a.sibling != "" {
			return []Attribute{android(a.sibling, "@id/"+target)}, true
		}

		return []Attribute{android(a.relative, "true")}, true
	default:
		return []Attribute{android("layout_gravity", a.gravity)}, true
	}
}

// alignTarget interprets an alignment value: true aligns to the parent, a
// non-boolean string names a sibling id, false or empty disables it.
func alignTarget(v any) (string, bool) {
	switch t := v.(type) {
	case bool:
		return "", t
	case string:
		s := strings.TrimSpace(t)

		switch s {
		case "", "false":
			return "", false
		case "true", "parent":
			return "", true
		}

		if component.IsBinding(s) {
			return "", true
		}

		return strings.TrimPrefix(s, "@id/"), true
	default:
		return "", v != nil
	}
}

func formatGravity(v any) string {
	if isBindingValue(v) {
		return literal(v)
	}

	parts := strings.Split(literal(v), "|")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if alias, ok := gravityAliases[p]; ok {
			p = alias
		}

		parts[i] = p
	}

	return strings.Join(parts, "|")
}

var textAlignments = map[string]string{
	"center":   "center",
	"left":     "viewStart",
	"leading":  "viewStart",
	"start":    "viewStart",
	"right":    "viewEnd",
	"trailing": "viewEnd",
	"end":      "viewEnd",
}

func textRule(in Input) ([]Attribute, bool) {
	switch in.Key {
	case "text", "title":
		return []Attribute{android("text", literal(in.Value))}, true
	case "fontSize", "textSize":
		return []Attribute{android("textSize", formatDimension(in.Value, unitSP))}, true
	case "fontColor", "textColor":
		return []Attribute{android("textColor", formatColor(in.Value))}, true
	case "font", "fontFamily":
		return []Attribute{android("fontFamily", literal(in.Value))}, true
	case "fontWeight":
		return []Attribute{android("textStyle", fontWeight(in.Value))}, true
	case "bold":
		if isBindingValue(in.Value) || !component.Truthy(in.Value) {
			return []Attribute{}, true
		}

		return []Attribute{android("textStyle", "bold")}, true
	case "textAlignment", "textAlign":
		return []Attribute{android("textAlignment", lookup(textAlignments, in.Value))}, true
	case "lines", "maxLines", "numberOfLines":
		return []Attribute{android("maxLines", literal(in.Value))}, true
	case "hint", "placeholder":
		return []Attribute{android("hint", literal(in.Value))}, true
	case "lineSpacing":
		return []Attribute{android("lineSpacingExtra", formatDimension(in.Value, unitDP))}, true
	case "allCaps":
		return []Attribute{android("textAllCaps", formatBool(in.Value))}, true
	}

	return nil, false
}

func fontWeight(v any) string {
	if n, ok := component.Number(v); ok {
		if n >= 600 {
			return "bold"
		}

		return "normal"
	}

	s := literal(v)

	switch s {
	case "bold", "semibold", "heavy", "black":
		return "bold"
	case "italic":
		return "italic"
	case "regular", "normal", "light", "thin", "medium":
		return "normal"
	}

	if n, err := strconv.Atoi(s); err == nil {
		return fontWeight(int64(n))
	}

	return s
}

var scaleTypes = map[string]string{
	"fit":     "fitCenter",
	"fill":    "centerCrop",
	"stretch": "fitXY",
	"center":  "center",
}

var visibilities = map[string]string{
	"visible":   "visible",
	"invisible": "invisible",
	"hidden":    "invisible",
	"gone":      "gone",
}

func visualRule(in Input) ([]Attribute, bool) {
	switch in.Key {
	case "background", "backgroundColor":
		return []Attribute{android("background", formatColor(in.Value))}, true
	case "cornerRadius":
		return []Attribute{app("cornerRadius", formatDimension(in.Value, unitDP))}, true
	case "alpha", "opacity":
		return []Attribute{android("alpha", literal(in.Value))}, true
	case "hidden":
		if isBindingValue(in.Value) {
			return []Attribute{android("visibility", literal(in.Value))}, true
		}

		if component.Truthy(in.Value) {
			return []Attribute{android("visibility", "gone")}, true
		}

		return []Attribute{android("visibility", "visible")}, true
	case "visibility":
		return []Attribute{android("visibility", lookup(visibilities, in.Value))}, true
	case "elevation", "shadow":
		return []Attribute{android("elevation", formatDimension(in.Value, unitDP))}, true
	case "image", "src":
		return []Attribute{app("srcCompat", formatDrawable(in.Value))}, true
	case "tint", "tintColor":
		return []Attribute{app("tint", formatColor(in.Value))}, true
	case "contentMode", "scaleType":
		return []Attribute{android("scaleType", lookup(scaleTypes, in.Value))}, true
	case "borderWidth":
		return []Attribute{app("strokeWidth", formatDimension(in.Value, unitDP))}, true
	case "borderColor":
		return []Attribute{app("strokeColor", formatColor(in.Value))}, true
	case "clipsToBounds", "clipChildren":
		return []Attribute{android("clipChildren", formatBool(in.Value))}, true
	}

	return nil, false
}

var inputTypes = map[string]string{
	"text":      "text",
	"email":     "textEmailAddress",
	"number":    "number",
	"numeric":   "number",
	"decimal":   "numberDecimal",
	"phone":     "phone",
	"password":  "textPassword",
	"multiline": "textMultiLine",
	"url":       "textUri",
}

var eventAttributes = map[string]string{
	"onClick":         "onClick",
	"onTap":           "onClick",
	"onLongClick":     "onLongClick",
	"onLongPress":     "onLongClick",
	"onTextChange":    "afterTextChanged",
	"onTextChanged":   "afterTextChanged",
	"onChange":        "afterTextChanged",
	"onCheckedChange": "onCheckedChanged",
	"onToggle":        "onCheckedChanged",
}

func inputRule(in Input) ([]Attribute, bool) {
	if name, ok := eventAttributes[in.Key]; ok {
		return []Attribute{android(name, literal(in.Value))}, true
	}

	switch in.Key {
	case "enabled":
		return []Attribute{android("enabled", formatBool(in.Value))}, true
	case "disabled":
		if isBindingValue(in.Value) {
			body, _ := component.BindingBody(literal(in.Value))
			return []Attribute{android("enabled", component.WrapBinding("!"+body))}, true
		}

		return []Attribute{android("enabled", strconv.FormatBool(!component.Truthy(in.Value)))}, true
	case "checked", "isOn":
		return []Attribute{android("checked", formatBool(in.Value))}, true
	case "inputType", "keyboardType", "keyboard":
		return []Attribute{android("inputType", lookup(inputTypes, in.Value))}, true
	case "secure", "secureTextEntry":
		if component.Truthy(in.Value) {
			return []Attribute{android("inputType", "textPassword")}, true
		}

		return []Attribute{}, true
	case "focusable":
		return []Attribute{android("focusable", formatBool(in.Value))}, true
	case "maxLength":
		return []Attribute{android("maxLength", literal(in.Value))}, true
	}

	return nil, false
}

var fallbackAttributes = map[string]Attribute{
	"tag":                {Namespace: NSAndroid, Name: "tag"},
	"contentDescription": {Namespace: NSAndroid, Name: "contentDescription"},
	"accessibilityLabel": {Namespace: NSAndroid, Name: "contentDescription"},
	"orientation":        {Namespace: NSAndroid, Name: "orientation"},
	"layoutDirection":    {Namespace: NSAndroid, Name: "layoutDirection"},
	"clickable":          {Namespace: NSAndroid, Name: "clickable"},
	"minLines":           {Namespace: NSAndroid, Name: "minLines"},
	"ellipsize":          {Namespace: NSAndroid, Name: "ellipsize"},
	"progress":           {Namespace: NSAndroid, Name: "progress"},
	"max":                {Namespace: NSAndroid, Name: "max"},
}

func fallbackRule(in Input) ([]Attribute, bool) {
	if in.Key == component.KeyID {
		id := strings.TrimPrefix(strings.TrimPrefix(literal(in.Value), "@+id/"), "@id/")
		return []Attribute{android("id", "@+id/"+id)}, true
	}

	a, ok := fallbackAttributes[in.Key]
	if !ok {
		return nil, false
	}

	a.Value = literal(in.Value)

	return []Attribute{a}, true
}

package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapAttribute(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  any
		parent string
		want   []Attribute
	}{
		{"width number", "width", int64(16), "VStack", []Attribute{android("layout_width", "16dp")}},
		{"height keyword", "height", "match", "VStack", []Attribute{android("layout_height", "match_parent")}},
		{"width wrap", "width", "wrap", "View", []Attribute{android("layout_width", "wrap_content")}},
		{"padding with unit", "padding", "8dp", "", []Attribute{android("padding", "8dp")}},
		{"padding numeric string", "padding", "8", "", []Attribute{android("padding", "8dp")}},
		{"margin float", "marginLeft", 1.5, "", []Attribute{android("layout_marginStart", "1.5dp")}},
		{"font size", "fontSize", int64(14), "", []Attribute{android("textSize", "14sp")}},
		{"flow alignment", "alignTop", true, "VStack", []Attribute{android("layout_gravity", "top")}},
		{"anchor alignment", "alignTop", true, "View", []Attribute{app("layout_constraintTop_toTopOf", "parent")}},
		{"anchor sibling", "alignTop", "header", "View", []Attribute{app("layout_constraintTop_toTopOf", "@id/header")}},
		{"relative alignment", "alignTop", true, "Relative", []Attribute{android("layout_alignParentTop", "true")}},
		{"relative sibling", "alignTop", "header", "Relative", []Attribute{android("layout_alignTop", "@id/header")}},
		{
			"anchor center horizontal", "centerHorizontal", true, "View",
			[]Attribute{app("layout_constraintStart_toStartOf", "parent"), app("layout_constraintEnd_toEndOf", "parent")},
		},
		{"relative center", "center", true, "Relative", []Attribute{android("layout_centerInParent", "true")}},
		{"alignment off", "alignTop", false, "VStack", []Attribute{}},
		{"gravity aliases", "gravity", "top|leading", "", []Attribute{android("gravity", "top|start")}},
		{"binding text", "text", "@{user.name}", "", []Attribute{android("text", "@{user.name}")}},
		{"hex color", "fontColor", "#FF0000", "", []Attribute{android("textColor", "#FF0000")}},
		{"named color", "fontColor", "primaryText", "", []Attribute{android("textColor", "@color/primary_text")}},
		{"transparent", "background", "transparent", "", []Attribute{android("background", "@android:color/transparent")}},
		{"font weight", "fontWeight", int64(700), "", []Attribute{android("textStyle", "bold")}},
		{"text alignment", "textAlignment", "trailing", "", []Attribute{android("textAlignment", "viewEnd")}},
		{"hidden", "hidden", true, "", []Attribute{android("visibility", "gone")}},
		{"hidden binding", "hidden", "@{isBusy}", "", []Attribute{android("visibility", "@{isBusy}")}},
		{"image", "image", "ic_back", "", []Attribute{app("srcCompat", "@drawable/ic_back")}},
		{"image url", "image", "https://x.test/a.png", "", []Attribute{app("srcCompat", "https://x.test/a.png")}},
		{"tap handler", "onTap", "@{onSave}", "", []Attribute{android("onClick", "@{onSave}")}},
		{"disabled binding", "disabled", "@{isBusy}", "", []Attribute{android("enabled", "@{!isBusy}")}},
		{"disabled literal", "disabled", true, "", []Attribute{android("enabled", "false")}},
		{"keyboard", "keyboardType", "email", "", []Attribute{android("inputType", "textEmailAddress")}},
		{"unknown keyboard", "keyboardType", "datetime", "", []Attribute{android("inputType", "datetime")}},
		{"id", "id", "title_label", "", []Attribute{android("id", "@+id/title_label")}},
		{"fallback table", "accessibilityLabel", "Close", "", []Attribute{android("contentDescription", "Close")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapAttribute(tt.key, tt.value, "Label", tt.parent)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapAttribute_Unclaimed(t *testing.T) {
	for _, key := range []string{"sparkle", "type", "child", "style", "include", "data"} {
		t.Run(key, func(t *testing.T) {
			got, ok := MapAttribute(key, "x", "Label", "VStack")
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestDispatch_FirstRuleWins(t *testing.T) {
	tests := []struct {
		key  string
		rule string
	}{
		{"width", "dimension"},
		{"center", "alignment"},
		{"text", "text"},
		{"background", "visual"},
		{"onTap", "input"},
		{"tag", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, rule, ok := Dispatch(Input{Key: tt.key, Value: "x", Family: FamilyFlow})
			assert.True(t, ok)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestFamilyOf(t *testing.T) {
	assert.Equal(t, FamilyFlow, FamilyOf("VStack"))
	assert.Equal(t, FamilyAnchor, FamilyOf("View"))
	assert.Equal(t, FamilyRelative, FamilyOf("Relative"))
	assert.Equal(t, FamilyNone, FamilyOf(""))
	assert.Equal(t, FamilyNone, FamilyOf("Label"))

	assert.Equal(t, "flow", FamilyFlow.String())
	assert.Equal(t, "anchor", FamilyAnchor.String())
	assert.Equal(t, "Family(9)", Family(9).String())
}

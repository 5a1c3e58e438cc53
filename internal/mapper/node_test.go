package mapper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uigen/internal/component"
)

func decode(t *testing.T, s string) *component.Node {
	t.Helper()

	n, err := component.Decode([]byte(s))
	require.NoError(t, err)

	return n
}

func TestMapNode_GravityUnionInSourceOrder(t *testing.T) {
	m := New(ModeViews)

	got := m.MapNode(decode(t, `{"type": "Label", "alignBottom": true, "text": "x", "centerHorizontal": true}`), "VStack")
	assert.Equal(t, []Attribute{
		android("layout_gravity", "bottom|center_horizontal"),
		android("text", "x"),
	}, got.Attributes)

	got = m.MapNode(decode(t, `{"type": "Label", "centerHorizontal": true, "alignBottom": true}`), "VStack")
	v, ok := got.Attribute("android:layout_gravity")
	require.True(t, ok)
	assert.Equal(t, "center_horizontal|bottom", v)

	got = m.MapNode(decode(t, `{"type": "Label", "alignStart": true, "alignLeading": true, "alignTop": false}`), "HStack")
	assert.Equal(t, []Attribute{android("layout_gravity", "start")}, got.Attributes)
}

func TestMapNode_DefaultAnchors(t *testing.T) {
	m := New(ModeViews)

	got := m.MapNode(decode(t, `{"type": "Label", "alignTop": true}`), "View")
	assert.Equal(t, []Attribute{
		app("layout_constraintTop_toTopOf", "parent"),
		app("layout_constraintStart_toStartOf", "parent"),
	}, got.Attributes)

	got = m.MapNode(decode(t, `{"type": "Label", "centerHorizontal": true}`), "View")
	assert.Equal(t, []Attribute{
		app("layout_constraintStart_toStartOf", "parent"),
		app("layout_constraintEnd_toEndOf", "parent"),
		app("layout_constraintTop_toTopOf", "parent"),
	}, got.Attributes)

	got = m.MapNode(decode(t, `{"type": "Label", "center": true, "alignTop": true}`), "View")
	assert.Len(t, got.Attributes, 4, "no default anchors and no duplicate sides")

	got = m.MapNode(decode(t, `{"type": "Label"}`), "VStack")
	assert.Empty(t, got.Attributes, "flow parents get no anchors")
}

func TestMapNode_SiblingAnchorWins(t *testing.T) {
	m := New(ModeViews)

	tests := []struct {
		name string
		in   string
	}{
		{"center first", `{"type": "Label", "centerHorizontal": true, "alignEnd": "other"}`},
		{"sibling first", `{"type": "Label", "alignEnd": "@id/other", "centerHorizontal": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MapNode(decode(t, tt.in), "View")

			end, ok := got.Attribute("app:layout_constraintEnd_toEndOf")
			require.True(t, ok)
			assert.Equal(t, "@id/other", end)

			start, _ := got.Attribute("app:layout_constraintStart_toStartOf")
			assert.Equal(t, "parent", start)
			assert.Len(t, got.Attributes, 3)
		})
	}
}

func TestMapNode_Tree(t *testing.T) {
	src := decode(t, `{"type": "VStack", "padding": 16, "child": [
		{"type": "Label", "text": "Hi", "alignTop": true, "centerHorizontal": true, "sparkle": 1},
		{"type": "View", "child": [{"type": "Image", "image": "logo", "alignEnd": true}]}
	]}`)

	views := New(ModeViews).MapNode(src, "")

	want := &Node{
		Type:       "VStack",
		Widget:     "LinearLayout",
		Attributes: []Attribute{android("padding", "16dp"), android("orientation", "vertical")},
		Children: []*Node{
			{
				Type:       "Label",
				Widget:     "TextView",
				Attributes: []Attribute{android("text", "Hi"), android("layout_gravity", "top|center_horizontal")},
				Unmapped:   []string{"sparkle"},
			},
			{
				Type:       "View",
				Widget:     "androidx.constraintlayout.widget.ConstraintLayout",
				Attributes: []Attribute{},
				Children: []*Node{
					{
						Type:   "Image",
						Widget: "ImageView",
						Attributes: []Attribute{
							app("srcCompat", "@drawable/logo"),
							app("layout_constraintEnd_toEndOf", "parent"),
							app("layout_constraintTop_toTopOf", "parent"),
						},
					},
				},
			},
		},
	}

	if diff := cmp.Diff(want, views); diff != "" {
		t.Errorf("views mapping mismatch (-want +got):\n%s", diff)
	}

	compose := New(ModeCompose).MapNode(src, "")
	assert.Equal(t, "Column", compose.Widget)
	assert.Equal(t, "Text", compose.Children[0].Widget)
	assert.Equal(t, views.Children[0].Attributes, compose.Children[0].Attributes)
}

func TestMapNode_Sections(t *testing.T) {
	src := decode(t, `{"type": "List", "sections": [
		{"header": {"type": "Label", "text": "H"}, "cell": {"type": "Label", "text": "C"}},
		"not a section"
	]}`)

	got := New(ModeViews).MapNode(src, "")
	require.Len(t, got.Sections, 1)

	sec := got.Sections[0]
	require.NotNil(t, sec.Header)
	assert.Nil(t, sec.Footer)
	require.NotNil(t, sec.Cell)

	text, _ := sec.Cell.Attribute("android:text")
	assert.Equal(t, "C", text)
	assert.Equal(t, "TextView", sec.Header.Widget)
}

func TestMapNode_BindingGravityIsNotSplit(t *testing.T) {
	got := New(ModeViews).MapNode(decode(t, `{"type": "View", "gravity": "@{a || b}"}`), "")
	v, _ := got.Attribute("android:gravity")
	assert.Equal(t, "@{a || b}", v)
}

func TestMapDocument(t *testing.T) {
	src := decode(t, `{"type": "View",
		"data": [
			{"name": "title", "class": "String"},
			{"name": "onSave", "class": "() -> Void"},
			{"name": "tint", "class": "Color"},
			{"name": "items", "class": "Array(String)", "defaultValue": "[]"}
		],
		"child": [{"type": "Label", "text": "@{title}", "data": [{"name": "title", "class": "Int"}, {"name": "extra"}]}]
	}`)

	doc := New(ModeViews).MapDocument("home", src)

	assert.Equal(t, "home", doc.Name)
	assert.Equal(t, ModeViews, doc.Mode)
	assert.Equal(t, []Field{
		{Name: "title", Declared: "String", Type: "String"},
		{Name: "onSave", Declared: "() -> Void", Type: "(() -> Unit)?"},
		{Name: "tint", Declared: "Color", Type: "Int"},
		{Name: "items", Declared: "Array(String)", Type: "List<String>", Default: "[]"},
		{Name: "extra", Type: "Any"},
	}, doc.Fields)

	require.Len(t, doc.Root.Children, 1)
	assert.Empty(t, doc.Root.Unmapped, "data declarations are structural")
	assert.Empty(t, doc.Root.Children[0].Unmapped)

	compose := New(ModeCompose).MapDocument("home", src)
	assert.Equal(t, "Color", compose.Fields[2].Type)
}

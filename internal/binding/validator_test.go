package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uigen/internal/component"
	"uigen/internal/diagnostic"
)

func decode(t *testing.T, s string) *component.Node {
	t.Helper()

	n, err := component.Decode([]byte(s))
	require.NoError(t, err)

	return n
}

func TestCheck_ComparisonYieldsExactlyOneWarning(t *testing.T) {
	tree := decode(t, `{"type": "Label",
		"data": [{"name": "a", "class": "Int"}, {"name": "b", "class": "Int"}],
		"text": "@{a > b}"}`)

	d := Check(tree)
	require.Len(t, d.Warnings, 1)

	w := d.Warnings[0]
	assert.Equal(t, diagnostic.CodeForbiddenExpression, w.Code)
	assert.Contains(t, w.Message, "comparison operator")
	assert.Equal(t, "Label", w.Component)
	assert.Equal(t, "text", w.Path)

	assert.Equal(t,
		[]string{"[Label] text: [forbidden-expression] comparison operator in binding @{a > b}"},
		Validate(tree))
}

func TestCheck_DataPathIsClean(t *testing.T) {
	tree := decode(t, `{"type": "Label", "text": "@{data.name}"}`)
	assert.Empty(t, Validate(tree))
}

func TestCheck_UndeclaredSuggestsBool(t *testing.T) {
	tree := decode(t, `{"type": "Switch", "text": "@{isEnabled}"}`)

	d := Check(tree)
	require.Len(t, d.Warnings, 1)

	w := d.Warnings[0]
	assert.Equal(t, diagnostic.CodeUndeclaredBinding, w.Code)
	assert.Contains(t, w.Message, `"isEnabled"`)
	require.NotEmpty(t, w.Suggestions)
	assert.Contains(t, w.Suggestions[0], `"class": "Bool"`)
}

func TestCheck_NestedPathsAndValues(t *testing.T) {
	tree := decode(t, `{"type": "View",
		"data": [{"name": "userName", "class": "String"}],
		"child": [
			{"type": "Label", "text": "@{username}", "font": {"color": "@{themeColor}"}},
			{"type": "List", "items": ["plain", "@{a + b}"]}
		]}`)

	d := Check(tree)

	var got []string
	for _, w := range d.Warnings {
		got = append(got, w.Component+" "+w.Path+" "+w.Code)
	}

	assert.Equal(t, []string{
		"Label child[0].text undeclared-binding",
		"Label child[0].font.color undeclared-binding",
		"List child[1].items[1] forbidden-expression",
		"List child[1].items[1] undeclared-binding",
		"List child[1].items[1] undeclared-binding",
	}, got)

	assert.Equal(t, []string{
		`declare {"name": "username", "class": "String"} in data`,
		`did you mean "userName"?`,
	}, d.Warnings[0].Suggestions)
}

func TestCheck_DeclarationsAnywhereFormOneNamespace(t *testing.T) {
	tree := decode(t, `{"type": "View",
		"child": [
			{"type": "Label", "text": "@{title}"},
			{"type": "View", "data": [{"name": "title", "class": "String"}]}
		],
		"sections": [{"cell": {"type": "Label", "text": "@{title}"}}]}`)

	assert.Empty(t, Validate(tree))
	assert.Equal(t, []string{"title"}, Namespace(tree))
}

func TestShapes(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"a > b", []string{"comparison"}},
		{"a == b", []string{"comparison"}},
		{"cond ? a : b", []string{"ternary"}},
		{"if (flag) a else b", []string{"conditional"}},
		{"count - 1", []string{"arithmetic"}},
		{"a && b", []string{"logical"}},
		{"name ?: fallback", []string{"null-coalescing"}},
		{"user.format(locale)", []string{"call"}},
		{`"Hi ${name}"`, []string{"interpolation"}},
		{"items[index]", []string{"subscript"}},
		{"value as String", []string{"cast"}},
		{"user!!.name", []string{"not-null-assertion"}},
		{"() -> onSave()", []string{"lambda"}},
		{"0..10", []string{"range"}},
		{"user?.let { it.name }", []string{"lambda", "scope-function"}},
		{"list.map { it.name }", []string{"lambda"}},
		{"items.filter { it.isActive }", []string{"lambda"}},
		{"i++", []string{"arithmetic"}},
		{"--count", []string{"arithmetic"}},
		{"a > 0 && b", []string{"comparison", "logical"}},
		{`label == "a > b"`, []string{"comparison"}},

		// allow-listed
		{"name", nil},
		{"user?.profile.name", nil},
		{"!isHidden", nil},
		{"items[0]", nil},
		{"onSave", nil},
		{"data.user.name", nil},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			var names []string
			for _, r := range Shapes(tt.expr) {
				names = append(names, r.Name)
			}

			assert.Equal(t, tt.want, names)
		})
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"user.name", []string{"user"}},
		{"a > b && a", []string{"a", "b"}},
		{`"hello " + name`, []string{"name"}},
		{"count + 1.5", []string{"count"}},
		{"data.user.name", nil},
		{"isOn ? true : null", []string{"isOn"}},
		{"f(x).length", []string{"f", "x"}},
		{"value as String", []string{"value"}},
		{"item2 + 3", []string{"item2"}},
		{`"Hello ${name}"`, []string{"name"}},
		{`"Hi $user.name, ${count + 1} left"`, []string{"user", "count"}},
		{`title + " \$price"`, []string{"title"}},
		{`"${items.map { it.label }}"`, []string{"items"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, Identifiers(tt.expr))
		})
	}
}

func TestSuggestType(t *testing.T) {
	tests := []struct {
		name string
		attr string
		want string
	}{
		{"onRefresh", "text", TypeCallback},
		{"cartItems", "text", TypeCollection},
		{"friendList", "text", TypeCollection},
		{"items", "text", TypeCollection},
		{"isLoading", "text", TypeBool},
		{"hasMore", "text", TypeBool},
		{"title", "text", "String"},
		{"accent", "fontColor", "Color"},
		{"online", "text", "String"},
		{"handler", "onTap", TypeCallback},
		{"thing", "sparkle", TypeAny},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.attr, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestType(tt.name, tt.attr))
		})
	}
}

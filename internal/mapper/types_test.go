package mapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		expr    string
		views   string
		compose string
	}{
		{"String", "String", "String"},
		{"Int?", "Int?", "Int?"},
		{"Bool", "Boolean", "Boolean"},
		{"UserProfile", "UserProfile", "UserProfile"},
		{"() -> Void", "(() -> Unit)?", "(() -> Unit)?"},
		{"(() -> Void)?", "(() -> Unit)?", "(() -> Unit)?"},
		{"((() -> Void))", "(() -> Unit)?", "(() -> Unit)?"},
		{"(Int, String) -> Bool", "((Int, String) -> Boolean)?", "((Int, String) -> Boolean)?"},
		{"Array(String)", "List<String>", "List<String>"},
		{"Array(String)?", "List<String>?", "List<String>?"},
		{"Array(Dictionary(String, Array(Int)))", "List<Map<String, List<Int>>>", "List<Map<String, List<Int>>>"},
		{"Dictionary(String, List<Int>)", "Map<String, List<Int>>", "Map<String, List<Int>>"},
		{"Array((Int) -> Void)", "List<((Int) -> Unit)?>", "List<((Int) -> Unit)?>"},
		{"Color", "Int", "Color"},
		{"Color?", "Int?", "Color?"},
		{"Image", "Drawable", "Painter"},
		{"(Color) -> Void", "((Int) -> Unit)?", "((Color) -> Unit)?"},
		{"Array(", "Array(", "Array("},
		{"  Double  ", "Double", "Double"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.views, MapType(tt.expr, ModeViews))
			assert.Equal(t, tt.compose, MapType(tt.expr, ModeCompose))
		})
	}
}

func TestMapType_CallbacksNormalizeToSameOptionalForm(t *testing.T) {
	for _, mode := range []Mode{ModeViews, ModeCompose} {
		assert.Equal(t, MapType("() -> Void", mode), MapType("(() -> Void)?", mode))
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Compose")
	require.NoError(t, err)
	assert.Equal(t, ModeCompose, m)

	m, err = ParseMode(" views ")
	require.NoError(t, err)
	assert.Equal(t, ModeViews, m)

	_, err = ParseMode("swiftui")
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewType(t *testing.T) {
	tests := []struct {
		fullName  string
		namespace string
		name      string
	}{
		{"System.Int32", "System", "Int32"},
		{"Player", "", "Player"},
		{"System.Collections.Generic.List`1", "System.Collections.Generic", "List`1"},
		{"Game.Outer+Inner", "Game", "Outer+Inner"},
	}

	for _, tt := range tests {
		t.Run(tt.fullName, func(t *testing.T) {
			typ := NewType(tt.fullName)
			assert.Equal(t, tt.namespace, typ.Namespace)
			assert.Equal(t, tt.name, typ.Name)
			assert.Equal(t, tt.fullName, typ.FullName())
		})
	}
}

func TestRender_NonGeneric(t *testing.T) {
	for _, name := range []string{"System.Int32", "System.String", "Player", "Game.Items.Sword", "System.Single[]"} {
		t.Run(name, func(t *testing.T) {
			rendered := NewType(name).Render()
			assert.Equal(t, name, rendered)
			assert.NotContains(t, rendered, "<")
		})
	}
}

func TestRender_Generic(t *testing.T) {
	list := Type{
		Namespace: "System.Collections.Generic",
		Name:      "List`1",
		Generic:   true,
		Args:      []Type{NewType("System.Int32")},
	}
	assert.Equal(t, "System.Collections.Generic.List<System.Int32>", list.Render())

	dict := Type{
		Namespace: "System.Collections.Generic",
		Name:      "Dictionary`2",
		Generic:   true,
		Args:      []Type{NewType("System.String"), list},
	}
	assert.Equal(t,
		"System.Collections.Generic.Dictionary<System.String, System.Collections.Generic.List<System.Int32>>",
		dict.Render())
	assert.Equal(t, dict.Render(), dict.String())
}

func TestRender_NestedTypeSeparator(t *testing.T) {
	assert.Equal(t, "Game.Outer.Inner", NewType("Game.Outer+Inner").Render())
}

func TestParseType(t *testing.T) {
	tests := []struct {
		expr     string
		rendered string
		generic  bool
		args     int
	}{
		{"System.Int32", "System.Int32", false, 0},
		{"  Player ", "Player", false, 0},
		{"System.Collections.Generic.List<Game.Item>", "System.Collections.Generic.List<Game.Item>", true, 1},
		{"System.Collections.Generic.List`1<Game.Item>", "System.Collections.Generic.List<Game.Item>", true, 1},
		{
			"System.Collections.Generic.Dictionary<System.String,System.Collections.Generic.List<System.Int32>>",
			"System.Collections.Generic.Dictionary<System.String, System.Collections.Generic.List<System.Int32>>",
			true, 2,
		},
		{"Game.Pair< A , B >", "Game.Pair<A, B>", true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			typ, err := ParseType(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.rendered, typ.Render())
			assert.Equal(t, tt.generic, typ.Generic)
			assert.Len(t, typ.Args, tt.args)
		})
	}
}

func TestParseType_Errors(t *testing.T) {
	for _, expr := range []string{"", "List<", "List<>", "List<A B>", "A>B", "List<A>>"} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseType(expr)
			require.ErrorIs(t, err, ErrBadTypeExpr)
		})
	}
}

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		input    string
		expected Visibility
	}{
		{"", VisibilityNonPublic},
		{"private", VisibilityPrivate},
		{" Internal ", VisibilityNonPublic},
		{"Protected", VisibilityNonPublic},
		{"nonpublic", VisibilityNonPublic},
		{"public", VisibilityPublic},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseVisibility(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}

	_, err := ParseVisibility("friend")
	require.Error(t, err)
}

func TestParseStorageClass(t *testing.T) {
	s, err := ParseStorageClass("static")
	require.NoError(t, err)
	assert.Equal(t, StorageStatic, s)

	s, err = ParseStorageClass("")
	require.NoError(t, err)
	assert.Equal(t, StorageInstance, s)

	_, err = ParseStorageClass("const")
	require.Error(t, err)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "public", VisibilityPublic.String())
	assert.Equal(t, "nonpublic", VisibilityNonPublic.String())
	assert.Equal(t, "private", VisibilityPrivate.String())
	assert.Equal(t, "Visibility(9)", Visibility(9).String())
	assert.Equal(t, "static", StorageStatic.String())
	assert.Equal(t, "instance", StorageInstance.String())
	assert.Equal(t, "StorageClass(9)", StorageClass(9).String())
}

func TestField_String(t *testing.T) {
	f := Field{
		Name:          "_hp",
		DeclaringType: NewType("Game.Player"),
		ValueType:     NewType("System.Int32"),
	}
	assert.Equal(t, "_hp (System.Int32, nonpublic, instance, Game.Player)", f.String())
	assert.False(t, f.IsPublic())
	assert.False(t, f.IsStatic())
}

func TestField_Inherited(t *testing.T) {
	tests := []struct {
		name       string
		visibility Visibility
		storage    StorageClass
		expected   bool
	}{
		{"protected instance", VisibilityNonPublic, StorageInstance, true},
		{"public instance", VisibilityPublic, StorageInstance, true},
		{"private instance", VisibilityPrivate, StorageInstance, false},
		{"protected static", VisibilityNonPublic, StorageStatic, false},
		{"public static", VisibilityPublic, StorageStatic, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Field{Name: "x", Visibility: tt.visibility, Storage: tt.storage}
			assert.Equal(t, tt.expected, f.Inherited())
		})
	}
}

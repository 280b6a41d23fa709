package ir

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassReferenceDefaultsAlias(t *testing.T) {
	ref := NewClassReference(`\App\Models\User`, "")
	assert.Equal(t, `App\Models\User`, ref.FQN)
	assert.Equal(t, "User", ref.Alias)
	assert.False(t, ref.IsEnum)

	dotted := NewClassReference("app.models.Post", "")
	assert.Equal(t, "Post", dotted.Alias)

	explicit := NewClassReference(`App\Models\User`, "Account")
	assert.Equal(t, "Account", explicit.Alias)
}

func TestNewNullableNeverDoubleWraps(t *testing.T) {
	once := NewNullable(Int{})
	twice := NewNullable(once)
	assert.Same(t, once, twice)
	assert.Equal(t, "Nullable(Int)", Format(twice))
}

func TestNewUnionArity(t *testing.T) {
	assert.Equal(t, Unknown{}, NewUnion())
	assert.Equal(t, String{}, NewUnion(String{}))
	assert.Equal(t, "Union(Int, String)", Format(NewUnion(Int{}, String{})))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"App", "Models", "User"}, SplitName(`\App\Models\User`))
	assert.Equal(t, "User", LastSegment("App.Models.User"))
	assert.Equal(t, `App\Models`, NamespaceOf(`\App\Models\User`))
	assert.Equal(t, "", NamespaceOf("User"))
	assert.True(t, SameName(`\App\User`, "App.User"))
	assert.False(t, SameName(`App\User`, `App\Users`))
	assert.Equal(t, `App\User`, CanonicalName(".App.User"))
}

func TestFieldNullableMirrorsType(t *testing.T) {
	f := NewField("name", NewNullable(String{}))
	assert.True(t, f.Nullable)
	assert.False(t, f.Optional)

	g := NewField("id", Int{})
	assert.False(t, g.Nullable)
}

func TestHasTag(t *testing.T) {
	f := NewField("x", String{}, MetadataTag{Name: `\App\Attributes\Optional`})
	assert.True(t, f.HasTag(`App\Attributes\Optional`))
	assert.False(t, f.HasTag("Optional"))

	s := &Schema{Name: "User", Metadata: []MetadataTag{{Name: "Optional"}}}
	assert.True(t, s.HasTag("Optional"))
}

func TestRootPreservesFirstSeenOrder(t *testing.T) {
	root := NewRoot()
	b := root.Ensure(`App\B`)
	root.Ensure(`App\A`)
	again := root.Ensure(`App\B`)
	assert.Same(t, b, again)

	var ids []string
	for _, ns := range root.Namespaces() {
		ids = append(ids, ns.Identifier)
	}
	assert.Equal(t, []string{`App\B`, `App\A`}, ids)
	assert.Equal(t, "B", b.Name())

	_, ok := root.Lookup(`App\C`)
	assert.False(t, ok)
}

func TestWalkVisitsEveryNestedType(t *testing.T) {
	inner := NewClassReference(`App\Status`, "")
	typ := NewRecord(String{}, NewArray(NewStruct(
		StructField{Name: "s", Type: NewNullable(NewUnion(inner, Int{}))},
	)))

	refs := References(typ)
	require.Len(t, refs, 1)
	assert.Same(t, inner, refs[0])

	var kinds []Kind
	Walk(typ, func(n Type) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KindNullable
	})
	assert.Equal(t, []Kind{KindRecord, KindString, KindArray, KindStruct, KindNullable}, kinds)
}

func TestFormat(t *testing.T) {
	typ := NewRecord(String{}, NewStruct(
		StructField{Name: "name", Type: String{}},
		StructField{Name: "value", Type: NewNullable(NewUnion(Int{}, String{})), Optional: true},
	))
	assert.Equal(t, "Record(String, Struct(name: String, value?: Nullable(Union(Int, String))))", Format(typ))
	assert.Equal(t, "Array", Format(NewArray(nil)))

	ref := NewClassReference(`App\Color`, "")
	ref.IsEnum = true
	assert.Equal(t, `ClassReference(App\Color enum)`, Format(ref))
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, NullValue{}},
		{"string", "x", StringValue("x")},
		{"bool", true, BoolValue(true)},
		{"int", 3, IntValue(3)},
		{"int64", int64(4), IntValue(4)},
		{"integral float", 5.0, IntValue(5)},
		{"fractional float", 1.5, FloatValue(1.5)},
		{"json integer", json.Number("7"), IntValue(7)},
		{"json fraction", json.Number("7.25"), FloatValue(7.25)},
		{"list", []any{"a", 1, nil}, ListValue{StringValue("a"), IntValue(1), NullValue{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ValueOf(map[string]any{"k": 1})
	assert.Error(t, err)
}

func TestValueString(t *testing.T) {
	v := ListValue{StringValue("a"), IntValue(2), FloatValue(0.5), BoolValue(false), NullValue{}}
	assert.Equal(t, `["a", 2, 0.5, false, null]`, v.String())
}

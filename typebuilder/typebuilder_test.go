package typebuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/schemagen/annotation"
	"github.com/teranos/schemagen/ir"
	"github.com/teranos/schemagen/token"
)

func TestBuildExpr(t *testing.T) {
	aliases := map[string]string{
		"User":  `App\Models\User`,
		"Money": `\Brick\Money\Money`,
	}
	tests := []struct {
		expr string
		want string
	}{
		{"string", "String"},
		{"INT", "Int"},
		{"integer", "Int"},
		{"Double", "Float"},
		{"boolean", "Bool"},
		{"array", "Array"},
		{"mixed", "Unknown"},
		{"array-key", "Union(String, Int)"},
		{"null", "Nullable(Unknown)"},
		{"?int", "Nullable(Int)"},
		{"int|null", "Nullable(Int)"},
		{"null|int|string", "Nullable(Union(Int, String))"},
		{"?int|string", "Nullable(Union(Int, String))"},
		{"null|null", "Nullable(Unknown)"},
		{"string[]", "Array(String)"},
		{"array<User>", `Array(ClassReference(App\Models\User))`},
		{"list<int>", "Array(Int)"},
		{"array<string, int>", "Record(String, Int)"},
		{"array<string, array{id: int}>", "Record(String, Array(Struct(id: Int)))"},
		{"array{id: int, name?: string}", "Struct(id: Int, name?: String)"},
		{"User", `ClassReference(App\Models\User)`},
		{"Money", `ClassReference(Brick\Money\Money)`},
		{"Unaliased", "ClassReference(Unaliased)"},
		{`\App\Other`, `ClassReference(App\Other)`},
		{"Collection<int, User>", `ClassReference(Collection, Int, ClassReference(App\Models\User))`},
		{"'draft'|'published'", "Union(String, String)"},
		{"array<", "Unknown"},
	}
	b := NewAnnotationBuilder(nil)
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, ir.Format(b.BuildExpr(tt.expr, aliases)))
		})
	}
}

func TestShapeAsRecordValue(t *testing.T) {
	b := NewAnnotationBuilder(nil)
	got := b.BuildExpr("array<string, {name: string, value: int|string|null}>", nil)

	want := ir.NewRecord(ir.String{}, ir.NewStruct(
		ir.StructField{Name: "name", Type: ir.String{}},
		ir.StructField{Name: "value", Type: ir.NewNullable(ir.NewUnion(ir.Int{}, ir.String{}))},
	))
	assert.Equal(t, want, got)
}

func TestAliasResolvesDefaultAlias(t *testing.T) {
	b := NewAnnotationBuilder(nil)
	ref, ok := b.BuildExpr("Acct", map[string]string{"Acct": `App\Billing\Account`}).(*ir.ClassReference)
	require.True(t, ok)
	assert.Equal(t, `App\Billing\Account`, ref.FQN)
	assert.Equal(t, "Account", ref.Alias)
}

func TestBuildExprUsesCache(t *testing.T) {
	cache, err := annotation.NewCache(8)
	require.NoError(t, err)
	b := NewAnnotationBuilder(cache)

	b.BuildExpr("?string", nil)
	b.BuildExpr("?string", nil)
	b.BuildExpr("int", nil)
	assert.Equal(t, 2, cache.Len())
}

func TestBuildNominal(t *testing.T) {
	enums := func(fqn string) bool { return fqn == `App\Enums\Status` }
	tests := []struct {
		name string
		in   *token.NominalType
		want string
	}{
		{"nil", nil, "Unknown"},
		{"int", &token.NominalType{Kind: token.NominalInt}, "Int"},
		{"nullable string", &token.NominalType{Kind: token.NominalString, Nullable: true}, "Nullable(String)"},
		{"mixed", &token.NominalType{Kind: token.NominalMixed}, "Unknown"},
		{"untyped array", &token.NominalType{Kind: token.NominalArray}, "Array"},
		{"array of bool", &token.NominalType{Kind: token.NominalArray, Value: &token.NominalType{Kind: token.NominalBool}}, "Array(Bool)"},
		{"class", &token.NominalType{Kind: token.NominalClass, Name: `\App\Models\User`}, `ClassReference(App\Models\User)`},
		{"enum class", &token.NominalType{Kind: token.NominalClass, Name: `App\Enums\Status`}, `ClassReference(App\Enums\Status enum)`},
		{
			"nullable union drops null member",
			&token.NominalType{Kind: token.NominalUnion, Nullable: true, Types: []*token.NominalType{
				{Kind: token.NominalInt}, {Kind: token.NominalNull}, {Kind: token.NominalString},
			}},
			"Nullable(Union(Int, String))",
		},
		{
			"single remaining member unwraps",
			&token.NominalType{Kind: token.NominalUnion, Nullable: true, Types: []*token.NominalType{
				{Kind: token.NominalFloat}, {Kind: token.NominalNull},
			}},
			"Nullable(Float)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ir.Format(BuildNominal(tt.in, enums)))
		})
	}
}

func TestBuildersConverge(t *testing.T) {
	b := NewAnnotationBuilder(nil)
	fromDoc := b.BuildExpr("int|string|null", nil)
	fromReflection := BuildNominal(&token.NominalType{Kind: token.NominalUnion, Nullable: true, Types: []*token.NominalType{
		{Kind: token.NominalInt}, {Kind: token.NominalString}, {Kind: token.NominalNull},
	}}, nil)
	assert.Equal(t, fromDoc, fromReflection)
}

func TestResolve(t *testing.T) {
	aliases := map[string]string{"Foo": `App\Foo`, "Bar": `\Vendor\Baz`}
	assert.Equal(t, `App\Foo`, Resolve("Foo", aliases))
	assert.Equal(t, `Vendor\Baz`, Resolve("Bar", aliases))
	assert.Equal(t, `Vendor\Baz`, Resolve("Baz", aliases))
	assert.Equal(t, "Qux", Resolve("Qux", aliases))
	assert.Equal(t, `App\Qux`, Resolve(`\App\Qux`, aliases))
}

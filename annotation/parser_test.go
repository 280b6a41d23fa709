package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdent(t *testing.T) {
	n, err := Parse(`\App\Models\User`)
	require.NoError(t, err)
	assert.Equal(t, &Ident{Name: `\App\Models\User`}, n)

	n, err = Parse("array-key")
	require.NoError(t, err)
	assert.Equal(t, &Ident{Name: "array-key"}, n)
}

func TestParseNullableAndUnion(t *testing.T) {
	n, err := Parse("?int")
	require.NoError(t, err)
	assert.Equal(t, &Nullable{Inner: &Ident{Name: "int"}}, n)

	n, err = Parse("int | string | null")
	require.NoError(t, err)
	assert.Equal(t, &Union{Members: []Node{
		&Ident{Name: "int"},
		&Ident{Name: "string"},
		&Ident{Name: "null"},
	}}, n)
}

func TestParseArraySuffix(t *testing.T) {
	n, err := Parse("User[][]")
	require.NoError(t, err)
	assert.Equal(t, &ArrayOf{Inner: &ArrayOf{Inner: &Ident{Name: "User"}}}, n)

	n, err = Parse("(int|string)[]")
	require.NoError(t, err)
	assert.Equal(t, &ArrayOf{Inner: &Union{Members: []Node{&Ident{Name: "int"}, &Ident{Name: "string"}}}}, n)
}

func TestParseGeneric(t *testing.T) {
	n, err := Parse("array<string, Collection<int, User>>")
	require.NoError(t, err)
	assert.Equal(t, &Generic{Base: "array", Args: []Node{
		&Ident{Name: "string"},
		&Generic{Base: "Collection", Args: []Node{&Ident{Name: "int"}, &Ident{Name: "User"}}},
	}}, n)
}

func TestParseShape(t *testing.T) {
	n, err := Parse("array{name: string, value?: int|string|null}")
	require.NoError(t, err)
	assert.Equal(t, &Shape{Base: "array", Items: []ShapeItem{
		{Key: "name", Value: &Ident{Name: "string"}},
		{Key: "value", Optional: true, Value: &Union{Members: []Node{
			&Ident{Name: "int"}, &Ident{Name: "string"}, &Ident{Name: "null"},
		}}},
	}}, n)

	bare, err := Parse("{id: int,}")
	require.NoError(t, err)
	assert.Equal(t, &Shape{Items: []ShapeItem{{Key: "id", Value: &Ident{Name: "int"}}}}, bare)

	positional, err := Parse("list{int, string}")
	require.NoError(t, err)
	assert.Equal(t, &Shape{Base: "list", Items: []ShapeItem{
		{Key: "0", Value: &Ident{Name: "int"}},
		{Key: "1", Value: &Ident{Name: "string"}},
	}}, positional)
}

func TestParseLiterals(t *testing.T) {
	n, err := Parse(`'draft'|"published"|42|1.5`)
	require.NoError(t, err)
	assert.Equal(t, &Union{Members: []Node{
		&Literal{Kind: LiteralString, Text: "draft"},
		&Literal{Kind: LiteralString, Text: "published"},
		&Literal{Kind: LiteralInt, Text: "42"},
		&Literal{Kind: LiteralFloat, Text: "1.5"},
	}}, n)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src string
		pos int
	}{
		{"", 0},
		{"array<int", 9},
		{"int|", 4},
		{"array{name string}", 11},
		{"User$", 4},
		{"'open", 0},
		{"int string", 4},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.pos, perr.Pos)
		})
	}
}

func TestCache(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)

	a, err := c.Parse("?string")
	require.NoError(t, err)
	b, err := c.Parse("?string")
	require.NoError(t, err)
	assert.Same(t, a.(*Nullable), b.(*Nullable))
	assert.Equal(t, 1, c.Len())

	_, err = c.Parse("array<")
	assert.Error(t, err)
	_, err = c.Parse("array<")
	assert.Error(t, err)
	assert.Equal(t, 2, c.Len())

	var nilCache *Cache
	n, err := nilCache.Parse("int")
	require.NoError(t, err)
	assert.Equal(t, &Ident{Name: "int"}, n)
}

package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/classql/query/ast"
	"github.com/satishbabariya/classql/query/compiler"
	"github.com/satishbabariya/classql/query/parser"
)

func TestSafeIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"users", true},
		{"user_name", true},
		{"_hidden", true},
		{"Users2", true},
		{"", false},
		{"1users", false},
		{"users;drop", false},
		{"user name", false},
		{"users--", false},
		{"naïve", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compiler.SafeIdentifier(tt.name))
		})
	}
}

func TestCompile_SelectAll(t *testing.T) {
	q, err := compiler.Compile(&ast.QueryDescription{Table: "users"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM users", q.SQL)
	assert.Empty(t, q.Params)
}

func TestCompile_WhereAndLimitParams(t *testing.T) {
	limit := int64(10)
	desc := &ast.QueryDescription{
		Table: "t",
		Where: []ast.Condition{
			{Field: "a", Value: "1"},
			{Field: "b", Value: "2"},
		},
		Limit: &limit,
	}

	q, err := compiler.Compile(desc)
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM t WHERE a = ? AND b = ? LIMIT ?", q.SQL)
	assert.Equal(t, []interface{}{"1", "2", int64(10)}, q.Params)
}

func TestCompile_OrderBy(t *testing.T) {
	desc := &ast.QueryDescription{
		Table:   "posts",
		Columns: []string{"title"},
		OrderBy: &ast.OrderBy{Field: "likes", Direction: ast.OrderDesc},
	}

	q, err := compiler.Compile(desc)
	require.NoError(t, err)

	assert.Equal(t, "SELECT title FROM posts ORDER BY likes DESC", q.SQL)
}

func TestCompile_FromParsedClass(t *testing.T) {
	desc, ok := parser.ParseClass("db-posts-title-orderby-likes-desc-limit-3")
	require.True(t, ok)

	q, err := compiler.Compile(desc)
	require.NoError(t, err)

	assert.Equal(t, "SELECT title FROM posts ORDER BY likes DESC LIMIT ?", q.SQL)
	assert.Equal(t, []interface{}{int64(3)}, q.Params)
}

func TestCompile_JoinQualifiesColumns(t *testing.T) {
	desc := &ast.QueryDescription{
		Table:   "users",
		Columns: []string{"name"},
		Where:   []ast.Condition{{Field: "role", Value: "admin"}},
		OrderBy: &ast.OrderBy{Field: "name", Direction: ast.OrderAsc},
		Joins: []ast.JoinDescription{{
			Table:        "posts",
			ParentColumn: "id",
			ChildColumn:  "author_id",
			Columns:      []string{"title"},
			Type:         ast.JoinLeft,
		}},
	}

	q, err := compiler.Compile(desc)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT users.name, posts.title FROM users "+
			"LEFT JOIN posts ON users.id = posts.author_id "+
			"WHERE users.role = ? ORDER BY users.name ASC",
		q.SQL)
	assert.Equal(t, []interface{}{"admin"}, q.Params)
}

func TestCompile_JoinSelectAllFromBoth(t *testing.T) {
	desc := &ast.QueryDescription{
		Table: "users",
		Joins: []ast.JoinDescription{{
			Table:        "posts",
			ParentColumn: "id",
			ChildColumn:  "author_id",
			Type:         ast.JoinInner,
		}},
	}

	q, err := compiler.Compile(desc)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT users.*, posts.* FROM users INNER JOIN posts ON users.id = posts.author_id",
		q.SQL)
}

func TestCompile_InvalidIdentifiers(t *testing.T) {
	tests := []struct {
		name    string
		desc    *ast.QueryDescription
		invalid string
	}{
		{
			name:    "table",
			desc:    &ast.QueryDescription{Table: "users;drop"},
			invalid: "users;drop",
		},
		{
			name:    "column",
			desc:    &ast.QueryDescription{Table: "users", Columns: []string{"na me"}},
			invalid: "na me",
		},
		{
			name: "where field",
			desc: &ast.QueryDescription{
				Table: "users",
				Where: []ast.Condition{{Field: "id;--", Value: "1"}},
			},
			invalid: "id;--",
		},
		{
			name: "orderby field",
			desc: &ast.QueryDescription{
				Table:   "users",
				OrderBy: &ast.OrderBy{Field: "likes)"},
			},
			invalid: "likes)",
		},
		{
			name: "join table",
			desc: &ast.QueryDescription{
				Table: "users",
				Joins: []ast.JoinDescription{{Table: "posts x", ParentColumn: "id", ChildColumn: "author_id"}},
			},
			invalid: "posts x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := compiler.Compile(tt.desc)
			assert.Nil(t, q)

			var idErr *compiler.InvalidIdentifierError
			require.ErrorAs(t, err, &idErr)
			assert.Equal(t, tt.invalid, idErr.Name)
		})
	}
}

func TestCompile_WhereValueNeverEmbedded(t *testing.T) {
	desc := &ast.QueryDescription{
		Table: "users",
		Where: []ast.Condition{{Field: "name", Value: "x'; DROP TABLE users; --"}},
	}

	q, err := compiler.Compile(desc)
	require.NoError(t, err)

	assert.NotContains(t, q.SQL, "DROP")
	assert.Equal(t, []interface{}{"x'; DROP TABLE users; --"}, q.Params)
}

package introspect_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/classql/runtime/client"
	"github.com/satishbabariya/classql/runtime/introspect"
)

func newTestClient(t *testing.T) *client.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	c, err := client.NewClient("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, c.Connect(context.Background()))
	t.Cleanup(func() { _ = c.Disconnect(context.Background()) })
	return c
}

func TestNewIntrospector_UnsupportedProvider(t *testing.T) {
	c, err := client.NewClient("postgres", "postgres://nowhere/db")
	require.NoError(t, err)

	in, err := introspect.NewIntrospector(c)
	assert.Nil(t, in)
	assert.ErrorIs(t, err, introspect.ErrUnsupportedProvider)
}

func TestTables(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.DB().ExecContext(ctx, `
		CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL, score REAL);
		CREATE TABLE books (id INTEGER PRIMARY KEY, title TEXT);

		INSERT INTO users (name, score) VALUES ('Alice', 1.5), ('Bob', 2.5);
	`)
	require.NoError(t, err)

	in, err := introspect.NewIntrospector(c)
	require.NoError(t, err)

	tables, err := in.Tables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	// Alphabetical order.
	assert.Equal(t, "books", tables[0].Name)
	assert.Equal(t, "users", tables[1].Name)

	users := tables[1]
	assert.Equal(t, int64(2), users.RowCount)
	assert.Equal(t, []introspect.ColumnInfo{
		{Name: "id", Type: "INTEGER"},
		{Name: "name", Type: "TEXT"},
		{Name: "score", Type: "REAL"},
	}, users.Columns)
	require.Len(t, users.Data, 2)
	assert.Equal(t, "Alice", users.Data[0]["name"])

	books := tables[0]
	assert.Equal(t, int64(0), books.RowCount)
	assert.Empty(t, books.Data)
}

func TestTables_SampleCapped(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.DB().ExecContext(ctx, "CREATE TABLE big (n INTEGER)")
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		_, err := c.DB().ExecContext(ctx, "INSERT INTO big (n) VALUES (?)", i)
		require.NoError(t, err)
	}

	in, err := introspect.NewIntrospector(c)
	require.NoError(t, err)

	tables, err := in.Tables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	assert.Equal(t, int64(25), tables[0].RowCount)
	assert.Len(t, tables[0].Data, 20, "sample stops at twenty rows")
}

func TestTables_UntypedColumnReportsText(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	// A column with no declared type comes back empty from PRAGMA table_info.
	_, err := c.DB().ExecContext(ctx, `CREATE TABLE odd ("anything")`)
	require.NoError(t, err)

	in, err := introspect.NewIntrospector(c)
	require.NoError(t, err)

	tables, err := in.Tables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Len(t, tables[0].Columns, 1)
	assert.Equal(t, "TEXT", tables[0].Columns[0].Type)
}

package seed_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/classql/seed"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	summary, err := seed.Run(ctx, db)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), summary.Users)
	assert.Equal(t, int64(1000), summary.Products)
	assert.Equal(t, int64(1000), summary.Posts)

	var distinctEmails int64
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT email) FROM users").Scan(&distinctEmails))
	assert.Equal(t, int64(1000), distinctEmails, "emails stay unique")

	var orphans int64
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM posts WHERE author_id < 1 OR author_id > 1000").Scan(&orphans))
	assert.Equal(t, int64(0), orphans, "every post points at a seeded user")

	var badPrices int64
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM products WHERE price < 9.99 OR price > 999.99").Scan(&badPrices))
	assert.Equal(t, int64(0), badPrices)
}

func TestRun_ReseedsFromScratch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	_, err := seed.Run(ctx, db)
	require.NoError(t, err)

	summary, err := seed.Run(ctx, db)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), summary.Users, "tables are dropped and rebuilt, not appended")
}

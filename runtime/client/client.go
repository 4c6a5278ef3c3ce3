// Package client provides the database client for ClassQL.
package client

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver
)

// Client is the database handle compiled queries run against
type Client struct {
	db          *sql.DB
	provider    string
	middlewares []Middleware
}

// NewClient opens a client for the given provider and connection string
func NewClient(provider string, connectionString string) (*Client, error) {
	driverName := getDriverName(provider)
	if driverName == "" {
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}

	db, err := sql.Open(driverName, connectionString)
	if err != nil {
		return nil, err
	}

	return &Client{
		db:       db,
		provider: provider,
	}, nil
}

// NewClientFromDB wraps an existing database connection
func NewClientFromDB(provider string, db *sql.DB) *Client {
	return &Client{
		db:       db,
		provider: provider,
	}
}

// getDriverName maps provider names to Go database driver names
func getDriverName(provider string) string {
	switch provider {
	case "postgresql", "postgres":
		return "postgres"
	case "mysql":
		return "mysql"
	case "sqlite":
		return "sqlite3"
	default:
		return ""
	}
}

// Connect establishes the database connection
func (c *Client) Connect(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return err
	}
	if c.provider == "sqlite" {
		// Best effort; in-memory databases ignore it.
		_, _ = c.db.ExecContext(ctx, "PRAGMA journal_mode=WAL")
	}
	return nil
}

// Disconnect closes the database connection
func (c *Client) Disconnect(ctx context.Context) error {
	return c.db.Close()
}

// Provider returns the provider name the client was opened with
func (c *Client) Provider() string {
	return c.provider
}

// DB returns the underlying database connection
func (c *Client) DB() *sql.DB {
	return c.db
}

// Query runs one statement through the middleware chain and returns every
// row plus the column order the driver reported.
func (c *Client) Query(ctx context.Context, query string, params ...interface{}) ([]RowData, []string, error) {
	return c.chain(c.rawQuery)(ctx, query, params...)
}

func (c *Client) rawQuery(ctx context.Context, query string, params ...interface{}) ([]RowData, []string, error) {
	rows, err := c.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

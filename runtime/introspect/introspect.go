// Package introspect reads live database schema.
package introspect

import (
	"context"
	"errors"

	"github.com/satishbabariya/classql/runtime/client"
)

// ErrUnsupportedProvider is returned when no introspector exists for the
// client's provider.
var ErrUnsupportedProvider = errors.New("unsupported provider")

// TableInfo describes one user table with a sample of its rows
type TableInfo struct {
	Name     string           `json:"name"`
	Columns  []ColumnInfo     `json:"columns"`
	RowCount int64            `json:"rowCount"`
	Data     []client.RowData `json:"data"`
}

// ColumnInfo describes one column
type ColumnInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Introspector reads schema out of a live database
type Introspector interface {
	Tables(ctx context.Context) ([]TableInfo, error)
}

// NewIntrospector creates an introspector for the client's provider
func NewIntrospector(c *client.Client) (Introspector, error) {
	switch c.Provider() {
	case "sqlite":
		return &SQLiteIntrospector{client: c}, nil
	default:
		return nil, ErrUnsupportedProvider
	}
}

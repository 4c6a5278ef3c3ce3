package introspect

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/satishbabariya/classql/runtime/client"
)

// sampleRows caps how much table data introspection carries per table.
const sampleRows = 20

// SQLiteIntrospector implements introspection for SQLite
type SQLiteIntrospector struct {
	client *client.Client
}

// Tables reads every user table: columns, row count and a data sample.
func (i *SQLiteIntrospector) Tables(ctx context.Context) ([]TableInfo, error) {
	names, err := i.tableNames(ctx)
	if err != nil {
		return nil, err
	}

	tables := make([]TableInfo, 0, len(names))
	for _, name := range names {
		columns, err := i.tableColumns(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to introspect columns for %s: %w", name, err)
		}

		var count int64
		row := i.client.DB().QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", name))
		if err := row.Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count rows for %s: %w", name, err)
		}

		data, _, err := i.client.Query(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", name, sampleRows))
		if err != nil {
			return nil, fmt.Errorf("failed to sample rows for %s: %w", name, err)
		}

		tables = append(tables, TableInfo{
			Name:     name,
			Columns:  columns,
			RowCount: count,
			Data:     data,
		})
	}

	return tables, nil
}

// tableNames lists user tables, excluding SQLite internals.
func (i *SQLiteIntrospector) tableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table'
		  AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := i.client.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// tableColumns reads a table's columns via PRAGMA table_info.
func (i *SQLiteIntrospector) tableColumns(ctx context.Context, table string) ([]ColumnInfo, error) {
	rows, err := i.client.DB().QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var columns []ColumnInfo
	for rows.Next() {
		var cid, notNull, isPk int
		var col ColumnInfo
		var dfltValue sql.NullString

		if err := rows.Scan(&cid, &col.Name, &col.Type, &notNull, &dfltValue, &isPk); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}

		// SQLite reports an empty declared type for untyped columns.
		if col.Type == "" {
			col.Type = "TEXT"
		}

		columns = append(columns, col)
	}

	return columns, rows.Err()
}

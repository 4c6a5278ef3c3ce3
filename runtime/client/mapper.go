package client

import (
	"database/sql"
	"encoding/hex"
	"time"
	"unicode/utf8"
)

// RowData is one result row keyed by column name. Values are JSON-ready
// scalars: nil, bool, int64, float64 or string.
type RowData = map[string]interface{}

// scanRows drains rows into RowData maps, normalizing driver values.
func scanRows(rows *sql.Rows) ([]RowData, []string, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var results []RowData
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}

		row := make(RowData, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return results, columns, nil
}

// normalizeValue maps driver values onto the scalar set rows carry. Byte
// slices become strings when they hold UTF-8 text, hex otherwise; times
// become RFC 3339 strings.
func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case []byte:
		if utf8.Valid(t) {
			return string(t)
		}
		return "0x" + hex.EncodeToString(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return v
	}
}

// Package compiler turns query descriptions into parameterized SQL.
//
// Every table and column name is validated before it is embedded in the
// statement text; values never are embedded, they ride as parameters.
package compiler

import (
	"fmt"
	"strings"

	"github.com/satishbabariya/classql/query/ast"
)

// CompiledQuery is a SQL statement with positional parameters, in the
// order their placeholders appear.
type CompiledQuery struct {
	SQL    string
	Params []interface{}
}

// SafeIdentifier reports whether name may be embedded in SQL as an
// identifier: an ASCII letter or underscore, followed by ASCII letters,
// digits or underscores.
func SafeIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// sanitize returns the identifier unchanged when it is safe to embed.
func sanitize(name string) (string, error) {
	if !SafeIdentifier(name) {
		return "", &InvalidIdentifierError{Name: name}
	}
	return name, nil
}

// Compile builds the SELECT for a description. The first invalid
// identifier aborts the whole compilation; no partial SQL is returned.
func Compile(desc *ast.QueryDescription) (*CompiledQuery, error) {
	table, err := sanitize(desc.Table)
	if err != nil {
		return nil, err
	}

	// With joins in play every column reference is table-qualified so the
	// selected names stay unambiguous.
	qualified := len(desc.Joins) > 0

	var selects []string
	if len(desc.Columns) == 0 {
		if qualified {
			selects = append(selects, table+".*")
		} else {
			selects = append(selects, "*")
		}
	} else {
		for _, col := range desc.Columns {
			c, err := sanitize(col)
			if err != nil {
				return nil, err
			}
			if qualified {
				c = table + "." + c
			}
			selects = append(selects, c)
		}
	}

	for _, join := range desc.Joins {
		jt, err := sanitize(join.Table)
		if err != nil {
			return nil, err
		}
		if len(join.Columns) == 0 {
			selects = append(selects, jt+".*")
			continue
		}
		for _, col := range join.Columns {
			c, err := sanitize(col)
			if err != nil {
				return nil, err
			}
			selects = append(selects, jt+"."+c)
		}
	}

	parts := []string{fmt.Sprintf("SELECT %s FROM %s", strings.Join(selects, ", "), table)}
	var params []interface{}

	for _, join := range desc.Joins {
		jt, err := sanitize(join.Table)
		if err != nil {
			return nil, err
		}
		parent, err := sanitize(join.ParentColumn)
		if err != nil {
			return nil, err
		}
		child, err := sanitize(join.ChildColumn)
		if err != nil {
			return nil, err
		}
		parts = append(parts, fmt.Sprintf("%s JOIN %s ON %s.%s = %s.%s",
			join.Type.SQL(), jt, table, parent, jt, child))
	}

	if len(desc.Where) > 0 {
		conds := make([]string, 0, len(desc.Where))
		for _, cond := range desc.Where {
			f, err := sanitize(cond.Field)
			if err != nil {
				return nil, err
			}
			if qualified {
				f = table + "." + f
			}
			conds = append(conds, f+" = ?")
			params = append(params, cond.Value)
		}
		parts = append(parts, "WHERE "+strings.Join(conds, " AND "))
	}

	if desc.OrderBy != nil {
		f, err := sanitize(desc.OrderBy.Field)
		if err != nil {
			return nil, err
		}
		if qualified {
			f = table + "." + f
		}
		parts = append(parts, fmt.Sprintf("ORDER BY %s %s", f, desc.OrderBy.Direction.SQL()))
	}

	if desc.Limit != nil {
		parts = append(parts, "LIMIT ?")
		params = append(params, *desc.Limit)
	}

	return &CompiledQuery{
		SQL:    strings.Join(parts, " "),
		Params: params,
	}, nil
}

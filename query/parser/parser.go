// Package parser turns utility-class strings into query descriptions.
//
// The grammar is hyphen-delimited: "db-users-name-where-id-1" selects the
// name column from users where id = 1. The keywords where, limit and
// orderby switch the parser state; every other token is data for the
// state it arrives in.
package parser

import (
	"strconv"
	"strings"

	"github.com/satishbabariya/classql/query/ast"
)

const classPrefix = "db-"

const (
	keywordWhere   = "where"
	keywordLimit   = "limit"
	keywordOrderBy = "orderby"
)

// parseState identifies what the next token means.
type parseState int

const (
	stateColumn parseState = iota
	stateWhereField
	stateWhereValue
	stateLimit
	stateOrderByField
	stateOrderByDir
)

// accumulator threads the partial description and parser state through
// the token fold.
type accumulator struct {
	desc       ast.QueryDescription
	state      parseState
	whereField string
}

// ParseClass parses a single class token. The second return is false when
// the token is not a query class: no "db-" prefix, or an empty table name.
func ParseClass(class string) (*ast.QueryDescription, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(class), classPrefix)
	if !ok {
		return nil, false
	}

	parts := strings.Split(rest, "-")
	if parts[0] == "" {
		return nil, false
	}

	acc := accumulator{desc: ast.QueryDescription{Table: parts[0]}}
	for _, tok := range parts[1:] {
		acc = step(acc, tok)
	}
	return &acc.desc, true
}

// ParseClassList scans a whitespace-separated class attribute and returns
// the first token that parses as a query class.
func ParseClassList(attr string) (*ast.QueryDescription, bool) {
	for _, class := range strings.Fields(attr) {
		if desc, ok := ParseClass(class); ok {
			return desc, true
		}
	}
	return nil, false
}

// step consumes one token. Keywords switch state no matter the current
// state; a repeated keyword resets its clause without error.
func step(acc accumulator, tok string) accumulator {
	switch tok {
	case keywordWhere:
		acc.state = stateWhereField
		return acc
	case keywordLimit:
		acc.state = stateLimit
		return acc
	case keywordOrderBy:
		acc.state = stateOrderByField
		return acc
	}

	switch acc.state {
	case stateColumn:
		acc.desc.Columns = append(acc.desc.Columns, tok)
	case stateWhereField:
		acc.whereField = tok
		acc.state = stateWhereValue
	case stateWhereValue:
		acc.desc.Where = append(acc.desc.Where, ast.Condition{Field: acc.whereField, Value: tok})
		acc.state = stateWhereField
	case stateLimit:
		// An unparseable limit is dropped, not failed.
		if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
			acc.desc.Limit = &n
		}
		acc.state = stateColumn
	case stateOrderByField:
		acc.desc.OrderBy = &ast.OrderBy{Field: tok, Direction: ast.OrderAsc}
		acc.state = stateOrderByDir
	case stateOrderByDir:
		switch tok {
		case "asc":
			acc.desc.OrderBy.Direction = ast.OrderAsc
		case "desc":
			acc.desc.OrderBy.Direction = ast.OrderDesc
		}
		acc.state = stateColumn
	}
	return acc
}

// ParseJoinParam parses a join specification of the form
// "table:parentCol-childCol:col1,col2:type". Only the table and ON
// segments are required.
func ParseJoinParam(param string) (*ast.JoinDescription, bool) {
	parts := strings.Split(param, ":")
	if len(parts) < 2 {
		return nil, false
	}

	selectCols := ""
	if len(parts) > 2 {
		selectCols = parts[2]
	}
	joinType := ""
	if len(parts) > 3 {
		joinType = parts[3]
	}

	j := JoinFromParts(parts[0], parts[1], selectCols, joinType)
	return &j, true
}

// JoinFromParts builds a join description from pre-split segments. The
// parent column defaults to "id", the child column to "<table>_id" and
// the join type to left.
func JoinFromParts(table, on, selectCols, joinType string) ast.JoinDescription {
	onParts := strings.Split(on, "-")
	parent := onParts[0]
	if parent == "" {
		parent = "id"
	}
	child := table + "_id"
	if len(onParts) > 1 && onParts[1] != "" {
		child = onParts[1]
	}

	var columns []string
	for _, c := range strings.Split(selectCols, ",") {
		if c = strings.TrimSpace(c); c != "" {
			columns = append(columns, c)
		}
	}

	joined := ast.JoinLeft
	switch joinType {
	case "inner":
		joined = ast.JoinInner
	case "right":
		joined = ast.JoinRight
	}

	return ast.JoinDescription{
		Table:        table,
		ParentColumn: parent,
		ChildColumn:  child,
		Columns:      columns,
		Type:         joined,
	}
}

// Package executor runs query descriptions against a store.
package executor

import (
	"context"

	"github.com/satishbabariya/classql/query/ast"
	"github.com/satishbabariya/classql/query/compiler"
	"github.com/satishbabariya/classql/runtime/client"
)

// Result is one executed description: the SQL that ran, its parameters,
// the rows it produced and the columns to display them with.
type Result struct {
	SQL     string
	Params  []interface{}
	Rows    []client.RowData
	Columns []string
	Count   int
}

// Executor runs query descriptions against a client
type Executor struct {
	client *client.Client
}

// NewExecutor creates a new executor
func NewExecutor(c *client.Client) *Executor {
	return &Executor{client: c}
}

// Run compiles and executes a description. Display columns are the
// description's selected columns plus each join's, falling back to the
// driver-reported columns when nothing was selected explicitly.
func (e *Executor) Run(ctx context.Context, desc *ast.QueryDescription) (*Result, error) {
	q, err := compiler.Compile(desc)
	if err != nil {
		return nil, err
	}

	rows, reported, err := e.client.Query(ctx, q.SQL, q.Params...)
	if err != nil {
		return nil, err
	}

	display := make([]string, 0, len(desc.Columns))
	display = append(display, desc.Columns...)
	for _, join := range desc.Joins {
		display = append(display, join.Columns...)
	}
	if len(display) == 0 {
		display = reported
	}

	return &Result{
		SQL:     q.SQL,
		Params:  q.Params,
		Rows:    rows,
		Columns: display,
		Count:   len(rows),
	}, nil
}

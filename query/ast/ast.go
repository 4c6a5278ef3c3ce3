// Package ast defines the query description produced by the class parser.
package ast

// QueryDescription describes a single SELECT derived from a class string.
// A zero Columns slice means "all columns"; Limit and OrderBy are optional.
type QueryDescription struct {
	Table   string
	Columns []string
	Where   []Condition
	Limit   *int64
	OrderBy *OrderBy
	Joins   []JoinDescription
}

// Condition is one equality filter. Conditions are combined with AND in
// the order they were parsed.
type Condition struct {
	Field string
	Value string
}

// OrderBy represents ordering by a single field
type OrderBy struct {
	Field     string
	Direction OrderDirection
}

// OrderDirection represents sort direction
type OrderDirection string

const (
	OrderAsc  OrderDirection = "asc"
	OrderDesc OrderDirection = "desc"
)

// SQL returns the ORDER BY keyword for the direction.
func (d OrderDirection) SQL() string {
	if d == OrderDesc {
		return "DESC"
	}
	return "ASC"
}

// JoinDescription describes one join: the joined table, the ON columns and
// the columns selected from the joined table (empty means all of them).
type JoinDescription struct {
	Table        string
	ParentColumn string
	ChildColumn  string
	Columns      []string
	Type         JoinType
}

// JoinType represents the join flavor
type JoinType string

const (
	JoinInner JoinType = "inner"
	JoinLeft  JoinType = "left"
	JoinRight JoinType = "right"
)

// SQL returns the JOIN keyword for the type.
func (t JoinType) SQL() string {
	switch t {
	case JoinInner:
		return "INNER"
	case JoinRight:
		return "RIGHT"
	default:
		return "LEFT"
	}
}

// WithJoin returns a copy of the description with the join appended.
// The receiver is not modified.
func (q *QueryDescription) WithJoin(j JoinDescription) *QueryDescription {
	out := *q
	out.Joins = make([]JoinDescription, len(q.Joins), len(q.Joins)+1)
	copy(out.Joins, q.Joins)
	out.Joins = append(out.Joins, j)
	return &out
}

// WhereMap returns the where conditions as a field -> value map. When a
// field repeats, the last value wins.
func (q *QueryDescription) WhereMap() map[string]string {
	m := make(map[string]string, len(q.Where))
	for _, c := range q.Where {
		m[c.Field] = c.Value
	}
	return m
}

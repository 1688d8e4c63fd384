package database

import (
	"fmt"
	"strings"
)

// Query accumulates WHERE clauses together with their bind arguments so the
// two can never drift apart. Clauses are written with ? markers and rendered
// with the dialect's placeholders by Build.
type Query struct {
	base    string
	clauses []string
	args    []any
	orderBy string
	err     error
}

// NewQuery starts a query from a SELECT ... FROM ... prefix without a WHERE
func NewQuery(base string) *Query {
	return &Query{base: base}
}

// Where appends a clause joined with AND. The number of ? markers in clause
// must equal len(args).
func (q *Query) Where(clause string, args ...any) *Query {
	if q.err != nil {
		return q
	}
	if n := strings.Count(clause, "?"); n != len(args) {
		q.err = fmt.Errorf("clause %q has %d placeholders but %d arguments", clause, n, len(args))
		return q
	}
	q.clauses = append(q.clauses, clause)
	q.args = append(q.args, args...)
	return q
}

// OrderBy sets the ORDER BY expression
func (q *Query) OrderBy(expr string) *Query {
	q.orderBy = expr
	return q
}

// Build renders the statement for d and returns it with its arguments in bind order
func (q *Query) Build(d Dialect) (string, []any, error) {
	if q.err != nil {
		return "", nil, q.err
	}

	var b strings.Builder
	b.WriteString(q.base)
	b.WriteString(" WHERE 1=1")
	for _, clause := range q.clauses {
		b.WriteString(" AND ")
		b.WriteString(clause)
	}
	if q.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.orderBy)
	}

	return d.Rebind(b.String()), q.args, nil
}

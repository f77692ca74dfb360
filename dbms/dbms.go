// Package dbms provides small database helpers: connection-address
// formatting, SQL condition building, and SQLite opening.
package dbms

import (
	"fmt"
	"strings"
)

// DatabaseAddress formats a connection identity as
// "user:***@host:port/database". The password is always masked. An
// empty database omits the trailing "/database" part.
func DatabaseAddress(username, host string, port int, database string) string {
	addr := fmt.Sprintf("%s:***@%s:%d", username, host, port)
	if database != "" {
		addr += "/" + database
	}
	return addr
}

// Condition is one WHERE constraint: a single value yields an equality
// test, multiple values an IN list.
type Condition struct {
	Column string
	Values []any
}

// Eq builds an equality condition on column.
func Eq(column string, value any) Condition {
	return Condition{Column: column, Values: []any{value}}
}

// In builds a membership condition on column.
func In(column string, values ...any) Condition {
	return Condition{Column: column, Values: values}
}

// AddQueryCondition appends a WHERE clause to query, one constraint
// per condition, joined by AND in argument order. A non-empty table
// prefixes each column reference. Conditions with no values are
// skipped.
func AddQueryCondition(query, table string, conds ...Condition) string {
	var clauses []string
	for _, cond := range conds {
		if len(cond.Values) == 0 {
			continue
		}

		column := fmt.Sprintf("%q", cond.Column)
		if table != "" {
			column = table + "." + column
		}

		if len(cond.Values) == 1 {
			clauses = append(clauses, column+"="+quoteValue(cond.Values[0]))
			continue
		}
		quoted := make([]string, len(cond.Values))
		for i, v := range cond.Values {
			quoted[i] = quoteValue(v)
		}
		clauses = append(clauses, column+" IN ("+strings.Join(quoted, ", ")+")")
	}

	if len(clauses) == 0 {
		return query
	}
	return query + " WHERE " + strings.Join(clauses, " AND ")
}

// quoteValue renders v as a SQL literal. Strings are single-quoted
// with embedded quotes doubled; numbers pass through bare.
func quoteValue(v any) string {
	switch val := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case nil:
		return "NULL"
	default:
		return fmt.Sprint(val)
	}
}

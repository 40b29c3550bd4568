package utils

import "strings"

// JoinWithAnd joins a slice of SQL clauses with AND
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins a slice of SQL clauses with OR
func JoinWithOr(clauses []string) string {
	return strings.Join(clauses, " OR ")
}

// OrderByClause translates a "-field" style sort key into an ORDER BY
// body using a per-kind whitelist of sortable columns. Unknown fields
// fall back to the default, so callers can pass user input directly.
func OrderByClause(sort string, allowed map[string]string, defaultClause string) string {
	desc := false
	field := sort
	if strings.HasPrefix(sort, "-") {
		desc = true
		field = sort[1:]
	}

	column, ok := allowed[field]
	if !ok {
		return defaultClause
	}

	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

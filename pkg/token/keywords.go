package token

import "strings"

// sqlKeywords is the reserved-keyword table, in canonical order.
var sqlKeywords = []string{
	"ALL", "ALTER", "AND", "ANY", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST",
	"CHECK", "COLUMN", "CONSTRAINT", "CREATE", "CROSS", "CURRENT_DATE", "CURRENT_TIME",
	"CURRENT_TIMESTAMP", "DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE",
	"END", "EXCEPT", "EXISTS", "FALSE", "FILTER", "FOLLOWING", "FOR", "FOREIGN",
	"FROM", "FULL", "GROUP", "HAVING", "IF", "IN", "INDEX", "INNER", "INSERT",
	"INTERSECT", "INTO", "IS", "JOIN", "KEY", "LEFT", "LIKE", "LIMIT", "NATURAL",
	"NOT", "NULL", "OFFSET", "ON", "OR", "ORDER", "OUTER", "OVER", "PARTITION",
	"PRECEDING", "PRIMARY", "QUALIFY", "RANGE", "RECURSIVE", "REFERENCES", "RETURNING",
	"RIGHT", "ROWS", "SELECT", "SET", "TABLE", "THEN", "TRUE", "UNBOUNDED",
	"UNION", "UNIQUE", "UPDATE", "USING", "VALUES", "WHEN", "WHERE", "WINDOW", "WITH",
}

// keywordSet maps lowercase keyword strings for O(1) lookup.
var keywordSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(sqlKeywords))
	for _, kw := range sqlKeywords {
		m[strings.ToLower(kw)] = struct{}{}
	}
	return m
}()

// IsKeyword reports whether word is a reserved SQL keyword.
// The check is case-insensitive.
func IsKeyword(word string) bool {
	_, ok := keywordSet[strings.ToLower(word)]
	return ok
}

// Keywords returns all reserved keywords in canonical order.
// The returned slice is a copy; callers may modify it freely.
func Keywords() []string {
	out := make([]string, len(sqlKeywords))
	copy(out, sqlKeywords)
	return out
}

package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereFlattensConjunctions(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT * FROM t WHERE x > 1 AND y = 2")
	assert.Equal(t, []Condition{
		{Column: "x", Operator: ">", Value: "1"},
		{Column: "y", Operator: "=", Value: "2"},
	}, Where(stmt))
}

func TestWhereOrFlattened(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT * FROM t WHERE a = 1 OR b != 2 OR c <= 3")
	assert.Equal(t, []Condition{
		{Column: "a", Operator: "=", Value: "1"},
		{Column: "b", Operator: "!=", Value: "2"},
		{Column: "c", Operator: "<=", Value: "3"},
	}, Where(stmt))
}

func TestWhereStringValueUnquoted(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT * FROM t WHERE name = 'bob'")
	assert.Equal(t, []Condition{
		{Column: "name", Operator: "=", Value: "bob"},
	}, Where(stmt))
}

func TestWhereQualifiedColumn(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT * FROM t WHERE t.id >= 10")
	assert.Equal(t, []Condition{
		{Column: "id", Operator: ">=", Value: "10"},
	}, Where(stmt))
}

func TestWhereIn(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT * FROM t WHERE x IN (1, 2, 3)")
	assert.Equal(t, []Condition{
		{Column: "x", Operator: "IN", Value: "(1, 2, 3)"},
	}, Where(stmt))

	stmt = mustSplitOne(t, "SELECT * FROM t WHERE x NOT IN ('a', 'b')")
	assert.Equal(t, []Condition{
		{Column: "x", Operator: "NOT IN", Value: "(a, b)"},
	}, Where(stmt))
}

// A non-column left operand falls back to its textual rendering.
func TestWhereExpressionColumn(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT * FROM t WHERE length(name) > 5")
	assert.Equal(t, []Condition{
		{Column: "length(name)", Operator: ">", Value: "5"},
	}, Where(stmt))
}

// A non-literal right operand falls back to its textual rendering.
func TestWhereExpressionValue(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT * FROM t WHERE created < updated")
	assert.Equal(t, []Condition{
		{Column: "created", Operator: "<", Value: "updated"},
	}, Where(stmt))
}

func TestWhereOnlyTopLevelPredicate(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT * FROM t WHERE x = 1 AND EXISTS (SELECT 1 FROM u WHERE u.y = 2)")
	assert.Equal(t, []Condition{
		{Column: "x", Operator: "=", Value: "1"},
	}, Where(stmt), "nested subquery predicates are not walked")
}

func TestWhereUpdateDelete(t *testing.T) {
	stmt := mustSplitOne(t, "UPDATE t SET a = 1 WHERE b = 2")
	assert.Equal(t, []Condition{
		{Column: "b", Operator: "=", Value: "2"},
	}, Where(stmt))

	stmt = mustSplitOne(t, "DELETE FROM t WHERE c > 3")
	assert.Equal(t, []Condition{
		{Column: "c", Operator: ">", Value: "3"},
	}, Where(stmt))
}

func TestWhereAbsent(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT * FROM t")
	assert.Empty(t, Where(stmt))
}

package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func projectionNames(cols []Projection) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

func TestColumnsPrecedence(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT a, b AS c, count(x) FROM t")
	cols := Columns(stmt)
	assert.Equal(t, []string{"a", "c", "count"}, projectionNames(cols))
	for i, c := range cols {
		assert.Equal(t, i, c.Index)
	}
}

func TestColumnsQualifiedReference(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT t.id, t.name AS label FROM t")
	assert.Equal(t, []string{"id", "label"}, projectionNames(Columns(stmt)))
}

func TestColumnsAliasWinsOverFunction(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT count(x) AS total FROM t")
	assert.Equal(t, []string{"total"}, projectionNames(Columns(stmt)))
}

func TestColumnsSynthesizedNames(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT a + b, 42, 'lit' FROM t")
	assert.Equal(t, []string{"col0", "col1", "col2"}, projectionNames(Columns(stmt)))
}

func TestColumnsStarSynthesized(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT * FROM t")
	assert.Equal(t, []string{"col0"}, projectionNames(Columns(stmt)))
}

func TestColumnsUnionUsesLeftmost(t *testing.T) {
	stmt := mustSplitOne(t, "SELECT a FROM t UNION SELECT b FROM u")
	assert.Equal(t, []string{"a"}, projectionNames(Columns(stmt)))
}

func TestColumnsCreateView(t *testing.T) {
	stmt := mustSplitOne(t, "CREATE VIEW v AS SELECT id, sum(x) AS total FROM t GROUP BY id")
	assert.Equal(t, []string{"id", "total"}, projectionNames(Columns(stmt)))
}

func TestColumnsNonSelect(t *testing.T) {
	stmt := mustSplitOne(t, "DELETE FROM t")
	assert.Empty(t, Columns(stmt))
}

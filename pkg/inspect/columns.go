package inspect

import (
	"strconv"

	"github.com/oarkflow/sqlparser/ast"
)

// Projection is the derived name of one SELECT-list item.
type Projection struct {
	Index int
	Name  string
}

// Columns derives a name for each SELECT-list item, in list order.
// Precedence per item: explicit alias, then a bare column reference's
// column name, then a function call's name, then a synthesized "colN".
// For set operations the leftmost SELECT defines the projection.
func Columns(stmt Statement) []Projection {
	switch n := stmt.node.(type) {
	case *ast.SelectStmt:
		return selectColumns(n)
	case *ast.CreateViewStmt:
		return selectColumns(n.Select)
	case *ast.ExplainStmt:
		return Columns(Statement{Index: stmt.Index, node: n.Stmt})
	default:
		return nil
	}
}

func selectColumns(sel *ast.SelectStmt) []Projection {
	if sel == nil {
		return nil
	}
	cols := make([]Projection, 0, len(sel.Columns))
	for i, item := range sel.Columns {
		cols = append(cols, Projection{Index: i, Name: projectionName(item, i)})
	}
	return cols
}

func projectionName(item ast.SelectColumn, index int) string {
	if item.Alias != nil {
		return item.Alias.Unquoted
	}
	switch e := item.Expr.(type) {
	case *ast.Ident:
		return e.Unquoted
	case *ast.QualifiedIdent:
		return lastIdentPart(e)
	case *ast.FuncCall:
		return identName(e.Name)
	default:
		return "col" + strconv.Itoa(index)
	}
}

package inspect

import "github.com/oarkflow/sqlparser/ast"

// TableContext labels where in a statement a table reference occurred.
type TableContext string

const (
	ContextFrom          TableContext = "FROM"
	ContextJoin          TableContext = "JOIN"
	ContextTableFunction TableContext = "TABLE_FUNCTION"
	ContextInsert        TableContext = "INSERT"
	ContextUpdate        TableContext = "UPDATE"
	ContextDelete        TableContext = "DELETE"
)

// TableRef is one base-table or table-function occurrence found while
// walking a statement. Subqueries and CTE bodies are recursed into but
// emit no record of their own; only the base tables inside them do.
type TableRef struct {
	Schema  string
	Table   string
	Context TableContext
}

// Tables extracts every table referenced by a statement, in pre-order
// traversal order. CTE definitions are walked once per attachment,
// regardless of how many times the CTE name is referenced.
func Tables(stmt Statement) []TableRef {
	var refs []TableRef
	statementTables(stmt.node, &refs)
	return refs
}

func statementTables(node ast.Statement, refs *[]TableRef) {
	switch n := node.(type) {
	case *ast.SelectStmt:
		selectTables(n, refs, ContextFrom)
	case *ast.InsertStmt:
		withTables(n.With, refs)
		if n.Table != nil {
			schema, table := splitQualified(n.Table)
			*refs = append(*refs, TableRef{Schema: schema, Table: table, Context: ContextInsert})
		}
		selectTables(n.Select, refs, ContextFrom)
	case *ast.UpdateStmt:
		withTables(n.With, refs)
		for _, tr := range n.Tables {
			tableRefTables(tr, ContextUpdate, refs)
		}
	case *ast.DeleteStmt:
		withTables(n.With, refs)
		for _, tr := range n.From {
			tableRefTables(tr, ContextDelete, refs)
		}
	case *ast.CreateTableStmt:
		selectTables(n.Select, refs, ContextFrom)
	case *ast.CreateViewStmt:
		selectTables(n.Select, refs, ContextFrom)
	case *ast.ExplainStmt:
		statementTables(n.Stmt, refs)
	case *ast.CallStmt:
		// Procedure invocation producing a relation
		*refs = append(*refs, TableRef{Table: identName(n.Name), Context: ContextTableFunction})
	default:
		// Other statement kinds carry no table references we report
	}
}

// selectTables walks one select node. ctx is the label inherited from
// the enclosing construct; a left-deep chain of joins keeps it for the
// leftmost table while every right side reports JOIN.
func selectTables(sel *ast.SelectStmt, refs *[]TableRef, ctx TableContext) {
	if sel == nil {
		return
	}
	withTables(sel.With, refs)
	for _, tr := range sel.From {
		tableRefTables(tr, ctx, refs)
	}
	if sel.SetOp != nil {
		selectTables(sel.SetOp.Right, refs, ContextFrom)
	}
}

func withTables(w *ast.WithClause, refs *[]TableRef) {
	if w == nil {
		return
	}
	for _, cte := range w.CTEs {
		selectTables(cte.Subq, refs, ContextFrom)
	}
}

func tableRefTables(tr ast.TableRef, ctx TableContext, refs *[]TableRef) {
	switch t := tr.(type) {
	case *ast.SimpleTable:
		schema, table := splitQualified(t.Name)
		*refs = append(*refs, TableRef{Schema: schema, Table: table, Context: ctx})
	case *ast.SubqueryTable:
		selectTables(t.Subq, refs, ContextFrom)
	case *ast.JoinTable:
		tableRefTables(t.Left, ctx, refs)
		tableRefTables(t.Right, ContextJoin, refs)
	default:
		// Unhandled table-ref kinds are skipped
	}
}

// splitQualified splits a possibly qualified name into schema and
// table; the schema is empty for unqualified names.
func splitQualified(q *ast.QualifiedIdent) (schema, table string) {
	if q == nil || len(q.Parts) == 0 {
		return "", ""
	}
	table = q.Parts[len(q.Parts)-1].Unquoted
	if len(q.Parts) > 1 {
		schema = q.Parts[len(q.Parts)-2].Unquoted
	}
	return schema, table
}

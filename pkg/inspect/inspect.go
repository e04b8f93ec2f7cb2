// Package inspect splits SQL scripts into statements and extracts
// structural facts from them: referenced tables, called functions,
// WHERE-clause predicates, and projected column names.
//
// The grammar itself is delegated to github.com/oarkflow/sqlparser;
// this package owns the traversal logic on top of its AST. Extractors
// never fail on a parsed statement: AST shapes they do not recognize
// are skipped, which under-reports rather than errors.
package inspect

import (
	"fmt"

	"github.com/oarkflow/sqlparser"
	"github.com/oarkflow/sqlparser/ast"
)

// Statement is one parsed top-level SQL statement, numbered by its
// 0-based position in the source text.
type Statement struct {
	Index int
	node  ast.Statement
}

// AST returns the underlying parsed statement node.
func (s Statement) AST() ast.Statement {
	return s.node
}

// Type returns the statement kind, e.g. "SELECT" or "INSERT".
func (s Statement) Type() string {
	switch s.node.(type) {
	case *ast.SelectStmt:
		return "SELECT"
	case *ast.InsertStmt:
		return "INSERT"
	case *ast.UpdateStmt:
		return "UPDATE"
	case *ast.DeleteStmt:
		return "DELETE"
	case *ast.CreateTableStmt:
		return "CREATE_TABLE"
	case *ast.CreateViewStmt:
		return "CREATE_VIEW"
	case *ast.CreateIndexStmt:
		return "CREATE_INDEX"
	case *ast.CreateDatabaseStmt:
		return "CREATE_DATABASE"
	case *ast.AlterTableStmt:
		return "ALTER_TABLE"
	case *ast.AlterDatabaseStmt:
		return "ALTER_DATABASE"
	case *ast.DropTableStmt:
		return "DROP_TABLE"
	case *ast.DropIndexStmt:
		return "DROP_INDEX"
	case *ast.DropDatabaseStmt:
		return "DROP_DATABASE"
	case *ast.TruncateStmt:
		return "TRUNCATE"
	case *ast.UseStmt:
		return "USE"
	case *ast.ShowStmt:
		return "SHOW"
	case *ast.ExplainStmt:
		return "EXPLAIN"
	case *ast.CallStmt:
		return "CALL"
	case *ast.TransactionStmt:
		return "TRANSACTION"
	default:
		return "UNKNOWN"
	}
}

// Split parses sql into its top-level statements in source order.
// Splitting is atomic: on any parse error it returns no statements,
// even when the parser recovered partial results.
func Split(sql string) ([]Statement, error) {
	nodes, err := sqlparser.ParseStatements(sql)
	if err != nil {
		return nil, fmt.Errorf("split statements: %w", err)
	}

	stmts := make([]Statement, len(nodes))
	for i, n := range nodes {
		stmts[i] = Statement{Index: i, node: n}
	}
	return stmts, nil
}

// Validate reports whether sql parses cleanly. A nil error means every
// statement in the input is syntactically valid.
func Validate(sql string) error {
	_, err := Split(sql)
	return err
}

// Count returns the number of top-level statements in sql.
func Count(sql string) (int, error) {
	stmts, err := Split(sql)
	if err != nil {
		return 0, err
	}
	return len(stmts), nil
}

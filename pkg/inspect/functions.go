package inspect

import (
	"github.com/oarkflow/sqlparser/ast"
	"github.com/oarkflow/sqlparser/lexer"
)

// FunctionKind is the heuristic classification of a function call.
type FunctionKind string

const (
	KindScalar    FunctionKind = "scalar"
	KindAggregate FunctionKind = "aggregate"
	KindOperator  FunctionKind = "operator"
)

// FunctionRef is one function-call occurrence. Kind is inferred from
// syntactic markers (operator spelling, DISTINCT flag), not a catalog
// lookup.
type FunctionRef struct {
	Name string
	Kind FunctionKind
}

// operatorSpellings are the binary operators reported as operator-kind
// function references. Comparisons and boolean conjunctions are
// predicates, not calls, and are traversed without a record.
var operatorSpellings = map[lexer.TokenType]struct{}{
	lexer.PLUS:      {},
	lexer.MINUS:     {},
	lexer.STAR:      {},
	lexer.SLASH:     {},
	lexer.PERCENT:   {},
	lexer.DBAR:      {},
	lexer.CARET:     {},
	lexer.AMPERSAND: {},
	lexer.PIPE:      {},
	lexer.LSHIFT:    {},
	lexer.RSHIFT:    {},
	lexer.ARROW:     {},
	lexer.DARROW2:   {},
}

// Functions extracts every function call in a statement's SELECT list,
// WHERE predicate, and GROUP BY expressions, in traversal order.
// ORDER BY, HAVING, and window specifications are not traversed.
// Argument expressions are scanned recursively for nested calls.
func Functions(stmt Statement) []FunctionRef {
	var refs []FunctionRef
	statementFunctions(stmt.node, &refs)
	return refs
}

func statementFunctions(node ast.Statement, refs *[]FunctionRef) {
	switch n := node.(type) {
	case *ast.SelectStmt:
		selectFunctions(n, refs)
	case *ast.InsertStmt:
		selectFunctions(n.Select, refs)
	case *ast.CreateTableStmt:
		selectFunctions(n.Select, refs)
	case *ast.CreateViewStmt:
		selectFunctions(n.Select, refs)
	case *ast.ExplainStmt:
		statementFunctions(n.Stmt, refs)
	default:
		// Other statement kinds carry no expressions we scan
	}
}

func selectFunctions(sel *ast.SelectStmt, refs *[]FunctionRef) {
	if sel == nil {
		return
	}
	for _, col := range sel.Columns {
		exprFunctions(col.Expr, refs)
	}
	exprFunctions(sel.Where, refs)
	for _, e := range sel.GroupBy {
		exprFunctions(e, refs)
	}
	if sel.SetOp != nil {
		selectFunctions(sel.SetOp.Right, refs)
	}
}

func exprFunctions(e ast.Expr, refs *[]FunctionRef) {
	switch n := e.(type) {
	case *ast.FuncCall:
		kind := KindScalar
		if n.Distinct {
			kind = KindAggregate
		}
		*refs = append(*refs, FunctionRef{Name: identName(n.Name), Kind: kind})
		for _, arg := range n.Args {
			exprFunctions(arg, refs)
		}
	case *ast.BinaryExpr:
		if _, ok := operatorSpellings[n.Op]; ok {
			*refs = append(*refs, FunctionRef{Name: opSymbol(n.Op), Kind: KindOperator})
		}
		exprFunctions(n.Left, refs)
		exprFunctions(n.Right, refs)
	case *ast.UnaryExpr:
		if n.Op == lexer.MINUS || n.Op == lexer.TILDE {
			*refs = append(*refs, FunctionRef{Name: opSymbol(n.Op), Kind: KindOperator})
		}
		exprFunctions(n.Expr, refs)
	case *ast.CaseExpr:
		exprFunctions(n.Operand, refs)
		for _, w := range n.Whens {
			exprFunctions(w.Cond, refs)
			exprFunctions(w.Result, refs)
		}
		exprFunctions(n.Else, refs)
	case *ast.CastExpr:
		exprFunctions(n.Expr, refs)
	case *ast.BetweenExpr:
		exprFunctions(n.Expr, refs)
		exprFunctions(n.Lo, refs)
		exprFunctions(n.Hi, refs)
	case *ast.InExpr:
		exprFunctions(n.Expr, refs)
		for _, item := range n.List {
			exprFunctions(item, refs)
		}
	case *ast.LikeExpr:
		exprFunctions(n.Expr, refs)
		exprFunctions(n.Pattern, refs)
	case *ast.IsNullExpr:
		exprFunctions(n.Expr, refs)
	default:
		// Identifiers, literals, subqueries, and unhandled kinds end
		// the walk here
	}
}

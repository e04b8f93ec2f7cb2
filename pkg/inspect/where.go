package inspect

import (
	"github.com/oarkflow/sqlparser/ast"
	"github.com/oarkflow/sqlparser/lexer"
)

// Condition is one leaf comparison from a WHERE predicate. Column and
// Value are best-effort textual renderings when the operands are not a
// plain column reference or literal.
type Condition struct {
	Column   string
	Operator string
	Value    string
}

// comparisonOps maps comparison token types to the fixed operator
// vocabulary. Comparison kinds outside the table report "?".
var comparisonOps = map[lexer.TokenType]string{
	lexer.EQ:  "=",
	lexer.NEQ: "!=",
	lexer.LT:  "<",
	lexer.GT:  ">",
	lexer.LTE: "<=",
	lexer.GTE: ">=",
}

// unknownComparisons are comparison-class operators with no entry in
// the fixed vocabulary.
var unknownComparisons = map[lexer.TokenType]struct{}{
	lexer.ATGT:      {},
	lexer.LTAT:      {},
	lexer.QUESTION:  {},
	lexer.QMARKPIPE: {},
	lexer.QMARKAMP:  {},
}

// Where extracts the leaf comparisons of a statement's top-level WHERE
// predicate. AND/OR conjunctions are flattened transparently; nested
// subquery predicates are not walked.
func Where(stmt Statement) []Condition {
	var conds []Condition
	switch n := stmt.node.(type) {
	case *ast.SelectStmt:
		predicateConditions(n.Where, &conds)
	case *ast.UpdateStmt:
		predicateConditions(n.Where, &conds)
	case *ast.DeleteStmt:
		predicateConditions(n.Where, &conds)
	case *ast.ExplainStmt:
		return Where(Statement{Index: stmt.Index, node: n.Stmt})
	default:
		// Other statement kinds have no WHERE clause
	}
	return conds
}

func predicateConditions(e ast.Expr, conds *[]Condition) {
	switch n := e.(type) {
	case *ast.BinaryExpr:
		switch {
		case n.Op == lexer.AND || n.Op == lexer.OR:
			predicateConditions(n.Left, conds)
			predicateConditions(n.Right, conds)
		default:
			op, known := comparisonOps[n.Op]
			if !known {
				if _, unk := unknownComparisons[n.Op]; !unk {
					return
				}
				op = "?"
			}
			*conds = append(*conds, Condition{
				Column:   columnText(n.Left),
				Operator: op,
				Value:    valueText(n.Right),
			})
		}
	case *ast.InExpr:
		op := "IN"
		if n.Not {
			op = "NOT IN"
		}
		*conds = append(*conds, Condition{
			Column:   columnText(n.Expr),
			Operator: op,
			Value:    inListValue(n),
		})
	default:
		// Non-comparison predicate shapes are skipped
	}
}

// columnText names the left operand: the column name for a plain
// reference, otherwise its textual rendering.
func columnText(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Ident:
		return n.Unquoted
	case *ast.QualifiedIdent:
		return lastIdentPart(n)
	default:
		return exprText(e)
	}
}

// valueText renders the right operand: the literal's value for a
// constant, otherwise its textual rendering.
func valueText(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Literal:
		return literalValue(n)
	case *ast.NullLit:
		return "NULL"
	default:
		return exprText(e)
	}
}

// inListValue renders an IN right-hand side as a parenthesized list.
func inListValue(n *ast.InExpr) string {
	if n.Subq != nil {
		return "(subquery)"
	}
	out := "("
	for i, item := range n.List {
		if i > 0 {
			out += ", "
		}
		out += valueText(item)
	}
	return out + ")"
}

package inspect

import (
	"strings"

	"github.com/oarkflow/sqlparser/ast"
	"github.com/oarkflow/sqlparser/lexer"
)

// opSymbols maps operator token types to their SQL spelling. The
// lexer's own String() does not cover keyword-range tokens, so the
// spellings are listed here.
var opSymbols = map[lexer.TokenType]string{
	lexer.EQ:        "=",
	lexer.NEQ:       "!=",
	lexer.LT:        "<",
	lexer.GT:        ">",
	lexer.LTE:       "<=",
	lexer.GTE:       ">=",
	lexer.PLUS:      "+",
	lexer.MINUS:     "-",
	lexer.STAR:      "*",
	lexer.SLASH:     "/",
	lexer.PERCENT:   "%",
	lexer.DBAR:      "||",
	lexer.DAMP:      "&&",
	lexer.AMPERSAND: "&",
	lexer.PIPE:      "|",
	lexer.CARET:     "^",
	lexer.TILDE:     "~",
	lexer.LSHIFT:    "<<",
	lexer.RSHIFT:    ">>",
	lexer.ARROW:     "->",
	lexer.DARROW2:   "->>",
	lexer.ATGT:      "@>",
	lexer.LTAT:      "<@",
	lexer.AND:       "AND",
	lexer.OR:        "OR",
	lexer.NOT:       "NOT",
	lexer.IS:        "IS",
	lexer.LIKE:      "LIKE",
}

// opSymbol returns the SQL spelling for an operator token, or "?" when
// the spelling is not known.
func opSymbol(op lexer.TokenType) string {
	if sym, ok := opSymbols[op]; ok {
		return sym
	}
	return "?"
}

// identName renders a qualified identifier with dot separators.
func identName(q *ast.QualifiedIdent) string {
	if q == nil || len(q.Parts) == 0 {
		return ""
	}
	parts := make([]string, len(q.Parts))
	for i, p := range q.Parts {
		parts[i] = p.Unquoted
	}
	return strings.Join(parts, ".")
}

// lastIdentPart returns the final component of a qualified identifier.
func lastIdentPart(q *ast.QualifiedIdent) string {
	if q == nil || len(q.Parts) == 0 {
		return ""
	}
	return q.Parts[len(q.Parts)-1].Unquoted
}

// literalValue renders a literal's value. String literals lose their
// surrounding quotes and doubled-quote escapes; everything else keeps
// its raw spelling.
func literalValue(lit *ast.Literal) string {
	raw := string(lit.Raw)
	if lit.Kind != lexer.STRING {
		return raw
	}
	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		raw = raw[1 : len(raw)-1]
	}
	return strings.ReplaceAll(raw, "''", "'")
}

// exprText renders an expression as best-effort SQL text. The exact
// format for composite shapes is implementation-defined; it exists so
// non-trivial operands still yield a readable label.
func exprText(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Ident:
		return n.Unquoted
	case *ast.QualifiedIdent:
		return identName(n)
	case *ast.StarExpr:
		return "*"
	case *ast.Literal:
		return string(n.Raw)
	case *ast.NullLit:
		return "NULL"
	case *ast.Param:
		return string(n.Raw)
	case *ast.BinaryExpr:
		return exprText(n.Left) + " " + opSymbol(n.Op) + " " + exprText(n.Right)
	case *ast.UnaryExpr:
		sym := opSymbol(n.Op)
		if isWordSymbol(sym) {
			return sym + " " + exprText(n.Expr)
		}
		return sym + exprText(n.Expr)
	case *ast.FuncCall:
		return funcCallText(n)
	case *ast.CaseExpr:
		return "CASE"
	case *ast.CastExpr:
		return "CAST(" + exprText(n.Expr) + " AS " + string(n.Type.Name) + ")"
	case *ast.InExpr:
		op := "IN"
		if n.Not {
			op = "NOT IN"
		}
		return exprText(n.Expr) + " " + op + " " + inListText(n)
	case *ast.IsNullExpr:
		if n.Not {
			return exprText(n.Expr) + " IS NOT NULL"
		}
		return exprText(n.Expr) + " IS NULL"
	case *ast.LikeExpr:
		op := "LIKE"
		if n.Not {
			op = "NOT LIKE"
		}
		return exprText(n.Expr) + " " + op + " " + exprText(n.Pattern)
	case *ast.BetweenExpr:
		return exprText(n.Expr) + " BETWEEN " + exprText(n.Lo) + " AND " + exprText(n.Hi)
	case *ast.SubqueryExpr, *ast.ExistsExpr, *ast.SelectStmt:
		return "(subquery)"
	default:
		return "?"
	}
}

// funcCallText renders a function call with its arguments.
func funcCallText(fc *ast.FuncCall) string {
	var sb strings.Builder
	sb.WriteString(identName(fc.Name))
	sb.WriteString("(")
	if fc.Distinct {
		sb.WriteString("DISTINCT ")
	}
	if fc.Star {
		sb.WriteString("*")
	}
	for i, arg := range fc.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(exprText(arg))
	}
	sb.WriteString(")")
	return sb.String()
}

// inListText renders the right-hand side of an IN expression.
func inListText(in *ast.InExpr) string {
	if in.Subq != nil {
		return "(subquery)"
	}
	var sb strings.Builder
	sb.WriteString("(")
	for i, e := range in.List {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(exprText(e))
	}
	sb.WriteString(")")
	return sb.String()
}

// isWordSymbol reports whether an operator spelling is alphabetic.
func isWordSymbol(sym string) bool {
	return len(sym) > 0 && sym[0] >= 'A' && sym[0] <= 'Z'
}

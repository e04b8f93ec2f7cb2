// Package token defines the lexical categories produced by the SQL tokenizer.
package token

import "fmt"

// Category classifies a lexical token.
type Category int32

const (
	// IDENTIFIER is a bare or quoted identifier.
	IDENTIFIER Category = iota
	// NUMERIC_CONSTANT is an integer, decimal, or scientific literal.
	NUMERIC_CONSTANT
	// STRING_CONSTANT is a single-quoted string literal.
	STRING_CONSTANT
	// OPERATOR is an operator or punctuation token.
	OPERATOR
	// KEYWORD is a reserved SQL keyword.
	KEYWORD
	// COMMENT is a line or block comment.
	COMMENT
	// ERROR marks a span the tokenizer could not classify.
	ERROR
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CATEGORY(%d)", c)
}

var categoryNames = map[Category]string{
	IDENTIFIER:       "IDENTIFIER",
	NUMERIC_CONSTANT: "NUMERIC_CONSTANT",
	STRING_CONSTANT:  "STRING_CONSTANT",
	OPERATOR:         "OPERATOR",
	KEYWORD:          "KEYWORD",
	COMMENT:          "COMMENT",
	ERROR:            "ERROR",
}

// Token is a classified lexical unit. Start is the byte offset of the
// token in the source text; no end offset is recorded, a token runs to
// the start of the next one or to end of input.
type Token struct {
	Category Category
	Start    int
}

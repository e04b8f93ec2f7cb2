// Package tokenizer converts raw SQL text into a flat stream of
// classified tokens with byte offsets, and strips comments from SQL
// text. It is total over arbitrary input: spans it cannot classify
// become ERROR tokens rather than failures.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/sqlprobe/pkg/token"
)

// Lexer tokenizes SQL input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
}

// New creates a Lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// Next returns the next token. The second return value is false once
// the input is exhausted.
func (l *Lexer) Next() (token.Token, bool) {
	l.skipWhitespace()

	if l.ch == 0 {
		return token.Token{}, false
	}

	start := l.pos

	switch {
	case l.ch == '-' && l.peekChar() == '-':
		l.readLineComment()
		return token.Token{Category: token.COMMENT, Start: start}, true
	case l.ch == '/' && l.peekChar() == '*':
		if terminated := l.readBlockComment(); !terminated {
			return token.Token{Category: token.ERROR, Start: start}, true
		}
		return token.Token{Category: token.COMMENT, Start: start}, true
	case l.ch == '\'':
		if terminated := l.readQuoted('\''); !terminated {
			return token.Token{Category: token.ERROR, Start: start}, true
		}
		return token.Token{Category: token.STRING_CONSTANT, Start: start}, true
	case l.ch == '"':
		// Delimited identifier (ANSI style)
		if terminated := l.readQuoted('"'); !terminated {
			return token.Token{Category: token.ERROR, Start: start}, true
		}
		return token.Token{Category: token.IDENTIFIER, Start: start}, true
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		l.readNumber()
		return token.Token{Category: token.NUMERIC_CONSTANT, Start: start}, true
	case isLetter(l.ch) || l.ch == '_':
		word := l.readIdentifier()
		if token.IsKeyword(word) {
			return token.Token{Category: token.KEYWORD, Start: start}, true
		}
		return token.Token{Category: token.IDENTIFIER, Start: start}, true
	case isOperator(l.ch):
		l.readOperator()
		return token.Token{Category: token.OPERATOR, Start: start}, true
	default:
		l.readChar()
		return token.Token{Category: token.ERROR, Start: start}, true
	}
}

// skipWhitespace advances past whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readLineComment consumes a -- comment up to (not including) the newline.
func (l *Lexer) readLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readBlockComment consumes a /* ... */ comment including the closing
// delimiter. Returns false if the comment is unterminated.
func (l *Lexer) readBlockComment() bool {
	l.readChar() // skip '/'
	l.readChar() // skip '*'

	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // skip '*'
			l.readChar() // skip '/'
			return true
		}
		l.readChar()
	}
	return false
}

// readQuoted consumes a quoted span delimited by quote, handling
// doubled-quote escapes. Returns false if the span is unterminated.
func (l *Lexer) readQuoted(quote byte) bool {
	l.readChar() // skip opening quote

	for l.ch != 0 {
		if l.ch == quote {
			if l.peekChar() == quote {
				// Doubled quote escape
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing quote
			return true
		}
		l.readChar()
	}
	return false
}

// readIdentifier reads an unquoted identifier and returns it.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '$' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber() {
	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	} else if l.ch == '.' {
		// Leading-dot form already consumed digits; trailing dot like "1."
		l.readChar()
	}

	if l.ch == 'e' || l.ch == 'E' {
		if isDigit(l.peekChar()) || ((l.peekChar() == '+' || l.peekChar() == '-') && l.readPos+1 < len(l.input) && isDigit(l.input[l.readPos+1])) {
			l.readChar() // skip 'e' or 'E'
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
}

// twoCharOperators lists the multi-character operators recognized as a
// single token.
var twoCharOperators = map[string]struct{}{
	"<=": {}, ">=": {}, "<>": {}, "!=": {}, "||": {}, "::": {},
	"->": {}, "<<": {}, ">>": {}, "=>": {},
}

// readOperator consumes one operator, preferring a two-character form.
func (l *Lexer) readOperator() {
	if l.readPos < len(l.input) {
		pair := l.input[l.pos : l.readPos+1]
		if _, ok := twoCharOperators[pair]; ok {
			l.readChar()
			l.readChar()
			return
		}
	}
	l.readChar()
}

// isLetter returns true if ch is a letter.
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isOperator returns true if ch is an operator or punctuation character.
func isOperator(ch byte) bool {
	return strings.IndexByte("+-*/%=<>!|.,()[]{}:;?@#$^~&", ch) >= 0
}

// Tokenize returns all tokens from the input in source order. It never
// fails; unclassifiable spans yield ERROR tokens.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

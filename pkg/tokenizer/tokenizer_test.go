package tokenizer

import (
	"testing"

	"github.com/leapstack-labs/sqlprobe/pkg/token"
)

type tok struct {
	cat   token.Category
	start int
}

func checkTokens(t *testing.T, input string, want []tok) {
	t.Helper()
	got := Tokenize(input)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %d tokens, want %d: %v", input, len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Category != w.cat || got[i].Start != w.start {
			t.Errorf("token %d = {%s, %d}, want {%s, %d}",
				i, got[i].Category, got[i].Start, w.cat, w.start)
		}
	}
}

func TestTokenizeSimpleSelect(t *testing.T) {
	checkTokens(t, "SELECT * FROM users WHERE id = 1", []tok{
		{token.KEYWORD, 0},
		{token.OPERATOR, 7},
		{token.KEYWORD, 9},
		{token.IDENTIFIER, 14},
		{token.KEYWORD, 20},
		{token.IDENTIFIER, 26},
		{token.OPERATOR, 29},
		{token.NUMERIC_CONSTANT, 31},
	})
}

func TestTokenizeKeywordCaseInsensitive(t *testing.T) {
	checkTokens(t, "select From WHERE", []tok{
		{token.KEYWORD, 0},
		{token.KEYWORD, 7},
		{token.KEYWORD, 12},
	})
}

func TestTokenizeLineComment(t *testing.T) {
	checkTokens(t, "-- hi\nSELECT 1", []tok{
		{token.COMMENT, 0},
		{token.KEYWORD, 6},
		{token.NUMERIC_CONSTANT, 13},
	})
}

func TestTokenizeBlockComment(t *testing.T) {
	checkTokens(t, "/*x*/1", []tok{
		{token.COMMENT, 0},
		{token.NUMERIC_CONSTANT, 5},
	})
}

func TestTokenizeUnterminatedBlockComment(t *testing.T) {
	checkTokens(t, "SELECT /* oops", []tok{
		{token.KEYWORD, 0},
		{token.ERROR, 7},
	})
}

func TestTokenizeStrings(t *testing.T) {
	checkTokens(t, "SELECT 'it''s'", []tok{
		{token.KEYWORD, 0},
		{token.STRING_CONSTANT, 7},
	})
}

func TestTokenizeUnterminatedString(t *testing.T) {
	checkTokens(t, "SELECT 'abc", []tok{
		{token.KEYWORD, 0},
		{token.ERROR, 7},
	})
}

func TestTokenizeQuotedIdentifier(t *testing.T) {
	checkTokens(t, `SELECT "a""b" FROM t`, []tok{
		{token.KEYWORD, 0},
		{token.IDENTIFIER, 7},
		{token.KEYWORD, 14},
		{token.IDENTIFIER, 19},
	})
}

func TestTokenizeMultiCharOperators(t *testing.T) {
	checkTokens(t, "a <= 1", []tok{
		{token.IDENTIFIER, 0},
		{token.OPERATOR, 2},
		{token.NUMERIC_CONSTANT, 5},
	})
	checkTokens(t, "a||b", []tok{
		{token.IDENTIFIER, 0},
		{token.OPERATOR, 1},
		{token.IDENTIFIER, 3},
	})
}

func TestTokenizeNumbers(t *testing.T) {
	checkTokens(t, "1 45.67 1e10 .5 1E-5", []tok{
		{token.NUMERIC_CONSTANT, 0},
		{token.NUMERIC_CONSTANT, 2},
		{token.NUMERIC_CONSTANT, 8},
		{token.NUMERIC_CONSTANT, 13},
		{token.NUMERIC_CONSTANT, 16},
	})
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want no tokens", got)
	}
	if got := Tokenize("   \n\t "); len(got) != 0 {
		t.Errorf("Tokenize(whitespace) = %v, want no tokens", got)
	}
}

// Token start offsets are non-decreasing and bounded by len(input),
// for well-formed and malformed input alike.
func TestTokenizeOffsetsMonotonic(t *testing.T) {
	inputs := []string{
		"SELECT * FROM users WHERE id = 1",
		"INSERT INTO t VALUES (1, 'a'), (2, 'b')",
		"SELECT 'unterminated",
		"/* unterminated",
		"\x01\x02 weird \xff bytes",
		"a.b.c >= 1.5e3 AND x IN (1,2,3) -- tail",
	}

	for _, input := range inputs {
		prev := -1
		for i, tk := range Tokenize(input) {
			if tk.Start < prev {
				t.Errorf("input %q: token %d start %d < previous %d", input, i, tk.Start, prev)
			}
			if tk.Start < 0 || tk.Start >= len(input) {
				t.Errorf("input %q: token %d start %d out of range", input, i, tk.Start)
			}
			prev = tk.Start
		}
	}
}

func TestLexerStreaming(t *testing.T) {
	l := New("SELECT 1")
	tk, ok := l.Next()
	if !ok || tk.Category != token.KEYWORD {
		t.Fatalf("first Next() = %v, %v", tk, ok)
	}
	tk, ok = l.Next()
	if !ok || tk.Category != token.NUMERIC_CONSTANT {
		t.Fatalf("second Next() = %v, %v", tk, ok)
	}
	if _, ok := l.Next(); ok {
		t.Error("Next() after end should report exhaustion")
	}
}

package tokenizer

import "testing"

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no comments",
			input: "SELECT * FROM t",
			want:  "SELECT * FROM t",
		},
		{
			name:  "line comment keeps newline",
			input: "SELECT 1 -- pick one\nFROM t",
			want:  "SELECT 1 \nFROM t",
		},
		{
			name:  "line comment at end of input",
			input: "SELECT 1 -- trailing",
			want:  "SELECT 1 ",
		},
		{
			name:  "block comment",
			input: "SELECT /* the answer */ 42",
			want:  "SELECT  42",
		},
		{
			name:  "block comment spanning lines",
			input: "SELECT 1\n/* a\nb\nc */\nFROM t",
			want:  "SELECT 1\n\nFROM t",
		},
		{
			name:  "dashes inside string literal",
			input: "SELECT '--not a comment'",
			want:  "SELECT '--not a comment'",
		},
		{
			name:  "block marker inside string literal",
			input: "SELECT '/* keep */'",
			want:  "SELECT '/* keep */'",
		},
		{
			name:  "escaped quote inside string",
			input: "SELECT 'it''s -- fine' -- gone",
			want:  "SELECT 'it''s -- fine' ",
		},
		{
			name:  "double quoted identifier",
			input: `SELECT "weird--name" FROM t`,
			want:  `SELECT "weird--name" FROM t`,
		},
		{
			name:  "unterminated string copied verbatim",
			input: "SELECT 'abc -- x",
			want:  "SELECT 'abc -- x",
		},
		{
			name:  "unterminated block comment truncates",
			input: "SELECT /* oops",
			want:  "SELECT ",
		},
		{
			name:  "single dash is not a comment",
			input: "SELECT a - b",
			want:  "SELECT a - b",
		},
		{
			name:  "single slash is not a comment",
			input: "SELECT a / b",
			want:  "SELECT a / b",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComments(tt.input); got != tt.want {
				t.Errorf("StripComments(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripCommentsIdempotent(t *testing.T) {
	inputs := []string{
		"SELECT 1 -- c\nFROM t /* b */ WHERE x = '--s'",
		"-- only a comment",
		"/* only a block */",
		"SELECT 'it''s' FROM t",
		"no comments at all",
		"SELECT /* nested -- dash */ 1",
	}

	for _, input := range inputs {
		once := StripComments(input)
		twice := StripComments(once)
		if once != twice {
			t.Errorf("StripComments not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

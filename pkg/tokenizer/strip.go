package tokenizer

import "strings"

// stripState is the lexical state of the comment stripper.
type stripState int

const (
	stateNormal stripState = iota
	stateLineComment
	stateBlockComment
	stateString
)

// StripComments removes line and block comments from SQL text while
// leaving string literals untouched. Line structure is preserved: the
// newline terminating a line comment is kept. Unterminated strings and
// comments truncate silently at end of input. The result is stable
// under repeated application.
func StripComments(input string) string {
	var out strings.Builder
	out.Grow(len(input))

	state := stateNormal
	var quote byte

	for i := 0; i < len(input); i++ {
		ch := input[i]

		switch state {
		case stateNormal:
			switch {
			case ch == '\'' || ch == '"':
				state = stateString
				quote = ch
				out.WriteByte(ch)
			case ch == '-' && i+1 < len(input) && input[i+1] == '-':
				state = stateLineComment
				i++ // both dashes consumed, not copied
			case ch == '/' && i+1 < len(input) && input[i+1] == '*':
				state = stateBlockComment
				i++
			default:
				out.WriteByte(ch)
			}

		case stateString:
			out.WriteByte(ch)
			if ch == quote {
				if i+1 < len(input) && input[i+1] == quote {
					// Escaped quote, copy the second half too
					out.WriteByte(quote)
					i++
				} else {
					state = stateNormal
				}
			}

		case stateLineComment:
			if ch == '\n' {
				out.WriteByte(ch)
				state = stateNormal
			}

		case stateBlockComment:
			if ch == '*' && i+1 < len(input) && input[i+1] == '/' {
				state = stateNormal
				i++
			}
		}
	}

	return out.String()
}

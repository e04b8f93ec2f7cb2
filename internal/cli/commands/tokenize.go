package commands

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlprobe/pkg/token"
	"github.com/leapstack-labs/sqlprobe/pkg/tokenizer"
	"github.com/spf13/cobra"
)

// TokenizeOptions holds options for the tokenize command.
type TokenizeOptions struct {
	File string // Read SQL from this file instead of args/stdin
}

// NewTokenizeCommand creates the tokenize command.
func NewTokenizeCommand() *cobra.Command {
	opts := &TokenizeOptions{}
	cmd := &cobra.Command{
		Use:   "tokenize [sql]",
		Short: "Tokenize SQL into categorized tokens",
		Long: `Scan SQL text and print each token with its category and byte offset.

Categories are keyword, identifier, numeric constant, string constant,
operator, comment, and error. The scanner never fails: bytes it cannot
classify come back as error tokens.`,
		Example: `  # Tokenize an inline statement
  sqlprobe tokenize "SELECT id FROM users"

  # Tokenize a file
  sqlprobe tokenize --file query.sql

  # Tokenize from stdin
  echo "SELECT 1" | sqlprobe tokenize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from file")

	return cmd
}

func runTokenize(cmd *cobra.Command, args []string, opts *TokenizeOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	sql, err := readSQL(cmd, args, opts.File)
	if err != nil {
		return err
	}

	tokens := tokenizer.Tokenize(sql)

	if r.JSONEnabled() {
		type jsonToken struct {
			Category string `json:"category"`
			Start    int    `json:"start"`
			Text     string `json:"text"`
		}
		out := make([]jsonToken, 0, len(tokens))
		for i, tok := range tokens {
			out = append(out, jsonToken{
				Category: tok.Category.String(),
				Start:    tok.Start,
				Text:     tokenText(sql, tokens, i),
			})
		}
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(tokens))
	for i, tok := range tokens {
		rows = append(rows, []string{
			strconv.Itoa(tok.Start),
			tok.Category.String(),
			tokenText(sql, tokens, i),
		})
	}
	r.Table([]string{"START", "CATEGORY", "TEXT"}, rows)
	return nil
}

// tokenText recovers the source text of token i by slicing up to the
// start of the next token. Tokens carry only their start offset.
func tokenText(sql string, tokens []token.Token, i int) string {
	start := tokens[i].Start
	end := len(sql)
	if i+1 < len(tokens) {
		end = tokens[i+1].Start
	}
	return strings.TrimRight(sql[start:end], " \t\n\r")
}

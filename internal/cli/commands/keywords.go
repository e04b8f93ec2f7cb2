package commands

import (
	"strconv"

	"github.com/leapstack-labs/sqlprobe/pkg/token"
	"github.com/spf13/cobra"
)

// NewKeywordsCommand creates the keywords command.
func NewKeywordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords [word...]",
		Short: "List SQL keywords or test words against them",
		Long: `Without arguments, print every reserved SQL keyword the scanner
recognizes. With arguments, report for each word whether it is a
keyword. Matching is case-insensitive.`,
		Example: `  # Full keyword list
  sqlprobe keywords

  # Test candidate identifiers
  sqlprobe keywords select my_column qualify`,
		RunE: runKeywords,
	}

	return cmd
}

func runKeywords(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if len(args) == 0 {
		words := token.Keywords()
		if r.JSONEnabled() {
			return r.JSON(words)
		}
		rows := make([][]string, 0, len(words))
		for _, w := range words {
			rows = append(rows, []string{w})
		}
		r.Table([]string{"KEYWORD"}, rows)
		return nil
	}

	if r.JSONEnabled() {
		out := make(map[string]bool, len(args))
		for _, w := range args {
			out[w] = token.IsKeyword(w)
		}
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(args))
	for _, w := range args {
		rows = append(rows, []string{w, strconv.FormatBool(token.IsKeyword(w))})
	}
	r.Table([]string{"WORD", "KEYWORD"}, rows)
	return nil
}

package commands

import (
	"strconv"

	"github.com/leapstack-labs/sqlprobe/pkg/inspect"
	"github.com/spf13/cobra"
)

// StatementsOptions holds options for the statements command.
type StatementsOptions struct {
	File  string // Read SQL from this file instead of args/stdin
	Count bool   // Print only the statement count
}

// NewStatementsCommand creates the statements command.
func NewStatementsCommand() *cobra.Command {
	opts := &StatementsOptions{}
	cmd := &cobra.Command{
		Use:   "statements [sql]",
		Short: "Split SQL into individual statements",
		Long: `Parse SQL text and list every statement it contains.

The whole input is parsed with a full SQL grammar. If any statement
fails to parse, nothing is returned and the parse error is reported.`,
		Example: `  # Split a script
  sqlprobe statements "SELECT 1; SELECT 2"

  # Count statements in a file
  sqlprobe statements --file script.sql --count`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatements(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from file")
	cmd.Flags().BoolVar(&opts.Count, "count", false, "Print only the statement count")

	return cmd
}

func runStatements(cmd *cobra.Command, args []string, opts *StatementsOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	sql, err := readSQL(cmd, args, opts.File)
	if err != nil {
		return err
	}

	stmts, err := inspect.Split(sql)
	if err != nil {
		return err
	}

	if opts.Count {
		if r.JSONEnabled() {
			return r.JSON(map[string]int{"count": len(stmts)})
		}
		r.Textf("%d\n", len(stmts))
		return nil
	}

	if r.JSONEnabled() {
		type jsonStatement struct {
			Index int    `json:"index"`
			Type  string `json:"type"`
		}
		out := make([]jsonStatement, 0, len(stmts))
		for _, s := range stmts {
			out = append(out, jsonStatement{Index: s.Index, Type: s.Type()})
		}
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(stmts))
	for _, s := range stmts {
		rows = append(rows, []string{strconv.Itoa(s.Index), s.Type()})
	}
	r.Table([]string{"INDEX", "TYPE"}, rows)
	return nil
}

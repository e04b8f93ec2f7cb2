package commands

import (
	"strconv"

	"github.com/leapstack-labs/sqlprobe/pkg/inspect"
	"github.com/spf13/cobra"
)

// ColumnsOptions holds options for the columns command.
type ColumnsOptions struct {
	File      string // Read SQL from this file instead of args/stdin
	Statement int    // Restrict to one statement by index, -1 for all
}

// NewColumnsCommand creates the columns command.
func NewColumnsCommand() *cobra.Command {
	opts := &ColumnsOptions{}
	cmd := &cobra.Command{
		Use:   "columns [sql]",
		Short: "List projected column names in SQL",
		Long: `Parse SQL and list the output column names of each SELECT.

Names resolve in order: explicit alias, then column reference, then
function name. Expressions without any of those get positional names
like col0.`,
		Example: `  # Aliases win
  sqlprobe columns "SELECT id AS user_id, upper(name) FROM users"

  # Anonymous expressions get positional names
  sqlprobe columns "SELECT a + b, 42 FROM t"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColumns(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from file")
	cmd.Flags().IntVarP(&opts.Statement, "statement", "s", -1, "Restrict to the statement at this index")

	return cmd
}

func runColumns(cmd *cobra.Command, args []string, opts *ColumnsOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	sql, err := readSQL(cmd, args, opts.File)
	if err != nil {
		return err
	}

	stmts, err := splitSelected(sql, opts.Statement)
	if err != nil {
		return err
	}

	var projs []inspect.Projection
	for _, s := range stmts {
		projs = append(projs, inspect.Columns(s)...)
	}

	if r.JSONEnabled() {
		type jsonProjection struct {
			Index int    `json:"index"`
			Name  string `json:"name"`
		}
		out := make([]jsonProjection, 0, len(projs))
		for _, p := range projs {
			out = append(out, jsonProjection{Index: p.Index, Name: p.Name})
		}
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(projs))
	for _, p := range projs {
		rows = append(rows, []string{strconv.Itoa(p.Index), p.Name})
	}
	r.Table([]string{"INDEX", "NAME"}, rows)
	return nil
}

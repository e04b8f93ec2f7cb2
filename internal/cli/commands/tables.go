package commands

import (
	"github.com/leapstack-labs/sqlprobe/pkg/inspect"
	"github.com/spf13/cobra"
)

// TablesOptions holds options for the tables command.
type TablesOptions struct {
	File      string // Read SQL from this file instead of args/stdin
	Statement int    // Restrict to one statement by index, -1 for all
}

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	opts := &TablesOptions{}
	cmd := &cobra.Command{
		Use:   "tables [sql]",
		Short: "List table references in SQL",
		Long: `Parse SQL and list every table reference with the clause it
appears in (FROM, JOIN, INSERT, and so on). Schema qualifiers are
split out into their own column.`,
		Example: `  # Tables in a join
  sqlprobe tables "SELECT * FROM orders o JOIN customers c ON o.cid = c.id"

  # Tables across a script
  sqlprobe tables --file etl.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTables(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from file")
	cmd.Flags().IntVarP(&opts.Statement, "statement", "s", -1, "Restrict to the statement at this index")

	return cmd
}

func runTables(cmd *cobra.Command, args []string, opts *TablesOptions) error {
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

	var refs []inspect.TableRef
	for _, s := range stmts {
		refs = append(refs, inspect.Tables(s)...)
	}

	if r.JSONEnabled() {
		type jsonTable struct {
			Schema  string `json:"schema,omitempty"`
			Table   string `json:"table"`
			Context string `json:"context"`
		}
		out := make([]jsonTable, 0, len(refs))
		for _, ref := range refs {
			out = append(out, jsonTable{
				Schema:  ref.Schema,
				Table:   ref.Table,
				Context: string(ref.Context),
			})
		}
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, []string{ref.Schema, ref.Table, string(ref.Context)})
	}
	r.Table([]string{"SCHEMA", "TABLE", "CONTEXT"}, rows)
	return nil
}

package commands

import (
	"github.com/leapstack-labs/sqlprobe/pkg/inspect"
	"github.com/spf13/cobra"
)

// WhereOptions holds options for the where command.
type WhereOptions struct {
	File      string // Read SQL from this file instead of args/stdin
	Statement int    // Restrict to one statement by index, -1 for all
}

// NewWhereCommand creates the where command.
func NewWhereCommand() *cobra.Command {
	opts := &WhereOptions{}
	cmd := &cobra.Command{
		Use:   "where [sql]",
		Short: "List WHERE clause conditions in SQL",
		Long: `Parse SQL and break the WHERE clause into column/operator/value
triples. AND and OR chains are flattened; comparison operators the
analysis does not model are reported as "?".`,
		Example: `  # Simple predicate
  sqlprobe where "SELECT * FROM users WHERE age > 21 AND city = 'Oslo'"

  # IN lists
  sqlprobe where "DELETE FROM logs WHERE level IN ('debug', 'trace')"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhere(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from file")
	cmd.Flags().IntVarP(&opts.Statement, "statement", "s", -1, "Restrict to the statement at this index")

	return cmd
}

func runWhere(cmd *cobra.Command, args []string, opts *WhereOptions) error {
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

	var conds []inspect.Condition
	for _, s := range stmts {
		conds = append(conds, inspect.Where(s)...)
	}

	if r.JSONEnabled() {
		type jsonCondition struct {
			Column   string `json:"column"`
			Operator string `json:"operator"`
			Value    string `json:"value"`
		}
		out := make([]jsonCondition, 0, len(conds))
		for _, c := range conds {
			out = append(out, jsonCondition{Column: c.Column, Operator: c.Operator, Value: c.Value})
		}
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(conds))
	for _, c := range conds {
		rows = append(rows, []string{c.Column, c.Operator, c.Value})
	}
	r.Table([]string{"COLUMN", "OPERATOR", "VALUE"}, rows)
	return nil
}

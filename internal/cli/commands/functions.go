package commands

import (
	"github.com/leapstack-labs/sqlprobe/pkg/inspect"
	"github.com/spf13/cobra"
)

// FunctionsOptions holds options for the functions command.
type FunctionsOptions struct {
	File      string // Read SQL from this file instead of args/stdin
	Statement int    // Restrict to one statement by index, -1 for all
}

// NewFunctionsCommand creates the functions command.
func NewFunctionsCommand() *cobra.Command {
	opts := &FunctionsOptions{}
	cmd := &cobra.Command{
		Use:   "functions [sql]",
		Short: "List function and operator usage in SQL",
		Long: `Parse SQL and list every function call, classified as scalar,
aggregate, or operator. Arithmetic and string operators count as
functions too.`,
		Example: `  # Functions in a projection
  sqlprobe functions "SELECT upper(name), count(DISTINCT id) FROM users"

  # Operators show their spelling
  sqlprobe functions "SELECT price * quantity FROM orders"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunctions(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from file")
	cmd.Flags().IntVarP(&opts.Statement, "statement", "s", -1, "Restrict to the statement at this index")

	return cmd
}

func runFunctions(cmd *cobra.Command, args []string, opts *FunctionsOptions) error {
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

	var funcs []inspect.FunctionRef
	for _, s := range stmts {
		funcs = append(funcs, inspect.Functions(s)...)
	}

	if r.JSONEnabled() {
		type jsonFunction struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
		}
		out := make([]jsonFunction, 0, len(funcs))
		for _, fn := range funcs {
			out = append(out, jsonFunction{Name: fn.Name, Kind: string(fn.Kind)})
		}
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(funcs))
	for _, fn := range funcs {
		rows = append(rows, []string{fn.Name, string(fn.Kind)})
	}
	r.Table([]string{"NAME", "KIND"}, rows)
	return nil
}

package commands

import (
	"fmt"

	"github.com/leapstack-labs/sqlprobe/pkg/tokenizer"
	"github.com/spf13/cobra"
)

// StripOptions holds options for the strip command.
type StripOptions struct {
	File string // Read SQL from this file instead of args/stdin
}

// NewStripCommand creates the strip command.
func NewStripCommand() *cobra.Command {
	opts := &StripOptions{}
	cmd := &cobra.Command{
		Use:   "strip [sql]",
		Short: "Remove comments from SQL",
		Long: `Remove line and block comments from SQL text and print the result.
Comment markers inside string literals are left alone, and the newline
that ends a line comment is kept so line numbers stay stable.`,
		Example: `  # Strip a file in place of cat
  sqlprobe strip --file annotated.sql

  # Pipe through
  cat schema.sql | sqlprobe strip`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read SQL from file")

	return cmd
}

func runStrip(cmd *cobra.Command, args []string, opts *StripOptions) error {
	sql, err := readSQL(cmd, args, opts.File)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), tokenizer.StripComments(sql))
	return err
}

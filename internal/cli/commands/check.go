package commands

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/sqlprobe/pkg/inspect"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Jobs int // Maximum number of files validated concurrently
}

// checkResult is the outcome of validating one file.
type checkResult struct {
	Path       string `json:"path"`
	Statements int    `json:"statements"`
	Error      string `json:"error,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate SQL files",
		Long: `Parse each file with the full SQL grammar and report whether it is
valid, along with its statement count. Files are checked concurrently.
The command exits non-zero if any file fails.`,
		Example: `  # Check a few files
  sqlprobe check schema.sql seed.sql

  # Check everything in a directory
  sqlprobe check migrations/*.sql`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 8, "Maximum number of files checked concurrently")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	results := make([]checkResult, len(args))

	g := new(errgroup.Group)
	g.SetLimit(opts.Jobs)
	for i, path := range args {
		g.Go(func() error {
			logger.Debug("checking file", "path", path)
			results[i] = checkFile(path)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
	}

	if r.JSONEnabled() {
		if err := r.JSON(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Error != "" {
				r.Errorf("%s: %s\n", res.Path, res.Error)
				continue
			}
			r.Textf("%s: ok (%d statements)\n", res.Path, res.Statements)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}

func checkFile(path string) checkResult {
	res := checkResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	stmts, err := inspect.Split(string(data))
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Statements = len(stmts)
	return res
}

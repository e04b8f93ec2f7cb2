package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leapstack-labs/sqlprobe/pkg/inspect"
	"github.com/spf13/cobra"
)

// readSQL resolves the SQL text for a command. Positional arguments win,
// then --file, then stdin.
func readSQL(cmd *cobra.Command, args []string, filePath string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no SQL provided (pass it as an argument, via --file, or on stdin)")
	}
	return string(data), nil
}

// splitSelected parses sql and narrows the result to statement n when
// n is non-negative.
func splitSelected(sql string, n int) ([]inspect.Statement, error) {
	stmts, err := inspect.Split(sql)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return stmts, nil
	}
	if n >= len(stmts) {
		return nil, fmt.Errorf("statement %d out of range (input has %d)", n, len(stmts))
	}
	return stmts[n : n+1], nil
}

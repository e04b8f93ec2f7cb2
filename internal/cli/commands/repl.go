package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/sqlprobe/pkg/inspect"
	"github.com/leapstack-labs/sqlprobe/pkg/token"
	"github.com/leapstack-labs/sqlprobe/pkg/tokenizer"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive SQL inspection shell",
		Long: `Start an interactive shell. Enter SQL terminated by a semicolon to
parse it, then use dot-commands like .tables and .where to inspect the
most recent input from different angles.`,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	historyFile := filepath.Join(os.TempDir(), "sqlprobe_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sqlprobe> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "sqlprobe interactive shell")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	var multiLineBuffer strings.Builder
	var lastSQL string

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			multiLineBuffer.Reset()
			rl.SetPrompt("sqlprobe> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				break
			}
			handleDotCommand(cmd, r, line, lastSQL)
			continue
		}

		// Accumulate multi-line SQL until semicolon
		multiLineBuffer.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			multiLineBuffer.WriteString(" ")
			rl.SetPrompt("    ...> ")
			continue
		}
		rl.SetPrompt("sqlprobe> ")

		sql := multiLineBuffer.String()
		multiLineBuffer.Reset()

		stmts, err := inspect.Split(sql)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		lastSQL = sql

		for _, s := range stmts {
			tables := inspect.Tables(s)
			r.Textf("[%d] %s (%d table refs)\n", s.Index, s.Type(), len(tables))
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

// handleDotCommand runs a dot-command against the most recent SQL input.
func handleDotCommand(cmd *cobra.Command, r replRenderer, line, lastSQL string) {
	command := strings.ToLower(strings.Fields(line)[0])

	if command == ".help" {
		printREPLHelp(cmd.OutOrStdout())
		return
	}

	if lastSQL == "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No SQL entered yet")
		return
	}

	switch command {
	case ".tables":
		forEachStatement(cmd, lastSQL, func(s inspect.Statement) {
			for _, ref := range inspect.Tables(s) {
				name := ref.Table
				if ref.Schema != "" {
					name = ref.Schema + "." + name
				}
				r.Textf("%s\t%s\n", name, ref.Context)
			}
		})

	case ".functions":
		forEachStatement(cmd, lastSQL, func(s inspect.Statement) {
			for _, fn := range inspect.Functions(s) {
				r.Textf("%s\t%s\n", fn.Name, fn.Kind)
			}
		})

	case ".where":
		forEachStatement(cmd, lastSQL, func(s inspect.Statement) {
			for _, c := range inspect.Where(s) {
				r.Textf("%s %s %s\n", c.Column, c.Operator, c.Value)
			}
		})

	case ".columns":
		forEachStatement(cmd, lastSQL, func(s inspect.Statement) {
			for _, p := range inspect.Columns(s) {
				r.Textf("%d\t%s\n", p.Index, p.Name)
			}
		})

	case ".tokens":
		for _, tok := range tokenizer.Tokenize(lastSQL) {
			r.Textf("%d\t%s\n", tok.Start, tok.Category)
		}

	case ".keywords":
		for _, w := range token.Keywords() {
			r.Textf("%s\n", w)
		}

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (try .help)\n", command)
	}
}

// replRenderer is the slice of Renderer the REPL needs. Narrowed for tests.
type replRenderer interface {
	Textf(format string, args ...any)
}

func forEachStatement(cmd *cobra.Command, sql string, fn func(inspect.Statement)) {
	stmts, err := inspect.Split(sql)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	for _, s := range stmts {
		fn(s)
	}
}

func printREPLHelp(w io.Writer) {
	help := `Commands:
  .tables      Table references in the last input
  .functions   Function and operator usage in the last input
  .where       WHERE conditions in the last input
  .columns     Projected column names in the last input
  .tokens      Token stream of the last input
  .keywords    List reserved SQL keywords
  .help        Show this help
  .quit        Exit the shell

Enter SQL terminated by ; to parse it.`
	_, _ = fmt.Fprintln(w, help)
}

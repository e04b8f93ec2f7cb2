// Package cli provides the command-line interface for sqlprobe.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/sqlprobe/internal/cli/commands"
	"github.com/leapstack-labs/sqlprobe/internal/cli/config"
	"github.com/leapstack-labs/sqlprobe/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// rendererKey is used to store renderer in context.
type rendererKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlprobe",
		Short: "sqlprobe - SQL introspection toolkit",
		Long: `sqlprobe tokenizes, splits, and analyzes SQL without executing it.

It scans SQL into categorized tokens, strips comments, splits scripts
into statements with a full grammar, and extracts tables, functions,
WHERE conditions, and projected columns from each statement.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			// Store config in context
			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)

			// Create and store renderer based on output mode
			mode := output.Mode(cfg.OutputFormat)
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
			ctx = context.WithValue(ctx, rendererKey{}, renderer)

			// Create and store logger; verbose enables debug output
			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			// Print config file used (if verbose)
			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
SQL introspection toolkit built with Go
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sqlprobe.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|json)")
	rootCmd.PersistentFlags().String("color", "", "Color mode (auto|always|never)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Register completion for color flag
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewTokenizeCommand())
	rootCmd.AddCommand(commands.NewStatementsCommand())
	rootCmd.AddCommand(commands.NewTablesCommand())
	rootCmd.AddCommand(commands.NewFunctionsCommand())
	rootCmd.AddCommand(commands.NewWhereCommand())
	rootCmd.AddCommand(commands.NewColumnsCommand())
	rootCmd.AddCommand(commands.NewKeywordsCommand())
	rootCmd.AddCommand(commands.NewStripCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewHighlightCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	return &config.Config{
		OutputFormat: config.DefaultOutput,
		Color:        config.DefaultColor,
	}
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	// Return default renderer if none in context
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sqlprobe.

To load completions:

Bash:
  $ source <(sqlprobe completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ sqlprobe completion bash > /etc/bash_completion.d/sqlprobe
  # macOS:
  $ sqlprobe completion bash > $(brew --prefix)/etc/bash_completion.d/sqlprobe

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ sqlprobe completion zsh > "${fpath[1]}/_sqlprobe"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ sqlprobe completion fish | source

  # To load completions for each session, execute once:
  $ sqlprobe completion fish > ~/.config/fish/completions/sqlprobe.fish

PowerShell:
  PS> sqlprobe completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> sqlprobe completion powershell > sqlprobe.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}

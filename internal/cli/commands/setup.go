package commands

import (
	"log/slog"
	"os"

	"github.com/leapstack-labs/sqlprobe/internal/cli/config"
	"github.com/leapstack-labs/sqlprobe/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's config,
// logger, and output streams.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	outputFormat := getEnvOrDefault("SQLPROBE_OUTPUT", config.DefaultOutput)
	color := getEnvOrDefault("SQLPROBE_COLOR", config.DefaultColor)
	verbose := os.Getenv("SQLPROBE_VERBOSE") == "true"

	return &config.Config{
		OutputFormat: outputFormat,
		Color:        color,
		Verbose:      verbose,
	}
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Package commands implements the prosekit subcommands.
package commands

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/draftstack-labs/prosekit/internal/cli/config"
	"github.com/draftstack-labs/prosekit/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's config,
// logger, and output settings.
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
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	columns := getEnvIntOrDefault("PROSEKIT_COLUMNS", config.DefaultColumns)
	spacing := getEnvIntOrDefault("PROSEKIT_PARAGRAPH_SPACING", config.DefaultParagraphSpacing)
	sourceDir := getEnvOrDefault("PROSEKIT_SOURCE_DIR", config.DefaultSourceDir)
	texDir := getEnvOrDefault("PROSEKIT_TEX_DIR", config.DefaultTexDir)
	verbose := os.Getenv("PROSEKIT_VERBOSE") == "true"
	outputFormat := getEnvOrDefault("PROSEKIT_OUTPUT", config.DefaultOutput)

	return &config.Config{
		Columns:          columns,
		ParagraphSpacing: spacing,
		SourceDir:        sourceDir,
		TexDir:           texDir,
		Verbose:          verbose,
		OutputFormat:     outputFormat,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

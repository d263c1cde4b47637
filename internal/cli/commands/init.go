package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/draftstack-labs/prosekit/internal/cli/config"
	"github.com/draftstack-labs/prosekit/internal/cli/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new book project",
		Long: `Initialize a new book project with default layout and configuration.

This creates:
  - prosekit.yaml configuration file
  - manuscript/ directory with a starter chapter
  - Makefile wiring format, compile, and pdflatex together`,
		Example: `  # Initialize in current directory
  prosekit init

  # Initialize in a new directory
  prosekit init my-novel

  # Force overwrite existing config
  prosekit init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := getConfig()
			mode := output.Mode(cfg.OutputFormat)
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, config.DefaultConfigName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.DefaultConfigName)
	}

	if err := writeStarterConfig(configPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.DefaultConfigName, err)
	}

	files, err := installTemplate("book", dir, force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	for _, workDir := range []string{config.DefaultFormatDir, config.DefaultTexDir} {
		if err := os.MkdirAll(filepath.Join(dir, workDir), 0o750); err != nil {
			return fmt.Errorf("failed to create %s: %w", workDir, err)
		}
	}

	r.StatusLine(config.DefaultConfigName, "")
	for _, f := range files {
		r.StatusLine(f, "")
	}

	r.Println("")
	r.Success("Book project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Set author and title in prosekit.yaml")
	r.Println("  2. Write chapters in manuscript/")
	r.Println("  3. Run 'prosekit format manuscript/*.txt' after editing")
	r.Println("  4. Run 'prosekit compile book.tex' to build the book")

	return nil
}

// writeStarterConfig generates a prosekit.yaml with defaults filled in and
// the starter chapter already listed.
func writeStarterConfig(path string) error {
	starter := config.Config{
		Author:           "Your Name",
		Title:            "Working Title",
		Columns:          config.DefaultColumns,
		ParagraphSpacing: config.DefaultParagraphSpacing,
		SourceDir:        config.DefaultSourceDir,
		TexDir:           config.DefaultTexDir,
		Sources: []*config.SourceEntry{
			{Path: "manuscript/chapter-01.txt", Title: "Chapter One"},
		},
	}

	data, err := yaml.Marshal(&starter)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

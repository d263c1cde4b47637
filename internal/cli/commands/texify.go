package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/draftstack-labs/prosekit/internal/fsio"
	"github.com/draftstack-labs/prosekit/internal/tex"
	"github.com/spf13/cobra"
)

// NewTexifyCommand creates the texify command.
func NewTexifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texify <input> <output>",
		Short: "Convert a formatted chapter to a LaTeX fragment",
		Long: `Convert one formatted manuscript file to a LaTeX fragment.

Reserved characters are escaped, straight quotes become LaTeX quote pairs,
double hyphens become em dashes, and _underscored_ spans become italics.
The fragment is meant to be included from a book document; see the
compile command for producing the full document.`,
		Example: `  # Convert a chapter
  prosekit texify manuscript/chapter-01.txt .tex/chapter-01.tex`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTexify(cmd, args[0], args[1])
		},
	}

	return cmd
}

func runTexify(cmd *cobra.Command, input, outputPath string) error {
	cmdCtx := NewCommandContext(cmd)

	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	fragment := tex.Texify(string(content))

	err = fsio.WriteFileAtomic(outputPath, func(w io.Writer) error {
		_, werr := io.WriteString(w, fragment)
		return werr
	})
	if err != nil {
		return err
	}

	cmdCtx.Logger.Debug("texified", "input", input, "output", outputPath)
	if cmdCtx.Cfg.Verbose {
		cmdCtx.Renderer.StatusLine(outputPath, "written")
	}
	return nil
}

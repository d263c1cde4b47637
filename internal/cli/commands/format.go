package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/draftstack-labs/prosekit/internal/cli/config"
	"github.com/draftstack-labs/prosekit/internal/fsio"
	"github.com/draftstack-labs/prosekit/internal/reflow"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "format <file>...",
		Short: "Reflow manuscript files to one semantic unit per line",
		Long: `Reflow plain-text manuscript files in place.

Each paragraph is split at sentence and quotation boundaries, then wrapped
to the configured column width. Running format twice produces identical
output, so it is safe to run on every save.`,
		Example: `  # Format one chapter
  prosekit format manuscript/chapter-01.txt

  # Format the whole manuscript
  prosekit format manuscript/*.txt

  # Fail if any file would change (for CI)
  prosekit format --check manuscript/*.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, check)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Report files that would change without rewriting them")

	return cmd
}

func runFormat(cmd *cobra.Command, paths []string, check bool) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	g, _ := errgroup.WithContext(cmd.Context())
	changedByIdx := make([]bool, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			changed, err := formatFile(cfg, path, check)
			if err != nil {
				return err
			}
			changedByIdx[i] = changed
			logger.Debug("formatted", "path", path, "changed", changed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var changed int
	for i, path := range paths {
		if changedByIdx[i] {
			changed++
			if check {
				cmdCtx.Renderer.StatusLine(path, "would change")
			} else if cfg.Verbose {
				cmdCtx.Renderer.StatusLine(path, "rewritten")
			}
		}
	}

	if check && changed > 0 {
		return fmt.Errorf("%d of %d files would change", changed, len(paths))
	}
	return nil
}

// formatFile reflows one file in place. The result is produced in memory
// first; when it matches the current contents no write happens at all,
// which keeps watch mode from reacting to its own output.
func formatFile(cfg *config.Config, path string, check bool) (changed bool, err error) {
	formatted, err := formatToBuffer(cfg, path)
	if err != nil {
		return false, err
	}

	current, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if bytes.Equal(current, formatted) {
		return false, nil
	}
	if check {
		return true, nil
	}

	err = fsio.WriteFileAtomic(path, func(w io.Writer) error {
		_, werr := w.Write(formatted)
		return werr
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// formatToBuffer reflows the contents of path without touching the file.
func formatToBuffer(cfg *config.Config, path string) ([]byte, error) {
	f, err := reflow.New(reflow.Options{
		Columns:          cfg.Columns,
		ParagraphSpacing: cfg.ParagraphSpacing,
	})
	if err != nil {
		return nil, err
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = src.Close() }()

	var buf bytes.Buffer
	err = f.Format(src, func(line string) error {
		buf.WriteString(line)
		buf.WriteByte('\n')
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

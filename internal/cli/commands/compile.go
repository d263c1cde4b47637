package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/draftstack-labs/prosekit/internal/cli/config"
	"github.com/draftstack-labs/prosekit/internal/fsio"
	"github.com/draftstack-labs/prosekit/internal/tex"
	"github.com/draftstack-labs/prosekit/internal/vcs"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <output.tex>",
		Short: "Build the full LaTeX book document",
		Long: `Build the complete LaTeX document for the configured book.

Every source listed in prosekit.yaml is converted to a LaTeX fragment in
the tex directory, then assembled into a single document with title page,
table of contents, and part breaks. When the project is a git repository
the title page is followed by a revision stamp so printed drafts can be
traced back to a commit.`,
		Example: `  # Compile the book to book.tex
  prosekit compile book.tex

  # Then typeset it
  pdflatex book.tex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0])
		},
	}

	return cmd
}

func runCompile(cmd *cobra.Command, outputPath string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources configured; list chapters under 'sources' in %s", config.DefaultConfigName)
	}

	root := projectRoot()
	if err := os.MkdirAll(cfg.TexDir, 0o750); err != nil {
		return fmt.Errorf("create tex directory %s: %w", cfg.TexDir, err)
	}

	sources := make([]tex.Source, 0, len(cfg.Sources))
	seen := make(map[string]string, len(cfg.Sources))
	g, _ := errgroup.WithContext(cmd.Context())
	for _, entry := range cfg.Sources {
		if entry == nil {
			sources = append(sources, tex.Source{PartBreak: true})
			continue
		}
		src := tex.Source{Path: entry.Path, Title: entry.Title}
		sources = append(sources, src)

		input := resolveAgainst(root, entry.Path)
		fragment := chapterFragmentPath(cfg.TexDir, entry.Path)
		// Fragments are keyed by base name, so two chapters with the same
		// file name in different directories would silently overwrite each
		// other's fragment.
		if prev, ok := seen[fragment]; ok {
			return fmt.Errorf("chapter file name %s used by both %s and %s; chapter file names must be unique", filepath.Base(entry.Path), prev, entry.Path)
		}
		seen[fragment] = entry.Path
		g.Go(func() error {
			return texifyChapter(input, fragment)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	doc := &tex.Document{
		Author:     cfg.Author,
		Title:      cfg.Title,
		Header:     cfg.Header,
		Watermark:  cfg.Watermark,
		Sources:    sources,
		ChapterDir: cfg.TexDir,
	}

	// A missing repository just means no stamp page.
	if status, err := vcs.Describe(cmd.Context(), root); err == nil {
		doc.Revision = "Revision " + status.String()
	} else {
		logger.Debug("no revision stamp", "reason", err)
	}

	err := fsio.WriteFileAtomic(outputPath, func(w io.Writer) error {
		return doc.Compile(func(s string) error {
			_, werr := io.WriteString(w, s)
			return werr
		})
	})
	if err != nil {
		return err
	}

	logger.Debug("compiled", "output", outputPath, "chapters", len(sources))
	cmdCtx.Renderer.Success(fmt.Sprintf("Compiled %s", outputPath))
	return nil
}

func texifyChapter(input, output string) error {
	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	return fsio.WriteFileAtomic(output, func(w io.Writer) error {
		_, werr := io.WriteString(w, tex.Texify(string(content)))
		return werr
	})
}

// chapterFragmentPath mirrors the mapping the assembler uses to find
// converted chapters: base name, .txt swapped for .tex.
func chapterFragmentPath(texDir, sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = base[:len(base)-len(filepath.Ext(base))] + ".tex"
	return filepath.Join(texDir, base)
}

// projectRoot is the directory of the config file in use, or the working
// directory when running without one.
func projectRoot() string {
	if cfgFile := config.GetConfigFileUsed(); cfgFile != "" {
		return filepath.Dir(cfgFile)
	}
	return "."
}

func resolveAgainst(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewChaptersCommand creates the chapters command.
func NewChaptersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "List configured chapters with word and line counts",
		Long: `List every chapter in prosekit.yaml in compile order, with word and
line counts per chapter and totals for the whole manuscript. Part breaks
show up as dividers, the same way they will in the compiled book.`,
		Example: `  # Show the manuscript overview
  prosekit chapters`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChapters(cmd)
		},
	}

	return cmd
}

func runChapters(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	if len(cfg.Sources) == 0 {
		cmdCtx.Renderer.Println("No chapters configured.")
		return nil
	}

	root := projectRoot()

	t := table.NewWriter()
	t.SetOutputMirror(cmdCtx.Renderer.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Chapter", "Title", "Words", "Lines"})

	var totalWords, totalLines, n int
	for _, entry := range cfg.Sources {
		if entry == nil {
			t.AppendSeparator()
			continue
		}
		n++

		words, lines, err := countChapter(resolveAgainst(root, entry.Path))
		if err != nil {
			return err
		}
		totalWords += words
		totalLines += lines

		t.AppendRow(table.Row{n, entry.Path, entry.Title, words, lines})
	}

	t.AppendFooter(table.Row{"", "", "Total", totalWords, totalLines})
	t.Render()
	return nil
}

// countChapter returns the word and non-blank line counts of one chapter.
func countChapter(path string) (words, lines int, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read chapter %s: %w", path, err)
	}

	words = len(strings.Fields(string(content)))
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	return words, lines, nil
}

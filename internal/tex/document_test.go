package tex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeChapter(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600))
}

func compile(t *testing.T, d *Document) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, d.Compile(func(s string) error {
		b.WriteString(s)
		return nil
	}))
	return b.String()
}

func TestDocumentCompile(t *testing.T) {
	dir := t.TempDir()
	writeChapter(t, dir, "chapter-01.tex", "First chapter body.\n")
	writeChapter(t, dir, "chapter-02.tex", "Second chapter body.\n")

	d := &Document{
		Author:     "A. Writer",
		Title:      "The Book",
		ChapterDir: dir,
		Sources: []Source{
			{Path: "manuscript/chapter-01.txt", Title: "Beginnings"},
			{Path: "manuscript/chapter-02.txt"},
		},
	}
	out := compile(t, d)

	assert.Contains(t, out, "\\documentclass{book}\n")
	assert.Contains(t, out, "\\usepackage{indentfirst}\n")
	assert.Contains(t, out, "\\usepackage[T1]{fontenc}\n")
	assert.Contains(t, out, "\\usepackage{librebaskerville}\n")
	assert.Contains(t, out, "\\setcounter{chapter}{-1}\n")
	assert.Contains(t, out, "\\title{The Book}\n")
	assert.Contains(t, out, "\\author{A. Writer}\n")
	assert.Contains(t, out, "\\tableofcontents\n")
	assert.Contains(t, out, "\\chapter{Beginnings}\n")
	assert.Contains(t, out, "\\chapter{}\n")
	assert.Contains(t, out, "First chapter body.\n")
	assert.Contains(t, out, "Second chapter body.\n")
	assert.True(t, strings.HasSuffix(out, "\\end{document}\n"))

	// No part breaks configured: none inserted.
	assert.NotContains(t, out, "\\part{}")
	// No watermark, header, or revision: those blocks are absent.
	assert.NotContains(t, out, "draftwatermark")
	assert.NotContains(t, out, "fancyhdr")
	assert.NotContains(t, out, "\\vfill")
}

func TestDocumentCompileOptionalBlocks(t *testing.T) {
	dir := t.TempDir()
	writeChapter(t, dir, "ch.tex", "body\n")

	d := &Document{
		Author:     "A",
		Title:      "T",
		Header:     "My Draft",
		Watermark:  "DRAFT",
		Revision:   "abc123 (dirty)",
		ChapterDir: dir,
		Sources:    []Source{{Path: "ch.txt", Title: "One"}},
	}
	out := compile(t, d)

	assert.Contains(t, out, "\\usepackage{draftwatermark}\n")
	assert.Contains(t, out, "\\SetWatermarkText{DRAFT}\n")
	assert.Contains(t, out, "\\usepackage{fancyhdr}\n")
	assert.Contains(t, out, "\\fancyhead[L]{\\textit{My Draft}}\n")
	assert.Contains(t, out, "\nabc123 (dirty)\n")
	assert.Contains(t, out, "\\begin{center}\n")
}

func TestDocumentImplicitLeadingPartBreak(t *testing.T) {
	dir := t.TempDir()
	writeChapter(t, dir, "a.tex", "A\n")
	writeChapter(t, dir, "b.tex", "B\n")

	d := &Document{
		Author:     "A",
		Title:      "T",
		ChapterDir: dir,
		Sources: []Source{
			{Path: "a.txt"},
			{PartBreak: true},
			{Path: "b.txt"},
		},
	}
	out := compile(t, d)

	// One break configured mid-list means an implicit one opens the
	// document: two \part commands total, the first before chapter A.
	assert.Equal(t, 2, strings.Count(out, "\\part{}\n"))
	first := strings.Index(out, "\\part{}\n")
	chapterA := strings.Index(out, "A\n")
	assert.Less(t, first, chapterA)
}

func TestDocumentExplicitLeadingPartBreakNotDoubled(t *testing.T) {
	dir := t.TempDir()
	writeChapter(t, dir, "a.tex", "A\n")

	d := &Document{
		Author:     "A",
		Title:      "T",
		ChapterDir: dir,
		Sources: []Source{
			{PartBreak: true},
			{Path: "a.txt"},
		},
	}
	out := compile(t, d)
	assert.Equal(t, 1, strings.Count(out, "\\part{}\n"))
}

func TestDocumentMissingChapterFile(t *testing.T) {
	d := &Document{
		Author:     "A",
		Title:      "T",
		ChapterDir: t.TempDir(),
		Sources:    []Source{{Path: "absent.txt"}},
	}
	err := d.Compile(func(string) error { return nil })
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "absent.tex")
}

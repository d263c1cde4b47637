package tex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source is one entry in a compiled document: either a converted chapter
// file or, when PartBreak is set, a part-level division between groups of
// chapters. The set is closed; the assembler switches on it directly.
type Source struct {
	PartBreak bool
	// Path is the manuscript-relative chapter path, e.g.
	// "manuscript/chapter-01.txt". The converted chapter is read from
	// ChapterDir under the same base name with a .tex extension.
	Path string
	// Title is the chapter title; empty renders an untitled \chapter{}.
	Title string
}

// Document assembles a book from already-converted chapters: preamble,
// title page, optional revision stamp, table of contents, then each
// chapter wrapped in a \chapter command with \part breaks in between.
type Document struct {
	Author    string
	Title     string
	Header    string // running header text; empty disables fancyhdr
	Watermark string // watermark text; empty disables draftwatermark
	Revision  string // revision stamp page content; empty omits the page
	Sources   []Source
	// ChapterDir is the directory holding converted chapter files.
	ChapterDir string
}

// Compile emits the document as a sequence of markup strings, one call to
// emit per unit. Chapter files are read lazily, one at a time. Any emit or
// read error aborts the compilation immediately.
func (d *Document) Compile(emit func(string) error) error {
	out := func(parts ...string) error {
		for _, p := range parts {
			if err := emit(p); err != nil {
				return err
			}
		}
		return nil
	}

	if err := out(
		Command("documentclass", []string{"book"}),
		Command("usepackage", []string{"indentfirst"}),
	); err != nil {
		return err
	}

	if d.Watermark != "" {
		if err := out(
			Command("usepackage", []string{"draftwatermark"}),
			Command("SetWatermarkText", []string{d.Watermark}),
			Command("SetWatermarkScale", []string{"0.4"}),
			Command("SetWatermarkLightness", []string{"0.875"}),
		); err != nil {
			return err
		}
	}

	if err := out(
		Command("usepackage", []string{"fontenc"}, "T1"),
		Command("usepackage", []string{"librebaskerville"}),
	); err != nil {
		return err
	}

	if d.Header != "" {
		if err := out(
			Command("usepackage", []string{"fancyhdr"}),
			Command("pagestyle", []string{"fancy"}),
			Command("fancyhead", nil),
			Command("fancyhead", []string{`\textit{` + d.Header + `}`}, "L"),
		); err != nil {
			return err
		}
	}

	if err := out(
		"\\setcounter{chapter}{-1}\n",
		Begin("document"),
		Command("title", []string{d.Title}),
		Command("author", []string{d.Author}),
		Command("maketitle", nil),
	); err != nil {
		return err
	}

	if d.Revision != "" {
		if err := out(
			Begin("center"),
			Command("hspace", []string{"0pt"}),
			Command("vfill", nil),
			"\n"+d.Revision+"\n",
			Command("vfill", nil),
			Command("hspace", []string{"0pt"}),
			End("center"),
		); err != nil {
			return err
		}
	}

	if err := out(Command("tableofcontents", nil)); err != nil {
		return err
	}

	for _, src := range d.sources() {
		if src.PartBreak {
			if err := out(Command("part", nil)); err != nil {
				return err
			}
			continue
		}
		if err := d.compileChapter(src, emit); err != nil {
			return err
		}
	}

	return out(End("document"))
}

// sources returns the configured source list with an implicit leading part
// break when any break occurs and none already opens the document, so the
// first group of chapters gets a part of its own.
func (d *Document) sources() []Source {
	hasBreak := false
	for _, s := range d.Sources {
		if s.PartBreak {
			hasBreak = true
			break
		}
	}
	if !hasBreak || (len(d.Sources) > 0 && d.Sources[0].PartBreak) {
		return d.Sources
	}
	return append([]Source{{PartBreak: true}}, d.Sources...)
}

func (d *Document) compileChapter(src Source, emit func(string) error) error {
	params := []string{}
	if src.Title != "" {
		params = []string{src.Title}
	}
	if err := emit(Command("chapter", params)); err != nil {
		return err
	}

	path := d.chapterFile(src)
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read chapter %s: %w", path, err)
	}
	return emit(string(contents))
}

// chapterFile maps a manuscript source path to its converted counterpart
// in ChapterDir: manuscript/chapter-01.txt -> <ChapterDir>/chapter-01.tex.
func (d *Document) chapterFile(src Source) string {
	base := filepath.Base(src.Path)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".tex"
	return filepath.Join(d.ChapterDir, base)
}

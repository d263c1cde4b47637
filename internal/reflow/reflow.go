package reflow

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvariant reports that an emitted line violated the output-line
// contract. It signals a defect in segmentation or packing, never bad
// input; the run aborts before any output is installed.
var ErrInvariant = errors.New("output line invariant violated")

// Options configures a Formatter. The record is copied on construction and
// never mutated afterwards.
type Options struct {
	// Columns is the target output line width in runes. Must be >= 1.
	Columns int
	// ParagraphSpacing is the number of blank lines emitted between
	// paragraphs. Must be >= 0.
	ParagraphSpacing int
}

// Formatter reflows prose read from a stream into width-bounded lines.
// A Formatter is stateless between calls and safe for concurrent use on
// distinct streams.
type Formatter struct {
	opts Options
}

// New validates opts and returns a Formatter.
func New(opts Options) (*Formatter, error) {
	if opts.Columns < 1 {
		return nil, fmt.Errorf("reflow: columns must be positive, got %d", opts.Columns)
	}
	if opts.ParagraphSpacing < 0 {
		return nil, fmt.Errorf("reflow: paragraph spacing must be non-negative, got %d", opts.ParagraphSpacing)
	}
	return &Formatter{opts: opts}, nil
}

// Format reads paragraphs from r and calls emit once per output unit: each
// content line without its line break, and one empty string per blank
// spacing line between paragraphs. Lines are produced one at a time; the
// document is never materialized.
//
// A paragraph is a run of non-blank input lines ended by a blank line or
// end of input. End of input while waiting for a paragraph terminates the
// run normally; end of input mid-paragraph still reflows the partial
// paragraph. Any error from emit aborts the run immediately.
func (f *Formatter) Format(r io.Reader, emit func(line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	firstParagraph := true
	for {
		paragraph, ok := nextParagraph(sc)
		if !ok {
			break
		}
		if err := f.formatParagraph(paragraph, firstParagraph, emit); err != nil {
			return err
		}
		firstParagraph = false
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reflow: read input: %w", err)
	}
	return nil
}

// nextParagraph collects the next paragraph's raw lines, skipping leading
// blank lines. ok is false when end of input arrives first.
func nextParagraph(sc *bufio.Scanner) (lines []string, ok bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if len(lines) == 0 {
				continue
			}
			return lines, true
		}
		lines = append(lines, line)
	}
	return lines, len(lines) > 0
}

func (f *Formatter) formatParagraph(raw []string, first bool, emit func(string) error) error {
	for i := range raw {
		raw[i] = Normalize(raw[i])
	}
	firstLine := true
	for _, semantic := range SplitLines(strings.Join(raw, " ")) {
		words := SplitWords(semantic)
		for len(words) > 0 {
			var line string
			line, words = TakeWords(words, f.opts.Columns)
			if err := f.checkLine(line); err != nil {
				return err
			}
			if firstLine && !first {
				for i := 0; i < f.opts.ParagraphSpacing; i++ {
					if err := emit(""); err != nil {
						return err
					}
				}
			}
			if err := emit(line); err != nil {
				return err
			}
			firstLine = false
		}
	}
	return nil
}

func (f *Formatter) checkLine(line string) error {
	if utf8.RuneCountInString(line) > f.opts.Columns {
		return fmt.Errorf("reflow: %w: %q exceeds %d columns", ErrInvariant, line, f.opts.Columns)
	}
	if line != strings.TrimSpace(line) {
		return fmt.Errorf("reflow: %w: %q is not trimmed", ErrInvariant, line)
	}
	return nil
}

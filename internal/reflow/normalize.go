// Package reflow reformats free-form prose into fixed-width lines whose
// breaks fall on sentence and quotation boundaries, so that small edits
// produce small diffs under version control.
//
// A paragraph is first normalized, then segmented into semantic lines at
// sentence/quote boundaries, tokenized into words with trailing punctuation
// attached, and finally packed greedily into width-bounded output lines.
package reflow

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Punctuation classes used by the segmenter and tokenizer.
const (
	terminalPunc    = ".?!"
	nonTerminalPunc = ",:;"
)

// RE2's \s is ASCII-only; word processors paste NBSP, thin spaces, and
// line/paragraph separators, so the class is widened to all of Unicode Z
// plus NEL. After Normalize the only whitespace left is the ASCII space,
// which is what the segmenter and tokenizer byte scanners assume.
var whitespaceRun = regexp.MustCompile(`[\s\p{Z}\x{85}]+`)

// Typographic quote glyphs are mapped back to their ASCII forms so the
// segmenter and the LaTeX converter only ever see " and '.
var quoteGlyphs = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark / apostrophe
)

// Normalize collapses every run of whitespace to a single space and maps
// Unicode quotation glyphs to their ASCII equivalents. Input is brought to
// NFC first so decomposed sequences compare and count consistently.
// Normalize is total and idempotent.
func Normalize(line string) string {
	line = norm.NFC.String(line)
	line = whitespaceRun.ReplaceAllString(line, " ")
	return quoteGlyphs.Replace(line)
}

func isTerminal(b byte) bool    { return strings.IndexByte(terminalPunc, b) >= 0 }
func isNonTerminal(b byte) bool { return strings.IndexByte(nonTerminalPunc, b) >= 0 }
func isDigit(b byte) bool       { return b >= '0' && b <= '9' }

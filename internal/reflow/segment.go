package reflow

import "strings"

// SplitLines splits one normalized paragraph into semantic lines. A split
// position is any index where one of these boundary rules holds:
//
//  1. Immediately after a double quote, unless it ends the text.
//  2. Immediately before a double quote, unless it starts the text.
//  3. Immediately after terminal punctuation not preceded by a period, or
//     after terminal punctuation followed by an apostrophe; in both cases
//     the split is suppressed when what follows is more terminal
//     punctuation, an underscore, a digit, an apostrophe, or optional
//     whitespace leading to a double quote.
//
// Rule 3's suppression set keeps ellipses, decimal numbers, and
// quote-closing punctuation on one line. Double quotes are always isolated
// by rules 1 and 2: quoted paragraphs end up with each " on its own line,
// which is the shape the LaTeX converter's quote-block rule expects.
//
// The boundary predicates need lookbehind and lookahead, which Go's RE2
// regexp does not provide, so this is an explicit scanner. Segments are
// trimmed; empty segments may occur and tokenize to nothing.
func SplitLines(paragraph string) []string {
	var lines []string
	start := 0
	for i := 1; i < len(paragraph); i++ {
		if lineBoundary(paragraph, i) {
			lines = append(lines, strings.TrimSpace(paragraph[start:i]))
			start = i
		}
	}
	return append(lines, strings.TrimSpace(paragraph[start:]))
}

// lineBoundary reports whether the paragraph splits between s[i-1] and s[i].
// Callers guarantee 1 <= i < len(s).
func lineBoundary(s string, i int) bool {
	if s[i-1] == '"' || s[i] == '"' {
		return true
	}
	afterTerminal := isTerminal(s[i-1]) && i >= 2 && s[i-2] != '.'
	afterQuotedTerminal := s[i-1] == '\'' && i >= 2 && isTerminal(s[i-2])
	if !afterTerminal && !afterQuotedTerminal {
		return false
	}
	return !suppressed(s, i)
}

// suppressed reports whether a rule-3 split at i must be held back.
func suppressed(s string, i int) bool {
	switch c := s[i]; {
	case isTerminal(c), c == '_', c == '\'', isDigit(c):
		return true
	}
	j := i
	for j < len(s) && s[j] == ' ' {
		j++
	}
	return j < len(s) && s[j] == '"'
}

// Package tex converts reflowed prose into LaTeX markup and assembles
// converted chapters into a complete book document.
package tex

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reservedChars = regexp.MustCompile(`([#%&])`)

	// A double-quoted block occupies whole lines by itself: quote,
	// newline, content without quotes, newline, quote. The reflow
	// engine guarantees this shape by isolating " onto its own line.
	doubleQuoteBlock = regexp.MustCompile(`"\n([^"]*)\n"`)

	emphasisSpan = regexp.MustCompile(`_([^_]*)_`)
)

// Escape prefixes each reserved LaTeX character (#, %, &) with a
// backslash, leaving everything else unchanged.
func Escape(s string) string {
	return reservedChars.ReplaceAllString(s, `\$1`)
}

// Texify converts a whole file of reflowed prose into LaTeX. The order of
// the rewrite steps is load-bearing: dashes are rewritten before quote
// detection (quotes never contain dashes in this grammar), single-quote
// spans before double-quote blocks, and the triple-quote fix-up last so it
// sees both conversions already applied.
func Texify(s string) string {
	s = Escape(s)
	s = strings.ReplaceAll(s, "--", "---")
	s = rewriteSingleQuotes(s)
	s = doubleQuoteBlock.ReplaceAllString(s, "``${1}''")
	s = strings.ReplaceAll(s, "'''", `'\thinspace''`)
	return Emphasize(s)
}

// Emphasize rewrites each minimal _..._ span as \textit{...}. When the
// span's content crosses a paragraph break, the emphasis is closed before
// the break and reopened after it, one \textit per paragraph, since LaTeX
// emphasis cannot straddle paragraphs. Scanning resumes after each
// replacement, so underscores are never reconsidered.
func Emphasize(s string) string {
	var b strings.Builder
	rest := s
	for {
		m := emphasisSpan.FindStringSubmatchIndex(rest)
		if m == nil {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:m[0]])
		inner := rest[m[2]:m[3]]
		b.WriteString(`\textit{`)
		b.WriteString(strings.ReplaceAll(inner, "\n\n", "}\n\n\\textit{"))
		b.WriteString("}")
		rest = rest[m[1]:]
	}
}

// rewriteSingleQuotes converts each minimal apostrophe-delimited span not
// adjacent to a word character outside the span into `...' markup. An
// apostrophe with a word character before it (a contraction) never opens a
// span, and one with a word character after it never closes one, so It's
// and don't pass through untouched. The adjacency rules require lookaround
// that RE2 does not support, hence a scanner.
func rewriteSingleQuotes(s string) string {
	var b strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); {
		if rs[i] == '\'' && (i == 0 || !isWordRune(rs[i-1])) {
			if j, ok := findQuoteClose(rs, i+1); ok {
				b.WriteByte('`')
				b.WriteString(string(rs[i+1 : j]))
				b.WriteByte('\'')
				i = j + 1
				continue
			}
		}
		b.WriteRune(rs[i])
		i++
	}
	return b.String()
}

// findQuoteClose returns the index of the first apostrophe at or after
// from that is not followed by a word character.
func findQuoteClose(rs []rune, from int) (int, bool) {
	for j := from; j < len(rs); j++ {
		if rs[j] == '\'' && (j+1 == len(rs) || !isWordRune(rs[j+1])) {
			return j, true
		}
	}
	return 0, false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

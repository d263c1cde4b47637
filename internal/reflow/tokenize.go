package reflow

import "strings"

// SplitWords splits one semantic line into word tokens. Split points are
// every literal space and every position directly after non-terminal
// punctuation that is neither at the end of the line nor followed by an
// apostrophe (so contractions like "tho'," stay whole). A token consisting
// solely of a punctuation mark is merged onto the end of the preceding
// token; punctuation never stands alone after a word. Tokens are trimmed
// and empty tokens are discarded.
func SplitWords(line string) []string {
	var raw []string
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] == ' ' {
			raw = append(raw, line[start:i])
			start = i + 1
			continue
		}
		if isNonTerminal(line[i]) && i+1 < len(line) && line[i+1] != '\'' {
			raw = append(raw, line[start:i+1])
			start = i + 1
		}
	}
	raw = append(raw, line[start:])

	// Single forward pass with the output acting as the pending-token
	// accumulator: a lone punctuation mark joins the token before it.
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if len(words) > 0 && len(w) == 1 && (isTerminal(w[0]) || isNonTerminal(w[0])) {
			words[len(words)-1] += w
			continue
		}
		words = append(words, w)
	}
	return words
}

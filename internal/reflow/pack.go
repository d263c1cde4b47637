package reflow

import (
	"strings"
	"unicode/utf8"
)

// TakeWords consumes a maximal run of tokens whose space-joined length fits
// in columns and returns it as one output line together with the remaining
// tokens. Lengths are counted in runes, one separator space per token after
// the first. When even the first token alone exceeds columns it is
// hard-split: a prefix of exactly columns runes becomes the line and the
// remainder is re-queued as the new first token. The call always consumes
// at least one rune, so repeated calls terminate.
//
// Callers guarantee len(words) > 0 and columns >= 1.
func TakeWords(words []string, columns int) (string, []string) {
	length := 0
	n := 0
	for _, w := range words {
		add := utf8.RuneCountInString(w)
		if n > 0 {
			add++
		}
		if length+add > columns {
			break
		}
		length += add
		n++
	}
	if n == 0 {
		r := []rune(words[0])
		words[0] = string(r[columns:])
		return string(r[:columns]), words
	}
	return strings.Join(words[:n], " "), words[n:]
}

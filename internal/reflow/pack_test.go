package reflow

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTakeWords(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		columns  int
		wantLine string
		wantRest []string
	}{
		{
			name:     "all words fit",
			words:    []string{"a", "b", "c"},
			columns:  10,
			wantLine: "a b c",
			wantRest: []string{},
		},
		{
			name:     "greedy stop before overflow",
			words:    []string{"aa", "bb", "cc"},
			columns:  5,
			wantLine: "aa bb",
			wantRest: []string{"cc"},
		},
		{
			name:     "separator space counts",
			words:    []string{"aaa", "bbb"},
			columns:  6,
			wantLine: "aaa",
			wantRest: []string{"bbb"},
		},
		{
			name:     "exact fit",
			words:    []string{"hello"},
			columns:  5,
			wantLine: "hello",
			wantRest: []string{},
		},
		{
			name:     "oversized first token is hard-split",
			words:    []string{"abcdefghijklmnopqrst"},
			columns:  10,
			wantLine: "abcdefghij",
			wantRest: []string{"klmnopqrst"},
		},
		{
			name:     "oversized token keeps followers queued",
			words:    []string{"abcdefgh", "x"},
			columns:  4,
			wantLine: "abcd",
			wantRest: []string{"efgh", "x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, rest := TakeWords(tt.words, tt.columns)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestTakeWordsRuneWidths(t *testing.T) {
	// Widths count runes, not bytes.
	line, rest := TakeWords([]string{"café", "noir"}, 4)
	assert.Equal(t, "café", line)
	assert.Equal(t, []string{"noir"}, rest)

	line, rest = TakeWords([]string{"naïveté"}, 3)
	assert.Equal(t, "naï", line)
	assert.Equal(t, []string{"veté"}, rest)
}

func TestTakeWordsAlwaysMakesProgress(t *testing.T) {
	words := []string{"supercalifragilistic", "a", "bb", "ccc"}
	for columns := 1; columns <= 25; columns++ {
		remaining := append([]string(nil), words...)
		steps := 0
		for len(remaining) > 0 {
			var line string
			line, remaining = TakeWords(remaining, columns)
			assert.LessOrEqual(t, utf8.RuneCountInString(line), columns)
			assert.NotEmpty(t, line)
			steps++
			if !assert.Less(t, steps, 1000, "packer stopped making progress at width %d", columns) {
				return
			}
		}
	}
}

package tex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"no reserved chars", "no reserved chars"},
		{"100% done", `100\% done`},
		{"#1 & #2", `\#1 \& \#2`},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Escape(tt.input))
	}
}

func TestTexify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "double hyphen becomes em dash",
			input: "pause--then go",
			want:  "pause---then go",
		},
		{
			name:  "contraction apostrophes untouched",
			input: "It's a fine day, isn't it",
			want:  "It's a fine day, isn't it",
		},
		{
			name:  "single quote span",
			input: "a 'quoted' word",
			want:  "a `quoted' word",
		},
		{
			name:  "contraction quote and emphasis mixed",
			input: "It's a 'test' of _emphasis_.",
			want:  "It's a `test' of \\textit{emphasis}.",
		},
		{
			name:  "unclosed single quote left alone",
			input: "an 'unclosed span",
			want:  "an 'unclosed span",
		},
		{
			name:  "whole-line double quote block",
			input: "She spoke.\n\"\nWords here.\nMore words.\n\"\nAfter.",
			want:  "She spoke.\n``Words here.\nMore words.''\nAfter.",
		},
		{
			name:  "inline double quotes are not block quotes",
			input: `he "said" it`,
			want:  `he "said" it`,
		},
		{
			name:  "triple quote collision gets thin space",
			input: "\"\nHe said 'go'\n\"",
			want:  "``He said `go'\\thinspace''",
		},
		{
			name:  "emphasis span",
			input: "read _this_ now",
			want:  `read \textit{this} now`,
		},
		{
			name:  "escape runs before everything",
			input: "50% _off_",
			want:  `50\% \textit{off}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Texify(tt.input))
		})
	}
}

func TestEmphasize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single span",
			input: "_hello_",
			want:  `\textit{hello}`,
		},
		{
			name:  "multiple spans",
			input: "_a_ and _b_",
			want:  `\textit{a} and \textit{b}`,
		},
		{
			name:  "lone underscore untouched",
			input: "snake_case stays",
			want:  "snake_case stays",
		},
		{
			name:  "span across one paragraph break",
			input: "_one\n\ntwo_",
			want:  "\\textit{one}\n\n\\textit{two}",
		},
		{
			name:  "span across two paragraph breaks",
			input: "before _a\n\nb\n\nc_ after",
			want:  "before \\textit{a}\n\n\\textit{b}\n\n\\textit{c} after",
		},
		{
			name:  "empty span",
			input: "__",
			want:  `\textit{}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Emphasize(tt.input))
		})
	}
}

// Emphasis output never leaves a \textit spanning a blank line, and every
// opened group is closed.
func TestEmphasizeNeverCrossesParagraphBreak(t *testing.T) {
	out := Emphasize("x _first part\n\nsecond part_ y")
	for _, block := range strings.Split(out, "\n\n") {
		assert.Equal(t, strings.Count(block, `\textit{`), strings.Count(block, "}"),
			"unbalanced emphasis in block %q", block)
	}
}

// For balanced input every opening quote mark pairs with a closing one.
func TestTexifyQuoteBalance(t *testing.T) {
	input := "a 'one' and 'two' here\n\"\nquoted paragraph\n\"\ntail"
	out := Texify(input)

	assert.Equal(t, strings.Count(out, "``"), strings.Count(out, "''"))
	singleOpens := strings.Count(out, "`") - 2*strings.Count(out, "``")
	singleCloses := strings.Count(out, "'") - 2*strings.Count(out, "''")
	assert.Equal(t, 2, singleOpens)
	assert.Equal(t, 2, singleCloses)
}

package tex

import "strings"

// Command renders one LaTeX command line: \name[opt,...]{param,...}\n.
// The braces are always present, even when params is empty, matching the
// commands the book preamble needs (\fancyhead{}, \part{}).
func Command(name string, params []string, options ...string) string {
	var b strings.Builder
	b.WriteByte('\\')
	b.WriteString(name)
	if len(options) > 0 {
		b.WriteByte('[')
		b.WriteString(strings.Join(options, ","))
		b.WriteByte(']')
	}
	b.WriteByte('{')
	b.WriteString(strings.Join(params, ","))
	b.WriteString("}\n")
	return b.String()
}

// Begin renders \begin{tag}.
func Begin(tag string) string { return Command("begin", []string{tag}) }

// End renders \end{tag}.
func End(tag string) string { return Command("end", []string{tag}) }

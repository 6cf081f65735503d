// Package textutil formats plain text for terminal help output.
package textutil

import "strings"

// Wrap splits text into lines of at most width columns, breaking on whitespace. Runs of whitespace
// collapse to a single space. A word longer than width is placed on its own line unbroken. Wrap
// returns nil for text with no words.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Indent wraps text so that, with the indent prefix, no line exceeds width columns, and returns the
// lines each prefixed by indent and terminated by a newline.
func Indent(text, indent string, width int) string {
	var b strings.Builder
	for _, line := range Wrap(text, width-len(indent)) {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

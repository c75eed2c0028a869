// Package textutil contains the small text layout helpers used to render help output.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines of at most width characters, breaking only at whitespace. Runs of
// whitespace collapse to a single space. A word longer than width is placed on a line of its own.
// Returns nil if text has no words.
func Wrap(text string, width int) []string {
	var (
		lines   []string
		line    strings.Builder
		lineLen int
	)
	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)
		if lineLen > 0 && lineLen+1+wordLen > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += wordLen
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// PadRight appends spaces to s until it is width characters long. Strings that are already at
// least width characters long are returned unchanged.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

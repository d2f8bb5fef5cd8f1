// Package textutil has small string helpers shared by the formatter and the help output.
package textutil

import "strings"

// Wrap splits text into lines of at most width bytes, breaking on whitespace. Words longer than
// width get a line of their own.
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

// PadLeft prepends pad to s until its length is a multiple of group. A group of 1 or less leaves s
// unchanged, as does an empty s.
func PadLeft(s string, group int, pad byte) string {
	if group <= 1 || s == "" {
		return s
	}
	n := (group - len(s)%group) % group
	if n == 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

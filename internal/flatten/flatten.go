// Package flatten turns multi-line text into a single line.
//
// Every line break (CRLF, LF or a lone CR) is replaced by exactly one space.
// Adjacent breaks are not merged, so "a\n\nb" becomes "a  b". The default
// rule also trims outer whitespace.
package flatten

import (
	"regexp"
	"strings"
)

var lineBreak = regexp.MustCompile(`\r\n|\n|\r`)

// Normalizer applies the line-break rule. The zero value does not trim.
type Normalizer struct {
	// Trim removes leading and trailing whitespace after replacement.
	Trim bool
}

// Default is the rule used by the clipboard watcher.
var Default = Normalizer{Trim: true}

// Apply returns s with every line break replaced by a single space.
func (n Normalizer) Apply(s string) string {
	out := lineBreak.ReplaceAllLiteralString(s, " ")
	if n.Trim {
		out = strings.TrimSpace(out)
	}
	return out
}

// Normalize applies the Default rule.
func Normalize(s string) string { return Default.Apply(s) }

// CountBreaks returns the number of line breaks in s. CRLF counts once.
func CountBreaks(s string) int {
	return len(lineBreak.FindAllStringIndex(s, -1))
}

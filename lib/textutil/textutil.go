package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeColumn turns a human-readable table header into a stable column
// key: trimmed, lowercased, inner whitespace collapsed to a single
// underscore. Applying it twice returns the same value.
func NormalizeColumn(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "_")
	return name
}


package strutil

import (
	"strings"
	"unicode"
)

// RemoveExtraSpaces collapses runs of whitespace into a single space and trims the ends.
// For example RemoveExtraSpaces(" US  DOLLAR\n") return "US DOLLAR"
func RemoveExtraSpaces(s string) string {
	idx := 0

	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			idx++
			if idx > 1 {
				return -1
			}
			return ' '
		} else if idx > 0 {
			idx = 0
		}

		return r
	}, s))
}

// SplitList splits a comma or whitespace separated list and drops empty items
func SplitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

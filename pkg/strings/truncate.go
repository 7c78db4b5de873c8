package strings

import (
	"strings"
	"unicode/utf8"
)

const (
	// CellMaxLen bounds a single value rendered in a key/value table.
	CellMaxLen = 100

	// ErrorBodyMaxLen bounds the raw response body quoted in an API error
	// when dbt Cloud answers with something other than its JSON envelope.
	ErrorBodyMaxLen = 200

	ellipsis = "..."
)

// SingleLine collapses every run of whitespace in s to one space and cuts
// the result to at most maxRunes runes, marking a cut with "...".
//
// A maxRunes too small to hold one rune plus the marker is raised to that
// minimum, so the result is never empty for non-blank input.
func SingleLine(s string, maxRunes int) string {
	if floor := utf8.RuneCountInString(ellipsis) + 1; maxRunes < floor {
		maxRunes = floor
	}

	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxRunes-len(ellipsis)]) + ellipsis
}

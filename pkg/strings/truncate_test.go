package strings

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSingleLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		expected string
	}{
		{name: "fits unchanged", input: "dbt build", maxRunes: 20, expected: "dbt build"},
		{name: "exact length unchanged", input: "dbt build", maxRunes: 9, expected: "dbt build"},
		{name: "cut with marker", input: "dbt build --select tag:daily", maxRunes: 12, expected: "dbt build..."},
		{name: "multi-line step list", input: "dbt seed\ndbt run\r\n\tdbt test", maxRunes: 50, expected: "dbt seed dbt run dbt test"},
		{name: "whitespace collapsed before cut", input: "a   b   c   d   e", maxRunes: 7, expected: "a b ..."},
		{name: "blank input", input: " \n\t ", maxRunes: 10, expected: ""},
		{name: "tiny limit raised", input: "nightly", maxRunes: 1, expected: "n..."},
		{name: "negative limit raised", input: "nightly", maxRunes: -5, expected: "n..."},
		{name: "multi-byte runes counted once", input: "日本語のジョブ", maxRunes: 5, expected: "日本..."},
		{name: "multi-byte fits", input: "café", maxRunes: 4, expected: "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SingleLine(tt.input, tt.maxRunes)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestSingleLine_ErrorBody(t *testing.T) {
	body := "<html>\n<body>" + strings.Repeat("é", ErrorBodyMaxLen) + "</body>\n</html>"

	got := SingleLine(body, ErrorBodyMaxLen)

	assert.Equal(t, ErrorBodyMaxLen, utf8.RuneCountInString(got))
	assert.True(t, strings.HasPrefix(got, "<html> <body>"))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.NotContains(t, got, "\n")
}

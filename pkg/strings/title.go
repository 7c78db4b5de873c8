package strings

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/huandu/xstrings"
)

// AcronymMaxLen is the longest word that TitleFromKey treats as an acronym.
const AcronymMaxLen = 2

// TitleFromKey turns an identifier-style key (snake_case, kebab-case,
// camelCase or space separated) into title-cased words.
//
// Words of at most AcronymMaxLen bytes are upper-cased entirely, so
// "ml_features" becomes "ML Features" rather than "Ml Features".
func TitleFromKey(key string) string {
	words := strings.FieldsFunc(xstrings.ToSnakeCase(key), func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})

	for i, w := range words {
		words[i] = titleWord(w)
	}
	return UpperShortWords(strings.Join(words, " "))
}

// UpperShortWords upper-cases every whitespace separated word of at most
// AcronymMaxLen bytes and joins the words with single spaces.
func UpperShortWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) <= AcronymMaxLen {
			words[i] = strings.ToUpper(w)
		}
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	first, size := utf8.DecodeRuneInString(w)
	if first == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
}

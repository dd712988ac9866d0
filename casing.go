package pluralizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// restoreCase re-applies the casing style of reference onto token: exact
// match, all-lowercase, all-uppercase, or capitalized first letter. Anything
// else falls back to lowercase.
func restoreCase(reference, token string) string {
	if reference == token {
		return token
	}
	if reference == strings.ToLower(reference) {
		return strings.ToLower(token)
	}
	if reference == strings.ToUpper(reference) {
		return strings.ToUpper(token)
	}
	if r, _ := utf8.DecodeRuneInString(reference); unicode.IsUpper(r) {
		return capitalizeFirst(token)
	}
	return strings.ToLower(token)
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

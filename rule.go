package pluralizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// rule pairs a case-insensitive pattern with a replacement template.
// Templates reference captured groups as $1..$9 ($0 is the whole match).
// An empty replacement marks a no-change rule: a match means the word is
// already in the requested form and must be returned untouched.
type rule struct {
	re          *regexp.Regexp
	replacement string
}

func newRule(pattern, replacement string) (rule, error) {
	re, err := regexp.Compile(caseInsensitive(pattern))
	if err != nil {
		return rule{}, err
	}
	return rule{re: re, replacement: replacement}, nil
}

func mustRule(pattern, replacement string) rule {
	r, err := newRule(pattern, replacement)
	if err != nil {
		panic(err)
	}
	return r
}

func caseInsensitive(pattern string) string {
	if strings.HasPrefix(pattern, "(?i)") {
		return pattern
	}
	return "(?i)" + pattern
}

// applyRules scans rules from the most recently added to the oldest and
// applies the first one whose pattern matches. Text before the matched region
// is preserved verbatim; the casing of the matched region is restored onto
// the substituted text.
func applyRules(word string, rules []rule) (string, bool) {
	for i := len(rules) - 1; i >= 0; i-- {
		m := rules[i].re.FindStringSubmatchIndex(word)
		if m == nil {
			continue
		}
		if rules[i].replacement == "" {
			return word, true
		}
		return substitute(word, rules[i], m), true
	}
	return "", false
}

func substitute(word string, r rule, m []int) string {
	expanded := interpolate(r.replacement, word, m)

	// An empty match carries no casing of its own; borrow it from the
	// character just before the match.
	ref := word[m[0]:m[1]]
	if ref == "" {
		ref = word
		if m[0] > 0 {
			_, size := utf8.DecodeLastRuneInString(word[:m[0]])
			ref = word[m[0]-size : m[0]]
		}
	}

	return word[:m[0]] + restoreCase(ref, expanded) + word[m[1]:]
}

// interpolate substitutes $n references in the template with the captured
// groups of the match. Captures keep their original casing; unmatched groups
// expand to the empty string.
func interpolate(template, word string, m []int) string {
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		if template[i] != '$' || i+1 >= len(template) || !isDigit(template[i+1]) {
			b.WriteByte(template[i])
			continue
		}
		n := int(template[i+1] - '0')
		i++
		if 2*n+1 < len(m) && m[2*n] >= 0 {
			b.WriteString(word[m[2*n]:m[2*n+1]])
		}
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Package pluralizer converts English nouns between singular and plural form
// based on a count.
//
// The plural form is kept when the count is not 1, and the singular form is
// kept when it is:
//
//	pluralizer.Pluralize("House", 2, true)   // "2 Houses"
//	pluralizer.Pluralize("Houses", 1, true)  // "1 House"
//	pluralizer.Pluralize("House", 1, false)  // "House"
//	pluralizer.Pluralize("Houses", 2, false) // "Houses"
//
// The package-level functions share a process-wide default engine populated
// with built-in English rules on first use. Callers that need isolated or
// customized rule tables can build their own with New.
package pluralizer

import "sync"

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Initialize populates the default engine's built-in rule, irregular, and
// uncountable tables. Calling it more than once is a no-op; the package-level
// functions call it implicitly.
func Initialize() {
	defaultOnce.Do(func() {
		defaultEngine = Default()
	})
}

func engine() *Engine {
	Initialize()
	return defaultEngine
}

// Pluralize converts word to the form selected by count: singular when count
// is 1, plural otherwise. When inclusive is true the count is prepended to
// the result.
func Pluralize(word string, count int, inclusive bool) string {
	return engine().Pluralize(word, count, inclusive)
}

// ToPlural returns the plural form of word.
func ToPlural(word string) string {
	return engine().Plural(word)
}

// ToSingular returns the singular form of word.
func ToSingular(word string) string {
	return engine().Singular(word)
}

// AddPluralRule appends a pluralization rule to the default engine. Rules
// registered later take precedence over the built-in defaults.
//
//	pluralizer.AddPluralRule(`(?i)(matr|cod|mur|sil|vert|ind|append)(?:ix|ex)$`, "$1ices")
func AddPluralRule(pattern, replacement string) error {
	return engine().AddPluralRule(pattern, replacement)
}

// AddSingularRule appends a singularization rule to the default engine.
//
//	pluralizer.AddSingularRule(`(?i)(matr|append)ices$`, "$1ix")
func AddSingularRule(pattern, replacement string) error {
	return engine().AddSingularRule(pattern, replacement)
}

// AddIrregularRule registers a singular/plural pair on the default engine.
//
//	pluralizer.AddIrregularRule("canto", "cantos")
func AddIrregularRule(singular, plural string) {
	engine().AddIrregularRule(singular, plural)
}

// AddUncountableRule marks a word (or a "(?i)"-prefixed suffix pattern) as
// uncountable on the default engine.
//
//	pluralizer.AddUncountableRule("cash")
func AddUncountableRule(word string) error {
	return engine().AddUncountableRule(word)
}

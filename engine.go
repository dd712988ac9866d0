package pluralizer

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"pluralizer/internal/wordset"
)

// direction selects the target form of a transformation.
type direction int

const (
	directionPlural direction = iota
	directionSingular
)

// Engine owns the rule tables and applies them to words. All methods are safe
// for concurrent use: registration takes the write lock, transformations the
// read lock.
type Engine struct {
	mu sync.RWMutex

	pluralRules   []rule
	singularRules []rule

	// irregularSingles maps singular -> plural, irregularPlurals the
	// reverse. Keys are lowercased.
	irregularSingles map[string]string
	irregularPlurals map[string]string

	uncountables *wordset.Set

	logger *slog.Logger
}

// New creates an Engine populated with the built-in English tables plus any
// extensions from cfg. Extensions are registered after the defaults, so they
// take precedence over them.
func New(cfg Config, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		irregularSingles: make(map[string]string),
		irregularPlurals: make(map[string]string),
		uncountables:     wordset.New(),
		logger:           logger,
	}
	e.loadDefaults()
	if err := e.applyConfig(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Default returns an Engine with only the built-in tables.
func Default() *Engine {
	e, err := New(Config{}, nil)
	if err != nil {
		panic(err)
	}
	return e
}

// Plural returns the plural form of word.
func (e *Engine) Plural(word string) string {
	return e.transform(word, directionPlural)
}

// Singular returns the singular form of word.
func (e *Engine) Singular(word string) string {
	return e.transform(word, directionSingular)
}

// Pluralize converts word to the form selected by count: singular when count
// is 1, plural otherwise. When inclusive is true the count is prepended to
// the result.
func (e *Engine) Pluralize(word string, count int, inclusive bool) string {
	out := e.Plural(word)
	if count == 1 {
		out = e.Singular(word)
	}
	if inclusive {
		return fmt.Sprintf("%d %s", count, out)
	}
	return out
}

// AddPluralRule appends a pluralization rule. Rules registered later shadow
// earlier ones that match the same word, so callers can override built-in
// defaults. The pattern is compiled case-insensitively; an empty replacement
// marks the rule as a no-change rule.
func (e *Engine) AddPluralRule(pattern, replacement string) error {
	r, err := newRule(pattern, replacement)
	if err != nil {
		return fmt.Errorf("invalid plural rule pattern %q: %w", pattern, err)
	}
	e.mu.Lock()
	e.pluralRules = append(e.pluralRules, r)
	e.mu.Unlock()
	return nil
}

// AddSingularRule appends a singularization rule. Same precedence semantics
// as AddPluralRule.
func (e *Engine) AddSingularRule(pattern, replacement string) error {
	r, err := newRule(pattern, replacement)
	if err != nil {
		return fmt.Errorf("invalid singular rule pattern %q: %w", pattern, err)
	}
	e.mu.Lock()
	e.singularRules = append(e.singularRules, r)
	e.mu.Unlock()
	return nil
}

// AddIrregularRule stores a singular/plural pair that does not follow the
// pattern rules. Both forms are keyed case-insensitively and the lookup works
// in both directions.
func (e *Engine) AddIrregularRule(singular, plural string) {
	s := strings.ToLower(singular)
	p := strings.ToLower(plural)

	e.mu.Lock()
	if prev, ok := e.irregularSingles[s]; ok && prev != p {
		e.logger.Debug("irregular mapping replaced",
			slog.String("singular", s),
			slog.String("previous", prev),
			slog.String("plural", p),
		)
	}
	e.irregularSingles[s] = p
	e.irregularPlurals[p] = s
	e.mu.Unlock()
}

// AddUncountableRule marks a word as having identical singular and plural
// forms. A pattern, recognized by its "(?i)" prefix, is registered as a
// no-change rule in both direction lists instead.
func (e *Engine) AddUncountableRule(word string) error {
	if strings.HasPrefix(word, "(?i)") {
		if err := e.AddPluralRule(word, ""); err != nil {
			return err
		}
		return e.AddSingularRule(word, "")
	}
	e.mu.Lock()
	e.uncountables.Add(word)
	e.mu.Unlock()
	return nil
}

// transform dispatches word through the three tables in fixed precedence
// order: uncountables, irregulars, then pattern rules. It never fails; when
// nothing matches the word is returned unchanged.
func (e *Engine) transform(word string, dir direction) string {
	if word == "" {
		return word
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	token := strings.ToLower(word)
	if e.uncountables.Contains(token) {
		return word
	}
	if out, ok := e.lookupIrregular(word, token, dir); ok {
		return out
	}

	rules := e.pluralRules
	if dir == directionSingular {
		rules = e.singularRules
	}
	if out, ok := applyRules(word, rules); ok {
		return out
	}
	return word
}

// lookupIrregular resolves word against the irregular table. A word already
// in the target form is kept as is; a word in the source form is replaced by
// its counterpart. Compound nouns ending in an irregular noun are resolved by
// suffix, e.g. "grandchild" -> "grandchildren".
func (e *Engine) lookupIrregular(word, token string, dir direction) (string, bool) {
	keep, replace := e.irregularPlurals, e.irregularSingles
	if dir == directionSingular {
		keep, replace = e.irregularSingles, e.irregularPlurals
	}

	if _, ok := keep[token]; ok {
		return restoreCase(word, token), true
	}
	if counterpart, ok := replace[token]; ok {
		return restoreCase(word, counterpart), true
	}

	// Suffix resolution assumes lowercasing did not change byte offsets,
	// which holds for any word these ASCII-keyed tables can match.
	if len(word) != len(token) {
		return "", false
	}
	if _, ok := longestSuffixKey(token, keep); ok {
		return word, true
	}
	if key, ok := longestSuffixKey(token, replace); ok {
		cut := len(token) - len(key)
		return word[:cut] + restoreCase(word[cut:], replace[key]), true
	}
	return "", false
}

// minIrregularSuffixLen keeps short irregular entries (pronouns and the like:
// "is", "dice", "axes") out of suffix resolution, where they would
// mistranslate ordinary words such as "basis", "cowardice" or "climaxes".
const minIrregularSuffixLen = 5

// longestSuffixKey finds the longest table key that is a proper suffix of
// token with at least two leading characters to spare.
func longestSuffixKey(token string, table map[string]string) (string, bool) {
	best := ""
	for key := range table {
		if len(key) < minIrregularSuffixLen || len(token) < len(key)+2 {
			continue
		}
		if len(key) > len(best) && strings.HasSuffix(token, key) {
			best = key
		}
	}
	return best, best != ""
}

package config

import (
	"fmt"
	"regexp"
	"strings"

	"pluralizer"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors and returns validation
// results. It returns both errors (fatal) and warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	c.validateLogging(result)
	c.validateRules(result)

	return result
}

func (c *Config) validateLogging(result *ValidationResult) {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown log level %q", c.Logging.Level),
			Hint:    "use one of: debug, info, warn, error",
		})
	}

	switch c.Logging.Format {
	case "", "text", "json":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown log format %q", c.Logging.Format),
			Hint:    "use one of: text, json",
		})
	}
}

func (c *Config) validateRules(result *ValidationResult) {
	validatePatternRules(result, "rules.plural_rules", c.Rules.PluralRules)
	validatePatternRules(result, "rules.singular_rules", c.Rules.SingularRules)

	for singular, plural := range c.Rules.Irregulars {
		if strings.TrimSpace(singular) == "" || strings.TrimSpace(plural) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "rules.irregulars",
				Message: fmt.Sprintf("incomplete irregular pair %q -> %q", singular, plural),
				Hint:    "both singular and plural forms are required",
			})
		}
	}

	for i, word := range c.Rules.Uncountables {
		if strings.TrimSpace(word) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("rules.uncountables[%d]", i),
				Message: "empty uncountable word",
			})
			continue
		}
		if strings.HasPrefix(word, "(?i)") {
			if _, err := regexp.Compile(word); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Field:   fmt.Sprintf("rules.uncountables[%d]", i),
					Message: fmt.Sprintf("invalid pattern %q: %v", word, err),
				})
			}
		}
	}
}

func validatePatternRules(result *ValidationResult, field string, rules []pluralizer.RuleConfig) {
	for i, r := range rules {
		if strings.TrimSpace(r.Pattern) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d].pattern", field, i),
				Message: "empty pattern",
			})
			continue
		}
		pattern := r.Pattern
		if !strings.HasPrefix(pattern, "(?i)") {
			pattern = "(?i)" + pattern
		}
		if _, err := regexp.Compile(pattern); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d].pattern", field, i),
				Message: fmt.Sprintf("invalid pattern %q: %v", r.Pattern, err),
			})
			continue
		}
		if r.Replacement == "" {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   fmt.Sprintf("%s[%d].replacement", field, i),
				Message: "empty replacement",
				Hint:    "matching words will be returned unchanged (no-change rule)",
			})
		}
	}
}

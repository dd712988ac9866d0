package pluralizer

import "log/slog"

// Config holds rule customizations applied on top of the built-in tables.
// The mapstructure tags allow the struct to be decoded from a viper-loaded
// configuration file.
type Config struct {
	// PluralRules and SingularRules append pattern rules; later entries win
	// over earlier ones and over the defaults.
	PluralRules   []RuleConfig `mapstructure:"plural_rules"`
	SingularRules []RuleConfig `mapstructure:"singular_rules"`

	// Irregulars maps singular -> plural.
	// Example: {"corpus": "corpora"}
	Irregulars map[string]string `mapstructure:"irregulars"`

	// Uncountables lists words that are identical in both forms. An entry
	// with a "(?i)" prefix is treated as a suffix pattern.
	Uncountables []string `mapstructure:"uncountables"`
}

// RuleConfig is a single pattern rule. An empty replacement marks a no-change
// rule.
type RuleConfig struct {
	Pattern     string `mapstructure:"pattern"`
	Replacement string `mapstructure:"replacement"`
}

// DefaultConfig returns an empty customization set.
func DefaultConfig() Config {
	return Config{
		Irregulars: make(map[string]string),
	}
}

func (e *Engine) applyConfig(cfg Config) error {
	for _, r := range cfg.PluralRules {
		if err := e.AddPluralRule(r.Pattern, r.Replacement); err != nil {
			return err
		}
	}
	for _, r := range cfg.SingularRules {
		if err := e.AddSingularRule(r.Pattern, r.Replacement); err != nil {
			return err
		}
	}
	for singular, plural := range cfg.Irregulars {
		e.AddIrregularRule(singular, plural)
	}
	for _, w := range cfg.Uncountables {
		if err := e.AddUncountableRule(w); err != nil {
			return err
		}
	}

	custom := len(cfg.PluralRules) + len(cfg.SingularRules) + len(cfg.Irregulars) + len(cfg.Uncountables)
	if custom > 0 {
		e.logger.Debug("applied rule customizations",
			slog.Int("plural_rules", len(cfg.PluralRules)),
			slog.Int("singular_rules", len(cfg.SingularRules)),
			slog.Int("irregulars", len(cfg.Irregulars)),
			slog.Int("uncountables", len(cfg.Uncountables)),
		)
	}
	return nil
}

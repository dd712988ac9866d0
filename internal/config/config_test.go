package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pluralizer"
	"pluralizer/internal/logging"
)

func TestConfig_UnmarshalFromYAML(t *testing.T) {
	yaml := `
logging:
  level: debug
  format: json
rules:
  plural_rules:
    - pattern: "(?i)(matr)ix$"
      replacement: "$1ices"
  singular_rules:
    - pattern: "(?i)(matr)ices$"
      replacement: "$1ix"
  irregulars:
    corpus: corpora
  uncountables:
    - slang
`

	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	require.Len(t, cfg.Rules.PluralRules, 1)
	assert.Equal(t, "(?i)(matr)ix$", cfg.Rules.PluralRules[0].Pattern)
	assert.Equal(t, "$1ices", cfg.Rules.PluralRules[0].Replacement)
	require.Len(t, cfg.Rules.SingularRules, 1)
	assert.Equal(t, "corpora", cfg.Rules.Irregulars["corpus"])
	assert.Equal(t, []string{"slang"}, cfg.Rules.Uncountables)
}

// Note: Full integration tests for Load() should be done in integration tests
// because Load() relies on global state (pflag.CommandLine) which is difficult
// to test in isolation without causing conflicts between tests.

func TestConfig_Validate(t *testing.T) {
	validConfig := func() *Config {
		return &Config{
			Logging: logging.Config{
				Level:  "info",
				Format: "text",
			},
			Rules: pluralizer.Config{
				PluralRules: []pluralizer.RuleConfig{
					{Pattern: `(?i)(vax)$`, Replacement: "$1en"},
				},
				Irregulars: map[string]string{
					"corpus": "corpora",
				},
				Uncountables: []string{"slang"},
			},
		}
	}

	t.Run("valid config passes validation", func(t *testing.T) {
		result := validConfig().Validate()
		assert.False(t, result.HasErrors())
		assert.Empty(t, result.Warnings)
	})

	t.Run("empty config passes validation", func(t *testing.T) {
		cfg := &Config{}
		result := cfg.Validate()
		assert.False(t, result.HasErrors())
	})

	t.Run("unknown log level fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logging.Level = "verbose"
		result := cfg.Validate()
		require.True(t, result.HasErrors())
		assert.Equal(t, "logging.level", result.Errors[0].Field)
	})

	t.Run("unknown log format fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logging.Format = "xml"
		result := cfg.Validate()
		require.True(t, result.HasErrors())
		assert.Equal(t, "logging.format", result.Errors[0].Field)
	})

	t.Run("invalid rule pattern fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Rules.PluralRules = append(cfg.Rules.PluralRules, pluralizer.RuleConfig{
			Pattern:     "([",
			Replacement: "$1",
		})
		result := cfg.Validate()
		assert.True(t, result.HasErrors())
	})

	t.Run("empty rule pattern fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Rules.SingularRules = []pluralizer.RuleConfig{{Pattern: "  "}}
		result := cfg.Validate()
		assert.True(t, result.HasErrors())
	})

	t.Run("empty replacement warns", func(t *testing.T) {
		cfg := validConfig()
		cfg.Rules.PluralRules = []pluralizer.RuleConfig{{Pattern: `(?i)fish$`}}
		result := cfg.Validate()
		assert.False(t, result.HasErrors())
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0].Hint, "no-change")
	})

	t.Run("incomplete irregular pair fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Rules.Irregulars = map[string]string{"corpus": ""}
		result := cfg.Validate()
		assert.True(t, result.HasErrors())
	})

	t.Run("empty uncountable fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Rules.Uncountables = []string{""}
		result := cfg.Validate()
		assert.True(t, result.HasErrors())
	})

	t.Run("invalid uncountable pattern fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Rules.Uncountables = []string{"(?i)(["}
		result := cfg.Validate()
		assert.True(t, result.HasErrors())
	})

	t.Run("validation error message includes hint", func(t *testing.T) {
		err := ValidationError{Field: "logging.level", Message: "unknown", Hint: "use debug"}
		assert.Equal(t, "logging.level: unknown (hint: use debug)", err.Error())
	})
}

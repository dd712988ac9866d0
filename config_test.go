package pluralizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithConfig(t *testing.T) {
	cfg := Config{
		PluralRules: []RuleConfig{
			{Pattern: `(?i)(vax)$`, Replacement: "$1en"},
		},
		SingularRules: []RuleConfig{
			{Pattern: `(?i)(vax)en$`, Replacement: "$1"},
		},
		Irregulars: map[string]string{
			"corpus": "corpora",
		},
		Uncountables: []string{"lorem"},
	}

	e, err := New(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, "vaxen", e.Plural("vax"))
	assert.Equal(t, "vax", e.Singular("vaxen"))
	assert.Equal(t, "corpora", e.Plural("corpus"))
	assert.Equal(t, "corpus", e.Singular("corpora"))
	assert.Equal(t, "lorem", e.Plural("lorem"))

	// Defaults are still present underneath the customizations.
	assert.Equal(t, "houses", e.Plural("house"))
}

func TestNew_ConfigShadowsDefaults(t *testing.T) {
	cfg := Config{
		Irregulars: map[string]string{
			"die": "dies",
		},
	}

	e, err := New(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, "dies", e.Plural("die"))
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad plural pattern", Config{PluralRules: []RuleConfig{{Pattern: "([", Replacement: "$1"}}}},
		{"bad singular pattern", Config{SingularRules: []RuleConfig{{Pattern: "([", Replacement: "$1"}}}},
		{"bad uncountable pattern", Config{Uncountables: []string{"(?i)(["}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, nil)
			assert.Error(t, err)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.PluralRules)
	assert.Empty(t, cfg.SingularRules)
	assert.Empty(t, cfg.Irregulars)
	assert.Empty(t, cfg.Uncountables)

	e, err := New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "houses", e.Plural("house"))
}

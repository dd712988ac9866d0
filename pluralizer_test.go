package pluralizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageLevelAPI(t *testing.T) {
	Initialize()

	assert.Equal(t, "2 Houses", Pluralize("House", 2, true))
	assert.Equal(t, "1 House", Pluralize("Houses", 1, true))
	assert.Equal(t, "House", Pluralize("House", 1, false))
	assert.Equal(t, "Houses", Pluralize("Houses", 2, false))

	assert.Equal(t, "geese", ToPlural("goose"))
	assert.Equal(t, "goose", ToSingular("geese"))
}

func TestInitialize_Idempotent(t *testing.T) {
	Initialize()
	before := engine()
	Initialize()
	assert.Same(t, before, engine())
}

func TestPackageLevelRegistration(t *testing.T) {
	// Nonsense words keep the shared default engine clean for other tests.
	AddIrregularRule("zorp", "zorpim")
	assert.Equal(t, "zorpim", ToPlural("zorp"))
	assert.Equal(t, "zorp", ToSingular("zorpim"))

	require.NoError(t, AddUncountableRule("flumf"))
	assert.Equal(t, "flumf", Pluralize("flumf", 3, false))

	require.NoError(t, AddPluralRule(`(?i)(snark)$`, "$1xes"))
	assert.Equal(t, "snarkxes", ToPlural("snark"))

	require.NoError(t, AddSingularRule(`(?i)(snark)xes$`, "$1"))
	assert.Equal(t, "snark", ToSingular("snarkxes"))
}

func TestPackageLevelRegistration_InvalidPattern(t *testing.T) {
	assert.Error(t, AddPluralRule("([", "$1"))
	assert.Error(t, AddSingularRule("([", "$1"))
}

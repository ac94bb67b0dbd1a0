package kinds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDamageKind(t *testing.T) {
	tests := map[string]DamageKind{
		"Generic": DamageGeneric,
		"Hazard":  DamageHazard,
		"Sun":     DamageSun,
		"Other":   DamageOther,
		"Blob":    DamageHazard,
	}
	for name, want := range tests {
		got, err := ParseDamageKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseDamageKind("sun")
	assert.Error(t, err)
}

func TestParseItemKind(t *testing.T) {
	tests := map[string]ItemKind{
		"HealingVial": ItemHealingVial,
		"SunShield":   ItemSunShield,
		"BloodVail":   ItemHealingVial,
		"Umbrella":    ItemSunShield,
	}
	for name, want := range tests {
		got, err := ParseItemKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseItemKind("")
	assert.Error(t, err)
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "Sun", DamageSun.String())
	assert.Equal(t, "DamageKind(9)", DamageKind(9).String())
	assert.Equal(t, "SunShield", ItemSunShield.String())
	assert.Equal(t, "ItemKind(-1)", ItemKind(-1).String())

	assert.False(t, DamageKindCount.Valid())
	assert.False(t, ItemKindCount.Valid())
	assert.True(t, ItemHealingVial.Valid())
}

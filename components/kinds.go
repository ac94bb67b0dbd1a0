package components

import "github.com/automoto/dracula/shared/kinds"

// Type aliases so systems can use components.DamageKind etc.
type DamageKind = kinds.DamageKind
type ItemKind = kinds.ItemKind

const (
	DamageGeneric   = kinds.DamageGeneric
	DamageHazard    = kinds.DamageHazard
	DamageSun       = kinds.DamageSun
	DamageOther     = kinds.DamageOther
	DamageKindCount = kinds.DamageKindCount

	ItemHealingVial = kinds.ItemHealingVial
	ItemSunShield   = kinds.ItemSunShield
	ItemKindCount   = kinds.ItemKindCount
)

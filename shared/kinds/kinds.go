// Package kinds holds the closed sets of damage and item kinds shared by the
// level loader and the simulation. It has no engine dependencies.
package kinds

import "fmt"

// DamageKind classifies a damage source so immunities can filter it.
type DamageKind int

const (
	DamageGeneric DamageKind = iota
	DamageHazard
	DamageSun
	DamageOther
	DamageKindCount // Must be last - used for array sizing
)

var damageNames = [DamageKindCount]string{
	DamageGeneric: "Generic",
	DamageHazard:  "Hazard",
	DamageSun:     "Sun",
	DamageOther:   "Other",
}

func (k DamageKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("DamageKind(%d)", int(k))
	}
	return damageNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k DamageKind) Valid() bool {
	return k >= 0 && k < DamageKindCount
}

// ParseDamageKind maps a level or config name to a DamageKind. "Blob" is
// accepted as an alias of Hazard.
func ParseDamageKind(name string) (DamageKind, error) {
	if name == "Blob" {
		return DamageHazard, nil
	}
	for k, n := range damageNames {
		if n == name {
			return DamageKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown damage kind %q", name)
}

// ItemKind is a consumable the player can carry.
type ItemKind int

const (
	ItemHealingVial ItemKind = iota
	ItemSunShield
	ItemKindCount // Must be last - used for array sizing
)

var itemNames = [ItemKindCount]string{
	ItemHealingVial: "HealingVial",
	ItemSunShield:   "SunShield",
}

func (k ItemKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
	return itemNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k ItemKind) Valid() bool {
	return k >= 0 && k < ItemKindCount
}

// ParseItemKind maps a level name to an ItemKind. The older "BloodVail" and
// "Umbrella" names are still accepted.
func ParseItemKind(name string) (ItemKind, error) {
	switch name {
	case "BloodVail":
		return ItemHealingVial, nil
	case "Umbrella":
		return ItemSunShield, nil
	}
	for k, n := range itemNames {
		if n == name {
			return ItemKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown item kind %q", name)
}

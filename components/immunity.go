package components

import "github.com/yohamta/donburi"

// ImmunityWindow suppresses one damage kind until Remaining reaches zero.
type ImmunityWindow struct {
	Active    bool
	Remaining float64 // Seconds
}

type ImmunityData struct {
	Windows [DamageKindCount]ImmunityWindow
}

// Immune reports whether damage of kind is currently suppressed.
func (d *ImmunityData) Immune(kind DamageKind) bool {
	if !kind.Valid() {
		return false
	}
	return d.Windows[kind].Active
}

var Immunity = donburi.NewComponentType[ImmunityData]()

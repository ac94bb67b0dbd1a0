package components

import "github.com/yohamta/donburi"

// LifeState is derived from health. Dead is terminal.
type LifeState int

const (
	Alive LifeState = iota
	Dead
)

func (s LifeState) String() string {
	if s == Dead {
		return "Dead"
	}
	return "Alive"
}

type HealthData struct {
	Current int
	Max     int
}

func (h *HealthData) Alive() bool {
	return h.Current > 0
}

func (h *HealthData) State() LifeState {
	if h.Alive() {
		return Alive
	}
	return Dead
}

var Health = donburi.NewComponentType[HealthData]()

package factory

import (
	"github.com/automoto/dracula/components"
	"github.com/automoto/dracula/presentation"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateServices binds the presentation port and creates the empty
// singletons every scene needs.
func CreateServices(ecs *ecs.ECS, presenter presentation.Port) *donburi.Entry {
	entry := ecs.World.Entry(ecs.World.Create(
		components.Presenter,
		components.Clock,
		components.Audio,
		components.Input,
		components.GameOver,
		components.PopUp,
	))
	components.Presenter.SetValue(entry, components.PresenterData{Port: presenter})
	return entry
}

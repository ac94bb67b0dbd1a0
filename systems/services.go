package systems

import (
	"log"
	"sync"

	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/presentation"
	"github.com/automoto/dracula/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var missingPresenterOnce sync.Once

// getOrCreateClock returns the singleton Clock component, creating if needed
func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// getOrCreateGameOver returns the singleton GameOver component, creating if needed
func getOrCreateGameOver(ecs *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.GameOver))
	}
	return components.GameOver.Get(entry)
}

// getOrCreateAudio returns the singleton Audio component, creating if needed
func getOrCreateAudio(ecs *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}

// PlaySFX queues a sound effect to be played by UpdateAudio.
func PlaySFX(ecs *ecs.ECS, id cfg.SoundID) {
	audio := getOrCreateAudio(ecs)
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// presenter returns the bound presentation port. Without one, a warning is
// logged once and notifications are dropped.
func presenter(ecs *ecs.ECS) presentation.Port {
	if entry, ok := components.Presenter.First(ecs.World); ok {
		if p := components.Presenter.Get(entry); p.Port != nil {
			return p.Port
		}
	}
	missingPresenterOnce.Do(func() {
		log.Printf("Warning: no presentation bound, UI notifications are dropped")
	})
	return presentation.Discard
}

// IsGameOver reports whether the player has died this scene.
func IsGameOver(ecs *ecs.ECS) bool {
	entry, ok := components.GameOver.First(ecs.World)
	if !ok {
		return false
	}
	return components.GameOver.Get(entry).Triggered
}

// eachLivingPlayer runs fn for every player that is not Dead.
func eachLivingPlayer(ecs *ecs.ECS, fn func(e *donburi.Entry)) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Health.Get(e).Alive() {
			return
		}
		fn(e)
	})
}


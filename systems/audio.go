package systems

import (
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/yohamta/donburi/ecs"
)

// SoundPlayer plays sound effects by ID.
type SoundPlayer interface {
	Play(id cfg.SoundID)
}

// NewUpdateAudio returns a system that drains the pending SFX queue into
// player. A nil player just drops the queue.
func NewUpdateAudio(player SoundPlayer) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Audio.First(e.World)
		if !ok {
			return
		}
		audioData := components.Audio.Get(entry)
		if player != nil {
			for _, soundID := range audioData.PendingSFX {
				player.Play(soundID)
			}
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

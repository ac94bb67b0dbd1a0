package components

import (
	cfg "github.com/automoto/dracula/config"
	"github.com/yohamta/donburi"
)

// AudioData is the singleton queue of sound effects requested this frame.
// The mixer drains it in UpdateAudio.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

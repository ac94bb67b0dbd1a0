package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundWalk
	SoundJump
	SoundDead
	SoundTakingDamage
	SoundPickup
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	BackgroundMusic   string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		BackgroundMusic: "audio/music/castle.ogg",
		SFXPaths: map[SoundID]string{
			SoundWalk:         "audio/sfx/walk.wav",
			SoundJump:         "audio/sfx/jump.wav",
			SoundDead:         "audio/sfx/dead.wav",
			SoundTakingDamage: "audio/sfx/taking_damage.wav",
			SoundPickup:       "audio/sfx/pickup.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundWalk: 0.5,
		},
	}
}

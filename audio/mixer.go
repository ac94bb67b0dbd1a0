// Package audio plays the game's music and sound effects.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"
	"sync"

	cfg "github.com/automoto/dracula/config"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var (
	contextOnce   sync.Once
	sharedContext *eaudio.Context
)

// Ebiten allows a single audio context per process.
func audioContext() *eaudio.Context {
	contextOnce.Do(func() {
		sharedContext = eaudio.NewContext(cfg.Audio.SampleRate)
	})
	return sharedContext
}

// Mixer loads sounds from a file system and plays them. Missing or broken
// files are logged once and then skipped.
type Mixer struct {
	fsys      fs.FS
	context   *eaudio.Context
	sfxCache  map[string][]byte
	failed    map[string]bool
	music     *eaudio.Player
	musicKey  string
	musicVol  float64
	sfxVolume float64
}

// NewMixer creates a mixer reading from fsys.
func NewMixer(fsys fs.FS) *Mixer {
	return &Mixer{
		fsys:      fsys,
		context:   audioContext(),
		sfxCache:  make(map[string][]byte),
		failed:    make(map[string]bool),
		musicVol:  cfg.Audio.DefaultMusicVol,
		sfxVolume: cfg.Audio.DefaultSFXVol,
	}
}

// Preload decodes every configured sound effect to avoid lag on first play.
func (m *Mixer) Preload() {
	for _, p := range cfg.Sound.SFXPaths {
		if _, err := m.decoded(p); err != nil {
			m.fail(p, err)
		}
	}
}

// Play starts a new instance of the sound effect id.
func (m *Mixer) Play(id cfg.SoundID) {
	if m.sfxVolume <= 0 {
		return
	}
	p, ok := cfg.Sound.SFXPaths[id]
	if !ok || m.failed[p] {
		return
	}
	data, err := m.decoded(p)
	if err != nil {
		m.fail(p, err)
		return
	}

	player := m.context.NewPlayerFromBytes(data)
	volume := m.sfxVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// PlayMusic loops the OGG file at p, replacing whatever was playing.
func (m *Mixer) PlayMusic(p string) {
	if p == "" || m.musicKey == p || m.failed[p] {
		return
	}
	player, err := m.loadMusic(p)
	if err != nil {
		m.fail(p, err)
		return
	}
	m.StopMusic()
	player.SetVolume(m.musicVol)
	player.Play()
	m.music = player
	m.musicKey = p
}

// StopMusic immediately stops the current music.
func (m *Mixer) StopMusic() {
	if m.music != nil {
		_ = m.music.Close()
		m.music = nil
		m.musicKey = ""
	}
}

func (m *Mixer) fail(p string, err error) {
	if m.failed[p] {
		return
	}
	m.failed[p] = true
	log.Printf("Warning: audio %s disabled: %v", p, err)
}

func (m *Mixer) decoded(p string) ([]byte, error) {
	if data, ok := m.sfxCache[p]; ok {
		return data, nil
	}
	raw, err := fs.ReadFile(m.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(m.context.SampleRate(), bytes.NewReader(raw))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(m.context.SampleRate(), bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p, err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}
	m.sfxCache[p] = data
	return data, nil
}

func (m *Mixer) loadMusic(p string) (*eaudio.Player, error) {
	raw, err := fs.ReadFile(m.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", p, err)
	}
	stream, err := vorbis.DecodeWithSampleRate(m.context.SampleRate(), bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music ogg %s: %w", p, err)
	}
	loop := eaudio.NewInfiniteLoop(stream, stream.Length())
	return m.context.NewPlayer(loop)
}

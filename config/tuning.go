package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"

	"gopkg.in/yaml.v3"
)

// tuning is the YAML document accepted by LoadTuning. Sections that are
// omitted keep their current values.
type tuning struct {
	Player PlayerConfig `yaml:"player"`
	World  WorldConfig  `yaml:"world"`
	Items  ItemConfig   `yaml:"items"`
	Hazard HazardConfig `yaml:"hazard"`
	Blob   BlobConfig   `yaml:"blob"`
	Camera CameraConfig `yaml:"camera"`
}

// LoadTuning reads a tuning file from fsys and overlays it on the globals.
func LoadTuning(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// ApplyTuning overlays a YAML tuning document on the current configuration.
// Unknown keys and invalid values are rejected and leave the globals untouched.
func ApplyTuning(data []byte) error {
	doc := tuning{
		Player: Player,
		World:  World,
		Items:  Items,
		Hazard: Hazard,
		Blob:   Blob,
		Camera: Camera,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	Player = doc.Player
	World = doc.World
	Items = doc.Items
	Hazard = doc.Hazard
	Blob = doc.Blob
	Camera = doc.Camera
	return nil
}

func (t *tuning) validate() error {
	switch {
	case t.Player.MaxHealth <= 0:
		return fmt.Errorf("player.max_health must be positive, got %d", t.Player.MaxHealth)
	case t.Player.MaxJumps < 0:
		return fmt.Errorf("player.max_jumps must not be negative, got %d", t.Player.MaxJumps)
	case t.Player.MaxVelocity <= 0:
		return fmt.Errorf("player.max_velocity must be positive, got %v", t.Player.MaxVelocity)
	case t.Player.GroundCheckRadius < 0:
		return fmt.Errorf("player.ground_check_radius must not be negative, got %v", t.Player.GroundCheckRadius)
	case t.Player.CornerRadius < 0 || 2*t.Player.CornerRadius >= math.Min(t.Player.Width, t.Player.Height):
		return fmt.Errorf("player.corner_radius must be in [0, half the body size), got %v", t.Player.CornerRadius)
	case t.Player.StartingVials < 0 || t.Player.StartingShields < 0:
		return errors.New("player starting item counts must not be negative")
	case t.World.FixedDelta <= 0:
		return fmt.Errorf("world.fixed_delta must be positive, got %v", t.World.FixedDelta)
	case t.World.MaxSteps <= 0:
		return fmt.Errorf("world.max_steps must be positive, got %d", t.World.MaxSteps)
	case t.Items.SunShieldDuration <= 0:
		return fmt.Errorf("items.sun_shield_duration must be positive, got %v", t.Items.SunShieldDuration)
	case t.Hazard.Interval <= 0:
		return fmt.Errorf("hazard.interval must be positive, got %v", t.Hazard.Interval)
	}
	return nil
}

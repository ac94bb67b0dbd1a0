package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepTuning restores the tuning globals when the test ends.
func keepTuning(t *testing.T) {
	t.Helper()
	player, world, items, hazard, blob, camera := Player, World, Items, Hazard, Blob, Camera
	t.Cleanup(func() {
		Player, World, Items, Hazard, Blob, Camera = player, world, items, hazard, blob, camera
	})
}

func TestApplyTuningOverlaysGivenKeys(t *testing.T) {
	keepTuning(t)
	jump := Player.JumpImpulse

	err := ApplyTuning([]byte("player:\n  max_health: 150\nitems:\n  sun_shield_duration: 2.5\n"))

	require.NoError(t, err)
	assert.Equal(t, 150, Player.MaxHealth)
	assert.Equal(t, 2.5, Items.SunShieldDuration)
	assert.Equal(t, jump, Player.JumpImpulse)
}

func TestApplyTuningEmptyDocument(t *testing.T) {
	keepTuning(t)
	before := Player

	require.NoError(t, ApplyTuning(nil))
	assert.Equal(t, before, Player)
}

func TestApplyTuningRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "player:\n  speed: 3\n"},
		{"zero health", "player:\n  max_health: 0\n"},
		{"negative jumps", "player:\n  max_jumps: -1\n"},
		{"zero step", "world:\n  fixed_delta: 0\n"},
		{"zero shield", "items:\n  sun_shield_duration: 0\n"},
		{"zero interval", "hazard:\n  interval: 0\n"},
		{"negative vials", "player:\n  starting_vials: -2\n"},
		{"negative corner radius", "player:\n  corner_radius: -0.1\n"},
		{"corner radius too large", "player:\n  corner_radius: 0.4\n"},
		{"malformed", "player: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keepTuning(t)
			before := Player

			assert.Error(t, ApplyTuning([]byte(tt.doc)))
			assert.Equal(t, before, Player, "globals are untouched")
		})
	}
}

func TestLoadTuning(t *testing.T) {
	keepTuning(t)
	fsys := fstest.MapFS{
		"tuning.yaml": {Data: []byte("blob:\n  speed: 4\n")},
	}

	require.NoError(t, LoadTuning(fsys, "tuning.yaml"))
	assert.Equal(t, 4.0, Blob.Speed)

	err := LoadTuning(fsys, "missing.yaml")
	assert.ErrorContains(t, err, "missing.yaml")
}

func TestTuningWatcherReloads(t *testing.T) {
	keepTuning(t)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  smooth_speed: 0.1\n"), 0o644))

	w, err := WatchTuning(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	// Replace the file the way editors save it
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte("camera:\n  smooth_speed: 0.5\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	require.Eventually(t, func() bool {
		w.Poll()
		return Camera.SmoothSpeed == 0.5
	}, 5*time.Second, 20*time.Millisecond)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

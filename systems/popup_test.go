package systems

import (
	"testing"

	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) advancePopUp(dt float64) *components.PopUpData {
	h.frame(dt)
	UpdatePopUp(h.ecs)
	return getOrCreatePopUp(h.ecs)
}

func TestPopUpSequence(t *testing.T) {
	h := newHarness(t)
	fade := cfg.PopUp.FadeDuration

	ShowMessage(h.ecs, "The sun is rising", 1)
	popup := getOrCreatePopUp(h.ecs)
	require.Equal(t, components.PopUpFadingIn, popup.Phase)
	assert.Equal(t, "The sun is rising", popup.Text)
	assert.Zero(t, popup.Alpha)

	h.advancePopUp(fade / 2)
	assert.Equal(t, components.PopUpFadingIn, popup.Phase)
	assert.InDelta(t, 0.5, popup.Alpha, 1e-3)

	h.advancePopUp(fade)
	assert.Equal(t, components.PopUpShowing, popup.Phase)
	assert.InDelta(t, 1, popup.Alpha, 1e-6)

	h.advancePopUp(0.5)
	assert.Equal(t, components.PopUpShowing, popup.Phase)

	h.advancePopUp(0.6)
	assert.Equal(t, components.PopUpFadingOut, popup.Phase)

	h.advancePopUp(fade * 2)
	assert.Equal(t, components.PopUpIdle, popup.Phase)
	assert.Empty(t, popup.Text)
	assert.InDelta(t, 0, popup.Alpha, 1e-6)
}

func TestPopUpDefaultDuration(t *testing.T) {
	h := newHarness(t)

	ShowMessage(h.ecs, "Find the castle", 0)

	assert.Equal(t, cfg.PopUp.DisplayDuration, getOrCreatePopUp(h.ecs).Duration)
}

func TestPopUpReplacesActiveMessage(t *testing.T) {
	h := newHarness(t)
	fade := cfg.PopUp.FadeDuration

	ShowMessage(h.ecs, "first", 1)
	h.advancePopUp(fade * 2)

	ShowMessage(h.ecs, "second", 2)
	popup := getOrCreatePopUp(h.ecs)
	assert.Equal(t, components.PopUpWaiting, popup.Phase)
	assert.Equal(t, "second", popup.Pending)

	// The old message stays frozen while waiting
	h.advancePopUp(fade / 2)
	assert.Equal(t, components.PopUpWaiting, popup.Phase)
	assert.Equal(t, "first", popup.Text)
	assert.InDelta(t, 1, popup.Alpha, 1e-6)

	h.advancePopUp(fade)
	assert.Equal(t, components.PopUpFadingIn, popup.Phase)
	assert.Equal(t, "second", popup.Text)
	assert.Zero(t, popup.Alpha)
	assert.Equal(t, 2.0, popup.Duration)
	assert.Empty(t, popup.Pending)
}

func TestPopUpPreemptedMidFadeFreezes(t *testing.T) {
	h := newHarness(t)
	fade := cfg.PopUp.FadeDuration

	ShowMessage(h.ecs, "first", 1)
	popup := h.advancePopUp(fade / 2)
	alpha := popup.Alpha
	require.Greater(t, alpha, 0.0)

	ShowMessage(h.ecs, "second", 1)
	h.advancePopUp(fade / 4)

	assert.Equal(t, components.PopUpWaiting, popup.Phase)
	assert.Equal(t, "first", popup.Text)
	assert.Equal(t, alpha, popup.Alpha)
}

func TestPopUpLatestMessageWins(t *testing.T) {
	h := newHarness(t)

	ShowMessage(h.ecs, "one", 1)
	ShowMessage(h.ecs, "two", 1)
	ShowMessage(h.ecs, "three", 1)
	h.advancePopUp(cfg.PopUp.FadeDuration * 2)

	assert.Equal(t, "three", getOrCreatePopUp(h.ecs).Text)
}

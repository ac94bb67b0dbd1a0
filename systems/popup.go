package systems

import (
	"image/color"

	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreatePopUp returns the singleton PopUp component, creating if needed
func getOrCreatePopUp(ecs *ecs.ECS) *components.PopUpData {
	entry, ok := components.PopUp.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.PopUp))
	}
	return components.PopUp.Get(entry)
}

// ShowMessage fades msg in, holds it for duration seconds and fades it out.
// A message already on screen freezes where it is and the new one fades in
// from transparent after one fade period. duration <= 0 uses the configured
// default.
func ShowMessage(ecs *ecs.ECS, msg string, duration float64) {
	if duration <= 0 {
		duration = cfg.PopUp.DisplayDuration
	}
	popup := getOrCreatePopUp(ecs)

	if popup.Phase == components.PopUpIdle {
		startFadeIn(popup, msg, duration)
		return
	}

	popup.Phase = components.PopUpWaiting
	popup.Fade = nil
	popup.Timer = cfg.PopUp.FadeDuration
	popup.Pending = msg
	popup.PendingDuration = duration
}

func startFadeIn(popup *components.PopUpData, msg string, duration float64) {
	popup.Phase = components.PopUpFadingIn
	popup.Text = msg
	popup.Duration = duration
	popup.Alpha = 0
	popup.Pending = ""
	popup.PendingDuration = 0
	popup.Fade = gween.New(0, 1, float32(cfg.PopUp.FadeDuration), ease.Linear)
}

// UpdatePopUp advances the popup sequence on the frame clock.
func UpdatePopUp(ecs *ecs.ECS) {
	popup := getOrCreatePopUp(ecs)
	dt := getOrCreateClock(ecs).FrameDelta

	switch popup.Phase {
	case components.PopUpWaiting:
		popup.Timer -= dt
		if popup.Timer <= 0 {
			startFadeIn(popup, popup.Pending, popup.PendingDuration)
		}

	case components.PopUpFadingIn:
		if !stepFade(popup, dt) {
			return
		}
		popup.Phase = components.PopUpShowing
		popup.Timer = popup.Duration

	case components.PopUpShowing:
		popup.Timer -= dt
		if popup.Timer <= 0 {
			popup.Phase = components.PopUpFadingOut
			popup.Fade = gween.New(1, 0, float32(cfg.PopUp.FadeDuration), ease.Linear)
		}

	case components.PopUpFadingOut:
		if !stepFade(popup, dt) {
			return
		}
		popup.Phase = components.PopUpIdle
		popup.Text = ""
	}
}

// stepFade advances the fade tween and reports whether it finished.
func stepFade(popup *components.PopUpData, dt float64) bool {
	if popup.Fade == nil {
		return true
	}
	alpha, finished := popup.Fade.Update(float32(dt))
	popup.Alpha = float64(alpha)
	if finished {
		popup.Fade = nil
	}
	return finished
}

// DrawPopUp renders the active message at the top center of the screen
func DrawPopUp(ecs *ecs.ECS, screen *ebiten.Image) {
	popup := getOrCreatePopUp(ecs)
	if popup.Text == "" || popup.Alpha <= 0 || !fonts.Loaded(fonts.Message) {
		return
	}
	face := fonts.Message.Get()

	bounds := text.BoundString(face, popup.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.PopUp.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.PopUp.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, fade(cfg.PopUp.BoxColor, popup.Alpha), false)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, popup.Text, face, textX, textY, fade(cfg.PopUp.TextColor, popup.Alpha)) //nolint:staticcheck // TODO: migrate to text/v2
}

// fade scales a color's alpha by a in [0, 1].
func fade(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}

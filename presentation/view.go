package presentation

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// View is the retained state behind the HUD, the player sprite and the
// camera. Systems notify it through Port; renderers read its fields.
type View struct {
	Animation string
	Alpha     float64

	MaxHealth   int
	Health      int     // Last value reported by the core
	HealthShown float64 // Value currently drawn, animated toward Health

	Vials   int
	Shields int

	GameOverVisible   bool
	GameplayUIVisible bool
	CameraFollow      bool

	healthTween   *gween.Tween
	tweenDuration float32
}

var _ Port = (*View)(nil)

// NewView returns a view with the gameplay UI shown and the camera following.
// tweenDuration is the health bar animation time in seconds.
func NewView(tweenDuration float64) *View {
	return &View{
		Alpha:             1,
		GameplayUIVisible: true,
		CameraFollow:      true,
		tweenDuration:     float32(tweenDuration),
	}
}

func (v *View) Initialize(maxHealth int) {
	v.MaxHealth = maxHealth
	v.SetHealth(maxHealth)
}

func (v *View) SetHealth(value int) {
	v.Health = value
	v.HealthShown = float64(value)
	v.healthTween = nil
}

func (v *View) UpdateHealth(value int) {
	v.Health = value
	if v.tweenDuration <= 0 {
		v.HealthShown = float64(value)
		return
	}
	v.healthTween = gween.New(float32(v.HealthShown), float32(value), v.tweenDuration, ease.OutQuad)
}

func (v *View) UpdateInventory(vials, shields int) {
	v.Vials = vials
	v.Shields = shields
}

func (v *View) PlayAnimation(name string) {
	v.Animation = name
}

func (v *View) SetSpriteAlpha(alpha float64) {
	v.Alpha = alpha
}

func (v *View) ShowGameOver() {
	v.GameOverVisible = true
}

func (v *View) HideGameplayUI() {
	v.GameplayUIVisible = false
}

func (v *View) StopCameraFollow() {
	v.CameraFollow = false
}

// Update advances the health bar animation by dt seconds.
func (v *View) Update(dt float64) {
	if v.healthTween == nil {
		return
	}
	current, finished := v.healthTween.Update(float32(dt))
	v.HealthShown = float64(current)
	if finished {
		v.HealthShown = float64(v.Health)
		v.healthTween = nil
	}
}

// HealthFill is the displayed health as a fraction of max, clamped to [0, 1].
func (v *View) HealthFill() float64 {
	if v.MaxHealth <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, v.HealthShown/float64(v.MaxHealth)))
}

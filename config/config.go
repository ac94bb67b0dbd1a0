package config

import "image/color"

// PlayerConfig contains all player-related configuration values.
// Distances are world units (Y up), times are seconds.
type PlayerConfig struct {
	// Movement
	MovementForce float64 `yaml:"movement_force"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	MaxVelocity   float64 `yaml:"max_velocity"`

	// Jumping. Without a ground check the player never lands.
	MaxJumps           int     `yaml:"max_jumps"`
	GroundCheckEnabled bool    `yaml:"ground_check_enabled"`
	GroundCheckRadius  float64 `yaml:"ground_check_radius"`
	GroundCheckOffsetX float64 `yaml:"ground_check_offset_x"`
	GroundCheckOffsetY float64 `yaml:"ground_check_offset_y"`

	// Health
	MaxHealth  int     `yaml:"max_health"`
	FallDeathY float64 `yaml:"fall_death_y"`

	// Starting inventory
	StartingVials   int `yaml:"starting_vials"`
	StartingShields int `yaml:"starting_shields"`

	// Body
	Mass     float64 `yaml:"mass"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Friction float64 `yaml:"friction"`
	// Corner rounding of the player box
	CornerRadius float64 `yaml:"corner_radius"`

	// Walk threshold for locomotion animations
	WalkThreshold float64 `yaml:"walk_threshold"`
}

// WorldConfig contains simulation clock and physics world values.
type WorldConfig struct {
	Gravity       float64 `yaml:"gravity"`         // Negative pulls down
	FixedDelta    float64 `yaml:"fixed_delta"`     // Seconds per physics step
	MaxSteps      int     `yaml:"max_steps"`       // Max fixed steps per frame before dropping time
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Longest frame the driver will accept
	Iterations    int     `yaml:"iterations"`      // Solver iterations

	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	TriggerCell   int     `yaml:"trigger_cell"` // resolv cell size in world units
}

// ItemConfig contains consumable item tuning.
type ItemConfig struct {
	SunShieldDuration float64 `yaml:"sun_shield_duration"`
	ShieldAlpha       float64 `yaml:"shield_alpha"`
	PickupSize        float64 `yaml:"pickup_size"`

	// Refuse a healing vial when health is already full.
	VialRefusedAtFullHealth bool `yaml:"vial_refused_at_full_health"`
}

// HazardConfig holds area damage defaults used when a level omits them.
type HazardConfig struct {
	Amount   int     `yaml:"amount"`
	Interval float64 `yaml:"interval"`
}

// BlobConfig holds patrol enemy defaults.
type BlobConfig struct {
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

// PopUpConfig controls popup message timing and layout.
type PopUpConfig struct {
	FadeDuration    float64
	DisplayDuration float64
	BoxPadding      float64
	BoxColor        color.RGBA
	TextColor       color.RGBA
	TopMargin       float64
}

// CameraConfig controls the horizontal follow camera.
type CameraConfig struct {
	SmoothSpeed float64 `yaml:"smooth_speed"`
	FixedY      float64 `yaml:"fixed_y"`
}

// HUDConfig controls the health bar and inventory panel.
type HUDConfig struct {
	BarX, BarY          float64
	BarWidth, BarHeight float64
	BarBackground       color.RGBA
	BarFill             color.RGBA
	HealthTweenDuration float64
}

// GameOverConfig controls the game over panel.
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	HintColor       color.RGBA
	Title           string
	Hint            string
}

type Config struct {
	Width  int
	Height int
}

var C *Config
var Player PlayerConfig
var World WorldConfig
var Items ItemConfig
var Hazard HazardConfig
var Blob BlobConfig
var PopUp PopUpConfig
var Camera CameraConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DamageKey    bool   // Enables the debug damage key
	DamageAmount int    // Damage dealt per press
	DrawBodies   bool   // Overlay body and trigger boxes
	TuningPath   string // Optional tuning file watched for changes
	LevelPath    string
}

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkRed      = color.RGBA{R: 120, G: 10, B: 20, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Gold         = color.RGBA{R: 255, G: 200, B: 60, A: 255}
	Stone        = color.RGBA{R: 70, G: 70, B: 85, A: 255}
	Night        = color.RGBA{R: 16, G: 12, B: 28, A: 255}
	SunOrange    = color.RGBA{R: 255, G: 150, B: 40, A: 110}
	BlobGreen    = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	PlayerPurple = color.RGBA{R: 150, G: 60, B: 200, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	World = WorldConfig{
		Gravity:       -9.81,
		FixedDelta:    1.0 / 50.0,
		MaxSteps:      5,
		MaxFrameDelta: 0.25,
		Iterations:    10,
		PixelsPerUnit: 32,
		TriggerCell:   1,
	}

	Player = PlayerConfig{
		MovementForce: 10,
		JumpImpulse:   15,
		MaxVelocity:   20,

		MaxJumps:           1,
		GroundCheckEnabled: true,
		GroundCheckRadius:  0.2,
		GroundCheckOffsetX: 0,
		GroundCheckOffsetY: -0.5,

		MaxHealth:  100,
		FallDeathY: -15,

		StartingVials:   3,
		StartingShields: 1,

		Mass:     1,
		Width:    0.8,
		Height:   1,
		Friction: 0.4,

		CornerRadius: 0.15,

		WalkThreshold: 0.01,
	}

	Items = ItemConfig{
		SunShieldDuration:       5,
		ShieldAlpha:             0.4,
		PickupSize:              0.6,
		VialRefusedAtFullHealth: false,
	}

	Hazard = HazardConfig{
		Amount:   20,
		Interval: 1,
	}

	Blob = BlobConfig{
		Speed:  2,
		Damage: 20,
		Width:  0.9,
		Height: 0.7,
		Mass:   1,
	}

	PopUp = PopUpConfig{
		FadeDuration:    0.4,
		DisplayDuration: 5,
		BoxPadding:      8,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       White,
		TopMargin:       30,
	}

	Camera = CameraConfig{
		SmoothSpeed: 0.125,
		FixedY:      4,
	}

	HUD = HUDConfig{
		BarX:                12,
		BarY:                12,
		BarWidth:            140,
		BarHeight:           10,
		BarBackground:       DarkRed,
		BarFill:             LightRed,
		HealthTweenDuration: 0.25,
	}

	GameOver = GameOverConfig{
		BackgroundColor: BlackOverlay,
		TitleColor:      LightRed,
		HintColor:       White,
		Title:           "GAME OVER",
		Hint:            "Press R to try again",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		DamageKey:    false,
		DamageAmount: 10,
		DrawBodies:   false,
		LevelPath:    "levels/castle.tmx",
	}
}

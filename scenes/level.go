package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/dracula/assets"
	"github.com/automoto/dracula/audio"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/loop"
	"github.com/automoto/dracula/presentation"
	"github.com/automoto/dracula/systems"
	"github.com/automoto/dracula/systems/factory"
	"github.com/automoto/dracula/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Services outlive a single scene and are handed to each restart.
type Services struct {
	Mixer   *audio.Mixer
	Watcher *cfg.TuningWatcher
}

// LevelScene plays one level until the player dies and restarts.
type LevelScene struct {
	ecs          *ecs.ECS
	driver       *loop.Driver
	view         *presentation.View
	hud          *ui.HUD
	sceneChanger SceneChanger
	services     Services
	levelPath    string
	lastUpdate   time.Time
	once         sync.Once
}

func NewLevelScene(sc SceneChanger, levelPath string, services Services) *LevelScene {
	return &LevelScene{
		sceneChanger: sc,
		services:     services,
		levelPath:    levelPath,
	}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)

	if ls.services.Watcher != nil {
		ls.services.Watcher.Poll()
	}

	now := time.Now()
	dt := 1 / float64(ebiten.TPS())
	if !ls.lastUpdate.IsZero() {
		dt = now.Sub(ls.lastUpdate).Seconds()
	}
	ls.lastUpdate = now

	ls.driver.Advance(dt)
	ls.hud.Update()

	if systems.IsGameOver(ls.ecs) && systems.ActionJustPressed(ls.ecs, cfg.ActionRestart) {
		log.Printf("Restarting %s", ls.levelPath)
		ls.sceneChanger.ChangeScene(NewLevelScene(ls.sceneChanger, ls.levelPath, ls.services))
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
	ls.hud.Draw(screen)
}

func (ls *LevelScene) configure() {
	level, err := assets.LoadLevel(ls.levelPath)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}

	ls.view = presentation.NewView(cfg.HUD.HealthTweenDuration)
	hud, err := ui.NewHUD(ls.view)
	if err != nil {
		panic("failed to build HUD: " + err.Error())
	}
	ls.hud = hud

	ecs := ecs.NewECS(donburi.NewWorld())
	factory.CreateServices(ecs, ls.view)
	factory.CreateLevel(ecs, level, ls.levelPath)
	player := factory.SpawnPlayer(ecs, level.Spawn.X, level.Spawn.Y)
	factory.CreateCamera(ecs, level.Spawn.X)
	systems.StartPlayer(ecs, player)
	systems.SnapCamera(ecs)

	var sounds systems.SoundPlayer
	if ls.services.Mixer != nil {
		sounds = ls.services.Mixer
		ls.services.Mixer.PlayMusic(cfg.Sound.BackgroundMusic)
	}

	ls.driver = loop.New(ecs, cfg.World.FixedDelta, cfg.World.MaxSteps, cfg.World.MaxFrameDelta).
		AddFrame(
			systems.UpdateInput,
			systems.UpdatePlayerInput,
			systems.UpdateItemInput,
			systems.UpdateOutOfBounds,
			systems.UpdateImmunity,
			systems.UpdateHazards,
			systems.UpdatePopUp,
			systems.NewUpdateView(ls.view),
			systems.UpdateCamera,
			systems.NewUpdateAudio(sounds),
		).
		AddStep(
			systems.UpdateGrounding,
			systems.UpdateMovement,
			systems.UpdateJump,
			systems.UpdateBlobs,
			systems.StepPhysics,
			systems.UpdateBlobContacts,
			systems.UpdatePickups,
			systems.UpdatePopUpTriggers,
		)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawTriggers)
	ecs.AddRenderer(cfg.Default, systems.NewDrawActors(ls.view))
	ecs.AddRenderer(cfg.Default, systems.DrawPopUp)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ls.ecs = ecs
}

package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/dracula/assets"
	"github.com/automoto/dracula/audio"
	"github.com/automoto/dracula/config"
	"github.com/automoto/dracula/fonts"
	"github.com/automoto/dracula/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(services scenes.Services) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLevelScene(g, config.Debug.LevelPath, services)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.DamageKey, "debug-damage", config.Debug.DamageKey, "T deals damage to the player")
	flag.BoolVar(&config.Debug.DrawBodies, "draw-bodies", config.Debug.DrawBodies, "outline trigger boxes")
	flag.StringVar(&config.Debug.TuningPath, "tuning", config.Debug.TuningPath, "YAML tuning file to load and watch")
	flag.StringVar(&config.Debug.LevelPath, "level", config.Debug.LevelPath, "embedded TMX level to play")
	audioDir := flag.String("audio", "assets", "directory holding audio/")
	flag.Parse()

	if err := config.LoadTuning(assets.FS(), assets.TuningPath); err != nil {
		log.Fatalf("Failed to load default tuning: %v", err)
	}
	// Fail early rather than on the first frame
	if _, err := assets.LoadLevel(config.Debug.LevelPath); err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var services scenes.Services
	if path := config.Debug.TuningPath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read tuning: %v", err)
		}
		if err := config.ApplyTuning(data); err != nil {
			log.Fatalf("Invalid tuning %s: %v", path, err)
		}
		watcher, err := config.WatchTuning(path)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", path, err)
		} else {
			defer watcher.Close()
			services.Watcher = watcher
		}
	}

	services.Mixer = audio.NewMixer(os.DirFS(*audioDir))
	services.Mixer.Preload()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Dracula")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(services)); err != nil {
		log.Fatal(err)
	}
}

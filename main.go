package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/starfx/config"
	"github.com/automoto/starfx/fonts"
	"github.com/automoto/starfx/scenes"
	"github.com/automoto/starfx/systems"
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

func NewGame(settings *systems.SavedSettings) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load HUD fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewStarFXScene(g, settings)

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
	tuning := flag.String("tuning", "", "YAML file overriding burst tuning")
	seed := flag.Int64("seed", 0, "Random seed for reproducible bursts (0 = time based)")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Printf("Warning: Could not load tuning: %v", err)
		}
	}
	config.Debug.Seed = *seed

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Star Burst")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil || saved == nil {
		defaults := systems.DefaultSettings()
		saved = &defaults
	}
	systems.ApplySavedSettingsGlobal(saved)

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}

package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"

	"github.com/automoto/starfx/assets"
	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/automoto/starfx/gamemath"
	"github.com/automoto/starfx/starfx"
	"github.com/automoto/starfx/systems"
	"github.com/automoto/starfx/systems/factory"
	"github.com/automoto/starfx/tween"
	"github.com/automoto/starfx/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches the running scene
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// StarFXScene is the burst demo: two panels sharing one star pool, clickable
// targets, a burst button and the On/Twinkle/Off icon.
type StarFXScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     *systems.SavedSettings
	scheduler    *tween.Scheduler
	emitter      *starfx.Emitter
	states       *starfx.StateController
	starUI       *ui.StarFXUI
	once         sync.Once
	shouldReload bool
}

// NewStarFXScene creates the demo scene. A nil settings uses the defaults.
func NewStarFXScene(sc SceneChanger, settings *systems.SavedSettings) *StarFXScene {
	if settings == nil {
		defaults := systems.DefaultSettings()
		settings = &defaults
	}
	return &StarFXScene{sceneChanger: sc, settings: settings}
}

func (s *StarFXScene) Update() {
	s.once.Do(s.configure)

	// Widget handlers may start bursts; the ECS update then steps them this frame.
	s.starUI.Update()
	s.ecs.Update()

	if s.shouldReload {
		s.scheduler.Clear()
		s.sceneChanger.ChangeScene(NewStarFXScene(s.sceneChanger, s.settings))
	}
}

func (s *StarFXScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
	s.starUI.UI.Draw(screen)
}

func (s *StarFXScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	layout := assets.MustLoadLayout(cfg.UI.LayoutPath)
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	if layout.Width != cfg.C.Width || layout.Height != cfg.C.Height {
		log.Printf("Warning: layout %s is %dx%d, screen is %dx%d",
			layout.Name, layout.Width, layout.Height, cfg.C.Width, cfg.C.Height)
	}

	e := ecs.NewECS(donburi.NewWorld())
	s.ecs = e

	var cam *gamemath.Camera
	if s.settings.UseCamera {
		cam = factory.NewCanvasCamera(width, height, cfg.Camera.Zoom)
	}
	canvas := factory.CreateCanvas(e, width, height, cam)
	root := components.Canvas.Get(canvas).Root

	quotas := make([]factory.StarQuota, 0, len(layout.Containers))
	for _, spawn := range layout.Containers {
		container := factory.CreateContainer(e, root, spawn)
		quotas = append(quotas, factory.StarQuota{
			Parent: components.Container.Get(container).Rect,
			Count:  spawn.Stars,
		})
	}
	for _, spawn := range layout.Targets {
		factory.CreateTarget(e, root, spawn)
	}

	starImage := assets.StarImage(cfg.UI.StarSpriteSize, cfg.UI.StarInnerRatio)
	r, g, b := rgbScale(cfg.UI.StarColor)
	pool := factory.CreateStarPool(e, quotas, cfg.StarFX.PoolSize, starImage, r, g, b)

	var animator starfx.Animator
	if layout.Icon != nil {
		ir, ig, ib := rgbScale(cfg.UI.IconColor)
		icon := factory.CreateStarIcon(e, root, *layout.Icon, starImage, ir, ig, ib)
		animator = systems.NewIconAnimator(icon)
	}

	factory.CreateAudio(e, systems.GetSFXVolume(), systems.IsMuted())

	s.scheduler = tween.NewScheduler()
	opts := []starfx.Option{
		starfx.WithCamera(cam),
		starfx.WithLaunchHook(func(int) { systems.PlaySFX(e, cfg.SoundBurst) }),
	}
	if cfg.Debug.Seed != 0 {
		opts = append(opts, starfx.WithRand(rand.New(rand.NewSource(cfg.Debug.Seed))))
	}
	fx, err := starfx.NewEmitter(pool, systems.ApplySavedSettings(cfg.StarFX, s.settings), s.scheduler, opts...)
	if err != nil {
		panic("failed to create star emitter: " + err.Error())
	}
	s.emitter = fx

	s.states = starfx.NewStateController(animator)
	s.states.SetStarState(starfx.StarStateFromInt(s.settings.IconState))

	s.starUI = ui.NewStarFXUI(
		&ui.BurstForwarder{FX: fx, ScreenHeight: height},
		s.states,
		func() { systems.PlaySFX(e, cfg.SoundClick) },
	)

	// Audio system (runs first)
	e.AddSystem(systems.UpdateAudio)

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdateControls(&systems.Controls{
		Emitter:  fx,
		States:   s.states,
		Settings: s.settings,
		Blocked:  s.starUI.Contains,
		Reload:   func() { s.shouldReload = true },
	}))
	e.AddSystem(systems.NewUpdateStarIcons(s.scheduler))
	e.AddSystem(systems.UpdateDebug)

	// Tweens last so everything started this frame moves this frame
	e.AddSystem(systems.NewUpdateTweens(s.scheduler))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawContainers)
	e.AddRenderer(cfg.Default, systems.DrawStars)
	e.AddRenderer(cfg.Default, systems.DrawIcon)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.NewDrawHUD(fx, s.settings))

	log.Printf("[StarFX] Scene ready: %d containers, %d targets, canvas %s",
		len(layout.Containers), len(layout.Targets), systems.CanvasModeName(cam != nil))
}

func rgbScale(c color.RGBA) (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

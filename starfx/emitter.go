package starfx

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/automoto/starfx/gamemath"
	"github.com/automoto/starfx/tween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrNoScheduler = errors.New("starfx: tween scheduler is required")
	ErrEmptyPool   = errors.New("starfx: star pool is empty")
)

// Emitter launches bursts of pooled stars. It owns the pool: only the
// emitter flips a star between free and in flight.
type Emitter struct {
	cfg       cfg.StarFXConfig
	pool      []*donburi.Entry
	scheduler *tween.Scheduler
	camera    *gamemath.Camera
	rng       gamemath.Rand
	onLaunch  func(launched int)
}

type Option func(*Emitter)

// WithCamera renders the canvas through cam instead of as a screen overlay.
func WithCamera(cam *gamemath.Camera) Option {
	return func(e *Emitter) { e.camera = cam }
}

// WithRand replaces the time-seeded random source, e.g. with a seeded one in tests.
func WithRand(rng gamemath.Rand) Option {
	return func(e *Emitter) { e.rng = rng }
}

// WithLaunchHook is called after every burst that launched at least one star.
func WithLaunchHook(fn func(launched int)) Option {
	return func(e *Emitter) { e.onLaunch = fn }
}

// NewEmitter validates its collaborators up front; a burst itself never fails.
func NewEmitter(pool []*donburi.Entry, config cfg.StarFXConfig, scheduler *tween.Scheduler, opts ...Option) (*Emitter, error) {
	if scheduler == nil {
		return nil, ErrNoScheduler
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new emitter: %w", err)
	}

	e := &Emitter{
		cfg:       config,
		pool:      append([]*donburi.Entry(nil), pool...),
		scheduler: scheduler,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e, nil
}

// Config is the configuration the emitter was built with.
func (e *Emitter) Config() cfg.StarFXConfig {
	return e.cfg
}

// Camera is nil for an overlay canvas.
func (e *Emitter) Camera() *gamemath.Camera {
	return e.camera
}

// Size is the number of pooled stars.
func (e *Emitter) Size() int {
	return len(e.pool)
}

// Free is the number of stars a burst could launch right now.
func (e *Emitter) Free() int {
	return CountFree(e.pool)
}

// InFlight is the number of stars currently animating.
func (e *Emitter) InFlight() int {
	return len(e.pool) - e.Free()
}

// PlayAtTarget bursts from the center of target, e.g. the button that was clicked.
func (e *Emitter) PlayAtTarget(target *gamemath.Rect) int {
	if target == nil {
		return 0
	}
	return e.Emit(target.WorldCenter())
}

// Emit launches up to EmitCount free stars from a world-space anchor and
// returns how many actually launched.
func (e *Emitter) Emit(anchor dmath.Vec2) int {
	reserved := Reserve(e.pool, e.cfg.EmitCount)
	if len(reserved) == 0 {
		return 0
	}

	// Project once; each star maps the screen point into its own parent.
	screen := gamemath.WorldToScreenPoint(e.camera, anchor)
	for _, entry := range reserved {
		star := components.Star.Get(entry)
		origin := gamemath.ScreenPointToLocalPoint(star.Parent, screen, e.camera)
		e.launch(entry, origin)
	}

	if len(reserved) < e.cfg.EmitCount {
		log.Printf("[StarFX] Pool exhausted: launched %d of %d stars", len(reserved), e.cfg.EmitCount)
	}
	if e.onLaunch != nil {
		e.onLaunch(len(reserved))
	}
	return len(reserved)
}

func (e *Emitter) launch(entry *donburi.Entry, origin dmath.Vec2) {
	star := components.Star.Get(entry)
	plan := gamemath.PlanTrajectory(origin, e.cfg.Trajectory(), e.rng)

	star.Active = true
	star.Opacity = 1
	star.Rotation = 0
	star.Scale = plan.StartScale
	star.Position = origin

	star.Handle = e.scheduler.Submit(e.compose(star, plan), func() {
		e.release(entry)
	})
}

// compose builds rise-then-fall motion joined with a full-length spin and fade.
func (e *Emitter) compose(star *components.StarData, plan gamemath.Trajectory) tween.Animation {
	setPos := func(v dmath.Vec2) { star.Position = v }

	motion := tween.NewSequence(
		tween.Vec2(plan.Origin, plan.Apex, plan.AscendDuration, easeOr(e.cfg.EaseUp, ease.OutQuad), setPos),
		tween.Vec2(plan.Apex, plan.Landing, plan.DescendDuration, easeOr(e.cfg.EaseDown, ease.InQuad), setPos),
	)
	spin := tween.Float(star.Rotation, star.Rotation+plan.SpinDelta, plan.TotalDuration(),
		easeOr(e.cfg.EaseSpin, ease.OutQuad), func(v float64) { star.Rotation = v })
	fade := tween.Float(1, 0, plan.TotalDuration(),
		easeOr(e.cfg.EaseFade, ease.OutQuad), func(v float64) { star.Opacity = v })

	return tween.NewParallel(motion).Join(spin, fade)
}

// release returns a finished star to the free baseline. Inactive stars are
// not drawn, and the next launch re-initializes position and scale before
// any frame renders, so no stale transform can show.
func (e *Emitter) release(entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	components.Star.Get(entry).Reset()
}

func easeOr(fn, fallback ease.TweenFunc) ease.TweenFunc {
	if fn != nil {
		return fn
	}
	return fallback
}

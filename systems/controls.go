package systems

import (
	"image"
	"log"

	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/automoto/starfx/gamemath"
	"github.com/automoto/starfx/starfx"
	"github.com/automoto/starfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Controls binds demo input to the burst emitter and the icon state dispatcher.
type Controls struct {
	Emitter  *starfx.Emitter
	States   *starfx.StateController
	Settings *SavedSettings

	// Blocked reports whether a pixel belongs to a UI widget; widget
	// handlers own those clicks.
	Blocked func(p image.Point) bool
	// Reload rebuilds the scene after a setting baked into the emitter changed.
	Reload func()
}

// NewUpdateControls returns the system that turns actions into bursts, state
// changes and setting changes.
func NewUpdateControls(c *Controls) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if input.Clicked && (c.Blocked == nil || !c.Blocked(input.Pixel)) {
			c.burstAtCursor(e, input.Cursor)
		}

		if GetAction(input, cfg.ActionBurst).JustPressed {
			c.burstAtFirstTarget(e)
		}

		switch {
		case GetAction(input, cfg.ActionStarOn).JustPressed:
			c.setIconState(1)
		case GetAction(input, cfg.ActionStarTwinkle).JustPressed:
			c.setIconState(0)
		case GetAction(input, cfg.ActionStarOff).JustPressed:
			c.setIconState(-1)
		}

		if GetAction(input, cfg.ActionToggleMute).JustPressed {
			SetMuted(e, !IsMuted())
			if c.Settings != nil {
				c.Settings.Muted = IsMuted()
				_ = SaveSettings(c.Settings)
			}
		}

		if c.Settings == nil {
			return
		}
		changed := false
		if GetAction(input, cfg.ActionMoreStars).JustPressed {
			changed = c.adjustEmitCount(1) || changed
		}
		if GetAction(input, cfg.ActionFewerStars).JustPressed {
			changed = c.adjustEmitCount(-1) || changed
		}
		if GetAction(input, cfg.ActionToggleCamera).JustPressed {
			c.Settings.UseCamera = !c.Settings.UseCamera
			log.Printf("[StarFX] Canvas mode: %s", CanvasModeName(c.Settings.UseCamera))
			changed = true
		}
		if changed {
			_ = SaveSettings(c.Settings)
			if c.Reload != nil {
				c.Reload()
			}
		}
	}
}

func (c *Controls) burstAtCursor(e *ecs.ECS, cursor dmath.Vec2) {
	if c.Emitter == nil {
		return
	}
	world := gamemath.ScreenToWorldPoint(c.Emitter.Camera(), cursor)
	if target := TargetAt(e.World, world); target != nil {
		c.Emitter.PlayAtTarget(target)
		return
	}
	c.Emitter.Emit(world)
}

func (c *Controls) burstAtFirstTarget(e *ecs.ECS) {
	if c.Emitter == nil {
		return
	}
	var first *gamemath.Rect
	tags.Target.Each(e.World, func(entry *donburi.Entry) {
		if first == nil {
			first = components.Container.Get(entry).Rect
		}
	})
	if first == nil {
		if canvas, ok := getCanvas(e); ok {
			first = canvas.Root
		}
	}
	c.Emitter.PlayAtTarget(first)
}

func (c *Controls) setIconState(n int) {
	c.States.OnClickStarStateButton(n)
	if c.Settings != nil {
		c.Settings.IconState = n
		_ = SaveSettings(c.Settings)
	}
}

func (c *Controls) adjustEmitCount(delta int) bool {
	next := ClampEmitCount(c.Settings.EmitCount + delta)
	if next == c.Settings.EmitCount {
		return false
	}
	c.Settings.EmitCount = next
	log.Printf("[StarFX] Emit count: %d", next)
	return true
}

// TargetAt returns the rect of the first target containing a world point.
func TargetAt(w donburi.World, world dmath.Vec2) *gamemath.Rect {
	var hit *gamemath.Rect
	tags.Target.Each(w, func(entry *donburi.Entry) {
		if hit != nil {
			return
		}
		r := components.Container.Get(entry).Rect
		if r != nil && r.ContainsWorld(world) {
			hit = r
		}
	})
	return hit
}

// CanvasModeName is the HUD label for a canvas render mode.
func CanvasModeName(useCamera bool) string {
	if useCamera {
		return "Camera"
	}
	return "Overlay"
}

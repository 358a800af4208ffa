package systems

import (
	"log"

	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/automoto/starfx/tween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IconAnimator is the named-trigger facility for one star icon entity.
type IconAnimator struct {
	entry *donburi.Entry
}

func NewIconAnimator(entry *donburi.Entry) *IconAnimator {
	return &IconAnimator{entry: entry}
}

// SetTrigger records name for the next UpdateStarIcons; a later call in the
// same frame replaces it.
func (a *IconAnimator) SetTrigger(name string) {
	if a == nil || a.entry == nil || !a.entry.Valid() {
		return
	}
	components.IconAnimator.Get(a.entry).Pending = name
}

// NewUpdateStarIcons consumes pending triggers and moves each icon into the
// named state. Twinkle loops a scale pulse on the shared scheduler until the
// icon leaves that state.
func NewUpdateStarIcons(sched *tween.Scheduler) ecs.System {
	return func(e *ecs.ECS) {
		twinkled := false
		components.IconAnimator.Each(e.World, func(entry *donburi.Entry) {
			icon := components.IconAnimator.Get(entry)
			if icon.Pending == "" {
				return
			}
			trigger := icon.Pending
			icon.Pending = ""

			switch trigger {
			case cfg.StarState.TriggerOn:
				stopPulse(icon)
				icon.State = components.IconOn
				icon.Opacity = 1
			case cfg.StarState.TriggerOff:
				stopPulse(icon)
				icon.State = components.IconOff
				icon.Opacity = cfg.StarState.OffOpacity
			case cfg.StarState.TriggerTwinkle:
				icon.State = components.IconTwinkle
				icon.Opacity = 1
				if icon.Pulse == nil || !icon.Pulse.Running() {
					startPulse(sched, entry)
				}
				twinkled = true
			default:
				log.Printf("Warning: unknown star icon trigger %q", trigger)
			}
		})
		if twinkled {
			PlaySFX(e, cfg.SoundTwinkle)
		}
	}
}

func stopPulse(icon *components.IconAnimatorData) {
	if icon.Pulse != nil {
		icon.Pulse.Cancel()
		icon.Pulse = nil
	}
	icon.Scale = 1
	icon.Rotation = 0
}

func startPulse(sched *tween.Scheduler, entry *donburi.Entry) {
	icon := components.IconAnimator.Get(entry)
	half := cfg.StarState.TwinkleDuration / 2
	peak := cfg.StarState.TwinkleScale
	setScale := func(v float64) { icon.Scale = v }

	// A fifth of a turn lands the five-pointed star back on its own outline.
	pulse := tween.NewParallel(
		tween.NewSequence(
			tween.Float(1, peak, half, ease.OutQuad, setScale),
			tween.Float(peak, 1, half, ease.InQuad, setScale),
		),
	).Join(
		tween.Float(0, 72, cfg.StarState.TwinkleDuration, ease.InOutQuad, func(v float64) { icon.Rotation = v }),
	)

	icon.Pulse = sched.Submit(pulse, func() {
		if !entry.Valid() {
			return
		}
		icon := components.IconAnimator.Get(entry)
		icon.Rotation = 0
		if icon.State == components.IconTwinkle {
			startPulse(sched, entry)
			return
		}
		icon.Pulse = nil
	})
}

package systems

import (
	"github.com/automoto/starfx/tween"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTweens steps the shared scheduler by one tick. Add it after any
// system that submits animations so new bursts start moving the same frame.
func NewUpdateTweens(sched *tween.Scheduler) ecs.System {
	return func(ecs *ecs.ECS) {
		sched.Update(1.0 / float64(ebiten.TPS()))
	}
}

package archetypes

import (
	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/automoto/starfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Canvas = newArchetype(
		components.Canvas,
	)
	Container = newArchetype(
		tags.Container,
		components.Container,
	)
	Target = newArchetype(
		tags.Target,
		components.Container,
	)
	Star = newArchetype(
		tags.Star,
		components.Star,
		components.Sprite,
	)
	Icon = newArchetype(
		tags.Icon,
		components.IconAnimator,
		components.Sprite,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

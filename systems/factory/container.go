package factory

import (
	"github.com/automoto/starfx/archetypes"
	"github.com/automoto/starfx/assets"
	"github.com/automoto/starfx/components"
	"github.com/automoto/starfx/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateContainer creates a panel that pooled stars are parented to.
func CreateContainer(ecs *ecs.ECS, root *gamemath.Rect, spawn assets.RectSpawn) *donburi.Entry {
	container := archetypes.Container.Spawn(ecs)
	components.Container.SetValue(container, components.ContainerData{
		Rect: rectFromSpawn(root, spawn),
	})
	return container
}

// CreateTarget creates a clickable area that bursts from its own center.
func CreateTarget(ecs *ecs.ECS, root *gamemath.Rect, spawn assets.RectSpawn) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)
	components.Container.SetValue(target, components.ContainerData{
		Rect: rectFromSpawn(root, spawn),
	})
	return target
}

func rectFromSpawn(root *gamemath.Rect, spawn assets.RectSpawn) *gamemath.Rect {
	r := gamemath.NewRect(spawn.Name, spawn.X, spawn.Y, spawn.Width, spawn.Height).SetParent(root)
	r.Rotation = spawn.Rotation
	if spawn.Scale != 0 {
		r.Scale = dmath.Vec2{X: spawn.Scale, Y: spawn.Scale}
	}
	return r
}

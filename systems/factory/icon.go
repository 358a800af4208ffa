package factory

import (
	"github.com/automoto/starfx/archetypes"
	"github.com/automoto/starfx/assets"
	"github.com/automoto/starfx/components"
	"github.com/automoto/starfx/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStarIcon creates the persistent star whose On/Off/Twinkle state is
// driven by named triggers. It starts On.
func CreateStarIcon(ecs *ecs.ECS, root *gamemath.Rect, spawn assets.RectSpawn, img *ebiten.Image, r, g, b float32) *donburi.Entry {
	icon := archetypes.Icon.Spawn(ecs)

	components.IconAnimator.SetValue(icon, components.IconAnimatorData{
		Rect:    rectFromSpawn(root, spawn),
		State:   components.IconOn,
		Opacity: 1,
		Scale:   1,
	})
	components.Sprite.SetValue(icon, components.SpriteData{
		Image:  img,
		PivotX: 0.5,
		PivotY: 0.5,
		R:      r,
		G:      g,
		B:      b,
	})
	return icon
}

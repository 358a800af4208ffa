package factory

import (
	"github.com/automoto/starfx/archetypes"
	"github.com/automoto/starfx/components"
	"github.com/automoto/starfx/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCanvas creates the root of the UI hierarchy. The root's local space is
// canvas space: origin at the bottom-left corner, y up, one unit per pixel.
// A nil cam makes the canvas a screen overlay.
func CreateCanvas(ecs *ecs.ECS, width, height float64, cam *gamemath.Camera) *donburi.Entry {
	canvas := archetypes.Canvas.Spawn(ecs)

	root := gamemath.NewRect("canvas", 0, 0, width, height)
	root.Pivot = dmath.Vec2{X: 0, Y: 0}

	components.Canvas.SetValue(canvas, components.CanvasData{
		Root:   root,
		Camera: cam,
	})
	return canvas
}

// NewCanvasCamera frames the whole canvas at the given zoom.
func NewCanvasCamera(width, height, zoom float64) *gamemath.Camera {
	return gamemath.NewCamera(dmath.Vec2{X: width / 2, Y: height / 2}, zoom, width, height)
}

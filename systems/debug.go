package systems

import (
	"image/color"

	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/automoto/starfx/gamemath"
	"github.com/automoto/starfx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// RectCorners returns the four corners of a rect in world space, counter
// clockwise from the local bottom-left.
func RectCorners(r *gamemath.Rect) [4]dmath.Vec2 {
	x0 := -r.Pivot.X * r.Size.X
	y0 := -r.Pivot.Y * r.Size.Y
	x1 := x0 + r.Size.X
	y1 := y0 + r.Size.Y
	return [4]dmath.Vec2{
		r.TransformPoint(dmath.Vec2{X: x0, Y: y0}),
		r.TransformPoint(dmath.Vec2{X: x1, Y: y0}),
		r.TransformPoint(dmath.Vec2{X: x1, Y: y1}),
		r.TransformPoint(dmath.Vec2{X: x0, Y: y1}),
	}
}

// UpdateDebug toggles the debug overlay.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.ShowDebug = !cfg.Debug.ShowDebug
	}
}

// DrawDebug outlines every rect and marks each in-flight star.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowDebug {
		return
	}
	canvas, ok := getCanvas(e)
	if !ok {
		return
	}
	view := ScreenMatrix(canvas.Camera, float64(screen.Bounds().Dy()))

	components.Container.Each(e.World, func(entry *donburi.Entry) {
		r := components.Container.Get(entry).Rect
		if r == nil {
			return
		}
		c := color.RGBA{0, 255, 255, 255} // Cyan containers
		if entry.HasComponent(tags.Target) {
			c = color.RGBA{255, 0, 255, 255} // Magenta targets
		}
		outline(screen, view, RectCorners(r), c)
	})

	components.IconAnimator.Each(e.World, func(entry *donburi.Entry) {
		if r := components.IconAnimator.Get(entry).Rect; r != nil {
			outline(screen, view, RectCorners(r), color.RGBA{255, 255, 0, 255})
		}
	})

	components.Star.Each(e.World, func(entry *donburi.Entry) {
		star := components.Star.Get(entry)
		if !star.Active || star.Parent == nil {
			return
		}
		p := view.Apply(star.Parent.TransformPoint(star.Position))
		vector.FillRect(screen, float32(p.X-2), float32(p.Y-2), 4, 4, color.RGBA{255, 0, 0, 255}, false)
	})
}

func outline(screen *ebiten.Image, view gamemath.Affine, corners [4]dmath.Vec2, c color.Color) {
	for i := range corners {
		a := view.Apply(corners[i])
		b := view.Apply(corners[(i+1)%len(corners)])
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, false)
	}
}
